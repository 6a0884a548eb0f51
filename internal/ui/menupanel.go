package ui

import "strings"

// RowKind selects how a menu row is styled.
type RowKind int

const (
	RowHeader RowKind = iota
	RowSubmenu
	RowButton
)

func (k RowKind) class() string {
	switch k {
	case RowSubmenu:
		return "menu-submenu"
	case RowButton:
		return "menu-button"
	default:
		return "menu-header"
	}
}

// Row is one line of a menu panel. Depth indents nested submenu contents.
type Row struct {
	Text    string
	Depth   int
	Kind    RowKind
	OnClick func()
}

const (
	defaultRowHeight = 26
	rowIndent        = 18
)

// MenuPanel is a left-side panel listing a menu tree as stacked rows, styled by .menu-panel,
// .menu-title and the per-kind row classes.
type MenuPanel struct {
	RowHeight float32

	panel *Node
	title *Node
	rows  []*Node
}

func NewMenuPanel(title string) *MenuPanel {
	return &MenuPanel{
		RowHeight: defaultRowHeight,
		panel:     NewNode("panel", "menu-panel", "menu", ""),
		title:     NewNode("label", "menu-title", "", title),
	}
}

// AppendNodes appends the panel, its title and one node per row to dst when visible is true.
// Row nodes are reused between calls.
func (m *MenuPanel) AppendNodes(dst []*Node, visible bool, rows []Row) []*Node {
	if !visible {
		return dst
	}
	for len(m.rows) < len(rows) {
		m.rows = append(m.rows, NewNode("button", "", "", ""))
	}
	m.panel.Height = m.RowHeight * float32(len(rows)+2)
	dst = append(dst, m.panel, m.title)
	for i, r := range rows {
		n := m.rows[i]
		n.Class = r.Kind.class()
		n.Text = rowText(r)
		n.OffsetX = float32(r.Depth * rowIndent)
		n.OffsetY = m.RowHeight * float32(i+1)
		n.OnClick = r.OnClick
		dst = append(dst, n)
	}
	return dst
}

func rowText(r Row) string {
	switch r.Kind {
	case RowSubmenu:
		return r.Text + " >"
	case RowButton:
		return "+ " + r.Text
	default:
		return strings.ToUpper(r.Text)
	}
}
