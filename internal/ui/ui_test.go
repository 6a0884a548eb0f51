package ui

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/require"
)

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(`
/* panel */
.menu-panel { background: #333; width: 320px; }
#menu { left: 50%; }
.a, .b { color: #fff }
div { color: #000; }
.outer .inner { color: #000; }
@media (max-width: 100px) { .menu-panel { width: 10; } }
.last { border: #010203 }
`)
	require.NoError(t, err)

	want := []Rule{
		{Selector: ".menu-panel", Props: map[string]string{"background": "#333", "width": "320px"}},
		{Selector: "#menu", Props: map[string]string{"left": "50%"}},
		{Selector: ".a", Props: map[string]string{"color": "#fff"}},
		{Selector: ".b", Props: map[string]string{"color": "#fff"}},
		{Selector: ".last", Props: map[string]string{"border": "#010203"}},
	}
	if diff := cmp.Diff(want, sheet.Rules); diff != "" {
		t.Fatalf("rules mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCSSDefaultTheme(t *testing.T) {
	sheet, err := ParseCSS(DefaultCSS)
	require.NoError(t, err)
	require.NotEmpty(t, sheet.Rules)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#fff", color.RGBA{255, 255, 255, 255}, true},
		{"#102030", color.RGBA{0x10, 0x20, 0x30, 255}, true},
		{"#10203080", color.RGBA{0x10, 0x20, 0x30, 0x80}, true},
		{" #ABC ", color.RGBA{0xaa, 0xbb, 0xcc, 255}, true},
		{"#12", black, false},
		{"#ggg", black, false},
		{"red", black, false},
	}
	for _, tc := range tests {
		got, ok := ParseHexColor(tc.in)
		require.Equal(t, tc.ok, ok, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestResolveProps(t *testing.T) {
	style := ResolveProps(map[string]string{
		"background": "#000",
		"border":     "#fff",
		"width":      "120px",
		"height":     "30",
		"left":       "25%",
		"top":        "12",
		"padding":    "-1",
		"font-size":  "14px",
	})
	require.Equal(t, color.RGBA{0, 0, 0, 255}, style.Background)
	require.True(t, style.HasBorder)
	require.EqualValues(t, 120, style.Width)
	require.EqualValues(t, 30, style.Height)
	require.EqualValues(t, 25, style.LeftPct)
	require.EqualValues(t, 12, style.Top)
	require.EqualValues(t, -1, style.TopPct)
	require.EqualValues(t, 4, style.Padding)
	require.EqualValues(t, 14, style.FontSize)
}

func TestEngineLayoutAndClick(t *testing.T) {
	sheet, err := ParseCSS(`.row { left: 10; top: 20; width: 100; height: 20; } #right { left: 100%; width: 50; height: 10; }`)
	require.NoError(t, err)

	e := New()
	e.SetStylesheet(sheet)
	clicked := ""
	first := NewNode("button", "row", "", "first")
	first.OnClick = func() { clicked = "first" }
	second := NewNode("button", "row", "", "second")
	second.OffsetY = 20
	second.OnClick = func() { clicked = "second" }
	right := NewNode("label", "", "right", "")
	e.SetNodes([]*Node{first, second, right})

	boxes := e.Layout(800, 600)
	require.Len(t, boxes, 3)
	require.Equal(t, Rect{X: 10, Y: 20, Width: 100, Height: 20}, first.Bounds)
	require.Equal(t, Rect{X: 10, Y: 40, Width: 100, Height: 20}, second.Bounds)
	require.Equal(t, Rect{X: 750, Y: 0, Width: 50, Height: 10}, right.Bounds)

	require.True(t, e.Click(15, 45))
	require.Equal(t, "second", clicked)
	require.True(t, e.Click(15, 25))
	require.Equal(t, "first", clicked)
	require.False(t, e.Click(760, 5), "nodes without OnClick ignore clicks")
	require.False(t, e.Click(500, 500))
}

func TestEngineLoadCSS(t *testing.T) {
	fsys, err := mem.NewFS()
	require.NoError(t, err)
	require.NoError(t, hackpadfs.WriteFullFile(fsys, "menu.css", []byte(`.x { color: #fff; }`), 0o644))

	e := New()
	require.False(t, e.HasStylesheet())
	require.NoError(t, e.LoadCSS(fsys, "menu.css"))
	require.True(t, e.HasStylesheet())
	require.Error(t, e.LoadCSS(fsys, "missing.css"))
}

func TestMenuPanelRows(t *testing.T) {
	p := NewMenuPanel("Add")
	ran := false
	rows := []Row{
		{Text: "Custom Meshes", Kind: RowSubmenu},
		{Text: "RPG", Kind: RowSubmenu, Depth: 1},
		{Text: "A", Kind: RowButton, Depth: 2, OnClick: func() { ran = true }},
	}
	nodes := p.AppendNodes(nil, true, rows)
	require.Len(t, nodes, 5)
	require.Equal(t, "menu-panel", nodes[0].Class)
	require.Equal(t, "Custom Meshes >", nodes[2].Text)
	require.Equal(t, "+ A", nodes[4].Text)
	require.Equal(t, "menu-button", nodes[4].Class)
	require.EqualValues(t, 2*rowIndent, nodes[4].OffsetX)
	require.EqualValues(t, 3*defaultRowHeight, nodes[4].OffsetY)
	nodes[4].OnClick()
	require.True(t, ran)

	require.Empty(t, p.AppendNodes(nil, false, rows))
	// Shrinking the row list reuses the first nodes.
	again := p.AppendNodes(nil, true, rows[:1])
	require.Len(t, again, 3)
	require.Same(t, nodes[2], again[2])
}

func TestInspector(t *testing.T) {
	in := NewInspector()
	nodes := in.AppendNodes(nil, true, Selection{Name: "Crate", Kind: "cube", Linked: 2, Scale: [3]float32{1, 1, 1}})
	require.Len(t, nodes, 8)
	require.Equal(t, "Name: Crate", nodes[2].Text)
	require.Equal(t, "File: -", nodes[6].Text)
	require.Equal(t, "Linked: 2", nodes[7].Text)
	require.Empty(t, in.AppendNodes(nil, false, Selection{}))
}
