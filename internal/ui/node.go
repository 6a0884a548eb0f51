package ui

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, Width, Height float32
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Node is a single UI element: panel, label, button. It has optional class and id for CSS matching,
// bounds (position and size), and optional text for labels.
type Node struct {
	Type  string // "panel", "label", "button"
	Class string // e.g. "menu-row" for .menu-row
	ID    string // e.g. "menu" for #menu
	Text  string
	// Offset is added to the CSS position, for nodes stacked inside a panel.
	OffsetX, OffsetY float32
	// Height overrides the CSS height when positive.
	Height float32
	// OnClick runs when a click lands inside the node's bounds.
	OnClick func()

	Bounds Rect
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}
