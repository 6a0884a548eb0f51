package ui

import (
	"fmt"

	"github.com/hack-pad/hackpadfs"
)

// Box is a node with its resolved style and on-screen bounds, ready to draw.
type Box struct {
	Node  *Node
	Style ComputedStyle
}

// Engine holds the current stylesheet and nodes and lays them out for drawing.
// Draw order is node order (first node drawn first, then on top the next).
// Resolved styles are cached and only recomputed when sheet or nodes change.
type Engine struct {
	sheet        *Stylesheet
	nodes        []*Node
	cachedStyles []ComputedStyle
	cacheValid   bool
}

// New creates an empty UI engine (no stylesheet, no nodes).
func New() *Engine {
	return &Engine{}
}

// LoadCSS loads and parses a stylesheet from fsys. Replaces the current stylesheet.
func (e *Engine) LoadCSS(fsys hackpadfs.FS, name string) error {
	data, err := hackpadfs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("ui: load css: %w", err)
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. from embedded or merged CSS).
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// AddNode appends a node. Nodes are drawn in order.
func (e *Engine) AddNode(n *Node) {
	e.nodes = append(e.nodes, n)
	e.cacheValid = false
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	e.cacheValid = false
}

// resolveProps returns merged properties for a node (class and id matched; last wins).
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		sel := rule.Selector
		var matches bool
		switch {
		case len(sel) > 1 && sel[0] == '.':
			matches = n.Class == sel[1:]
		case len(sel) > 1 && sel[0] == '#':
			matches = n.ID == sel[1:]
		}
		if matches {
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	return merged
}

// Layout resolves every node's style and sets its Bounds for a screen of the given size.
func (e *Engine) Layout(screenW, screenH int32) []Box {
	if !e.cacheValid {
		e.cachedStyles = make([]ComputedStyle, len(e.nodes))
		for i, n := range e.nodes {
			e.cachedStyles[i] = ResolveProps(e.resolveProps(n))
		}
		e.cacheValid = true
	}
	boxes := make([]Box, 0, len(e.nodes))
	for i, n := range e.nodes {
		style := e.cachedStyles[i]
		w, h := style.Width, style.Height
		x, y := style.Left, style.Top
		if style.LeftPct >= 0 {
			x = (screenW - w) * style.LeftPct / 100
		}
		if style.TopPct >= 0 {
			y = (screenH - h) * style.TopPct / 100
		}
		n.Bounds = Rect{
			X:      float32(x) + n.OffsetX,
			Y:      float32(y) + n.OffsetY,
			Width:  float32(w),
			Height: float32(h),
		}
		if n.Height > 0 {
			n.Bounds.Height = n.Height
		}
		boxes = append(boxes, Box{Node: n, Style: style})
	}
	return boxes
}

// Click runs the OnClick of the topmost node under (x, y). It reports whether a node handled it.
// Bounds come from the last Layout.
func (e *Engine) Click(x, y float32) bool {
	for i := len(e.nodes) - 1; i >= 0; i-- {
		n := e.nodes[i]
		if n.OnClick != nil && n.Bounds.Contains(x, y) {
			n.OnClick()
			return true
		}
	}
	return false
}

// HasStylesheet returns whether a stylesheet with rules is set.
func (e *Engine) HasStylesheet() bool {
	return e.sheet != nil && len(e.sheet.Rules) > 0
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}
