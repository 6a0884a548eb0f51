package ui

import "fmt"

// Inspector is a right-side panel that shows the most recently linked object and the collection size.
// It owns its nodes and updates their text when AppendNodes is called with visible true.
type Inspector struct {
	panel    *Node
	title    *Node
	name     *Node
	kind     *Node
	position *Node
	scale    *Node
	source   *Node
	count    *Node
}

// NewInspector creates an Inspector with nodes styled by .inspector, .inspector-title, etc.
func NewInspector() *Inspector {
	return &Inspector{
		panel:    NewNode("panel", "inspector", "", ""),
		title:    NewNode("label", "inspector-title", "", "Inspector"),
		name:     NewNode("label", "inspector-name", "", ""),
		kind:     NewNode("label", "inspector-kind", "", ""),
		position: NewNode("label", "inspector-position", "", ""),
		scale:    NewNode("label", "inspector-scale", "", ""),
		source:   NewNode("label", "inspector-source", "", ""),
		count:    NewNode("label", "inspector-count", "", ""),
	}
}

// Selection holds the data shown in the inspector. ui does not depend on scene; the caller fills it.
type Selection struct {
	Name     string
	Kind     string
	Position [3]float32
	Scale    [3]float32
	Source   string
	Linked   int
}

// AppendNodes appends inspector nodes to dst when visible is true, after updating labels from sel.
func (in *Inspector) AppendNodes(dst []*Node, visible bool, sel Selection) []*Node {
	if !visible {
		return dst
	}
	in.name.Text = "Name: " + sel.Name
	in.kind.Text = "Type: " + sel.Kind
	in.position.Text = fmt.Sprintf("Position: %.2f, %.2f, %.2f", sel.Position[0], sel.Position[1], sel.Position[2])
	in.scale.Text = fmt.Sprintf("Scale: %.2f, %.2f, %.2f", sel.Scale[0], sel.Scale[1], sel.Scale[2])
	if sel.Source != "" {
		in.source.Text = "File: " + sel.Source
	} else {
		in.source.Text = "File: -"
	}
	in.count.Text = fmt.Sprintf("Linked: %d", sel.Linked)
	return append(dst, in.panel, in.title, in.name, in.kind, in.position, in.scale, in.source, in.count)
}
