// Package menu builds the "Custom Meshes" submenu tree from a menu configuration and registers it with a
// host UI.
package menu

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	AggregatorID    = "OBJECT_MT_custom_meshes"
	AggregatorLabel = "Custom Meshes"

	OperatorID    = "mesh.add_objects_from_blend"
	OperatorLabel = "Add Objects from File"
	// PathProp is the operator property holding the asset file path.
	PathProp = "blend_file_path"

	Icon = "MESH_CUBE"

	// ParentMenuID is the host's "add mesh" menu the aggregator is appended to.
	ParentMenuID = "VIEW3D_MT_mesh_add"
)

// CategoryMenuID returns the submenu identifier for a category label. Labels that only differ in case
// map to the same identifier.
func CategoryMenuID(label string) string {
	return "OBJECT_MT_" + cases.Lower(language.Und).String(label) + "_menu"
}
