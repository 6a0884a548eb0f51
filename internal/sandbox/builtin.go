package sandbox

import (
	"custom-meshes/internal/host"
	"custom-meshes/internal/scene"
)

// AddMeshMenuID is the host's own "add mesh" menu plugins append to.
const AddMeshMenuID = "VIEW3D_MT_mesh_add"

// addMeshMenu lists the built-in primitives.
type addMeshMenu struct{}

func (addMeshMenu) ID() string    { return AddMeshMenuID }
func (addMeshMenu) Label() string { return "Mesh" }

func (addMeshMenu) Draw(_ *host.Context, layout host.Layout) {
	for _, p := range builtinPrimitives {
		layout.Operator(p.ID(), "", p.icon)
	}
}

// primitiveOperator links a new unit primitive into the active collection.
type primitiveOperator struct {
	kind  scene.Kind
	label string
	icon  string
}

func (p primitiveOperator) ID() string    { return "mesh.primitive_" + string(p.kind) + "_add" }
func (p primitiveOperator) Label() string { return p.label }

func (p primitiveOperator) Execute(ctx *host.Context, _ host.Props) (host.Result, error) {
	if err := ctx.Collection.Link(scene.NewObject(p.label, p.kind)); err != nil {
		return host.Cancelled, err
	}
	return host.Finished, nil
}

var builtinPrimitives = []primitiveOperator{
	{kind: scene.Plane, label: "Plane", icon: "MESH_PLANE"},
	{kind: scene.Cube, label: "Cube", icon: "MESH_CUBE"},
	{kind: scene.Sphere, label: "UV Sphere", icon: "MESH_UVSPHERE"},
	{kind: scene.Cylinder, label: "Cylinder", icon: "MESH_CYLINDER"},
}

// registerBuiltins installs the menus and operators every host starts with.
func registerBuiltins(u *UI) {
	u.menus[AddMeshMenuID] = addMeshMenu{}
	for _, p := range builtinPrimitives {
		u.operators[p.ID()] = p
	}
}
