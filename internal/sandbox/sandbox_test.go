package sandbox

import (
	"bytes"
	"errors"
	"image/color"
	"io/fs"
	"testing"

	"custom-meshes/internal/host"
	"custom-meshes/internal/scene"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/require"
	"pkt.systems/pslog"
)

func testLogger(buf *bytes.Buffer) pslog.Logger {
	return pslog.NewWithOptions(buf, pslog.Options{
		Mode:     pslog.ModeStructured,
		NoColor:  true,
		MinLevel: pslog.DebugLevel,
	})
}

type staticMenu struct {
	id, label string
	draw      func(host.Layout)
}

func (m staticMenu) ID() string    { return m.id }
func (m staticMenu) Label() string { return m.label }
func (m staticMenu) Draw(_ *host.Context, l host.Layout) {
	if m.draw != nil {
		m.draw(l)
	}
}

type recordOp struct {
	id    string
	calls []host.Props
}

func (o *recordOp) ID() string    { return o.id }
func (o *recordOp) Label() string { return "Record" }
func (o *recordOp) Execute(_ *host.Context, p host.Props) (host.Result, error) {
	o.calls = append(o.calls, p)
	return host.Finished, nil
}

func TestUIRegistration(t *testing.T) {
	var logs bytes.Buffer
	u := NewUI(testLogger(&logs))
	before := u.Snapshot()
	require.Contains(t, before.Menus, AddMeshMenuID)
	require.Contains(t, before.Operators, "mesh.primitive_cube_add")

	require.NoError(t, u.RegisterMenu(staticMenu{id: "OBJECT_MT_x", label: "X"}))
	require.NoError(t, u.RegisterMenu(staticMenu{id: "OBJECT_MT_x", label: "x"}))
	m, ok := u.Menu("OBJECT_MT_x")
	require.True(t, ok)
	require.Equal(t, "x", m.Label(), "re-registering replaces")
	require.Contains(t, logs.String(), "menu replaced")

	require.NoError(t, u.UnregisterMenu("OBJECT_MT_x"))
	require.ErrorIs(t, u.UnregisterMenu("OBJECT_MT_x"), host.ErrNotRegistered)
	require.ErrorIs(t, u.UnregisterOperator("nope"), host.ErrNotRegistered)
	require.Equal(t, before, u.Snapshot())
}

func TestUIHooks(t *testing.T) {
	u := NewUI(pslog.NewWithOptions(&bytes.Buffer{}, pslog.Options{}))
	noop := func(*host.Context, host.Layout) {}

	h1, err := u.AppendMenuHook("PARENT", noop)
	require.NoError(t, err)
	h2, err := u.AppendMenuHook("PARENT", noop)
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
	require.Equal(t, 2, u.Snapshot().Hooks["PARENT"])

	// Removal matches the handle, not the function value.
	require.NoError(t, u.RemoveMenuHook("PARENT", h1))
	require.ErrorIs(t, u.RemoveMenuHook("PARENT", h1), host.ErrNotRegistered)
	require.ErrorIs(t, u.RemoveMenuHook("OTHER", h2), host.ErrNotRegistered)
	require.NoError(t, u.RemoveMenuHook("PARENT", h2))
	require.NotContains(t, u.Snapshot().Hooks, "PARENT")

	_, err = u.AppendMenuHook("PARENT", nil)
	require.Error(t, err)
}

func TestUIRender(t *testing.T) {
	u := NewUI(pslog.NewWithOptions(&bytes.Buffer{}, pslog.Options{}))
	ctx := &host.Context{}

	require.NoError(t, u.RegisterMenu(staticMenu{id: "TOP", label: "Top", draw: func(l host.Layout) {
		l.Menu("SUB")
		l.Menu("GONE")
		l.Menu("TOP")
	}}))
	require.NoError(t, u.RegisterMenu(staticMenu{id: "SUB", label: "Sub", draw: func(l host.Layout) {
		l.Operator("op.record", "Go", "MESH_CUBE")["path"] = "/x"
		l.Operator("op.record", "", "")
	}}))
	require.NoError(t, u.RegisterOperator(&recordOp{id: "op.record"}))
	_, err := u.AppendMenuHook(AddMeshMenuID, func(_ *host.Context, l host.Layout) { l.Menu("TOP") })
	require.NoError(t, err)

	root, err := u.Render(ctx, AddMeshMenuID)
	require.NoError(t, err)
	require.Equal(t, "Mesh", root.Label)
	require.Len(t, root.Operators(), len(builtinPrimitives))
	require.Equal(t, []string{"TOP"}, root.Links())

	top, ok := root.Find("Top")
	require.True(t, ok)
	require.Equal(t, []string{"SUB", "GONE", "TOP"}, top.Links())
	require.True(t, top.Children[1].Missing)
	require.Empty(t, top.Children[2].Children, "cycles are not expanded")

	sub, ok := root.Find("Top", "Sub")
	require.True(t, ok)
	ops := sub.Operators()
	require.Len(t, ops, 2)
	require.Equal(t, host.Props{"path": "/x"}, ops[0].Props)
	require.Equal(t, "Record", ops[1].Label, "empty text falls back to the operator label")

	_, ok = root.Find("Top", "Nope")
	require.False(t, ok)

	out := root.String()
	require.Contains(t, out, "Top >")
	require.Contains(t, out, "[MESH_CUBE] Go path=/x")
	require.Contains(t, out, "GONE (missing)")

	_, err = u.Render(ctx, "NOT_THERE")
	require.ErrorIs(t, err, host.ErrNotRegistered)
}

func TestUIInvoke(t *testing.T) {
	u := NewUI(pslog.NewWithOptions(&bytes.Buffer{}, pslog.Options{}))
	op := &recordOp{id: "op.record"}
	require.NoError(t, u.RegisterOperator(op))

	props := host.Props{"k": "v"}
	res, err := u.Invoke(&host.Context{}, "op.record", props)
	require.NoError(t, err)
	require.Equal(t, host.Finished, res)
	op.calls[0]["k"] = "changed"
	require.Equal(t, "v", props["k"], "operators get a copy")

	_, err = u.Invoke(&host.Context{}, "op.none", nil)
	require.ErrorIs(t, err, host.ErrNotRegistered)
}

func TestBuiltinPrimitiveOperator(t *testing.T) {
	u := NewUI(pslog.NewWithOptions(&bytes.Buffer{}, pslog.Options{}))
	coll := scene.NewCollection("Collection")
	ctx := &host.Context{Collection: coll}

	res, err := u.Invoke(ctx, "mesh.primitive_cube_add", nil)
	require.NoError(t, err)
	require.Equal(t, host.Finished, res)
	require.Len(t, coll.Primitives(), 1)
	require.Equal(t, scene.Cube, coll.Primitives()[0].Kind)
}

func writeBundle(t *testing.T, fsys hackpadfs.FS, name, data string) {
	t.Helper()
	require.NoError(t, hackpadfs.MkdirAll(fsys, "assets/rpg", 0o755))
	require.NoError(t, hackpadfs.WriteFullFile(fsys, name, []byte(data), 0o644))
}

func TestLibraryLoadObjects(t *testing.T) {
	fsys, err := mem.NewFS()
	require.NoError(t, err)
	writeBundle(t, fsys, "assets/rpg/a.yaml", `
objects:
  - name: Crate
    type: cube
    position: [1, 0.5, -2]
    color: "#ff0000"
  - type: torus
  - type: Sphere
    scale: [2, 2, 2]
`)
	var logs bytes.Buffer
	lib := NewLibrary(fsys, testLogger(&logs))

	objs, err := lib.LoadObjects("/assets/rpg/a.yaml")
	require.NoError(t, err)
	require.Len(t, objs, 3)

	crate := objs[0].(*scene.Object)
	require.Equal(t, "Crate", crate.Name())
	require.Equal(t, scene.Cube, crate.Kind)
	require.Equal(t, [3]float32{1, 0.5, -2}, crate.Position)
	require.Equal(t, [3]float32{1, 1, 1}, crate.Scale)
	require.Equal(t, color.RGBA{R: 255, A: 255}, crate.Color)
	require.Equal(t, "/assets/rpg/a.yaml", crate.Source)

	require.Nil(t, objs[1])
	require.Contains(t, logs.String(), "unknown object type")

	ball := objs[2].(*scene.Object)
	require.Equal(t, "a", ball.Name(), "unnamed objects take the file stem")
	require.Equal(t, [3]float32{2, 2, 2}, ball.Scale)
}

func TestLibraryErrors(t *testing.T) {
	fsys, err := mem.NewFS()
	require.NoError(t, err)
	writeBundle(t, fsys, "assets/rpg/bad.yaml", "objects: {")
	writeBundle(t, fsys, "assets/rpg/color.yaml", "objects:\n  - type: cube\n    color: red\n")
	lib := NewLibrary(fsys, pslog.NewWithOptions(&bytes.Buffer{}, pslog.Options{}))

	_, err = lib.LoadObjects("/assets/rpg/missing.yaml")
	require.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)

	_, err = lib.LoadObjects("/assets/rpg/bad.yaml")
	require.ErrorContains(t, err, "decode")

	_, err = lib.LoadObjects("/assets/rpg/color.yaml")
	require.ErrorContains(t, err, "bad color")
}
