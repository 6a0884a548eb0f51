// Package viewport draws the active collection in 3D with raylib.
package viewport

import (
	"custom-meshes/internal/primitives"
	"custom-meshes/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 20
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

var (
	gridMinor = rl.NewColor(128, 128, 128, gridMinorAlpha)
	gridMajor = rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX     = rl.NewColor(220, 80, 80, axisLineAlpha)
	axisZ     = rl.NewColor(80, 80, 220, axisLineAlpha)
)

// Viewport holds the 3D camera. The camera orbits the origin while the right mouse button is held,
// leaving the cursor free for the menu panel otherwise.
type Viewport struct {
	Camera      rl.Camera3D
	GridVisible bool

	prims *primitives.Registry
}

// New returns a viewport with a perspective camera at (8,6,8) looking at the origin.
func New() *Viewport {
	v := &Viewport{GridVisible: true, prims: primitives.NewRegistry()}
	v.Camera.Position = rl.NewVector3(8, 6, 8)
	v.Camera.Target = rl.NewVector3(0, 0, 0)
	v.Camera.Up = rl.NewVector3(0, 1, 0)
	v.Camera.Fovy = 45
	v.Camera.Projection = rl.CameraPerspective
	return v
}

// Update runs once per frame.
func (v *Viewport) Update() {
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		// Orbital mode handles the wheel itself.
		rl.UpdateCamera(&v.Camera, rl.CameraOrbital)
		return
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		rl.CameraMoveToTarget(&v.Camera, -wheel)
	}
}

// Draw renders the grid and every primitive in objects. Call after ClearBackground and before the
// 2D overlay.
func (v *Viewport) Draw(objects []*scene.Object) {
	p := v.Camera.Position
	v.prims.SetView([3]float32{p.X, p.Y, p.Z})
	rl.BeginMode3D(v.Camera)
	if v.GridVisible {
		drawGrid()
	}
	for _, o := range objects {
		v.prims.Draw(o)
	}
	rl.EndMode3D()
}

// Close frees the GPU meshes. Call before the window closes.
func (v *Viewport) Close() {
	v.prims.Unload()
}

// drawGrid draws a grid on the XZ plane with major/minor lines and the X and Z axes.
func drawGrid() {
	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := gridMajor
		if i%gridMajorStep != 0 {
			c = gridMinor
		}
		start.X, start.Y, start.Z = float32(i), 0, -gridExtent
		end.X, end.Y, end.Z = float32(i), 0, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -gridExtent, 0, float32(i)
		end.X, end.Y, end.Z = gridExtent, 0, float32(i)
		rl.DrawLine3D(start, end, c)
	}
	rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, 0), rl.NewVector3(gridExtent, 0, 0), axisX)
	rl.DrawLine3D(rl.NewVector3(0, 0, -gridExtent), rl.NewVector3(0, 0, gridExtent), axisZ)
}
