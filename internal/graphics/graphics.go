// Package graphics owns the raylib window and draws laid-out UI boxes.
package graphics

import (
	"custom-meshes/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window describes the window Run opens.
type Window struct {
	Title         string
	Width, Height int32
}

var background = rl.NewColor(30, 32, 36, 255)

// Run opens a resizable window and runs the main loop. Each frame it calls update, then clears the
// screen and calls draw. ESC is left to the caller; close via the window button.
func Run(w Window, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(background)
		draw()
		rl.EndDrawing()
	}
}

// ScreenSize returns the current render size.
func ScreenSize() (int32, int32) {
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
}

// Clicked returns the mouse position if the left button was pressed this frame.
func Clicked() (x, y float32, ok bool) {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return 0, 0, false
	}
	p := rl.GetMousePosition()
	return p.X, p.Y, true
}

// DrawBoxes draws boxes in order: background, border, then text inset by the style's padding.
// rl.Color is color.RGBA, so styles pass straight through.
func DrawBoxes(boxes []ui.Box) {
	for _, b := range boxes {
		r := b.Node.Bounds
		x, y, w, h := int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height)
		if b.Style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, b.Style.Background)
		}
		if b.Style.HasBorder {
			rl.DrawRectangleLines(x, y, w, h, b.Style.Border)
		}
		if b.Node.Text != "" {
			rl.DrawText(b.Node.Text, x+b.Style.Padding, y+b.Style.Padding, b.Style.FontSize, b.Style.Color)
		}
	}
}
