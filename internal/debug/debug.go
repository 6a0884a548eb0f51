// Package debug draws the viewer's frame statistics overlay.
package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 18
	padding    = 12
	lineHeight = fontSize + 4
	// Text is refreshed every updateInterval frames to limit allocations.
	updateInterval = 30
)

var textColor = rl.NewColor(120, 220, 120, 255)

// Overlay shows FPS, heap use and caller-supplied counters at the bottom-right. All lines are off by
// default.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool
	// Counters, when set, returns extra "name: value" lines (e.g. linked objects).
	Counters func() []string

	frameCount uint32
	lines      []string
	memStats   runtime.MemStats
}

// New returns an overlay with everything hidden.
func New() *Overlay {
	return &Overlay{}
}

// Visible reports whether Draw has anything to show.
func (o *Overlay) Visible() bool {
	return o.ShowFPS || o.ShowMemAlloc || o.Counters != nil
}

func (o *Overlay) refresh() {
	o.lines = o.lines[:0]
	if o.ShowFPS {
		o.lines = append(o.lines, fmt.Sprintf("FPS: %d", rl.GetFPS()))
	}
	if o.ShowMemAlloc {
		runtime.ReadMemStats(&o.memStats)
		o.lines = append(o.lines, fmt.Sprintf("Mem: %.2f MiB", float64(o.memStats.Alloc)/(1024*1024)))
	}
	if o.Counters != nil {
		o.lines = append(o.lines, o.Counters()...)
	}
}

// Draw renders the enabled lines. Call last in the draw loop.
func (o *Overlay) Draw() {
	if !o.Visible() {
		return
	}
	if o.frameCount%updateInterval == 0 || len(o.lines) == 0 {
		o.refresh()
	}
	o.frameCount++

	screenW := int32(rl.GetScreenWidth())
	y := int32(rl.GetScreenHeight()) - padding - int32(len(o.lines))*lineHeight
	for _, text := range o.lines {
		x := screenW - rl.MeasureText(text, fontSize) - padding
		rl.DrawText(text, x, y, fontSize, textColor)
		y += lineHeight
	}
}

// Invalidate forces the next Draw to rebuild its lines.
func (o *Overlay) Invalidate() {
	o.frameCount = 0
}
