package main

import (
	"errors"
	"fmt"

	osfs "github.com/hack-pad/hackpadfs/os"
	"github.com/spf13/cobra"

	"custom-meshes/internal/commands"
	"custom-meshes/internal/debug"
	"custom-meshes/internal/engineconfig"
	"custom-meshes/internal/graphics"
	"custom-meshes/internal/menu"
	"custom-meshes/internal/terminal"
	"custom-meshes/internal/ui"
	"custom-meshes/internal/viewport"
)

// viewer is the per-frame state of the window.
type viewer struct {
	rt        *runtime
	engine    *ui.Engine
	panel     *ui.MenuPanel
	inspector *ui.Inspector
	term      *terminal.Terminal
	view      *viewport.Viewport
	stats     *debug.Overlay

	rows  []ui.Row
	nodes []*ui.Node
	// menuVersion changes whenever the menu may have been rebuilt; rows are refreshed when it does.
	menuVersion int
	rowsVersion int
}

func runViewer(cmd *cobra.Command, f *flags) (err error) {
	rt, err := f.start(cmd, false)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, rt.close()) }()

	v := &viewer{
		rt:          rt,
		engine:      ui.New(),
		panel:       ui.NewMenuPanel(menu.AggregatorLabel),
		inspector:   ui.NewInspector(),
		view:        viewport.New(),
		stats:       debug.New(),
		rowsVersion: -1,
	}
	v.stats.ShowFPS = rt.prefs.ShowFPS
	v.stats.Counters = func() []string {
		return []string{
			fmt.Sprintf("Objects: %d", rt.app.Collection.Len()),
			fmt.Sprintf("Categories: %d", len(rt.app.Plugin.Config().Menu)),
		}
	}
	v.registerStats()
	if err := v.loadStylesheet(rt.prefs.Stylesheet); err != nil {
		return err
	}
	v.term = terminal.New(rt.log, func(line string) error {
		v.menuVersion++
		return rt.app.Exec(line)
	})

	log := rt.log.Logger()
	log.Info("viewer started", "categories", len(rt.app.Plugin.Config().Menu), "extension", rt.app.Plugin.Extension())

	graphics.Run(graphics.Window{
		Title:  "meshmenu - " + menu.AggregatorLabel,
		Width:  int32(rt.prefs.WindowWidth),
		Height: int32(rt.prefs.WindowHeight),
	}, v.update, v.draw)
	v.view.Close()

	prefs := rt.prefs
	prefs.GridVisible = rt.app.GridVisible
	prefs.ShowFPS = v.stats.ShowFPS
	return engineconfig.Save(f.prefs, prefs)
}

// loadStylesheet applies the user's stylesheet, or the built-in theme when name is empty.
func (v *viewer) loadStylesheet(name string) error {
	if name == "" {
		sheet, err := ui.ParseCSS(ui.DefaultCSS)
		if err != nil {
			return err
		}
		v.engine.SetStylesheet(sheet)
		return nil
	}
	name, err := absName(name)
	if err != nil {
		return err
	}
	return v.engine.LoadCSS(osfs.NewFS(), name)
}

func (v *viewer) update() {
	v.term.Update()
	v.view.Update()
	v.view.GridVisible = v.rt.app.GridVisible

	if v.rowsVersion != v.menuVersion {
		v.refreshRows()
	}
	v.nodes = v.panel.AppendNodes(v.nodes[:0], true, v.rows)
	v.nodes = v.inspector.AppendNodes(v.nodes, v.rt.prefs.ShowInspector, v.rt.app.Selection())
	v.engine.SetNodes(v.nodes)

	if x, y, ok := graphics.Clicked(); ok && !v.term.IsOpen() {
		v.engine.Click(x, y)
	}
}

func (v *viewer) refreshRows() {
	log := v.rt.log.Logger()
	rows, err := v.rt.app.Rows(func(err error) {
		log.Error("import failed", "error", err)
	})
	if err != nil {
		log.Error("render menu", "error", err)
		rows = []ui.Row{{Text: fmt.Sprintf("menu unavailable: %v", err), Kind: ui.RowHeader}}
	}
	v.rows = rows
	v.rowsVersion = v.menuVersion
}

func (v *viewer) draw() {
	v.view.Draw(v.rt.app.Collection.Primitives())
	w, h := graphics.ScreenSize()
	graphics.DrawBoxes(v.engine.Layout(w, h))
	v.term.Draw()
	v.stats.Draw()
}

// registerStats adds the viewer-only "stats" terminal command.
func (v *viewer) registerStats() {
	fs := commands.NewFlagSet("stats")
	fps := fs.Bool("fps", false, "toggle the FPS counter")
	mem := fs.Bool("mem", false, "toggle the heap counter")
	v.rt.app.Commands.Register("stats", "[--fps] [--mem]", fs, func([]string) error {
		if !*fps && !*mem {
			*fps, *mem = true, true
		}
		if *fps {
			v.stats.ShowFPS = !v.stats.ShowFPS
		}
		if *mem {
			v.stats.ShowMemAlloc = !v.stats.ShowMemAlloc
		}
		v.stats.Invalidate()
		return nil
	})
}
