// Package app wires the custom meshes plugin to the sandbox host and exposes the terminal commands
// shared by the CLI and the viewer.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"custom-meshes/internal/commands"
	"custom-meshes/internal/host"
	"custom-meshes/internal/menu"
	"custom-meshes/internal/menuconfig"
	"custom-meshes/internal/sandbox"
	"custom-meshes/internal/scene"
	"custom-meshes/internal/ui"

	"github.com/hack-pad/hackpadfs"
	"pkt.systems/pslog"
)

// ErrEntryNotFound is returned by Add when the menu has no such category or entry.
var ErrEntryNotFound = errors.New("app: menu entry not found")

// Options configures an App.
type Options struct {
	Source    menuconfig.Source
	Extension string
	// AssetFS is read by the asset library. Nil means the host filesystem.
	AssetFS hackpadfs.FS
	// Print receives command output. Nil means the logger at info level.
	Print func(line string)
}

// App is a sandbox host with the plugin installed.
type App struct {
	UI         *sandbox.UI
	Library    *sandbox.Library
	Collection *scene.Collection
	Plugin     *menu.Plugin
	Commands   *commands.Registry

	// GridVisible is toggled by the grid command; the viewer reads it every frame.
	GridVisible bool

	ctx   context.Context
	hctx  *host.Context
	print func(string)
}

// New builds the host and plugin. Nothing is registered until Start.
func New(ctx context.Context, opts Options) *App {
	log := pslog.Ctx(ctx)
	a := &App{
		UI:          sandbox.NewUI(log),
		Library:     sandbox.NewLibrary(opts.AssetFS, log),
		Collection:  scene.NewCollection("Collection"),
		Commands:    commands.NewRegistry(),
		GridVisible: true,
		ctx:         ctx,
		print:       opts.Print,
	}
	if a.print == nil {
		a.print = func(line string) { log.Info(line) }
	}
	a.Plugin = menu.New(a.UI, menu.Options{Source: opts.Source, Extension: opts.Extension})
	a.hctx = &host.Context{Library: a.Library, Collection: a.Collection}
	a.registerCommands()
	return a
}

// Start activates the plugin.
func (a *App) Start() error {
	return a.Plugin.Activate(a.ctx)
}

// Stop deactivates the plugin.
func (a *App) Stop() error {
	return a.Plugin.Deactivate(a.ctx)
}

// HostContext is the context operators run with.
func (a *App) HostContext() *host.Context {
	return a.hctx
}

// Menu renders the host's add-mesh menu, including the plugin's submenus.
func (a *App) Menu() (sandbox.Item, error) {
	return a.UI.Render(a.hctx, menu.ParentMenuID)
}

// Add imports the entry labelled entry from the category labelled category through the rendered menu,
// the same path a click takes.
func (a *App) Add(category, entry string) (host.Result, error) {
	root, err := a.Menu()
	if err != nil {
		return host.Cancelled, err
	}
	leaf, ok := root.Find(menu.AggregatorLabel, category, entry)
	if !ok || leaf.Kind != sandbox.OperatorItem {
		return host.Cancelled, fmt.Errorf("%w: %s / %s", ErrEntryNotFound, category, entry)
	}
	return a.Invoke(leaf)
}

// Invoke runs the operator of a rendered menu row.
func (a *App) Invoke(item sandbox.Item) (host.Result, error) {
	before := a.Collection.Len()
	res, err := a.UI.Invoke(a.hctx, item.ID, item.Props)
	if err != nil {
		return res, err
	}
	a.print(fmt.Sprintf("%s: %s, linked %d object(s)", item.Label, res, a.Collection.Len()-before))
	return res, nil
}

// Rows flattens the rendered menu into panel rows. Clicking a button row invokes its operator;
// failures go to onError.
func (a *App) Rows(onError func(error)) ([]ui.Row, error) {
	root, err := a.Menu()
	if err != nil {
		return nil, err
	}
	rows := []ui.Row{{Text: root.Label, Kind: ui.RowHeader}}
	root.Walk(func(depth int, it sandbox.Item) {
		row := ui.Row{Text: it.Label, Depth: depth}
		switch {
		case it.Kind == sandbox.OperatorItem:
			row.Kind = ui.RowButton
			row.OnClick = func() {
				if _, err := a.Invoke(it); err != nil && onError != nil {
					onError(err)
				}
			}
		case it.Missing:
			row.Kind = ui.RowHeader
		default:
			row.Kind = ui.RowSubmenu
		}
		rows = append(rows, row)
	})
	return rows, nil
}

// Selection describes the most recently linked primitive for the inspector.
func (a *App) Selection() ui.Selection {
	sel := ui.Selection{Linked: a.Collection.Len()}
	prims := a.Collection.Primitives()
	if len(prims) == 0 {
		return sel
	}
	last := prims[len(prims)-1]
	sel.Name = last.Name()
	sel.Kind = string(last.Kind)
	sel.Position = last.Position
	sel.Scale = last.Scale
	sel.Source = last.Source
	return sel
}

// Exec runs a terminal line ("cmd add RPG A"). Lines without the command prefix are rejected.
func (a *App) Exec(line string) error {
	args, ok := commands.Parse(line)
	if !ok {
		return fmt.Errorf("not a command: %q (try \"cmd help\")", line)
	}
	return a.Commands.Execute(args)
}

func (a *App) registerCommands() {
	r := a.Commands

	r.Register("help", "", nil, func([]string) error {
		for _, l := range r.Help() {
			a.print("cmd " + l)
		}
		return nil
	})

	r.Register("menu", "", nil, func([]string) error {
		root, err := a.Menu()
		if err != nil {
			return err
		}
		for _, l := range strings.Split(strings.TrimRight(root.String(), "\n"), "\n") {
			a.print(l)
		}
		return nil
	})

	r.Register("add", "<category> <entry>", nil, func(args []string) error {
		if len(args) != 2 {
			return errors.New("usage: cmd add <category> <entry>")
		}
		_, err := a.Add(args[0], args[1])
		return err
	})

	r.Register("objects", "", nil, func([]string) error {
		objs := a.Collection.Objects()
		if len(objs) == 0 {
			a.print("no objects linked")
		}
		for _, o := range objs {
			if p, ok := o.(*scene.Object); ok {
				a.print(fmt.Sprintf("%s (%s) at %.2f, %.2f, %.2f", p.Name(), p.Kind, p.Position[0], p.Position[1], p.Position[2]))
				continue
			}
			a.print(o.Name())
		}
		return nil
	})

	r.Register("clear", "", nil, func([]string) error {
		n := a.Collection.Len()
		a.Collection.Clear()
		a.print(fmt.Sprintf("unlinked %d object(s)", n))
		return nil
	})

	r.Register("reload", "", nil, func([]string) error {
		if err := a.Plugin.Reload(a.ctx); err != nil {
			return err
		}
		a.print(fmt.Sprintf("menu reloaded: %d categories", len(a.Plugin.Config().Menu)))
		return nil
	})

	gridFlags := commands.NewFlagSet("grid")
	show := gridFlags.Bool("show", false, "show the grid")
	hide := gridFlags.Bool("hide", false, "hide the grid")
	r.Register("grid", "--show|--hide", gridFlags, func([]string) error {
		switch {
		case *show && *hide:
			return errors.New("grid: --show and --hide are exclusive")
		case *show:
			a.GridVisible = true
		case *hide:
			a.GridVisible = false
		default:
			a.GridVisible = !a.GridVisible
		}
		return nil
	})
}
