package menu

import (
	"context"
	"errors"
	"fmt"

	"custom-meshes/internal/host"
	"custom-meshes/internal/menuconfig"

	"pkt.systems/pslog"
)

// ErrAlreadyActive is returned by Activate on an active plugin.
var ErrAlreadyActive = errors.New("menu: plugin already active")

type State int

const (
	Inactive State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "inactive"
}

// Info is the metadata a host shows for the plugin.
type Info struct {
	Name           string
	MinHostVersion [3]int
	Category       string
	Description    string
}

// Options configures a Plugin.
type Options struct {
	// Source provides the menu configuration. It is read on every activation.
	Source menuconfig.Source
	// Extension is appended to entry file identifiers. Empty means menuconfig.DefaultExtension.
	Extension string
}

// Plugin owns the menu registrations made while it is active.
type Plugin struct {
	ui   host.UI
	opts Options

	state State
	cfg   menuconfig.Config
	reg   *Registry
}

func New(ui host.UI, opts Options) *Plugin {
	if opts.Source == nil {
		opts.Source = menuconfig.File{}
	}
	return &Plugin{ui: ui, opts: opts}
}

func (p *Plugin) Info() Info {
	return Info{
		Name:           "Addon RPG",
		MinHostVersion: [3]int{4, 0, 0},
		Category:       "Object",
		Description:    "Adds objects from .blend files to the mesh add menu.",
	}
}

func (p *Plugin) State() State { return p.state }

// Config returns a copy of the configuration loaded by the last activation.
func (p *Plugin) Config() menuconfig.Config { return p.cfg.Clone() }

// Extension returns the asset file extension in use.
func (p *Plugin) Extension() string {
	if p.opts.Extension == "" {
		return menuconfig.DefaultExtension
	}
	return p.opts.Extension
}

// Activate loads the configuration and registers the operator, one submenu per category, the aggregator
// menu and its link in the host's add-mesh menu. On any failure nothing stays registered.
func (p *Plugin) Activate(ctx context.Context) error {
	if p.state == Active {
		return ErrAlreadyActive
	}
	log := pslog.Ctx(ctx).With("plugin", p.Info().Name)

	cfg, err := p.opts.Source.Load()
	if err != nil {
		log.Error("load menu configuration", "err", err)
		return err
	}

	reg := NewRegistry(p.ui, log)
	if err := p.register(reg, cfg, log); err != nil {
		if derr := reg.Drain(); derr != nil {
			log.Warn("rollback incomplete", "err", derr)
		}
		return fmt.Errorf("menu: activate: %w", err)
	}

	p.cfg, p.reg, p.state = cfg, reg, Active
	log.Info("plugin activated", "categories", len(cfg.Menu), "registrations", reg.Len())
	return nil
}

func (p *Plugin) register(reg *Registry, cfg menuconfig.Config, log pslog.Logger) error {
	if err := reg.AddOperator(NewImportOperator(log)); err != nil {
		return err
	}
	for _, c := range cfg.Menu {
		if err := reg.AddMenu(NewCategoryMenu(c, p.opts.Extension)); err != nil {
			return err
		}
	}
	if err := reg.AddMenu(NewAggregatorMenu(cfg.Menu)); err != nil {
		return err
	}
	return reg.AppendHook(ParentMenuID, aggregatorHook)
}

// Deactivate removes every registration made by Activate. It is a no-op on an inactive plugin.
// The plugin is inactive afterwards even if some removals failed; those failures are returned.
func (p *Plugin) Deactivate(ctx context.Context) error {
	if p.state == Inactive {
		return nil
	}
	log := pslog.Ctx(ctx).With("plugin", p.Info().Name)
	err := p.reg.Drain()
	p.reg, p.cfg, p.state = nil, menuconfig.Config{}, Inactive
	if err != nil {
		log.Warn("plugin deactivated with errors", "err", err)
		return err
	}
	log.Info("plugin deactivated")
	return nil
}

// Reload deactivates and activates again so configuration edits take effect.
func (p *Plugin) Reload(ctx context.Context) error {
	if err := p.Deactivate(ctx); err != nil {
		return err
	}
	return p.Activate(ctx)
}
