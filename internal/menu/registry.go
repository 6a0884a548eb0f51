package menu

import (
	"errors"
	"fmt"

	"custom-meshes/internal/host"

	"pkt.systems/pslog"
)

type hookEntry struct {
	parent string
	handle host.HookHandle
}

// Registry records everything registered with a host UI so it can be removed again.
type Registry struct {
	ui  host.UI
	log pslog.Logger

	operators []string
	menus     []string
	labels    map[string]string
	hooks     []hookEntry
}

func NewRegistry(ui host.UI, log pslog.Logger) *Registry {
	return &Registry{ui: ui, log: log, labels: map[string]string{}}
}

func (r *Registry) AddOperator(op host.Operator) error {
	if err := r.ui.RegisterOperator(op); err != nil {
		return fmt.Errorf("menu: register operator %s: %w", op.ID(), err)
	}
	r.operators = append(r.operators, op.ID())
	return nil
}

// AddMenu registers m. Registering an id that is already recorded replaces the earlier menu in the host
// and is logged as a warning.
func (r *Registry) AddMenu(m host.Menu) error {
	if err := r.ui.RegisterMenu(m); err != nil {
		return fmt.Errorf("menu: register menu %s: %w", m.ID(), err)
	}
	if prev, ok := r.labels[m.ID()]; ok {
		r.log.Warn("menu label collision", "id", m.ID(), "shadowed", prev, "label", m.Label())
	} else {
		r.menus = append(r.menus, m.ID())
	}
	r.labels[m.ID()] = m.Label()
	return nil
}

// AppendHook appends hook to the parent menu and keeps the handle the host returned for removal.
func (r *Registry) AppendHook(parent string, hook host.MenuHook) error {
	h, err := r.ui.AppendMenuHook(parent, hook)
	if err != nil {
		return fmt.Errorf("menu: append to %s: %w", parent, err)
	}
	r.hooks = append(r.hooks, hookEntry{parent: parent, handle: h})
	return nil
}

// Len reports how many host registrations are recorded.
func (r *Registry) Len() int {
	return len(r.operators) + len(r.menus) + len(r.hooks)
}

// Drain removes every recorded registration: hooks, then menus in registration order, then operators.
// It continues past failures and returns them joined. The registry is empty afterwards.
func (r *Registry) Drain() error {
	var errs []error
	for _, h := range r.hooks {
		if err := r.ui.RemoveMenuHook(h.parent, h.handle); err != nil {
			errs = append(errs, fmt.Errorf("menu: remove hook from %s: %w", h.parent, err))
		}
	}
	for _, id := range r.menus {
		if err := r.ui.UnregisterMenu(id); err != nil {
			errs = append(errs, fmt.Errorf("menu: unregister menu %s: %w", id, err))
		}
	}
	for _, id := range r.operators {
		if err := r.ui.UnregisterOperator(id); err != nil {
			errs = append(errs, fmt.Errorf("menu: unregister operator %s: %w", id, err))
		}
	}
	r.hooks, r.menus, r.operators = nil, nil, nil
	clear(r.labels)
	return errors.Join(errs...)
}
