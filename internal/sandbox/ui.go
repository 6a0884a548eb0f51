// Package sandbox is an in-process host: a menu/operator registry, an asset library reading YAML object
// bundles and the default "add mesh" menu, enough to drive a plugin outside a real 3D application.
package sandbox

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"custom-meshes/internal/host"

	"pkt.systems/pslog"
)

type hook struct {
	handle host.HookHandle
	fn     host.MenuHook
}

// UI is an in-memory host.UI. Registering an id that already exists replaces the earlier entry.
type UI struct {
	mu        sync.Mutex
	log       pslog.Logger
	operators map[string]host.Operator
	menus     map[string]host.Menu
	hooks     map[string][]hook
	next      host.HookHandle
}

// NewUI returns a registry holding only the host's own menus and operators (see RegisterBuiltins).
func NewUI(log pslog.Logger) *UI {
	u := &UI{
		log:       log,
		operators: map[string]host.Operator{},
		menus:     map[string]host.Menu{},
		hooks:     map[string][]hook{},
	}
	registerBuiltins(u)
	return u
}

func (u *UI) RegisterOperator(op host.Operator) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.operators[op.ID()]; ok {
		u.log.Debug("operator replaced", "id", op.ID())
	}
	u.operators[op.ID()] = op
	return nil
}

func (u *UI) UnregisterOperator(id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.operators[id]; !ok {
		return fmt.Errorf("%w: operator %s", host.ErrNotRegistered, id)
	}
	delete(u.operators, id)
	return nil
}

func (u *UI) RegisterMenu(m host.Menu) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if prev, ok := u.menus[m.ID()]; ok {
		u.log.Debug("menu replaced", "id", m.ID(), "previous", prev.Label(), "label", m.Label())
	}
	u.menus[m.ID()] = m
	return nil
}

func (u *UI) UnregisterMenu(id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.menus[id]; !ok {
		return fmt.Errorf("%w: menu %s", host.ErrNotRegistered, id)
	}
	delete(u.menus, id)
	return nil
}

// AppendMenuHook adds fn to the end of parent. The parent does not have to be registered yet.
func (u *UI) AppendMenuHook(parent string, fn host.MenuHook) (host.HookHandle, error) {
	if fn == nil {
		return 0, fmt.Errorf("sandbox: append to %s: nil hook", parent)
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.next++
	u.hooks[parent] = append(u.hooks[parent], hook{handle: u.next, fn: fn})
	return u.next, nil
}

func (u *UI) RemoveMenuHook(parent string, handle host.HookHandle) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	hooks := u.hooks[parent]
	i := slices.IndexFunc(hooks, func(h hook) bool { return h.handle == handle })
	if i < 0 {
		return fmt.Errorf("%w: hook %d on %s", host.ErrNotRegistered, handle, parent)
	}
	hooks = slices.Delete(hooks, i, i+1)
	if len(hooks) == 0 {
		delete(u.hooks, parent)
	} else {
		u.hooks[parent] = hooks
	}
	return nil
}

// Snapshot lists what is registered: sorted operator and menu ids, and hook counts per parent menu.
type Snapshot struct {
	Operators []string
	Menus     []string
	Hooks     map[string]int
}

func (u *UI) Snapshot() Snapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	s := Snapshot{
		Operators: slices.Sorted(maps.Keys(u.operators)),
		Menus:     slices.Sorted(maps.Keys(u.menus)),
		Hooks:     make(map[string]int, len(u.hooks)),
	}
	for parent, hooks := range u.hooks {
		s.Hooks[parent] = len(hooks)
	}
	return s
}

// Menu returns the registered menu with the given id.
func (u *UI) Menu(id string) (host.Menu, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	m, ok := u.menus[id]
	return m, ok
}

// Operator returns the registered operator with the given id.
func (u *UI) Operator(id string) (host.Operator, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	op, ok := u.operators[id]
	return op, ok
}

func (u *UI) menuHooks(id string) []host.MenuHook {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]host.MenuHook, 0, len(u.hooks[id]))
	for _, h := range u.hooks[id] {
		out = append(out, h.fn)
	}
	return out
}

// Invoke runs the operator opID with a copy of props.
func (u *UI) Invoke(ctx *host.Context, opID string, props host.Props) (host.Result, error) {
	op, ok := u.Operator(opID)
	if !ok {
		return host.Cancelled, fmt.Errorf("%w: operator %s", host.ErrNotRegistered, opID)
	}
	p := maps.Clone(props)
	if p == nil {
		p = host.Props{}
	}
	return op.Execute(ctx, p)
}
