// Package host describes the parts of a 3D content-creation application that the custom meshes plugin
// talks to: the asset library, the active scene collection and the menu/operator registry.
package host

import "errors"

// ErrNotRegistered is returned when unregistering an id or hook the UI does not know.
var ErrNotRegistered = errors.New("host: not registered")

// Object is a scene object handed out by a Library. The plugin never looks inside it.
type Object interface {
	Name() string
}

// Library loads objects out of external asset files.
type Library interface {
	// LoadObjects returns every object stored in the file at path. Entries may be nil when the host
	// could not materialize an object.
	LoadObjects(path string) ([]Object, error)
}

// Collection is the scene collection new objects are linked into.
type Collection interface {
	Link(obj Object) error
	Unlink(obj Object) error
}

// Context carries the host state an operator or menu draw call may touch.
type Context struct {
	Library    Library
	Collection Collection
}

// Props are the named properties set on an operator button.
type Props map[string]string

// Layout receives the rows a menu draws.
type Layout interface {
	// Menu adds a link to the submenu with the given id.
	Menu(id string)
	// Operator adds a button that runs the operator opID. The returned Props are attached to the button.
	Operator(opID, text, icon string) Props
}

// Result is the outcome of running an operator.
type Result int

const (
	Finished Result = iota
	Cancelled
)

func (r Result) String() string {
	switch r {
	case Finished:
		return "FINISHED"
	case Cancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// Menu is a registrable menu node.
type Menu interface {
	ID() string
	Label() string
	Draw(ctx *Context, layout Layout)
}

// Operator is a registrable action.
type Operator interface {
	ID() string
	Label() string
	Execute(ctx *Context, props Props) (Result, error)
}

// MenuHook draws extra rows at the end of an existing menu.
type MenuHook func(ctx *Context, layout Layout)

// HookHandle identifies an appended hook. It is the only way to remove it again.
type HookHandle uint64

// UI is the host's registry of operators, menus and menu hooks.
type UI interface {
	RegisterOperator(op Operator) error
	UnregisterOperator(id string) error
	RegisterMenu(m Menu) error
	UnregisterMenu(id string) error
	AppendMenuHook(parent string, hook MenuHook) (HookHandle, error)
	RemoveMenuHook(parent string, handle HookHandle) error
}
