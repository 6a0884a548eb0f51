package scene

import (
	"errors"
	"fmt"
	"slices"

	"custom-meshes/internal/host"
)

// ErrAlreadyLinked is returned when linking an object that is already in the collection.
var ErrAlreadyLinked = errors.New("scene: object already in collection")

// ErrNotLinked is returned when unlinking an object that is not in the collection.
var ErrNotLinked = errors.New("scene: object not in collection")

// Collection is an ordered set of linked objects. Linking a *Object whose name is taken renames it with
// a numeric suffix (Crate, Crate.001, Crate.002).
type Collection struct {
	name    string
	objects []host.Object
	names   map[string]bool
}

func NewCollection(name string) *Collection {
	return &Collection{name: name, names: map[string]bool{}}
}

func (c *Collection) Name() string { return c.name }

func (c *Collection) Link(obj host.Object) error {
	if obj == nil {
		return errors.New("scene: link nil object")
	}
	if slices.Contains(c.objects, obj) {
		return fmt.Errorf("%w: %s", ErrAlreadyLinked, obj.Name())
	}
	if o, ok := obj.(*Object); ok {
		o.name = c.uniqueName(o.name)
	}
	c.names[obj.Name()] = true
	c.objects = append(c.objects, obj)
	return nil
}

// Unlink removes obj and frees its name. The object keeps any suffix Link gave it.
func (c *Collection) Unlink(obj host.Object) error {
	i := slices.Index(c.objects, obj)
	if i < 0 {
		name := "<nil>"
		if obj != nil {
			name = obj.Name()
		}
		return fmt.Errorf("%w: %s", ErrNotLinked, name)
	}
	c.objects = slices.Delete(c.objects, i, i+1)
	delete(c.names, obj.Name())
	return nil
}

func (c *Collection) uniqueName(name string) string {
	if !c.names[name] {
		return name
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s.%03d", name, i)
		if !c.names[candidate] {
			return candidate
		}
	}
}

// Objects returns the linked objects in link order.
func (c *Collection) Objects() []host.Object {
	return slices.Clone(c.objects)
}

// Primitives returns the linked objects that can be drawn.
func (c *Collection) Primitives() []*Object {
	out := make([]*Object, 0, len(c.objects))
	for _, obj := range c.objects {
		if o, ok := obj.(*Object); ok {
			out = append(out, o)
		}
	}
	return out
}

func (c *Collection) Len() int { return len(c.objects) }

// Clear unlinks every object.
func (c *Collection) Clear() {
	c.objects = nil
	clear(c.names)
}
