// Package scene holds the objects imported into the viewer's active collection.
package scene

import (
	"image/color"
	"strings"
)

// Kind is the primitive shape an object is drawn with.
type Kind string

const (
	Cube     Kind = "cube"
	Sphere   Kind = "sphere"
	Cylinder Kind = "cylinder"
	Plane    Kind = "plane"
)

// ParseKind maps a case-insensitive type name onto a Kind.
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case Cube, Sphere, Cylinder, Plane:
		return k, true
	default:
		return "", false
	}
}

// DefaultColor is used for objects that do not set a color.
var DefaultColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// Object is a primitive placed in the scene.
type Object struct {
	Kind     Kind
	Position [3]float32
	Scale    [3]float32
	Color    color.RGBA
	// Source is the asset file the object was loaded from, if any.
	Source string

	name string
}

// NewObject returns a unit-sized object of kind k at the origin.
func NewObject(name string, k Kind) *Object {
	return &Object{
		Kind:  k,
		Scale: [3]float32{1, 1, 1},
		Color: DefaultColor,
		name:  name,
	}
}

func (o *Object) Name() string { return o.name }
