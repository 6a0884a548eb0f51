package sandbox

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"custom-meshes/internal/host"
)

type ItemKind int

const (
	MenuItem ItemKind = iota
	OperatorItem
)

// Item is one rendered menu row. Menu items carry the rows of their submenu in Children.
type Item struct {
	Kind  ItemKind
	ID    string
	Label string
	Icon  string
	Props host.Props
	// Missing is set on links to menus that are not registered.
	Missing  bool
	Children []Item
}

// recorder is the host.Layout used while rendering.
type recorder struct {
	items []Item
}

func (r *recorder) Menu(id string) {
	r.items = append(r.items, Item{Kind: MenuItem, ID: id})
}

func (r *recorder) Operator(opID, text, icon string) host.Props {
	props := host.Props{}
	r.items = append(r.items, Item{Kind: OperatorItem, ID: opID, Label: text, Icon: icon, Props: props})
	return props
}

// Render draws the menu id, followed by the hooks appended to it, and expands submenu links
// recursively. A menu with hooks but no registration of its own renders just the hooks.
func (u *UI) Render(ctx *host.Context, id string) (Item, error) {
	m, ok := u.Menu(id)
	if !ok && len(u.menuHooks(id)) == 0 {
		return Item{}, fmt.Errorf("%w: menu %s", host.ErrNotRegistered, id)
	}
	root := Item{Kind: MenuItem, ID: id, Label: id}
	if ok {
		root.Label = m.Label()
	}
	root.Children = u.drawMenu(ctx, id, map[string]bool{id: true})
	return root, nil
}

func (u *UI) drawMenu(ctx *host.Context, id string, path map[string]bool) []Item {
	rec := &recorder{}
	if m, ok := u.Menu(id); ok {
		m.Draw(ctx, rec)
	}
	for _, fn := range u.menuHooks(id) {
		fn(ctx, rec)
	}

	for i := range rec.items {
		it := &rec.items[i]
		switch it.Kind {
		case OperatorItem:
			if it.Label == "" {
				if op, ok := u.Operator(it.ID); ok {
					it.Label = op.Label()
				}
			}
		case MenuItem:
			sub, ok := u.Menu(it.ID)
			if !ok {
				it.Label = it.ID
				it.Missing = true
				continue
			}
			it.Label = sub.Label()
			if path[it.ID] {
				continue
			}
			path[it.ID] = true
			it.Children = u.drawMenu(ctx, it.ID, path)
			delete(path, it.ID)
		}
	}
	return rec.items
}

// Find follows child labels from it and returns the item reached.
func (it Item) Find(labels ...string) (Item, bool) {
	cur := it
	for _, l := range labels {
		var next *Item
		for i := range cur.Children {
			if cur.Children[i].Label == l {
				next = &cur.Children[i]
				break
			}
		}
		if next == nil {
			return Item{}, false
		}
		cur = *next
	}
	return cur, true
}

// Links returns the ids of the submenu links directly below it.
func (it Item) Links() []string {
	var ids []string
	for _, c := range it.Children {
		if c.Kind == MenuItem {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// Operators returns the operator rows directly below it.
func (it Item) Operators() []Item {
	var ops []Item
	for _, c := range it.Children {
		if c.Kind == OperatorItem {
			ops = append(ops, c)
		}
	}
	return ops
}

// Walk calls fn for every item below it, depth first, with the depth starting at 0.
func (it Item) Walk(fn func(depth int, item Item)) {
	var walk func(items []Item, depth int)
	walk = func(items []Item, depth int) {
		for _, c := range items {
			fn(depth, c)
			walk(c.Children, depth+1)
		}
	}
	walk(it.Children, 0)
}

// String renders the tree as indented text, one row per line.
func (it Item) String() string {
	var b strings.Builder
	b.WriteString(it.Label)
	b.WriteByte('\n')
	it.Walk(func(depth int, c Item) {
		b.WriteString(strings.Repeat("  ", depth+1))
		switch {
		case c.Kind == OperatorItem:
			fmt.Fprintf(&b, "[%s] %s", c.Icon, c.Label)
			for _, k := range slices.Sorted(maps.Keys(c.Props)) {
				fmt.Fprintf(&b, " %s=%s", k, c.Props[k])
			}
		case c.Missing:
			fmt.Fprintf(&b, "%s (missing)", c.ID)
		default:
			fmt.Fprintf(&b, "%s >", c.Label)
		}
		b.WriteByte('\n')
	})
	return b.String()
}
