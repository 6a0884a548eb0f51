package menuconfig

import (
	"errors"
	"path/filepath"

	"github.com/jinzhu/copier"
)

// DefaultExtension is appended to an entry's file identifier to build the asset path.
const DefaultExtension = ".blend"

// DefaultPath is the structured configuration read when no other path is given. The leading "~" is
// expanded to the user's home directory at load time.
const DefaultPath = "~/.config/custom-meshes/menu.json"

var (
	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("menu configuration not found")
	// ErrConfigMalformed is returned when the configuration cannot be parsed or lacks a required field.
	ErrConfigMalformed = errors.New("menu configuration malformed")
)

// MenuEntry is one importable asset inside a category: the label shown in the menu and the file stem
// (without directory or extension) of the asset file.
type MenuEntry struct {
	Label string
	File  string
}

// MenuCategory is a named group of asset files shown as one submenu. Path is the directory holding the
// asset files; Entries are kept in display order.
type MenuCategory struct {
	Label   string
	Path    string
	Entries []MenuEntry
}

// AssetPath returns the absolute asset path for e: Path joined with e.File plus ext.
// An empty ext means DefaultExtension.
func (c MenuCategory) AssetPath(e MenuEntry, ext string) string {
	if ext == "" {
		ext = DefaultExtension
	}
	return filepath.Join(c.Path, e.File+ext)
}

// Entry returns the first entry whose label equals label.
func (c MenuCategory) Entry(label string) (MenuEntry, bool) {
	for _, e := range c.Entries {
		if e.Label == label {
			return e, true
		}
	}
	return MenuEntry{}, false
}

// Config is the ordered list of categories making up the menu.
type Config struct {
	Menu []MenuCategory
}

// Category returns the first category whose label equals label.
func (c Config) Category(label string) (MenuCategory, bool) {
	for _, cat := range c.Menu {
		if cat.Label == label {
			return cat, true
		}
	}
	return MenuCategory{}, false
}

// Clone returns a deep copy so callers can hand out the configuration without sharing slices.
func (c Config) Clone() Config {
	var out Config
	if err := copier.CopyWithOption(&out, &c, copier.Option{DeepCopy: true}); err != nil {
		// Both sides have the same type; copier only fails on kind mismatches.
		panic("menuconfig: clone: " + err.Error())
	}
	return out
}
