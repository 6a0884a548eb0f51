package menuconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// Source produces a menu configuration. Every call to Load reads the source again; nothing is cached.
type Source interface {
	Load() (Config, error)
}

// Literal is an in-process configuration, e.g. the add-on's built-in list. Paths may start with "~".
// Home overrides the user's home directory used for that expansion.
type Literal struct {
	Categories []MenuCategory
	Home       string
}

// Load returns a copy of the literal categories with home shorthand expanded.
func (l Literal) Load() (Config, error) {
	cfg := Config{Menu: l.Categories}.Clone()
	for i := range cfg.Menu {
		p, err := expandPath(cfg.Menu[i].Path, l.Home)
		if err != nil {
			return Config{}, err
		}
		cfg.Menu[i].Path = p
	}
	return cfg, nil
}

// File is a structured configuration document. The format is picked from the extension:
// .yaml/.yml for YAML, .hcl for HCL, anything else is read as JSON.
//
// FS defaults to the host filesystem. Names handed to FS are slash-separated and unrooted
// (e.g. "home/me/.config/custom-meshes/menu.json").
type File struct {
	Path string
	Home string
	FS   hackpadfs.FS
}

// Load reads and parses the document. A missing file fails with ErrConfigNotFound; a document that
// cannot be parsed or lacks a required field fails with ErrConfigMalformed.
func (f File) Load() (Config, error) {
	path, err := f.Resolved()
	if err != nil {
		return Config{}, err
	}
	fsys, name, err := f.resolve(path)
	if err != nil {
		return Config{}, err
	}
	data, err := hackpadfs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, hackpadfs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("menuconfig: read %s: %w", path, err)
	}
	doc, err := decode(path, data)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrConfigMalformed, path, err)
	}
	if err := validate.Struct(doc); err != nil {
		return Config{}, malformedFields(path, err)
	}
	return doc.config(f.Home)
}

// Resolved returns the path Load reads, with DefaultPath filled in and "~" expanded.
func (f File) Resolved() (string, error) {
	path := f.Path
	if path == "" {
		path = DefaultPath
	}
	return expandPath(path, f.Home)
}

// resolve maps an OS path onto the filesystem name hackpadfs expects.
func (f File) resolve(path string) (hackpadfs.FS, string, error) {
	if f.FS != nil {
		return f.FS, fsName(filepath.Clean(path)), nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("menuconfig: %w", err)
	}
	return osfs.NewFS(), fsName(abs), nil
}

func fsName(path string) string {
	name := strings.TrimPrefix(filepath.ToSlash(path), "/")
	if name == "" {
		return "."
	}
	return name
}

func expandPath(path, home string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	h, err := resolveHome(home)
	if err != nil {
		return "", fmt.Errorf("menuconfig: home directory: %w", err)
	}
	return ExpandHome(path, h), nil
}

// document mirrors the on-disk shape. Pointers distinguish a missing key from an empty value.
type document struct {
	Menu []categoryDoc `json:"menu" yaml:"menu" hcl:"menu,block" validate:"required,dive"`
}

type categoryDoc struct {
	Label *string   `json:"label" yaml:"label" hcl:"label" validate:"required"`
	Path  *string   `json:"path" yaml:"path" hcl:"path" validate:"required"`
	Files []fileDoc `json:"files" yaml:"files" hcl:"files" validate:"required,dive"`
}

type fileDoc struct {
	Label *string `json:"label" yaml:"label" cty:"label" validate:"required"`
	File  *string `json:"file" yaml:"file" cty:"file" validate:"required"`
}

func (d document) config(home string) (Config, error) {
	cfg := Config{Menu: make([]MenuCategory, 0, len(d.Menu))}
	for _, c := range d.Menu {
		path, err := expandPath(*c.Path, home)
		if err != nil {
			return Config{}, err
		}
		cat := MenuCategory{
			Label:   *c.Label,
			Path:    path,
			Entries: make([]MenuEntry, 0, len(c.Files)),
		}
		for _, fd := range c.Files {
			cat.Entries = append(cat.Entries, MenuEntry{Label: *fd.Label, File: *fd.File})
		}
		cfg.Menu = append(cfg.Menu, cat)
	}
	return cfg, nil
}

func decode(path string, data []byte) (document, error) {
	var doc document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return document{}, err
		}
	case ".hcl":
		file, diags := hclparse.NewParser().ParseHCL(data, path)
		if diags.HasErrors() {
			return document{}, diags
		}
		if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
			return document{}, diags
		}
		// HCL cannot tell zero menu blocks from a missing key; read both as an empty menu like JSON's [].
		if doc.Menu == nil {
			doc.Menu = []categoryDoc{}
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return document{}, err
		}
	}
	return doc, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their document key rather than the Go field name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func malformedFields(path string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %s: %w", ErrConfigMalformed, path, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.TrimPrefix(fe.Namespace(), "document."))
	}
	return fmt.Errorf("%w: %s: missing required field %s", ErrConfigMalformed, path, strings.Join(fields, ", "))
}
