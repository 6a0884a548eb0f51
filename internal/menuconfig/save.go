package menuconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/hack-pad/hackpadfs"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Save for formats it cannot write.
var ErrUnsupportedFormat = errors.New("menuconfig: unsupported format")

// Save writes cfg to the file in the format its extension selects (.yaml/.yml or JSON), creating
// parent directories. Category paths are written as given. HCL documents are read-only.
func (f File) Save(cfg Config) error {
	p, err := f.Resolved()
	if err != nil {
		return err
	}
	data, err := encode(p, cfg)
	if err != nil {
		return err
	}
	fsys, name, err := f.resolve(p)
	if err != nil {
		return err
	}
	if dir := path.Dir(name); dir != "." {
		if err := hackpadfs.MkdirAll(fsys, dir, 0o755); err != nil {
			return fmt.Errorf("menuconfig: save %s: %w", p, err)
		}
	}
	if err := hackpadfs.WriteFullFile(fsys, name, data, 0o644); err != nil {
		return fmt.Errorf("menuconfig: save %s: %w", p, err)
	}
	return nil
}

func encode(p string, cfg Config) ([]byte, error) {
	doc := document{Menu: make([]categoryDoc, 0, len(cfg.Menu))}
	for _, c := range cfg.Menu {
		cd := categoryDoc{Label: &c.Label, Path: &c.Path, Files: make([]fileDoc, 0, len(c.Entries))}
		for _, e := range c.Entries {
			cd.Files = append(cd.Files, fileDoc{Label: &e.Label, File: &e.File})
		}
		doc.Menu = append(doc.Menu, cd)
	}
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml":
		return yaml.Marshal(doc)
	case ".hcl":
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, p)
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}
