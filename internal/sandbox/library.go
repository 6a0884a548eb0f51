package sandbox

import (
	"fmt"
	"path/filepath"
	"strings"

	"custom-meshes/internal/host"
	"custom-meshes/internal/scene"
	"custom-meshes/internal/ui"

	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
	"gopkg.in/yaml.v3"
	"pkt.systems/pslog"
)

// bundle is the asset file format:
//
//	objects:
//	  - name: Crate
//	    type: cube
//	    position: [0, 0.5, 0]
//	    scale: [1, 1, 1]
//	    color: "#a0522d"
type bundle struct {
	Objects []objectDoc `yaml:"objects"`
}

type objectDoc struct {
	Name     string      `yaml:"name"`
	Type     string      `yaml:"type"`
	Position [3]float32  `yaml:"position"`
	Scale    *[3]float32 `yaml:"scale"`
	Color    string      `yaml:"color"`
}

// Library is a host.Library reading YAML object bundles. Objects of an unknown type load as nil
// entries, the way a host returns empty slots for data it cannot materialize.
type Library struct {
	fs  hackpadfs.FS
	log pslog.Logger
}

// NewLibrary reads bundles from fsys, or from the host filesystem when fsys is nil.
func NewLibrary(fsys hackpadfs.FS, log pslog.Logger) *Library {
	return &Library{fs: fsys, log: log}
}

func (l *Library) LoadObjects(path string) ([]host.Object, error) {
	fsys, name, err := l.resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := hackpadfs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("sandbox: load %s: %w", path, err)
	}
	var b bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("sandbox: decode %s: %w", path, err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	objects := make([]host.Object, 0, len(b.Objects))
	for i, d := range b.Objects {
		kind, ok := scene.ParseKind(d.Type)
		if !ok {
			l.log.Warn("unknown object type", "path", path, "index", i, "type", d.Type)
			objects = append(objects, nil)
			continue
		}
		name := d.Name
		if name == "" {
			name = stem
		}
		obj := scene.NewObject(name, kind)
		obj.Position = d.Position
		if d.Scale != nil {
			obj.Scale = *d.Scale
		}
		if d.Color != "" {
			c, ok := ui.ParseHexColor(d.Color)
			if !ok {
				return nil, fmt.Errorf("sandbox: decode %s: object %d: bad color %q", path, i, d.Color)
			}
			obj.Color = c
		}
		obj.Source = path
		objects = append(objects, obj)
	}
	return objects, nil
}

func (l *Library) resolve(path string) (hackpadfs.FS, string, error) {
	if l.fs != nil {
		return l.fs, fsName(filepath.Clean(path)), nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("sandbox: %w", err)
	}
	return osfs.NewFS(), fsName(abs), nil
}

// fsName turns an OS path into the unrooted slash path hackpadfs expects.
func fsName(path string) string {
	name := strings.TrimPrefix(filepath.ToSlash(path), "/")
	if name == "" {
		return "."
	}
	return name
}
