package main

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
	"github.com/spf13/cobra"

	"custom-meshes/internal/engineconfig"
	"custom-meshes/internal/menuconfig"
)

type demoCategory struct {
	label, dir string
	entries    []demoEntry
}

type demoEntry struct {
	label, file, bundle string
}

var demo = []demoCategory{
	{label: "RPG", dir: "rpg", entries: []demoEntry{
		{label: "Crate", file: "crate", bundle: `objects:
  - name: Crate
    type: cube
    position: [0, 0.5, 0]
    color: "#a0522d"
  - name: Lid
    type: plane
    position: [0, 1.01, 0]
    color: "#8b4513"
`},
		{label: "Barrel", file: "barrel", bundle: `objects:
  - name: Barrel
    type: cylinder
    position: [2, 0.6, 0]
    scale: [0.8, 1.2, 0.8]
    color: "#6b4226"
`},
	}},
	{label: "Shapes", dir: "shapes", entries: []demoEntry{
		{label: "Ball", file: "ball", bundle: `objects:
  - type: sphere
    position: [-2, 0.5, 0]
    color: "#4682b4"
`},
		{label: "Tower", file: "tower", bundle: `objects:
  - name: Base
    type: cube
    position: [0, 0.5, -3]
    scale: [2, 1, 2]
  - name: Top
    type: cube
    position: [0, 1.5, -3]
    color: "#c0c0c0"
  - name: Roof
    type: sphere
    position: [0, 2.5, -3]
    color: "#b22222"
`},
	}},
}

func newInitCmd(f *flags) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write demo asset bundles under dir (default ./assets) and a menu configuration for them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "assets"
			if len(args) == 1 {
				dir = args[0]
			}
			prefs, err := engineconfig.Load(f.prefs)
			if err != nil {
				return err
			}
			ext := prefs.AssetExt
			if f.extension != "" {
				ext = f.extension
			}
			return writeDemo(cmd, dir, ext, f.configPath(prefs), force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing menu configuration")
	return cmd
}

func writeDemo(cmd *cobra.Command, dir, ext, configPath string, force bool) error {
	root, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	fsys := osfs.NewFS()
	cfgFile := menuconfig.File{Path: configPath}
	resolved, err := cfgFile.Resolved()
	if err != nil {
		return err
	}
	cfgName, err := absName(resolved)
	if err != nil {
		return err
	}
	if _, err := hackpadfs.Stat(fsys, cfgName); err == nil && !force {
		return fmt.Errorf("init: %s already exists (use --force to overwrite)", configPath)
	} else if err != nil && !errors.Is(err, hackpadfs.ErrNotExist) {
		return fmt.Errorf("init: %w", err)
	}

	var cfg menuconfig.Config
	for _, c := range demo {
		catDir := filepath.Join(root, c.dir)
		cat := menuconfig.MenuCategory{Label: c.label, Path: catDir}
		for _, e := range c.entries {
			name, err := absName(cat.AssetPath(menuconfig.MenuEntry{File: e.file}, ext))
			if err != nil {
				return err
			}
			if err := hackpadfs.MkdirAll(fsys, path.Dir(name), 0o755); err != nil {
				return fmt.Errorf("init: %w", err)
			}
			if err := hackpadfs.WriteFullFile(fsys, name, []byte(e.bundle), 0o644); err != nil {
				return fmt.Errorf("init: %w", err)
			}
			cat.Entries = append(cat.Entries, menuconfig.MenuEntry{Label: e.label, File: e.file})
		}
		cfg.Menu = append(cfg.Menu, cat)
	}
	if err := cfgFile.Save(cfg); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d categories under %s\nmenu configuration: %s\n", len(cfg.Menu), root, resolved)
	return err
}

// absName maps an OS path onto the unrooted name the hackpadfs os filesystem expects.
func absName(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(filepath.ToSlash(abs), "/"), nil
}
