package menuconfig

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/require"
)

func TestFileSave_LoadsBack(t *testing.T) {
	want := Config{Menu: []MenuCategory{
		{Label: "RPG", Path: "/assets/rpg", Entries: []MenuEntry{{Label: "Crate", File: "crate"}, {Label: "Barrel", File: "barrel"}}},
		{Label: "Shapes", Path: "/assets/shapes", Entries: []MenuEntry{{Label: "Ball", File: "ball"}}},
	}}
	for _, name := range []string{"/cfg/menu.json", "/cfg/menu.yaml", "/cfg/nested/menu.yml"} {
		t.Run(name, func(t *testing.T) {
			fsys, err := mem.NewFS()
			require.NoError(t, err)
			f := File{Path: name, FS: fsys}
			require.NoError(t, f.Save(want))

			got, err := f.Load()
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFileSave_KeepsHomeShorthand(t *testing.T) {
	fsys, err := mem.NewFS()
	require.NoError(t, err)
	f := File{Path: "~/menu.json", Home: "/home/tester", FS: fsys}
	require.NoError(t, f.Save(Config{Menu: Builtin().Categories[:1]}))

	data, err := hackpadfs.ReadFile(fsys, "home/tester/menu.json")
	require.NoError(t, err)
	require.Contains(t, string(data), `"path": "~/models/rpg"`)
}

func TestFileSave_HCLUnsupported(t *testing.T) {
	fsys, err := mem.NewFS()
	require.NoError(t, err)
	err = File{Path: "/menu.hcl", FS: fsys}.Save(Config{Menu: Builtin().Categories})
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
