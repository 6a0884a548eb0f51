package menuconfig

import (
	"errors"
	"path"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/require"
)

const testHome = "/home/tester"

func newFS(t *testing.T) hackpadfs.FS {
	t.Helper()
	fsys, err := mem.NewFS()
	require.NoError(t, err)
	return fsys
}

// writeFile stores data at the OS-style path p inside fsys.
func writeFile(t *testing.T, fsys hackpadfs.FS, p, data string) {
	t.Helper()
	name := fsName(p)
	require.NoError(t, hackpadfs.MkdirAll(fsys, path.Dir(name), 0o755))
	require.NoError(t, hackpadfs.WriteFullFile(fsys, name, []byte(data), 0o644))
}

func rpgConfig() Config {
	return Config{Menu: []MenuCategory{{
		Label:   "RPG",
		Path:    filepath.Join(testHome, "models/rpg"),
		Entries: []MenuEntry{{Label: "A", File: "a"}},
	}}}
}

func TestFileLoad_EndToEndJSON(t *testing.T) {
	fsys := newFS(t)
	writeFile(t, fsys, "/home/tester/.config/custom-meshes/menu.json",
		`{"menu":[{"label":"RPG","path":"~/models/rpg","files":[{"label":"A","file":"a"}]}]}`)

	cfg, err := File{Path: DefaultPath, Home: testHome, FS: fsys}.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(rpgConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	cat, ok := cfg.Category("RPG")
	require.True(t, ok)
	entry, ok := cat.Entry("A")
	require.True(t, ok)
	require.Equal(t, filepath.Join(testHome, "models", "rpg", "a.blend"), cat.AssetPath(entry, ""))
}

func TestFileLoad_FormatsAgree(t *testing.T) {
	docs := map[string]string{
		"/cfg/menu.json": `{"menu":[{"label":"RPG","path":"~/models/rpg","files":[{"label":"A","file":"a"}]}]}`,
		"/cfg/menu.yaml": `
menu:
  - label: RPG
    path: ~/models/rpg
    files:
      - label: A
        file: a
`,
		"/cfg/menu.yml": `{menu: [{label: RPG, path: ~/models/rpg, files: [{label: A, file: a}]}]}`,
		"/cfg/menu.hcl": `
menu {
  label = "RPG"
  path  = "~/models/rpg"
  files = [
    { label = "A", file = "a" },
  ]
}
`,
	}
	for p, doc := range docs {
		t.Run(filepath.Ext(p), func(t *testing.T) {
			fsys := newFS(t)
			writeFile(t, fsys, p, doc)
			cfg, err := File{Path: p, Home: testHome, FS: fsys}.Load()
			require.NoError(t, err)
			if diff := cmp.Diff(rpgConfig(), cfg); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFileLoad_EmptyMenu(t *testing.T) {
	docs := map[string]string{
		"/cfg/menu.json": `{"menu":[]}`,
		"/cfg/menu.yaml": "menu: []\n",
		"/cfg/menu.hcl":  "# no categories yet\n",
	}
	for p, doc := range docs {
		t.Run(filepath.Ext(p), func(t *testing.T) {
			fsys := newFS(t)
			writeFile(t, fsys, p, doc)
			cfg, err := File{Path: p, FS: fsys}.Load()
			require.NoError(t, err)
			require.NotNil(t, cfg.Menu)
			require.Empty(t, cfg.Menu)
		})
	}
}

func TestFileLoad_PreservesOrder(t *testing.T) {
	fsys := newFS(t)
	writeFile(t, fsys, "/cfg/menu.json", `{"menu":[
		{"label":"Zeta","path":"/assets/z","files":[{"label":"Z2","file":"z2"},{"label":"Z1","file":"z1"}]},
		{"label":"Alpha","path":"/assets/a","files":[]}
	]}`)

	cfg, err := File{Path: "/cfg/menu.json", FS: fsys}.Load()
	require.NoError(t, err)
	require.Len(t, cfg.Menu, 2)
	require.Equal(t, "Zeta", cfg.Menu[0].Label)
	require.Equal(t, "Alpha", cfg.Menu[1].Label)
	require.Equal(t, []MenuEntry{{Label: "Z2", File: "z2"}, {Label: "Z1", File: "z1"}}, cfg.Menu[0].Entries)
	require.Empty(t, cfg.Menu[1].Entries)
	require.Equal(t, "/assets/a", cfg.Menu[1].Path)
}

func TestFileLoad_NotFound(t *testing.T) {
	fsys := newFS(t)
	_, err := File{Path: "~/missing.json", Home: testHome, FS: fsys}.Load()
	require.ErrorIs(t, err, ErrConfigNotFound)
	require.False(t, errors.Is(err, ErrConfigMalformed))
	require.Contains(t, err.Error(), "/home/tester/missing.json")
}

func TestFileLoad_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		doc   string
		field string
	}{
		{
			name:  "missing files",
			path:  "/cfg/menu.json",
			doc:   `{"menu":[{"label":"RPG","path":"~/models/rpg"}]}`,
			field: "menu[0].files",
		},
		{
			name:  "missing files on second category",
			path:  "/cfg/menu.json",
			doc:   `{"menu":[{"label":"A","path":"/a","files":[]},{"label":"B","path":"/b"}]}`,
			field: "menu[1].files",
		},
		{
			name:  "missing menu",
			path:  "/cfg/menu.json",
			doc:   `{"categories":[]}`,
			field: "menu",
		},
		{
			name:  "missing entry file",
			path:  "/cfg/menu.json",
			doc:   `{"menu":[{"label":"RPG","path":"/r","files":[{"label":"A"}]}]}`,
			field: "menu[0].files[0].file",
		},
		{
			name:  "missing label yaml",
			path:  "/cfg/menu.yaml",
			doc:   "menu:\n  - path: /r\n    files: []\n",
			field: "menu[0].label",
		},
		{
			name: "missing files yaml",
			path: "/cfg/menu.yaml",
			doc:  "menu:\n  - label: RPG\n    path: /r\n",
		},
		{
			name: "empty yaml",
			path: "/cfg/menu.yaml",
			doc:  "",
		},
		{
			name: "missing files hcl",
			path: "/cfg/menu.hcl",
			doc:  "menu {\n  label = \"RPG\"\n  path = \"/r\"\n}\n",
		},
		{
			name: "wrong shape",
			path: "/cfg/menu.json",
			doc:  `{"menu":"RPG"}`,
		},
		{
			name: "not json",
			path: "/cfg/menu.json",
			doc:  `menu = [`,
		},
		{
			name: "null files",
			path: "/cfg/menu.json",
			doc:  `{"menu":[{"label":"RPG","path":"/r","files":null}]}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fsys := newFS(t)
			writeFile(t, fsys, tc.path, tc.doc)
			cfg, err := File{Path: tc.path, FS: fsys}.Load()
			require.ErrorIs(t, err, ErrConfigMalformed)
			require.False(t, errors.Is(err, ErrConfigNotFound))
			require.Empty(t, cfg.Menu, "no partial configuration")
			if tc.field != "" {
				require.Contains(t, err.Error(), tc.field)
			}
		})
	}
}

func TestFileLoad_RereadsSource(t *testing.T) {
	fsys := newFS(t)
	src := File{Path: "/cfg/menu.json", FS: fsys}

	writeFile(t, fsys, "/cfg/menu.json", `{"menu":[{"label":"One","path":"/1","files":[]}]}`)
	first, err := src.Load()
	require.NoError(t, err)

	writeFile(t, fsys, "/cfg/menu.json", `{"menu":[{"label":"Two","path":"/2","files":[]}]}`)
	second, err := src.Load()
	require.NoError(t, err)

	require.Equal(t, "One", first.Menu[0].Label)
	require.Equal(t, "Two", second.Menu[0].Label)
}

func TestFileLoad_DefaultHome(t *testing.T) {
	old := userHomeDir
	userHomeDir = func() (string, error) { return "/home/fallback", nil }
	t.Cleanup(func() { userHomeDir = old })

	fsys := newFS(t)
	writeFile(t, fsys, "/home/fallback/.config/custom-meshes/menu.json",
		`{"menu":[{"label":"RPG","path":"~/models","files":[]}]}`)

	cfg, err := File{FS: fsys}.Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/home/fallback", "models"), cfg.Menu[0].Path)
}

func TestLiteralLoad(t *testing.T) {
	lit := Builtin()
	lit.Home = testHome

	cfg, err := lit.Load()
	require.NoError(t, err)
	want := Config{Menu: []MenuCategory{
		{Label: "RPG", Path: filepath.Join(testHome, "models/rpg"), Entries: []MenuEntry{{"A", "a"}, {"B", "b"}}},
		{Label: "Example", Path: filepath.Join(testHome, "models/pcb"), Entries: []MenuEntry{{"Something", "example"}}},
	}}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	// The literal itself keeps its unexpanded paths and is not aliased by the result.
	cfg.Menu[0].Entries[0].Label = "changed"
	require.Equal(t, "~/models/rpg", lit.Categories[0].Path)
	require.Equal(t, "A", lit.Categories[0].Entries[0].Label)
}

func TestConfigClone(t *testing.T) {
	orig := rpgConfig()
	clone := orig.Clone()
	if diff := cmp.Diff(orig, clone, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("clone mismatch (-want +got):\n%s", diff)
	}
	clone.Menu[0].Entries[0].File = "other"
	clone.Menu[0].Label = "other"
	require.Equal(t, "a", orig.Menu[0].Entries[0].File)
	require.Equal(t, "RPG", orig.Menu[0].Label)
}

func TestExpandHome(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"~", "/home/u"},
		{"~/models/rpg", "/home/u/models/rpg"},
		{"/abs/path", "/abs/path"},
		{"relative/~", "relative/~"},
		{"~other/models", "~other/models"},
	}
	for _, tc := range tests {
		require.Equal(t, filepath.FromSlash(tc.want), ExpandHome(tc.in, "/home/u"), tc.in)
	}
}

func TestAssetPathExtension(t *testing.T) {
	cat := MenuCategory{Label: "X", Path: "/assets"}
	e := MenuEntry{Label: "Crate", File: "crate"}
	require.Equal(t, filepath.Join("/assets", "crate.blend"), cat.AssetPath(e, ""))
	require.Equal(t, filepath.Join("/assets", "crate.yaml"), cat.AssetPath(e, ".yaml"))
}
