package engineconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	p, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), p)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())
	want := Default()
	want.GridVisible = false
	want.ShowFPS = true
	want.MenuConfig = "/tmp/menu.json"
	want.Stylesheet = "assets/ui/menu.css"

	require.NoError(t, Save("", want))
	_, err := os.Stat(ViewerConfigPath)
	require.NoError(t, err)

	got, err := Load("")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MESHMENU_WINDOW_WIDTH=640\n"), 0o644))
	t.Setenv("MESHMENU_GRID_VISIBLE", "false")
	t.Cleanup(func() { _ = os.Unsetenv("MESHMENU_WINDOW_WIDTH") })

	p, err := Load("")
	require.NoError(t, err)
	require.False(t, p.GridVisible)
	require.Equal(t, 640, p.WindowWidth)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid_visible: [\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}
