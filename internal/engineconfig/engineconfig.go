package engineconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ViewerConfigPath is the viewer preferences file, relative to the process working directory.
const ViewerConfigPath = "config/viewer.yaml"

// EnvPrefix is prepended to environment overrides, e.g. MESHMENU_GRID_VISIBLE=false.
const EnvPrefix = "MESHMENU"

// ViewerPrefs holds viewer-only preferences (overlays, grid, window, stylesheet). Persisted across runs.
// The menu configuration itself is separate and read by the plugin.
type ViewerPrefs struct {
	ShowFPS       bool   `mapstructure:"show_fps"`
	GridVisible   bool   `mapstructure:"grid_visible"`
	ShowInspector bool   `mapstructure:"show_inspector"`
	WindowWidth   int    `mapstructure:"window_width"`
	WindowHeight  int    `mapstructure:"window_height"`
	Stylesheet    string `mapstructure:"stylesheet"`
	MenuConfig    string `mapstructure:"menu_config"`
	AssetExt      string `mapstructure:"asset_extension"`
	LogLevel      string `mapstructure:"log_level"`
}

// Default returns default viewer preferences (grid and inspector on, 1280x720 window).
func Default() ViewerPrefs {
	return ViewerPrefs{
		ShowFPS:       false,
		GridVisible:   true,
		ShowInspector: true,
		WindowWidth:   1280,
		WindowHeight:  720,
		AssetExt:      ".yaml",
		LogLevel:      "info",
	}
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	d := Default()
	v.SetDefault("show_fps", d.ShowFPS)
	v.SetDefault("grid_visible", d.GridVisible)
	v.SetDefault("show_inspector", d.ShowInspector)
	v.SetDefault("window_width", d.WindowWidth)
	v.SetDefault("window_height", d.WindowHeight)
	v.SetDefault("stylesheet", d.Stylesheet)
	v.SetDefault("menu_config", d.MenuConfig)
	v.SetDefault("asset_extension", d.AssetExt)
	v.SetDefault("log_level", d.LogLevel)
	return v
}

// Load reads preferences from path (ViewerConfigPath when empty), applying a .env file in the working
// directory and MESHMENU_* environment overrides. A missing file yields the defaults plus overrides.
func Load(path string) (ViewerPrefs, error) {
	if path == "" {
		path = ViewerConfigPath
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Default(), fmt.Errorf("engineconfig: .env: %w", err)
	}
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return Default(), fmt.Errorf("engineconfig: read %s: %w", path, err)
	}
	var p ViewerPrefs
	if err := v.Unmarshal(&p); err != nil {
		return Default(), fmt.Errorf("engineconfig: decode %s: %w", path, err)
	}
	return p, nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, os.ErrNotExist)
}

// Save writes preferences to path (ViewerConfigPath when empty), creating the directory if needed.
func Save(path string, p ViewerPrefs) error {
	if path == "" {
		path = ViewerConfigPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	v := viper.New()
	v.Set("show_fps", p.ShowFPS)
	v.Set("grid_visible", p.GridVisible)
	v.Set("show_inspector", p.ShowInspector)
	v.Set("window_width", p.WindowWidth)
	v.Set("window_height", p.WindowHeight)
	v.Set("stylesheet", p.Stylesheet)
	v.Set("menu_config", p.MenuConfig)
	v.Set("asset_extension", p.AssetExt)
	v.Set("log_level", p.LogLevel)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("engineconfig: write %s: %w", path, err)
	}
	return nil
}
