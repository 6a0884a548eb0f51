package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"custom-meshes/internal/app"
	"custom-meshes/internal/engineconfig"
	"custom-meshes/internal/logger"
	"custom-meshes/internal/menuconfig"
)

// flags are shared by every subcommand.
type flags struct {
	config    string
	builtin   bool
	extension string
	logFile   string
	logLevel  string
	prefs     string
}

func (f *flags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.config, "config", "c", "", "menu configuration file, .json, .yaml or .hcl (default "+menuconfig.DefaultPath+")")
	pf.BoolVar(&f.builtin, "builtin", false, "use the built-in menu list instead of a configuration file")
	pf.StringVar(&f.extension, "extension", "", "asset file extension; defaults to the viewer preferences' asset_extension ("+
		engineconfig.Default().AssetExt+"), which replaces the plugin default "+menuconfig.DefaultExtension+" for every command")
	pf.StringVar(&f.logFile, "log-file", "", "append log entries to this file")
	pf.StringVar(&f.logLevel, "log-level", "", "trace, debug, info, warn or error (default from viewer preferences)")
	pf.StringVar(&f.prefs, "prefs", engineconfig.ViewerConfigPath, "viewer preferences file")
}

// configPath is the menu configuration file the flags and preferences select.
func (f *flags) configPath(prefs engineconfig.ViewerPrefs) string {
	if f.config != "" {
		return f.config
	}
	if prefs.MenuConfig != "" {
		return prefs.MenuConfig
	}
	return menuconfig.DefaultPath
}

func (f *flags) source(prefs engineconfig.ViewerPrefs) menuconfig.Source {
	if f.builtin {
		return menuconfig.Builtin()
	}
	return menuconfig.File{Path: f.configPath(prefs)}
}

// runtime is the started app plus the logger it writes to.
type runtime struct {
	prefs engineconfig.ViewerPrefs
	log   *logger.Logger
	app   *app.App
}

// start loads preferences, opens the logger and activates the plugin. Headless commands print to the
// command's stdout and echo log entries to stderr; the viewer keeps both in the terminal overlay.
func (f *flags) start(cmd *cobra.Command, headless bool) (*runtime, error) {
	prefs, err := engineconfig.Load(f.prefs)
	if err != nil {
		return nil, err
	}
	ext := prefs.AssetExt
	if f.extension != "" {
		ext = f.extension
	}
	level := prefs.LogLevel
	if f.logLevel != "" {
		level = f.logLevel
	}

	opts := logger.Options{Path: f.logFile, Level: level}
	var printLine func(string)
	if headless {
		opts.Echo = cmd.ErrOrStderr()
		printLine = func(line string) { fmt.Fprintln(cmd.OutOrStdout(), line) }
	} else if opts.Path == "" {
		opts.Path = logger.DefaultPath
	}
	lg, err := logger.New(opts)
	if err != nil {
		return nil, err
	}

	ctx := pslog.ContextWithLogger(cmd.Context(), lg.Logger())
	a := app.New(ctx, app.Options{Source: f.source(prefs), Extension: ext, Print: printLine})
	a.GridVisible = prefs.GridVisible
	if err := a.Start(); err != nil {
		return nil, errors.Join(err, lg.Close())
	}
	return &runtime{prefs: prefs, log: lg, app: a}, nil
}

func (r *runtime) close() error {
	return errors.Join(r.app.Stop(), r.log.Close())
}
