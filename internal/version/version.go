// Package version reports the build's module path and version.
package version

import (
	"runtime/debug"
	"strings"
)

const defaultModule = "custom-meshes"

// buildVersion is set via -ldflags "-X custom-meshes/internal/version.buildVersion=...".
var buildVersion = ""

// Current returns the -ldflags version, else the module version from build info, else a placeholder.
func Current() string {
	if v := strings.TrimSpace(buildVersion); v != "" {
		return v
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := strings.TrimSpace(info.Main.Version); v != "" && v != "(devel)" {
			return v
		}
		if rev := setting(info, "vcs.revision"); rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			return "v0.0.0-" + rev
		}
	}
	return "v0.0.0-unknown"
}

// Module returns the main module path from build info when available.
func Module() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if p := strings.TrimSpace(info.Main.Path); p != "" {
			return p
		}
	}
	return defaultModule
}

func setting(info *debug.BuildInfo, key string) string {
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}
