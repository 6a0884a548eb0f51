package menuconfig

import (
	"os"
	"path/filepath"
	"strings"
)

// userHomeDir is swapped in tests.
var userHomeDir = os.UserHomeDir

// ExpandHome replaces a leading "~" (on its own or followed by a path separator) with home.
// Any other path, including "~user/...", is returned unchanged.
func ExpandHome(path, home string) string {
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"), strings.HasPrefix(path, "~"+string(filepath.Separator)):
		return filepath.Join(home, path[2:])
	default:
		return path
	}
}

func resolveHome(home string) (string, error) {
	if home != "" {
		return home, nil
	}
	return userHomeDir()
}
