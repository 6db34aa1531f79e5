package configloader

import (
	"os"
	"path/filepath"
)

// configFileNames lists recognized config file names, in priority order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{".mdforge.yaml", ".mdforge.yml"}

// Discover returns the first config file found in workingDir, then the
// user's home directory. Returns an empty string when none exists.
func Discover(workingDir string) string {
	dirs := []string{workingDir}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, name := range configFileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}
	return ""
}
