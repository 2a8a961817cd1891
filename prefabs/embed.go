package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// DiskDir is checked before the embedded files so prefabs can be edited
// without rebuilding.
var DiskDir = "prefabs"

// Load returns a prefab by name, preferring the copy on disk.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name, "prefabs/")
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// LoadScript returns an input script by name, preferring the copy on disk.
func LoadScript(name string) ([]byte, error) {
	clean := "scripts/" + cleanPath(cleanPath(name, "prefabs/"), "scripts/")
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

func cleanPath(path, prefix string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, prefix); ok {
		return after
	}
	return s
}

func diskPath(clean string) string {
	return filepath.Join(DiskDir, filepath.FromSlash(clean))
}
