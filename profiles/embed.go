package profiles

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var ProfilesFS embed.FS

// Dir is the on-disk directory checked before the embedded defaults, so
// a profile can be tuned live without rebuilding.
const Dir = "profiles"

// ReadFile returns the raw bytes for a profile file, preferring a disk
// copy under Dir over the embedded default.
func ReadFile(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return ProfilesFS.ReadFile(clean)
}

// Names lists the embedded profile names, without the .yaml suffix.
func Names() []string {
	entries, err := ProfilesFS.ReadDir(".")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	return out
}

func cleanPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, Dir+"/")
	if !strings.HasSuffix(s, ".yaml") {
		s += ".yaml"
	}
	return s
}
