// Package levels embeds the shipped tile maps: plain text, one
// character per cell, one line per row. The cell codes are interpreted
// by kinematics.Parse; this package only handles storage.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed *.txt
var LevelsFS embed.FS

// Load returns the rows of the named level. The .txt suffix is
// optional. Trailing blank lines are dropped so a file ending in a
// newline doesn't grow an empty grid row.
func Load(name string) ([]string, error) {
	if !strings.HasSuffix(name, ".txt") {
		name += ".txt"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	rows := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

// Names lists the embedded level names, without the .txt suffix.
func Names() []string {
	entries, err := LevelsFS.ReadDir(".")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), ".txt"))
	}
	return out
}
