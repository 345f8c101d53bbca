package levels

import (
	"testing"

	"github.com/groundwork-games/tilerunner/kinematics"
)

func TestEmbeddedLevelsParse(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatalf("no embedded levels")
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			rows, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q): %v", name, err)
			}
			if len(rows) == 0 {
				t.Fatalf("level %q is empty", name)
			}
			grid, markers := kinematics.Parse(rows, 32)
			w, h := grid.Size()
			if w == 0 || h == 0 {
				t.Fatalf("level %q parsed to %dx%d grid", name, w, h)
			}
			// Every shipped level must spawn over something to stand on.
			if markers.Spawn.Y < 0 {
				t.Fatalf("spawn above the map: %v", markers.Spawn)
			}
		})
	}
}

func TestLoadSuffixOptional(t *testing.T) {
	a, err := Load("yard")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Load("yard.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Fatalf("suffix changed result: %d vs %d rows", len(a), len(b))
	}
}

func TestUnknownLevel(t *testing.T) {
	if _, err := Load("no-such-level"); err == nil {
		t.Fatalf("expected error")
	}
}
