package kinematics

import (
	"testing"
)

func TestParseClassifiesCodes(t *testing.T) {
	rows := []string{
		".#=",
		"P.C",
		"SF.",
	}
	g, _ := Parse(rows, 16)

	cases := []struct {
		name   string
		cx, cy int
		want   Cell
	}{
		{"empty", 0, 0, CellEmpty},
		{"block", 1, 0, CellSolid},
		{"oneway", 2, 0, CellOneWay},
		{"ground", 0, 1, CellSolid},
		{"coin_is_not_physical", 2, 1, CellEmpty},
		{"spawn_is_not_physical", 0, 2, CellEmpty},
		{"flag_is_not_physical", 1, 2, CellEmpty},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := g.Classify(c.cx, c.cy); got != c.want {
				t.Fatalf("Classify(%d,%d) = %v, want %v", c.cx, c.cy, got, c.want)
			}
		})
	}
}

func TestOutOfRangeIsAlwaysEmpty(t *testing.T) {
	g, _ := Parse([]string{"PPP", "PPP"}, 16)
	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {-10, -10}, {100, 100}} {
		if got := g.Classify(pt[0], pt[1]); got != CellEmpty {
			t.Fatalf("Classify(%d,%d) = %v, want empty", pt[0], pt[1], got)
		}
	}
}

func TestParseMarkers(t *testing.T) {
	rows := []string{
		"......",
		"..C.C.",
		".S..F.",
		"PPPPPP",
	}
	_, m := Parse(rows, 32)

	if len(m.Coins) != 2 {
		t.Fatalf("coins = %d, want 2", len(m.Coins))
	}
	// Spawn sits one tile above its marker cell.
	if m.Spawn.X != 32 || m.Spawn.Y != 32 {
		t.Fatalf("spawn = %v, want (32, 32)", m.Spawn)
	}
	if m.Flag == nil {
		t.Fatalf("flag marker missing")
	}
	// Flag pole extends three tiles up from the marker cell.
	if m.Flag.L != 4*32 || m.Flag.B != 2*32-3*32 || m.Flag.T-m.Flag.B != 3*32 {
		t.Fatalf("flag rect = %+v", *m.Flag)
	}
}

func TestParseDefaultSpawn(t *testing.T) {
	_, m := Parse([]string{"...", "PPP"}, 16)
	if m.Spawn.X != 16 || m.Spawn.Y != 16 {
		t.Fatalf("default spawn = %v, want one tile in from the corner", m.Spawn)
	}
}

func TestParseRaggedAndEmpty(t *testing.T) {
	g, _ := Parse([]string{"PP", "P", "PPPP"}, 16)
	w, h := g.Size()
	if w != 4 || h != 3 {
		t.Fatalf("size = %dx%d, want 4x3", w, h)
	}
	// Padded cells read as empty.
	if g.Classify(1, 1) != CellEmpty || g.Classify(3, 1) != CellEmpty {
		t.Fatalf("ragged padding should be empty")
	}
	if g.Classify(3, 2) != CellSolid {
		t.Fatalf("long row lost its cells")
	}

	empty, _ := Parse(nil, 16)
	if tiles := empty.TilesNear(Rect(0, 0, 100, 100)); tiles != nil {
		t.Fatalf("empty grid returned tiles: %v", tiles)
	}
}

func TestTilesNearCoversMargin(t *testing.T) {
	// Solid frame around an empty 3x3 interior.
	rows := []string{
		"PPPPP",
		"P...P",
		"P...P",
		"P...P",
		"PPPPP",
	}
	g, _ := Parse(rows, 16)

	// A small box inside the center cell: the one-tile margin reaches
	// only the interior ring, so nothing solid comes back.
	tiles := g.TilesNear(Rect(2*16+2, 2*16+2, 12, 12))
	if len(tiles) != 0 {
		t.Fatalf("center query returned %d tiles, want 0", len(tiles))
	}

	// Shifted against the interior's left wall, the margin now reaches
	// the frame column and the corners above/below it.
	tiles = g.TilesNear(Rect(1*16, 2*16, 16, 16))
	if len(tiles) == 0 {
		t.Fatalf("margin failed to pick up adjacent wall tiles")
	}
	for _, tile := range tiles {
		if tile.Cell != CellSolid {
			t.Fatalf("unexpected cell %v in frame query", tile.Cell)
		}
		if tile.BB.R-tile.BB.L != 16 || tile.BB.T-tile.BB.B != 16 {
			t.Fatalf("tile rect has wrong size: %+v", tile.BB)
		}
	}

	// Queries straddling the grid edge clamp instead of inventing tiles.
	outside := g.TilesNear(Rect(-200, -200, 50, 50))
	if len(outside) != 0 {
		t.Fatalf("fully out-of-range query returned %d tiles", len(outside))
	}
}

func TestNewFromCells(t *testing.T) {
	g := New([][]Cell{
		{CellSolid, CellEmpty},
		{CellOneWay},
	}, 8)
	w, h := g.Size()
	if w != 2 || h != 2 {
		t.Fatalf("size = %dx%d", w, h)
	}
	if g.Classify(0, 1) != CellOneWay || g.Classify(1, 1) != CellEmpty {
		t.Fatalf("cells misplaced")
	}
	if pw, ph := g.PixelSize(); pw != 16 || ph != 16 {
		t.Fatalf("pixel size = %vx%v", pw, ph)
	}
}
