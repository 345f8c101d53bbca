package kinematics

import (
	"github.com/jakecoffman/cp"
)

// Cell classifies what a single grid cell does to a moving body.
type Cell int

const (
	CellEmpty Cell = iota
	CellSolid
	CellOneWay
)

// Tile pairs a cell classification with its world-space rectangle.
type Tile struct {
	Cell Cell
	BB   cp.BB
}

// Markers are the non-physical positions discovered while parsing a
// level map. The grid itself never looks at them again; they are the
// caller's concern (coin pickups, the level flag, the spawn point).
type Markers struct {
	Spawn cp.Vector
	Coins []cp.Vector
	Flag  *cp.BB
}

// Grid is an immutable solid/one-way tile lookup. All queries are total:
// anything outside the grid reads as empty air, never as solid, so a
// body can run off the edge of a map without hitting invisible walls.
type Grid struct {
	cells    [][]Cell
	w, h     int
	tileSize float64
}

// Rect builds a screen-space cp.BB. The y axis grows downward here, so
// B holds the top edge and T the bottom.
func Rect(x, y, w, h float64) cp.BB {
	return cp.BB{L: x, B: y, R: x + w, T: y + h}
}

// New builds a grid directly from cell classifications. Ragged rows are
// padded with empty cells so the grid is always rectangular.
func New(cells [][]Cell, tileSize float64) *Grid {
	h := len(cells)
	w := 0
	for _, row := range cells {
		if len(row) > w {
			w = len(row)
		}
	}
	g := &Grid{w: w, h: h, tileSize: tileSize}
	g.cells = make([][]Cell, h)
	for y, row := range cells {
		g.cells[y] = make([]Cell, w)
		copy(g.cells[y], row)
	}
	return g
}

// Map codes understood by Parse. Solid and one-way codes become physical
// cells; the rest are markers reported back through Markers.
const (
	codeEmpty  = '.'
	codeGround = 'P'
	codeBlock  = '#'
	codeOneWay = '='
	codeCoin   = 'C'
	codeFlag   = 'F'
	codeSpawn  = 'S'
)

// Parse ingests a text tile map, one string per row. Unrecognized codes
// read as empty. The spawn marker places the body one tile above its
// cell and the flag extends three tiles up from its cell, matching how
// the level maps are authored (markers sit on the ground row).
func Parse(rows []string, tileSize float64) (*Grid, Markers) {
	h := len(rows)
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}

	g := &Grid{w: w, h: h, tileSize: tileSize}
	g.cells = make([][]Cell, h)
	m := Markers{Spawn: cp.Vector{X: tileSize, Y: tileSize}}

	for y, row := range rows {
		g.cells[y] = make([]Cell, w)
		for x, ch := range []byte(row) {
			px := float64(x) * tileSize
			py := float64(y) * tileSize
			switch ch {
			case codeGround, codeBlock:
				g.cells[y][x] = CellSolid
			case codeOneWay:
				g.cells[y][x] = CellOneWay
			case codeCoin:
				m.Coins = append(m.Coins, cp.Vector{X: px, Y: py - 2})
			case codeFlag:
				r := Rect(px, py-3*tileSize, tileSize, 3*tileSize)
				m.Flag = &r
			case codeSpawn:
				m.Spawn = cp.Vector{X: px, Y: py - tileSize}
			}
		}
	}
	return g, m
}

// Classify returns the cell at tile coordinates (cx, cy). Out-of-range
// coordinates are empty air.
func (g *Grid) Classify(cx, cy int) Cell {
	if cx < 0 || cy < 0 || cx >= g.w || cy >= g.h {
		return CellEmpty
	}
	return g.cells[cy][cx]
}

// Size returns the grid dimensions in tiles.
func (g *Grid) Size() (int, int) { return g.w, g.h }

// TileSize returns the world size of one cell.
func (g *Grid) TileSize() float64 { return g.tileSize }

// PixelSize returns the grid dimensions in world units.
func (g *Grid) PixelSize() (float64, float64) {
	return float64(g.w) * g.tileSize, float64(g.h) * g.tileSize
}

// TilesNear returns every solid or one-way tile in the cell
// neighborhood covering bb plus a one-tile margin on every side. The
// margin catches tiles a displacement this tick could newly reach.
func (g *Grid) TilesNear(bb cp.BB) []Tile {
	if g.w == 0 || g.h == 0 {
		return nil
	}
	x0 := int(bb.L/g.tileSize) - 1
	x1 := int(bb.R/g.tileSize) + 1
	y0 := int(bb.B/g.tileSize) - 1
	y1 := int(bb.T/g.tileSize) + 1

	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= g.w {
		x1 = g.w - 1
	}
	if y1 >= g.h {
		y1 = g.h - 1
	}

	var out []Tile
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			c := g.cells[cy][cx]
			if c == CellEmpty {
				continue
			}
			out = append(out, Tile{
				Cell: c,
				BB:   Rect(float64(cx)*g.tileSize, float64(cy)*g.tileSize, g.tileSize, g.tileSize),
			})
		}
	}
	return out
}
