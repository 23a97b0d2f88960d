package caster

// Tag identifies what occupies a maze cell.
type Tag uint8

const (
	Empty Tag = iota
	WallA
	WallB
	WallC
	Goal
)

func (t Tag) String() string {
	switch t {
	case Empty:
		return "empty"
	case WallA:
		return "wall-a"
	case WallB:
		return "wall-b"
	case WallC:
		return "wall-c"
	case Goal:
		return "goal"
	default:
		return "unknown"
	}
}

// Solid reports whether a ray stops at a cell with this tag.
func (t Tag) Solid() bool {
	return t != Empty
}

// Grid is a row-major maze. Rows may differ in length; any column at or past
// the end of its row is outside the grid.
type Grid [][]Tag

func (g Grid) Rows() int { return len(g) }

func (g Grid) Cols(row int) int {
	if row < 0 || row >= len(g) {
		return 0
	}
	return len(g[row])
}

// Width returns the length of the longest row.
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// At returns the tag at (row, col) and whether that cell exists.
func (g Grid) At(row, col int) (Tag, bool) {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return Empty, false
	}
	return g[row][col], true
}

// Cell converts a world position into grid coordinates.
func Cell(x, y, cellSize float64) (row, col int) {
	return floorInt(y / cellSize), floorInt(x / cellSize)
}
