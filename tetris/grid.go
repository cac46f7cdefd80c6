package tetris

// Default playfield dimensions.
const (
	DefaultRows = 24
	DefaultCols = 10
)

// GridView is read-only access to a playfield.
type GridView interface {
	Rows() int
	Cols() int
	At(pos Position) Kind
}

// Grid is the playfield: a fixed rows x cols matrix of cell kinds.
// Accessors perform no bounds checking; callers test positions with Collides or
// InBounds first.
type Grid struct {
	rows  int
	cols  int
	cells []Kind
}

// NewGrid creates an empty grid.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Kind, rows*cols),
	}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) index(pos Position) int {
	return pos.Y*g.cols + pos.X
}

// At returns the kind stored at pos.
func (g *Grid) At(pos Position) Kind {
	return g.cells[g.index(pos)]
}

// Set stores kind at pos.
func (g *Grid) Set(pos Position, kind Kind) {
	g.cells[g.index(pos)] = kind
}

// ClearCell empties pos.
func (g *Grid) ClearCell(pos Position) {
	g.cells[g.index(pos)] = Empty
}

// InBounds reports whether pos lies on the grid.
func (g *Grid) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < g.cols && pos.Y >= 0 && pos.Y < g.rows
}

// Clear empties every cell.
func (g *Grid) Clear() {
	clear(g.cells)
}

// IsRowFull reports whether every column of row is occupied.
func (g *Grid) IsRowFull(row int) bool {
	for _, kind := range g.row(row) {
		if kind == Empty {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row and returns how many were removed.
//
// Rows are scanned bottom to top. When row i is full it is emptied and rows
// [0, i-1] move down by one; row i is then checked again before the scan moves up,
// so stacked full rows are all removed at the same index.
func (g *Grid) ClearFullRows() int {
	cleared := 0
	for row := g.rows - 1; row >= 0; row-- {
		for g.IsRowFull(row) {
			cleared++
			g.shiftDown(row)
		}
	}
	return cleared
}

// shiftDown discards row and moves every row above it down by one. The top row
// becomes empty.
func (g *Grid) shiftDown(row int) {
	copy(g.cells[g.cols:(row+1)*g.cols], g.cells[:row*g.cols])
	clear(g.cells[:g.cols])
}

func (g *Grid) row(row int) []Kind {
	return g.cells[row*g.cols : (row+1)*g.cols]
}

// Cells returns a copy of the grid as [row][col].
func (g *Grid) Cells() [][]Kind {
	out := make([][]Kind, g.rows)
	for r := range out {
		out[r] = make([]Kind, g.cols)
		copy(out[r], g.row(r))
	}
	return out
}

// Occupied returns the number of non-empty cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, kind := range g.cells {
		if kind != Empty {
			n++
		}
	}
	return n
}
