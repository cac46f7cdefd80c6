package tetris

import "slices"

// Collides reports whether any candidate position is off the grid or lands on an
// occupied cell. Cells listed in current belong to the moving piece itself and are
// treated as empty.
func Collides(grid GridView, current, candidate []Position) bool {
	rows, cols := grid.Rows(), grid.Cols()

	for _, pos := range candidate {
		if pos.X < 0 || pos.X >= cols || pos.Y < 0 || pos.Y >= rows {
			return true
		}

		if grid.At(pos) != Empty && !slices.Contains(current, pos) {
			return true
		}
	}

	return false
}
