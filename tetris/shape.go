package tetris

import (
	"fmt"
	"strings"
)

// Mask is a piece's body mask: mask[row][col] is true where the bounding box is occupied.
type Mask [][]bool

// NewMask allocates an empty rows x cols mask.
func NewMask(rows, cols int) Mask {
	m := make(Mask, rows)
	for i := range m {
		m[i] = make([]bool, cols)
	}
	return m
}

// Rows returns the mask height.
func (m Mask) Rows() int {
	return len(m)
}

// Cols returns the mask width.
func (m Mask) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy of the mask.
func (m Mask) Clone() Mask {
	c := make(Mask, len(m))
	for i := range m {
		c[i] = make([]bool, len(m[i]))
		copy(c[i], m[i])
	}
	return c
}

// Equal reports whether both masks have the same dimensions and contents.
func (m Mask) Equal(other Mask) bool {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return false
	}
	for r := range m {
		for c := range m[r] {
			if m[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Rotate returns a new mask rotated a quarter turn. The result of rotating an
// R x C mask is C x R: clockwise maps m[r][c] to out[c][R-1-r], counter-clockwise
// maps m[r][c] to out[C-1-c][r].
func (m Mask) Rotate(counterClockwise bool) Mask {
	rows, cols := m.Rows(), m.Cols()
	rotated := NewMask(cols, rows)

	for r := range rows {
		for c := range cols {
			if counterClockwise {
				rotated[cols-1-c][r] = m[r][c]
			} else {
				rotated[c][rows-1-r] = m[r][c]
			}
		}
	}

	return rotated
}

// Cells returns the absolute positions of the occupied mask cells when its
// top-left corner sits at anchor, in row-major order.
func (m Mask) Cells(anchor Position) []Position {
	cells := make([]Position, 0, 4)
	for r := range m {
		for c, occupied := range m[r] {
			if occupied {
				cells = append(cells, anchor.Add(c, r))
			}
		}
	}
	return cells
}

func (m Mask) String() string {
	var b strings.Builder
	for r := range m {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, occupied := range m[r] {
			if occupied {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

var shapeTable = map[Kind]Mask{
	J: {
		{true, false, false},
		{true, true, true},
		{false, false, false},
	},
	L: {
		{false, false, false},
		{true, true, true},
		{true, false, false},
	},
	S: {
		{false, true, true},
		{true, true, false},
		{false, false, false},
	},
	Z: {
		{true, true, false},
		{false, true, true},
		{false, false, false},
	},
	T: {
		{false, true, false},
		{true, true, true},
		{false, false, false},
	},
	O: {
		{false, true, true, false},
		{false, true, true, false},
		{false, false, false, false},
	},
	I: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
}

// ShapeMask returns a copy of the canonical body mask for kind.
func ShapeMask(kind Kind) (Mask, error) {
	mask, ok := shapeTable[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	return mask.Clone(), nil
}
