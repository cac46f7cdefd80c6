package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func fillRow(g *tetris.Grid, row int, kind tetris.Kind) {
	for col := range g.Cols() {
		g.Set(tetris.Position{X: col, Y: row}, kind)
	}
}

func TestGridAccessors(t *testing.T) {
	g := tetris.NewGrid(tetris.DefaultRows, tetris.DefaultCols)
	pos := tetris.Position{X: 4, Y: 7}

	assert.Equal(t, tetris.Empty, g.At(pos))

	g.Set(pos, tetris.Z)
	assert.Equal(t, tetris.Z, g.At(pos))
	assert.Equal(t, 1, g.Occupied())

	g.ClearCell(pos)
	assert.Equal(t, tetris.Empty, g.At(pos))

	assert.True(t, g.InBounds(tetris.Position{X: 9, Y: 23}))
	assert.False(t, g.InBounds(tetris.Position{X: 10, Y: 0}))
	assert.False(t, g.InBounds(tetris.Position{X: 0, Y: -1}))
}

func TestGridClear(t *testing.T) {
	g := tetris.NewGrid(4, 4)
	fillRow(g, 1, tetris.I)
	fillRow(g, 3, tetris.O)

	g.Clear()
	assert.Equal(t, 0, g.Occupied())
}

func TestGridIsRowFull(t *testing.T) {
	g := tetris.NewGrid(4, 3)
	fillRow(g, 2, tetris.T)
	g.Set(tetris.Position{X: 0, Y: 3}, tetris.T)
	g.Set(tetris.Position{X: 1, Y: 3}, tetris.T)

	assert.True(t, g.IsRowFull(2))
	assert.False(t, g.IsRowFull(3))
	assert.False(t, g.IsRowFull(0))
}

func TestGridClearFullRows(t *testing.T) {
	t.Run("no full rows", func(t *testing.T) {
		g := tetris.NewGrid(tetris.DefaultRows, tetris.DefaultCols)
		g.Set(tetris.Position{X: 0, Y: 23}, tetris.J)

		assert.Equal(t, 0, g.ClearFullRows())
		assert.Equal(t, tetris.J, g.At(tetris.Position{X: 0, Y: 23}))
	})

	t.Run("rows five and seven", func(t *testing.T) {
		g := tetris.NewGrid(tetris.DefaultRows, tetris.DefaultCols)
		fillRow(g, 5, tetris.I)
		fillRow(g, 7, tetris.I)

		// Markers in the rows above and between the full rows.
		g.Set(tetris.Position{X: 1, Y: 2}, tetris.S)
		g.Set(tetris.Position{X: 2, Y: 3}, tetris.L)
		g.Set(tetris.Position{X: 3, Y: 4}, tetris.J)
		g.Set(tetris.Position{X: 4, Y: 6}, tetris.Z)
		g.Set(tetris.Position{X: 5, Y: 8}, tetris.T)

		assert.Equal(t, 2, g.ClearFullRows())

		// Rows above the old row 5 moved down by two.
		assert.Equal(t, tetris.S, g.At(tetris.Position{X: 1, Y: 4}))
		assert.Equal(t, tetris.L, g.At(tetris.Position{X: 2, Y: 5}))
		assert.Equal(t, tetris.J, g.At(tetris.Position{X: 3, Y: 6}))
		// The row between the full rows moved down by one.
		assert.Equal(t, tetris.Z, g.At(tetris.Position{X: 4, Y: 7}))
		// Rows below untouched.
		assert.Equal(t, tetris.T, g.At(tetris.Position{X: 5, Y: 8}))

		assert.Equal(t, 5, g.Occupied())
		for row := range 2 {
			for col := range g.Cols() {
				assert.Equal(t, tetris.Empty, g.At(tetris.Position{X: col, Y: row}))
			}
		}
	})

	t.Run("stacked full rows at the bottom", func(t *testing.T) {
		g := tetris.NewGrid(tetris.DefaultRows, tetris.DefaultCols)
		for row := 20; row < 24; row++ {
			fillRow(g, row, tetris.I)
		}
		g.Set(tetris.Position{X: 9, Y: 19}, tetris.O)

		assert.Equal(t, 4, g.ClearFullRows())
		assert.Equal(t, tetris.O, g.At(tetris.Position{X: 9, Y: 23}))
		assert.Equal(t, 1, g.Occupied())
	})

	t.Run("full top row", func(t *testing.T) {
		g := tetris.NewGrid(3, 2)
		fillRow(g, 0, tetris.T)

		assert.Equal(t, 1, g.ClearFullRows())
		assert.Equal(t, 0, g.Occupied())
	})
}

func TestGridCellsIsCopy(t *testing.T) {
	g := tetris.NewGrid(2, 2)
	g.Set(tetris.Position{X: 1, Y: 1}, tetris.L)

	cells := g.Cells()
	assert.Equal(t, tetris.L, cells[1][1])

	cells[1][1] = tetris.Empty
	assert.Equal(t, tetris.L, g.At(tetris.Position{X: 1, Y: 1}))
}
