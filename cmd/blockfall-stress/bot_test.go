package main

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pieceView(t *testing.T, kind tetris.Kind, anchor tetris.Position) tetris.PieceView {
	t.Helper()
	p, err := tetris.NewPiece(kind, anchor)
	require.NoError(t, err)
	return tetris.PieceView{Kind: kind, Mask: p.Mask(), Anchor: p.Anchor(), Cells: p.Cells()}
}

func emptyGrid(rows, cols int) [][]tetris.Kind {
	grid := make([][]tetris.Kind, rows)
	for y := range grid {
		grid[y] = make([]tetris.Kind, cols)
	}
	return grid
}

func TestBestPlacement(t *testing.T) {
	t.Run("completes a row", func(t *testing.T) {
		grid := emptyGrid(6, 4)
		for x := 1; x < 4; x++ {
			grid[5][x] = tetris.T
		}

		got, ok := bestPlacement(grid, pieceView(t, tetris.I, tetris.Position{X: 0, Y: 0}))
		require.True(t, ok)
		assert.Equal(t, 0, got.rotations)
		assert.Equal(t, 0, got.anchorX)
		assert.Equal(t, 1, got.lines)
		for _, pos := range got.cells {
			assert.Equal(t, 4, pos.Y)
		}
	})

	t.Run("ignores the falling piece's own cells", func(t *testing.T) {
		grid := emptyGrid(8, 10)
		piece := pieceView(t, tetris.O, tetris.Position{X: 3, Y: 0})
		for _, pos := range piece.Cells {
			grid[pos.Y][pos.X] = tetris.O
		}

		got, ok := bestPlacement(grid, piece)
		require.True(t, ok)
		assert.Equal(t, 0, got.rotations)
		for _, pos := range got.cells {
			assert.GreaterOrEqual(t, pos.Y, 6, "O rests on the floor")
		}
	})

	t.Run("boxed in stays in place", func(t *testing.T) {
		grid := emptyGrid(4, 4)
		for x := range 4 {
			grid[0][x] = tetris.Z
			grid[2][x] = tetris.Z
			grid[3][x] = tetris.Z
		}
		piece := pieceView(t, tetris.I, tetris.Position{X: 0, Y: 0})
		for _, pos := range piece.Cells {
			grid[pos.Y][pos.X] = tetris.I
		}

		got, ok := bestPlacement(grid, piece)
		require.True(t, ok)
		assert.Equal(t, 0, got.rotations)
		assert.Equal(t, 0, got.anchorX)
		assert.Equal(t, piece.Cells, got.cells)
		assert.Equal(t, 1, got.lines)
	})

	t.Run("no room", func(t *testing.T) {
		grid := emptyGrid(3, 4)
		_, ok := bestPlacement(grid, pieceView(t, tetris.I, tetris.Position{X: 0, Y: 3}))
		assert.False(t, ok, "a piece below the board has nowhere to go")
	})
}

func TestEvaluate(t *testing.T) {
	b := board{
		{false, false, false},
		{true, false, false},
		{false, true, true},
	}

	lines, score := evaluate(b, []tetris.Position{{X: 0, Y: 2}})
	assert.Equal(t, 1, lines)
	// One block left at height 1 in column 0 over an empty column.
	assert.InDelta(t, heightWeight+linesWeight+bumpinessWeight, score, 1e-9)

	lines, score = evaluate(b, []tetris.Position{{X: 2, Y: 1}})
	assert.Equal(t, 0, lines)
	// Heights 2,1,2 with one hole under column 0.
	assert.InDelta(t, 5*heightWeight+holesWeight+2*bumpinessWeight, score, 1e-9)
}

func TestBotPlaysGames(t *testing.T) {
	cfg := &config.Config{
		Rows:         12,
		Cols:         10,
		BaseInterval: tetris.BaseTickInterval,
		Strict:       true,
		Randomizer:   config.RandomizerUniform,
		Seed:         3,
		Highscore:    highscore.Options{Backend: highscore.BackendMemory},
	}
	bot := &BotSystem{}
	s := session.New(context.Background(), cfg, log.New(io.Discard, "", 0), bot)
	defer s.Close()
	bot.Sweep = s.Sweep

	systems := s.Scheduler.GetStats().Systems
	require.Len(t, systems, 3)
	assert.Equal(t, "BotSystem", systems[0].Name, "bot plans before gravity ticks")
	assert.Equal(t, "GravitySystem", systems[1].Name)

	for range 2000 {
		s.Frame(0.016)
	}

	assert.Greater(t, bot.Placed(), 20)
	for _, result := range bot.Results() {
		assert.Positive(t, result.Pieces)
		assert.GreaterOrEqual(t, result.Level, 1)
	}
}
