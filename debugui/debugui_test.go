package debugui

import (
	"io"
	"log"
	"reflect"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReflectionCache(t *testing.T) {
	cache := NewReflectionCache()

	fields := cache.GetFields(reflect.TypeFor[tetris.Snapshot]())
	byName := make(map[string]FieldInfo, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}

	assert.True(t, byName["State"].Stringer)
	assert.True(t, byName["Interval"].Stringer)
	assert.True(t, byName["Current"].IsStruct)
	assert.True(t, byName["Grid"].IsSlice)
	assert.False(t, byName["Score"].Stringer)

	again := cache.GetFields(reflect.TypeFor[tetris.Snapshot]())
	assert.Same(t, &fields[0], &again[0], "fields are cached")

	assert.Empty(t, cache.GetFields(reflect.TypeFor[int]()))
}

func TestEngineInspectorBoardRows(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Rows, cfg.Cols = 5, 6
	cfg.Spawn = tetris.Position{X: 1, Y: 0}
	cfg.Logger = log.New(io.Discard, "", 0)
	engine := tetris.NewEngine(cfg, tetris.NewSequenceSource(tetris.O), nil)
	engine.Start()

	inspector := NewEngineInspector(engine, nil)
	rows := inspector.boardRows(engine.Snapshot())

	require.Len(t, rows, 5)
	assert.Equal(t, []string{
		"..OO..",
		"..OO..",
		"......",
		"..::..",
		"..::..",
	}, rows)
}
