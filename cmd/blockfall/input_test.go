package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/session"
	"github.com/stretchr/testify/assert"
)

func TestRepeatFires(t *testing.T) {
	var fired []int
	for d := 0; d <= 24; d++ {
		if repeatFires(d) {
			fired = append(fired, d)
		}
	}
	assert.Equal(t, []int{1, 12, 16, 20, 24}, fired)
}

func TestBindings(t *testing.T) {
	byKey := make(map[ebiten.Key]session.Action, len(bindings))
	for _, b := range bindings {
		assert.NotContains(t, byKey, b.key, "key bound twice")
		byKey[b.key] = b.action

		_, ok := b.action.Command()
		assert.True(t, ok, "%v has no command", b.action)
	}

	assert.Equal(t, session.RotateCW, byKey[ebiten.KeyArrowUp])
	assert.Equal(t, session.RotateCCW, byKey[ebiten.KeyZ])
	assert.Equal(t, session.HardDrop, byKey[ebiten.KeySpace])
	assert.Equal(t, session.End, byKey[ebiten.KeyEscape])
	assert.NotContains(t, byKey, ebiten.KeyQ)
}
