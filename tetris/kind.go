// Package tetris implements the game-state engine of a falling-block puzzle game:
// the playfield grid, pieces and their rotation, collision detection, row clearing,
// scoring, and the run state machine with its level-based speed curve.
//
// The package owns no clock, window or storage. Renderers read Snapshot values,
// input layers call the command methods on Engine, and an external scheduler calls
// Tick at the cadence reported by Engine.TickInterval.
package tetris

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a shape kind has no entry in the shape table.
var ErrUnknownKind = errors.New("tetris: unknown shape kind")

// Kind is the value stored in a grid cell: Empty or one of the seven shape kinds.
type Kind uint8

const (
	Empty Kind = iota
	O
	L
	J
	I
	S
	Z
	T
)

// Kinds lists the seven real shape kinds in table order.
var Kinds = [...]Kind{O, L, J, I, S, Z, T}

var kindNames = [...]string{"Empty", "O", "L", "J", "I", "S", "Z", "T"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the seven real shape kinds.
func (k Kind) Valid() bool {
	return k >= O && k <= T
}

// Position is a (column, row) pair. Row 0 is the top, column 0 the left.
type Position struct {
	X, Y int
}

// Add returns p offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction is a plain move direction.
type Direction uint8

const (
	Down Direction = iota
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// offset returns the anchor delta for a move of the given speed.
func (d Direction) offset(speed int) (dx, dy int) {
	switch d {
	case Down:
		return 0, speed
	case Left:
		return -speed, 0
	case Right:
		return speed, 0
	}
	return 0, 0
}
