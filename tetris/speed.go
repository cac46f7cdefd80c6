package tetris

import "time"

// Speed curve constants.
const (
	BaseTickInterval = 500 * time.Millisecond
	MinTickInterval  = 50 * time.Millisecond

	minLevelStep = 2 * time.Millisecond
)

// NextTickInterval returns the tick interval after leveling up to level.
// The interval shrinks by max(2, 45-3*level) milliseconds and never drops below
// MinTickInterval.
func NextTickInterval(current time.Duration, level int) time.Duration {
	delta := max(time.Duration(45-3*level)*time.Millisecond, minLevelStep)
	return max(current-delta, MinTickInterval)
}

// LevelThreshold returns the line count at which level advances to level+1.
func LevelThreshold(level int) int {
	return level*10 + 10
}
