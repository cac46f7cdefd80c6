package tetris

// lineScores holds the base points for clearing 1, 2, 3 and 4 or more rows at once.
var lineScores = [...]int{100, 250, 500, 1500}

// LineScore returns the points for clearing lines rows at once on level.
// Counts beyond the table use its last entry.
func LineScore(level, lines int) int {
	if lines < 1 || level < 0 {
		return 0
	}

	base := lineScores[min(lines, len(lineScores))-1]
	return base * (level + 1)
}

// Scoreboard tracks the running score and the highscore it may raise.
type Scoreboard struct {
	score     int
	highscore int
}

// NewScoreboard starts a scoreboard at zero with a previously persisted highscore.
func NewScoreboard(highscore int) Scoreboard {
	return Scoreboard{highscore: max(highscore, 0)}
}

func (s *Scoreboard) Score() int     { return s.score }
func (s *Scoreboard) Highscore() int { return s.highscore }

// Add adds points to the score and raises the highscore when it is exceeded.
func (s *Scoreboard) Add(points int) {
	s.score += points
	if s.score > s.highscore {
		s.highscore = s.score
	}
}

// Reset zeroes the score for a new run. The highscore is kept.
func (s *Scoreboard) Reset() {
	s.score = 0
}
