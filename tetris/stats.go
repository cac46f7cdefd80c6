package tetris

import "github.com/kamstrup/intmap"

// maxTrackedClear is the largest simultaneous clear tracked on its own; larger
// clears are counted with it.
const maxTrackedClear = 4

// Stats counts per-run piece spawns by kind and line clears by size.
type Stats struct {
	spawns *intmap.Map[Kind, int]
	clears *intmap.Map[int, int]
}

func newStats() *Stats {
	return &Stats{
		spawns: intmap.New[Kind, int](len(Kinds)),
		clears: intmap.New[int, int](maxTrackedClear),
	}
}

func (s *Stats) reset() {
	s.spawns.Clear()
	s.clears.Clear()
}

func (s *Stats) recordSpawn(kind Kind) {
	n, _ := s.spawns.Get(kind)
	s.spawns.Put(kind, n+1)
}

func (s *Stats) recordClear(lines int) {
	if lines < 1 {
		return
	}
	lines = min(lines, maxTrackedClear)
	n, _ := s.clears.Get(lines)
	s.clears.Put(lines, n+1)
}

// Spawns returns how many pieces of kind spawned this run.
func (s *Stats) Spawns(kind Kind) int {
	n, _ := s.spawns.Get(kind)
	return n
}

// Clears returns how many times exactly lines rows cleared at once this run.
// Four or more share one bucket.
func (s *Stats) Clears(lines int) int {
	n, _ := s.clears.Get(min(lines, maxTrackedClear))
	return n
}

// StatsView is a copy of Stats for renderers.
type StatsView struct {
	Spawns map[Kind]int
	Clears map[int]int
}

func (s *Stats) view() StatsView {
	v := StatsView{
		Spawns: make(map[Kind]int, len(Kinds)),
		Clears: make(map[int]int, maxTrackedClear),
	}
	for _, kind := range Kinds {
		v.Spawns[kind] = s.Spawns(kind)
	}
	for lines := 1; lines <= maxTrackedClear; lines++ {
		v.Clears[lines] = s.Clears(lines)
	}
	return v
}
