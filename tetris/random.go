package tetris

import (
	"math/rand/v2"
	"sync"
)

// ShapeSource supplies the kind of each newly spawned piece.
type ShapeSource interface {
	NextShapeKind() Kind
}

// UniformSource picks each kind uniformly and independently.
type UniformSource struct {
	rng *rand.Rand
}

// NewUniformSource creates a uniform source. A zero seed seeds from the runtime.
func NewUniformSource(seed uint64) *UniformSource {
	return &UniformSource{rng: newRand(seed)}
}

func (s *UniformSource) NextShapeKind() Kind {
	return Kinds[s.rng.IntN(len(Kinds))]
}

// BagSource deals the seven kinds in shuffled bags, so every kind appears once in
// each run of seven pieces.
type BagSource struct {
	rng *rand.Rand
	bag []Kind
}

// NewBagSource creates a seven-bag source. A zero seed seeds from the runtime.
func NewBagSource(seed uint64) *BagSource {
	return &BagSource{rng: newRand(seed)}
}

func (s *BagSource) NextShapeKind() Kind {
	if len(s.bag) == 0 {
		s.bag = append(s.bag[:0], Kinds[:]...)
		s.rng.Shuffle(len(s.bag), func(i, j int) {
			s.bag[i], s.bag[j] = s.bag[j], s.bag[i]
		})
	}

	kind := s.bag[0]
	s.bag = s.bag[1:]
	return kind
}

// SequenceSource replays a fixed list of kinds, wrapping around at the end.
type SequenceSource struct {
	mu    sync.Mutex
	kinds []Kind
	next  int
}

// NewSequenceSource creates a deterministic source. It panics on an empty list.
func NewSequenceSource(kinds ...Kind) *SequenceSource {
	if len(kinds) == 0 {
		panic("tetris: empty shape sequence")
	}
	return &SequenceSource{kinds: kinds}
}

func (s *SequenceSource) NextShapeKind() Kind {
	s.mu.Lock()
	defer s.mu.Unlock()

	kind := s.kinds[s.next]
	s.next = (s.next + 1) % len(s.kinds)
	return kind
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
