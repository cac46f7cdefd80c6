package highscore

import (
	"context"
	"sync"
)

// MemoryStore keeps the highscore for the life of the process.
type MemoryStore struct {
	mu    sync.Mutex
	score int
	saves int
}

func NewMemoryStore(score int) *MemoryStore {
	return &MemoryStore{score: score}
}

func (s *MemoryStore) LoadHighscore(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score, nil
}

func (s *MemoryStore) SaveHighscore(ctx context.Context, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.score = max(score, 0)
	s.saves++
	return nil
}

// Saves returns how many times SaveHighscore was called.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func (s *MemoryStore) Close() error { return nil }
