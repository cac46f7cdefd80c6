package highscore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPath is the file backend's default location.
const DefaultPath = "HighscoreData.txt"

// FileStore keeps the highscore in a text file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path, or DefaultPath when empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{path: path}
}

// Path returns the backing file's location.
func (s *FileStore) Path() string { return s.path }

// LoadHighscore reads the file. A missing file is a score of 0.
func (s *FileStore) LoadHighscore(ctx context.Context) (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", s.path, err)
	}
	return parseScore(string(data))
}

// SaveHighscore writes a temporary file next to the target and renames it
// into place.
func (s *FileStore) SaveHighscore(ctx context.Context, score int) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(formatScore(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
