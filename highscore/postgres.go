package highscore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

const (
	createTable = `CREATE TABLE IF NOT EXISTS highscore (
	id    INTEGER PRIMARY KEY,
	value TEXT NOT NULL
)`
	selectScore = `SELECT value FROM highscore WHERE id = 1`
	upsertScore = `INSERT INTO highscore (id, value) VALUES (1, $1)
ON CONFLICT (id) DO UPDATE SET value = EXCLUDED.value`
)

// PostgresStore keeps the highscore in a one-row table.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres connects to dsn with the lib/pq driver and creates the table if
// it does not exist yet.
func OpenPostgres(ctx context.Context, dsn string, maxOpenConns, maxIdleConns int) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if maxIdleConns > 0 {
		db.SetMaxIdleConns(maxIdleConns)
	}

	store := NewPostgresStore(db)
	if err := store.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	log.Println("[POSTGRES] highscore table ready")
	return store, nil
}

// NewPostgresStore wraps an open database. The table must already exist.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("failed to create highscore table: %w", err)
	}
	return nil
}

// LoadHighscore reads the stored row. No row is a score of 0.
func (s *PostgresStore) LoadHighscore(ctx context.Context) (int, error) {
	var value string
	err := s.db.QueryRowContext(ctx, selectScore).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load highscore: %w", err)
	}
	return parseScore(value)
}

func (s *PostgresStore) SaveHighscore(ctx context.Context, score int) error {
	if _, err := s.db.ExecContext(ctx, upsertScore, formatScore(score)); err != nil {
		return fmt.Errorf("save highscore: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
