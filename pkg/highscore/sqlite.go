package highscore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS high_scores (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    label      TEXT    NOT NULL,
    score      INTEGER NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_high_scores_score ON high_scores(score DESC);
`

// SQLiteStore keeps the leaderboard in a SQLite database
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the database at dsn and
// applies the schema
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dsn); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	// One writer at a time keeps SQLite out of lock contention
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Record inserts a run and prunes everything outside the top MaxEntries
func (s *SQLiteStore) Record(ctx context.Context, label string, score int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO high_scores (label, score) VALUES (?, ?)`,
		Sanitize(label), score,
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert score: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
        DELETE FROM high_scores
        WHERE id NOT IN (
            SELECT id FROM high_scores ORDER BY score DESC, id ASC LIMIT ?
        )`, MaxEntries,
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prune scores: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit score: %w", err)
	}
	return nil
}

// TopN returns up to n entries, highest score first
func (s *SQLiteStore) TopN(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return []Entry{}, nil
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT label, score
        FROM high_scores
        ORDER BY score DESC, id ASC
        LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0, n)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Label, &e.Score); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close releases the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
