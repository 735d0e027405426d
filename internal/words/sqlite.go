// internal/words/sqlite.go
//
// SQLite-backed word store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Creating the words table if missing.
//   - Importing word lists in a single transaction.
//   - Building a read-only Lists source from the stored words.
//
// The store only holds word lists; game state is never written here.

package words

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// Kind is the list a stored word belongs to.
type Kind string

const (
	KindAnswer  Kind = "answer"
	KindAllowed Kind = "allowed"
)

const schema = `
CREATE TABLE IF NOT EXISTS words (
    word TEXT NOT NULL,
    kind TEXT NOT NULL CHECK (kind IN ('answer', 'allowed')),
    PRIMARY KEY (word, kind)
);`

// Store wraps the word database.
type Store struct {
	db *sql.DB
}

/**
 * OpenSQLite opens (and creates if missing) a SQLite word database.
 *
 * - Ensures parent directory exists for relative DSNs (e.g. ./data/words.db).
 * - Configures busy timeout and WAL journaling.
 * - Creates the words table.
 */
func OpenSQLite(dsn string) (*Store, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create words table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

/**
 * Import inserts words of one kind inside a dedicated transaction.
 * Words are normalized; duplicates are ignored. Returns the number of
 * rows actually added.
 */
func (s *Store) Import(ctx context.Context, kind Kind, words []string) (int, error) {
	if kind != KindAnswer && kind != KindAllowed {
		return 0, fmt.Errorf("unknown word kind %q", kind)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words (word, kind) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, w := range words {
		w = normalize(w)
		if w == "" {
			continue
		}
		res, err := stmt.ExecContext(ctx, w, string(kind))
		if err != nil {
			return 0, fmt.Errorf("insert %q: %w", w, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			added++
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	log.Info().Str("kind", string(kind)).Int("added", added).Msg("words imported")
	return added, nil
}

// Words returns every stored word of one kind, sorted.
func (s *Store) Words(ctx context.Context, kind Kind) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word FROM words WHERE kind = ? ORDER BY word`, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Source loads both lists into memory. The database is not consulted again
// once the Lists value exists.
func (s *Store) Source(ctx context.Context, alphabet Alphabet) (*Lists, error) {
	answers, err := s.Words(ctx, KindAnswer)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	allowed, err := s.Words(ctx, KindAllowed)
	if err != nil {
		return nil, fmt.Errorf("load allowed: %w", err)
	}
	return Build(answers, allowed, alphabet)
}
