package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// FileName is the database file created inside the data dir.
const FileName = "todo.db"

// Store keeps every key as one row of the kv table.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) <dir>/todo.db and ensures the schema.
func Open(ctx context.Context, dir string) (*Store, error) {
	p := filepath.Join(dir, FileName)
	db, err := sql.Open("sqlite", "file:"+p+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &Store{db: db, path: p}, nil
}

// Path is the database file location.
func (s *Store) Path() string { return s.path }

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query kv: %w", err)
	}
	return v, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO kv(k, v) VALUES(?, ?)`, key, value); err != nil {
		return fmt.Errorf("write kv: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
