package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// OpenSQLite returns a Store backed by a single-file sqlite database.
func OpenSQLite(ctx context.Context, path string) (Store, error) {
	if path == "" {
		path = "./taskdesk.db"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite %s: %w", path, err)
	}
	// Snapshot writes are whole-blob; one writer at a time is plenty.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS blobs (
			key  TEXT PRIMARY KEY,
			data BLOB NOT NULL
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: init sqlite schema: %w", err)
	}
	return newBlobStore(&sqliteKV{db: db}), nil
}

type sqliteKV struct {
	db *sql.DB
}

func (s *sqliteKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM blobs WHERE key = ?`, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (s *sqliteKV) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blobs (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data`, key, data)
	return err
}

func (s *sqliteKV) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM blobs WHERE key = ?`, key)
	return err
}

func (s *sqliteKV) Close() error { return s.db.Close() }
