package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OpenPostgres returns a Store that keeps the snapshot blobs in a postgres
// table. Useful when several dashboard instances should share one state.
func OpenPostgres(ctx context.Context, dsn string) (Store, error) {
	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("store: parse postgres dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS blobs (
			key  TEXT PRIMARY KEY,
			data BYTEA NOT NULL
		)`); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: init postgres schema: %w", err)
	}
	return newBlobStore(&postgresKV{pool: pool}), nil
}

type postgresKV struct {
	pool *pgxpool.Pool
}

func (p *postgresKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := p.pool.QueryRow(ctx, `SELECT data FROM blobs WHERE key = $1`, key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (p *postgresKV) Put(ctx context.Context, key string, data []byte) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO blobs (key, data) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data`, key, data)
	return err
}

func (p *postgresKV) Delete(ctx context.Context, key string) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM blobs WHERE key = $1`, key)
	return err
}

func (p *postgresKV) Close() error {
	p.pool.Close()
	return nil
}
