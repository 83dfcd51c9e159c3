package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBlobStore хранит коллекции в таблице kv_blobs (jsonb)
type PostgresBlobStore struct {
	db *pgxpool.Pool
}

func NewPostgresBlobStore(db *pgxpool.Pool) *PostgresBlobStore {
	return &PostgresBlobStore{db: db}
}

func (r *PostgresBlobStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var val []byte
	err := r.db.QueryRow(ctx, `SELECT value FROM kv_blobs WHERE key = $1;`, key).Scan(&val)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get %s from postgres: %w", key, err)
	}
	return val, true, nil
}

// Put выполняет upsert всех значений в одной транзакции
func (r *PostgresBlobStore) Put(ctx context.Context, entries ...Blob) error {
	query := `
		INSERT INTO kv_blobs (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW();
	`
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for _, e := range entries {
			if _, err := tx.Exec(ctx, query, e.Key, json.RawMessage(e.Value)); err != nil {
				return fmt.Errorf("failed to upsert %s: %w", e.Key, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to put blobs to postgres: %w", err)
	}
	return nil
}
