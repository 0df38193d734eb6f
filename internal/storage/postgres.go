package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persiste les blobs dans une table clé-valeur.
// Sélectionné quand une base est configurée.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore crée la table si nécessaire
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS store_blobs (
			key        TEXT PRIMARY KEY,
			blob       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("could not create store_blobs table: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Save upsert du blob sous la clé
func (s *PostgresStore) Save(ctx context.Context, key string, blob []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO store_blobs(key, blob, updated_at)
		VALUES($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET blob = $2, updated_at = NOW()
	`, key, blob)
	if err != nil {
		return fmt.Errorf("could not save blob %s: %w", key, err)
	}
	return nil
}

// Load lit le blob ; une clé absente n'est pas une erreur
func (s *PostgresStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var blob []byte
	err := s.pool.QueryRow(ctx, `SELECT blob FROM store_blobs WHERE key = $1`, key).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not load blob %s: %w", key, err)
	}
	return blob, true, nil
}
