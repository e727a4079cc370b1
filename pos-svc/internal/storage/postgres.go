package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cafe-pos/pos-svc/internal/domain"
)

// PostgresSnapshotStore keeps the cart snapshot as one row of a key-value table.
type PostgresSnapshotStore struct {
	DB   *sql.DB
	Name string
}

func NewPostgresSnapshotStore(db *sql.DB, name string) *PostgresSnapshotStore {
	return &PostgresSnapshotStore{DB: db, Name: name}
}

func (s *PostgresSnapshotStore) Load(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := s.DB.QueryRowContext(ctx,
		"SELECT payload FROM cart_snapshots WHERE name = $1", s.Name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *PostgresSnapshotStore) Save(ctx context.Context, data []byte) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO cart_snapshots (name, payload, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`, s.Name, data)
	return err
}

func (s *PostgresSnapshotStore) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS cart_snapshots (
			name TEXT PRIMARY KEY,
			payload BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
