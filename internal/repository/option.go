package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/onabhani/SimpleDashboard/pkg/model"
)

// Option returns the raw JSON stored under name, or model.ErrNotFound.
func (r *Repository) Option(ctx context.Context, name string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRow(ctx, `SELECT value FROM options WHERE name = $1`, name).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("option %s: %w", name, model.ErrNotFound)
		}
		return nil, fmt.Errorf("query option %s: %w", name, err)
	}
	return value, nil
}

func (r *Repository) SetOption(ctx context.Context, name string, value []byte) error {
	const q = `
INSERT INTO options (name, value, updated_at) VALUES ($1, $2::jsonb, now())
ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
`
	if _, err := r.db.Exec(ctx, q, name, value); err != nil {
		return fmt.Errorf("upsert option %s: %w", name, err)
	}
	return nil
}
