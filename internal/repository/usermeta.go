package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// UserMeta returns every meta value of userID whose key starts with prefix.
func (r *Repository) UserMeta(ctx context.Context, userID int64, prefix string) (map[string]string, error) {
	const q = `
SELECT meta_key, meta_value
FROM user_meta
WHERE user_id = $1 AND starts_with(meta_key, $2)
`
	rows, err := r.db.Query(ctx, q, userID, prefix)
	if err != nil {
		return nil, fmt.Errorf("query user meta: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan user meta: %w", err)
		}
		out[k] = v
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

// SetUserMeta upserts all values for userID in one transaction.
func (r *Repository) SetUserMeta(ctx context.Context, userID int64, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	return r.execTx(ctx, func(tx pgx.Tx) error {
		const q = `
INSERT INTO user_meta (user_id, meta_key, meta_value) VALUES ($1, $2, $3)
ON CONFLICT (user_id, meta_key) DO UPDATE SET meta_value = EXCLUDED.meta_value
`
		batch := &pgx.Batch{}
		for k, v := range values {
			batch.Queue(q, userID, k, v)
		}

		br := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("batch upsert user meta %d: %w", i, err)
			}
		}
		return br.Close()
	})
}
