package repository

import (
	"context"
	"fmt"

	"github.com/onabhani/SimpleDashboard/pkg/model"
)

// Forms lists the active, non-trashed forms in id order.
func (r *Repository) Forms(ctx context.Context) ([]model.Form, error) {
	const q = `
SELECT id, title, fields, is_active, created_at
FROM forms
WHERE is_active AND NOT is_trash
ORDER BY id ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, formsErr("query forms", err)
	}
	defer rows.Close()

	var out []model.Form
	for rows.Next() {
		var f model.Form
		if err := rows.Scan(&f.ID, &f.Title, &f.Fields, &f.IsActive, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan form row: %w", err)
		}
		out = append(out, f)
	}
	if rows.Err() != nil {
		return nil, formsErr("rows error", rows.Err())
	}
	return out, nil
}

// Form returns one form by id, trashed or not.
func (r *Repository) Form(ctx context.Context, id int64) (model.Form, error) {
	const q = `SELECT id, title, fields, is_active, created_at FROM forms WHERE id = $1`

	var f model.Form
	err := r.db.QueryRow(ctx, q, id).Scan(&f.ID, &f.Title, &f.Fields, &f.IsActive, &f.CreatedAt)
	if err != nil {
		return model.Form{}, formsErr(fmt.Sprintf("form %d", id), err)
	}
	return f, nil
}

func (r *Repository) CreateForm(ctx context.Context, f *model.Form) (int64, error) {
	const q = `INSERT INTO forms (title, fields, is_active) VALUES ($1, $2, $3) RETURNING id`

	fields := f.Fields
	if fields == nil {
		fields = []model.Field{}
	}
	var id int64
	if err := r.db.QueryRow(ctx, q, f.Title, fields, f.IsActive).Scan(&id); err != nil {
		return 0, formsErr("insert form", err)
	}
	return id, nil
}
