package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/onabhani/SimpleDashboard/pkg/model"
)

const userColumns = `id, email, display_name, password_hash, roles, capabilities, created_at, updated_at`

// CreateUser inserts a new user and returns the new user's id.
func (r *Repository) CreateUser(ctx context.Context, u *model.User) (int64, error) {
	const q = `
INSERT INTO users (email, display_name, password_hash, roles, capabilities, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())
RETURNING id
`
	roles, caps := u.Roles, u.Capabilities
	if roles == nil {
		roles = []string{}
	}
	if caps == nil {
		caps = []string{}
	}

	var id int64
	if err := r.db.QueryRow(ctx, q, u.Email, u.DisplayName, u.PasswordHash, roles, caps).Scan(&id); err != nil {
		if pgCode(err) == pgUniqueViolation {
			return 0, fmt.Errorf("insert user %s: %w", u.Email, ErrEmailTaken)
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

// GetUserByEmail returns a user by email.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`
	return r.scanUser(r.db.QueryRow(ctx, q, email), "by email")
}

// GetUserByID returns a user by id.
func (r *Repository) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, q, id), "by id")
}

func (r *Repository) scanUser(row pgx.Row, lookup string) (model.User, error) {
	var u model.User
	err := row.Scan(&u.UserID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.Roles, &u.Capabilities, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, fmt.Errorf("user %s: %w", lookup, model.ErrNotFound)
		}
		return model.User{}, fmt.Errorf("scan user %s: %w", lookup, err)
	}
	return u, nil
}
