package model

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrFormsUnavailable means the forms backend is not installed or reachable.
	ErrFormsUnavailable = errors.New("forms backend unavailable")
)

type FieldInput struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

type Field struct {
	ID     int          `json:"id"`
	Type   string       `json:"type"`
	Label  string       `json:"label,omitempty"`
	Inputs []FieldInput `json:"inputs,omitempty"`
}

type Form struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Fields    []Field   `json:"fields" db:"fields"` // JSONB
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
