package model

import "time"

// DateLayout is the layout entries use for date_created on the wire.
const DateLayout = "2006-01-02 15:04:05"

type EntryStatus string

const (
	EntryStatusActive EntryStatus = "active"
	EntryStatusTrash  EntryStatus = "trash"
)

// Entry is one submission against a Form. Values are keyed by field id
// ("3") or sub-input id ("1.3").
type Entry struct {
	ID          int64             `json:"id" db:"id"`
	FormID      int64             `json:"form_id" db:"form_id"`
	Status      EntryStatus       `json:"status" db:"status"`
	CreatedBy   *int64            `json:"created_by" db:"created_by"`
	DateCreated time.Time         `json:"date_created" db:"date_created"`
	Values      map[string]string `json:"values" db:"values"` // JSONB
}

// EntryCriteria is an OR-combined "contains" filter over the given keys.
type EntryCriteria struct {
	Status EntryStatus
	Keys   []string
	Value  string
	Limit  int
}

type SearchResult struct {
	EntryID      int64       `json:"entry_id"`
	FormID       int64       `json:"form_id"`
	FormTitle    string      `json:"form_title"`
	PrimaryValue string      `json:"primary_value"`
	DateCreated  string      `json:"date_created"`
	CreatedBy    *int64      `json:"created_by"`
	Status       EntryStatus `json:"status"`
	EditURL      string      `json:"edit_url"`

	Created time.Time `json:"-"`
}

type SearchPage struct {
	Results    []SearchResult `json:"results"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	TotalPages int            `json:"total_pages"`
}
