package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/onabhani/SimpleDashboard/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEntrySearch(t *testing.T) {
	q, args := buildEntrySearch(3, model.EntryCriteria{
		Status: model.EntryStatusActive,
		Keys:   []string{"1.3", "1.6", "2"},
		Value:  "50%_off",
		Limit:  200,
	})

	assert.Contains(t, q, `e.form_id = $1`)
	assert.Contains(t, q, `e.status = $2`)
	assert.Contains(t, q, `v.key = ANY($3) AND v.value ILIKE $4`)
	assert.Contains(t, q, `ORDER BY e.date_created DESC, e.id DESC`)
	assert.Contains(t, q, `LIMIT $5`)
	assert.Equal(t, []interface{}{int64(3), "active", []string{"1.3", "1.6", "2"}, `%50\%\_off%`, 200}, args)
}

func TestBuildEntrySearch_NoStatusNoLimit(t *testing.T) {
	q, args := buildEntrySearch(9, model.EntryCriteria{Keys: []string{"1"}, Value: "sara"})

	assert.NotContains(t, q, "e.status")
	assert.NotContains(t, q, "LIMIT")
	assert.Contains(t, q, `ANY($2) AND v.value ILIKE $3`)
	assert.Len(t, args, 3)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
	assert.Equal(t, `100\%`, escapeLike(`100%`))
	assert.Equal(t, `first\_name`, escapeLike(`first_name`))
	assert.Equal(t, "plain", escapeLike("plain"))
}

func TestDecodeValues(t *testing.T) {
	got, err := decodeValues([]byte(`{"1.3":"Sara","2":42,"3":null,"4":true}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"1.3": "Sara", "2": "42", "3": "", "4": "true"}, got)

	empty, err := decodeValues(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = decodeValues([]byte(`[1,2]`))
	assert.Error(t, err)
}

func TestFormsErr(t *testing.T) {
	missing := &pgconn.PgError{Code: pgUndefinedTable, Message: `relation "forms" does not exist`}
	assert.ErrorIs(t, formsErr("query forms", missing), model.ErrFormsUnavailable)
	assert.ErrorIs(t, formsErr("form 3", pgx.ErrNoRows), model.ErrNotFound)

	other := errors.New("connection reset")
	err := formsErr("query forms", other)
	assert.ErrorIs(t, err, other)
	assert.False(t, errors.Is(err, model.ErrFormsUnavailable))
}

func TestPgCode(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgUniqueViolation})
	assert.Equal(t, pgUniqueViolation, pgCode(wrapped))
	assert.Empty(t, pgCode(errors.New("boom")))
}
