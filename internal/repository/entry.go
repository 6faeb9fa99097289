package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/onabhani/SimpleDashboard/pkg/model"
)

const entryColumns = `e.id, e.form_id, e.status, e.created_by, e.date_created, e."values"`

// Entry returns a single entry regardless of its status.
func (r *Repository) Entry(ctx context.Context, id int64) (model.Entry, error) {
	q := `SELECT ` + entryColumns + ` FROM entries e WHERE e.id = $1`

	e, err := scanEntry(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return model.Entry{}, formsErr(fmt.Sprintf("entry %d", id), err)
	}
	return e, nil
}

// SearchEntries returns the newest entries of formID matching any of the
// criteria keys, at most c.Limit of them.
func (r *Repository) SearchEntries(ctx context.Context, formID int64, c model.EntryCriteria) ([]model.Entry, error) {
	if len(c.Keys) == 0 {
		return nil, nil
	}

	q, args := buildEntrySearch(formID, c)
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, formsErr("search entries", err)
	}
	defer rows.Close()

	out := make([]model.Entry, 0, 8)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry row: %w", err)
		}
		out = append(out, e)
	}
	if rows.Err() != nil {
		return nil, formsErr("rows error", rows.Err())
	}
	return out, nil
}

func (r *Repository) CreateEntry(ctx context.Context, e *model.Entry) (int64, error) {
	const q = `
INSERT INTO entries (form_id, status, created_by, date_created, "values")
VALUES ($1, $2, $3, $4, $5::jsonb)
RETURNING id
`
	b, err := json.Marshal(e.Values)
	if err != nil {
		return 0, fmt.Errorf("marshal values: %w", err)
	}
	status := e.Status
	if status == "" {
		status = model.EntryStatusActive
	}

	var id int64
	if err := r.db.QueryRow(ctx, q, e.FormID, status, e.CreatedBy, e.DateCreated, b).Scan(&id); err != nil {
		return 0, formsErr("insert entry", err)
	}
	return id, nil
}

func buildEntrySearch(formID int64, c model.EntryCriteria) (string, []interface{}) {
	var sb strings.Builder
	args := []interface{}{formID}

	sb.WriteString(`SELECT ` + entryColumns + ` FROM entries e WHERE e.form_id = $1`)
	if c.Status != "" {
		args = append(args, string(c.Status))
		sb.WriteString(` AND e.status = $` + strconv.Itoa(len(args)))
	}

	args = append(args, c.Keys)
	keysArg := len(args)
	args = append(args, "%"+escapeLike(c.Value)+"%")
	valueArg := len(args)
	fmt.Fprintf(&sb, ` AND EXISTS (SELECT 1 FROM jsonb_each_text(e."values") AS v(key, value) WHERE v.key = ANY($%d) AND v.value ILIKE $%d ESCAPE '\')`, keysArg, valueArg)

	sb.WriteString(` ORDER BY e.date_created DESC, e.id DESC`)
	if c.Limit > 0 {
		args = append(args, c.Limit)
		sb.WriteString(` LIMIT $` + strconv.Itoa(len(args)))
	}
	return sb.String(), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func scanEntry(row pgx.Row) (model.Entry, error) {
	var e model.Entry
	var raw []byte
	if err := row.Scan(&e.ID, &e.FormID, &e.Status, &e.CreatedBy, &e.DateCreated, &raw); err != nil {
		return model.Entry{}, err
	}
	values, err := decodeValues(raw)
	if err != nil {
		return model.Entry{}, fmt.Errorf("entry %d: %w", e.ID, err)
	}
	e.Values = values
	return e, nil
}

// decodeValues flattens a JSONB value map to strings. Numbers and booleans
// keep their JSON spelling; null becomes "".
func decodeValues(raw []byte) (map[string]string, error) {
	out := map[string]string{}
	if len(raw) == 0 {
		return out, nil
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("unmarshal values: %w", err)
	}
	for k, v := range m {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			out[k] = s
			continue
		}
		if string(v) == "null" {
			out[k] = ""
			continue
		}
		out[k] = string(v)
	}
	return out, nil
}
