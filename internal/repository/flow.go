package repository

import (
	"context"
	"fmt"

	"github.com/onabhani/SimpleDashboard/pkg/model"
)

// PendingAssignments lists the open workflow steps assigned to userID,
// newest entry first.
func (r *Repository) PendingAssignments(ctx context.Context, userID int64, limit int) ([]model.FlowAssignment, error) {
	const q = `
SELECT s.id, s.step_name,
	e.id, e.form_id, e.status, e.created_by, e.date_created, e."values",
	f.id, f.title, f.fields, f.is_active, f.created_at
FROM flow_steps s
JOIN entries e ON e.id = s.entry_id
JOIN forms f ON f.id = e.form_id
WHERE s.assignee_id = $1 AND s.status = 'pending' AND e.status = 'active'
ORDER BY e.date_created DESC, s.id DESC
LIMIT $2
`
	rows, err := r.db.Query(ctx, q, userID, limit)
	if err != nil {
		return nil, formsErr("query flow steps", err)
	}
	defer rows.Close()

	out := make([]model.FlowAssignment, 0, limit)
	for rows.Next() {
		var a model.FlowAssignment
		var raw []byte
		err := rows.Scan(&a.StepID, &a.StepName,
			&a.Entry.ID, &a.Entry.FormID, &a.Entry.Status, &a.Entry.CreatedBy, &a.Entry.DateCreated, &raw,
			&a.Form.ID, &a.Form.Title, &a.Form.Fields, &a.Form.IsActive, &a.Form.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan flow step: %w", err)
		}
		if a.Entry.Values, err = decodeValues(raw); err != nil {
			return nil, fmt.Errorf("flow step %d: %w", a.StepID, err)
		}
		out = append(out, a)
	}
	if rows.Err() != nil {
		return nil, formsErr("rows error", rows.Err())
	}
	return out, nil
}

func (r *Repository) AssignFlowStep(ctx context.Context, entryID int64, stepName string, assigneeID int64) (int64, error) {
	const q = `INSERT INTO flow_steps (entry_id, step_name, assignee_id) VALUES ($1, $2, $3) RETURNING id`

	var id int64
	if err := r.db.QueryRow(ctx, q, entryID, stepName, assigneeID).Scan(&id); err != nil {
		return 0, formsErr("insert flow step", err)
	}
	return id, nil
}
