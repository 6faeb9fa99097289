package dashboard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/onabhani/SimpleDashboard/pkg/model"
)

const (
	flowTaskLimit      = 20
	summaryFieldCount  = 2
	summaryValueMaxLen = 100
)

type AssignmentStore interface {
	PendingAssignments(ctx context.Context, userID int64, limit int) ([]model.FlowAssignment, error)
}

// StoreFlowTasks reads the caller's workflow inbox from the entry store.
type StoreFlowTasks struct {
	store    AssignmentStore
	adminURL string
}

func NewStoreFlowTasks(store AssignmentStore, adminURL string) *StoreFlowTasks {
	return &StoreFlowTasks{store: store, adminURL: strings.TrimRight(adminURL, "/") + "/"}
}

func (s *StoreFlowTasks) Tasks(ctx context.Context, userID int64) ([]model.FlowTask, error) {
	assigned, err := s.store.PendingAssignments(ctx, userID, flowTaskLimit)
	if err != nil {
		return nil, fmt.Errorf("pending assignments: %w", err)
	}

	tasks := make([]model.FlowTask, 0, len(assigned))
	for _, a := range assigned {
		tasks = append(tasks, model.FlowTask{
			ID:          a.Entry.ID,
			EntryID:     a.Entry.ID,
			Workflow:    a.Form.Title,
			Step:        a.StepName,
			SubmittedAt: a.Entry.DateCreated.Format(model.DateLayout),
			Summary:     TaskSummary(a.Entry, a.Form),
			URL:         fmt.Sprintf("%sadmin.php?page=gravityflow-inbox&id=%d&form_id=%d", s.adminURL, a.Entry.ID, a.Form.ID),
		})
	}
	return tasks, nil
}

// TaskSummary joins the first two short, non-empty top-level field values
// of e with " - ", or falls back to "Entry #<id>".
func TaskSummary(e model.Entry, form model.Form) string {
	parts := make([]string, 0, summaryFieldCount)
	for _, f := range form.Fields {
		if len(parts) == summaryFieldCount {
			break
		}
		v := e.Values[strconv.Itoa(f.ID)]
		if v == "" || v == "0" || len(v) >= summaryValueMaxLen {
			continue
		}
		parts = append(parts, v)
	}
	if len(parts) == 0 {
		return fmt.Sprintf("Entry #%d", e.ID)
	}
	return strings.Join(parts, " - ")
}

// Tasks returns the demonstration inbox.
func (d *Demo) Tasks(ctx context.Context, userID int64) ([]model.FlowTask, error) {
	return []model.FlowTask{
		{
			ID:          1,
			EntryID:     456,
			Workflow:    "Quality Check",
			Step:        "Manager Approval",
			SubmittedAt: "2026-01-10 08:55",
			Summary:     "Order #12345 - Issue with item delivery",
			URL:         "/wp-admin/admin.php?page=gravityflow-inbox&id=456",
		},
		{
			ID:          2,
			EntryID:     457,
			Workflow:    "Expense Report",
			Step:        "Department Review",
			SubmittedAt: "2026-01-12 14:20",
			Summary:     "Travel expenses - January conference",
			URL:         "/wp-admin/admin.php?page=gravityflow-inbox&id=457",
		},
		{
			ID:          3,
			EntryID:     458,
			Workflow:    "Purchase Request",
			Step:        "Budget Approval",
			SubmittedAt: "2026-01-13 09:15",
			Summary:     "Office supplies - Q1 order",
			URL:         "/wp-admin/admin.php?page=gravityflow-inbox&id=458",
		},
	}, nil
}
