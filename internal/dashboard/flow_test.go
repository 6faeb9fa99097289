package dashboard

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/onabhani/SimpleDashboard/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAssignments struct {
	items []model.FlowAssignment
	err   error
	limit int
}

func (f *fakeAssignments) PendingAssignments(ctx context.Context, userID int64, limit int) ([]model.FlowAssignment, error) {
	f.limit = limit
	return f.items, f.err
}

var expenseForm = model.Form{
	ID:    4,
	Title: "Expense Report",
	Fields: []model.Field{
		{ID: 1, Type: "text"},
		{ID: 2, Type: "number"},
		{ID: 3, Type: "textarea"},
		{ID: 5, Type: "text"},
	},
}

func TestTaskSummary(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		want   string
	}{
		{"first two", map[string]string{"1": "Travel", "2": "250", "3": "Riyadh"}, "Travel - 250"},
		{"skips zero and empty", map[string]string{"1": "", "2": "0", "3": "Hotel", "5": "Taxi"}, "Hotel - Taxi"},
		{"skips long values", map[string]string{"1": strings.Repeat("x", 100), "3": "Short"}, "Short"},
		{"ignores sub-inputs", map[string]string{"1.3": "Sara"}, "Entry #9"},
		{"fallback", map[string]string{}, "Entry #9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := model.Entry{ID: 9, Values: tt.values}
			assert.Equal(t, tt.want, TaskSummary(e, expenseForm))
		})
	}
}

func TestStoreFlowTasks(t *testing.T) {
	created := time.Date(2026, 1, 12, 14, 20, 5, 0, time.UTC)
	store := &fakeAssignments{items: []model.FlowAssignment{
		{
			StepID:   3,
			StepName: "Department Review",
			Entry:    model.Entry{ID: 457, FormID: 4, DateCreated: created, Values: map[string]string{"1": "Conference", "2": "1200"}},
			Form:     expenseForm,
		},
	}}

	tasks, err := NewStoreFlowTasks(store, "https://ops.example.com/wp-admin").Tasks(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, flowTaskLimit, store.limit)

	require.Len(t, tasks, 1)
	assert.Equal(t, model.FlowTask{
		ID:          457,
		EntryID:     457,
		Workflow:    "Expense Report",
		Step:        "Department Review",
		SubmittedAt: "2026-01-12 14:20:05",
		Summary:     "Conference - 1200",
		URL:         "https://ops.example.com/wp-admin/admin.php?page=gravityflow-inbox&id=457&form_id=4",
	}, tasks[0])
}

func TestStoreFlowTasks_Errors(t *testing.T) {
	store := &fakeAssignments{err: model.ErrFormsUnavailable}
	_, err := NewStoreFlowTasks(store, "https://ops.example.com/wp-admin/").Tasks(context.Background(), 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrFormsUnavailable))
}

func TestFlowTasks_EmptyInbox(t *testing.T) {
	src := DemoSources(NewDemo(nil, nil))
	src.Flow = NewStoreFlowTasks(&fakeAssignments{}, "https://ops.example.com/wp-admin/")

	tasks, err := NewService(src).FlowTasks(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestDemoTasks(t *testing.T) {
	tasks, err := NewDemo(nil, nil).Tasks(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, int64(456), tasks[0].EntryID)
	assert.Equal(t, "Budget Approval", tasks[2].Step)
}
