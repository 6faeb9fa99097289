package main

import (
	"fmt"
	"testing"
	"time"

	"github.com/onabhani/SimpleDashboard/internal/auth"
	"github.com/onabhani/SimpleDashboard/internal/menu"
	"github.com/onabhani/SimpleDashboard/pkg"
	"github.com/onabhani/SimpleDashboard/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoEntries_UseFormFields(t *testing.T) {
	keys := map[string]bool{}
	for _, f := range demoForm().Fields {
		if len(f.Inputs) == 0 {
			keys[fmt.Sprint(f.ID)] = true
		}
		for _, in := range f.Inputs {
			keys[in.ID] = true
		}
	}

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	entries := demoEntries(42, now)
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.Equal(t, int64(42), e.FormID)
		assert.True(t, e.DateCreated.Before(now))
		for k := range e.Values {
			assert.True(t, keys[k], "value key %s has no field", k)
		}
	}
}

func TestDemoMenus_BuildNavigation(t *testing.T) {
	svc := menu.NewService(nil, "https://ops.example.com", nil)

	byLocation := map[string][]model.MenuItem{}
	for _, m := range demoMenus() {
		byLocation[m.location] = m.items
	}
	require.Len(t, byLocation, 4)

	sections := menu.BuildSidebar(byLocation[menu.LocationSidebar], svc.Link, "/hr/leave/", nil)
	require.Len(t, sections, 2)
	assert.Equal(t, "Sales", sections[0].Section)
	assert.Equal(t, "HR", sections[1].Section)
	assert.Equal(t, "calendar", sections[1].Items[0].Icon)
	assert.True(t, sections[1].Items[0].Current)

	for _, m := range demoMenus() {
		seen := map[int64]bool{}
		for _, it := range m.items {
			if it.ParentID != 0 {
				assert.True(t, seen[it.ParentID], "%s: item %d refers to a later parent", m.name, it.ID)
			}
			seen[it.ID] = true
		}
	}
}

func TestNewUser(t *testing.T) {
	u, err := newUser(" Nora.Saleh@Example.com ", "s3cret-pass", "", []string{auth.RoleManager})
	require.NoError(t, err)
	assert.Equal(t, "nora.saleh@example.com", u.Email)
	assert.Equal(t, "nora.saleh", u.DisplayName)
	assert.Equal(t, []string{auth.RoleManager}, u.Roles)
	assert.True(t, pkg.PasswordMatches(u.PasswordHash, "s3cret-pass"))

	tests := []struct {
		name     string
		email    string
		password string
		roles    []string
	}{
		{"bad email", "not-an-email", "s3cret-pass", []string{auth.RoleEmployee}},
		{"short password", "a@example.com", "short", []string{auth.RoleEmployee}},
		{"unknown role", "a@example.com", "s3cret-pass", []string{"owner"}},
		{"no roles", "a@example.com", "s3cret-pass", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newUser(tt.email, tt.password, "A", tt.roles)
			assert.Error(t, err)
		})
	}
}
