package menu

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/onabhani/SimpleDashboard/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore map[string][]model.MenuItem

func (f fakeStore) MenuItems(ctx context.Context, location string) ([]model.MenuItem, error) {
	if items, ok := f["error"]; ok && items == nil {
		return nil, errors.New("db down")
	}
	return f[location], nil
}

func identity(s string) string { return s }

func TestBuildSidebar(t *testing.T) {
	items := []model.MenuItem{
		{ID: 1, Title: "WORK"},
		{ID: 2, ParentID: 1, Title: "Orders", URL: "/sales/orders/", Classes: []string{"menu-item", "icon-cart"}},
		{ID: 3, Title: "EMPTY"},
		{ID: 4, ParentID: 5, Title: "Early child", URL: "/late/"},
		{ID: 5, Title: "LATE"},
		{ID: 6, ParentID: 2, Title: "Grandchild", URL: "/deep/"},
		{ID: 7, ParentID: 1, Title: "Docs", URL: "https://docs.example.com", Target: "_blank"},
	}

	got := BuildSidebar(items, identity, "/sales/orders", nil)

	want := []model.MenuSection{
		{Section: "WORK", Items: []model.NavItem{
			{ID: 2, Title: "Orders", URL: "/sales/orders/", Target: "_self", Icon: "cart", Current: true},
			{ID: 7, Title: "Docs", URL: "https://docs.example.com", Target: "_blank", Icon: "document"},
		}},
		{Section: "LATE", Items: []model.NavItem{
			{ID: 4, Title: "Early child", URL: "/late/", Target: "_self", Icon: "document"},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildSidebar mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSidebar_FallsBackWhenNoSectionHasItems(t *testing.T) {
	fallback := []model.MenuSection{{Section: "MAIN"}}

	assert.Equal(t, fallback, BuildSidebar(nil, identity, "/", fallback))
	assert.Equal(t, fallback, BuildSidebar([]model.MenuItem{{ID: 1, Title: "ONLY"}}, identity, "/", fallback))
}

func TestDefaultSidebar(t *testing.T) {
	svc := NewService(fakeStore{}, "https://ops.example.com/", nil)

	got, err := svc.Sidebar(context.Background(), "/")
	require.NoError(t, err)

	require.Len(t, got, 6)
	assert.Equal(t, []string{"MAIN", "BUSINESS", "OPERATIONS", "MANAGEMENT", "ADMINISTRATION", "SETTINGS"}, sectionNames(got))
	assert.Equal(t, "https://ops.example.com/", got[0].Items[0].URL)
	assert.True(t, got[0].Items[0].Current)
	assert.Len(t, got[2].Items, 6)
	assert.Equal(t, "chart-bar", got[3].Items[2].Icon)

	got, err = svc.Sidebar(context.Background(), "/warehouse")
	require.NoError(t, err)
	assert.False(t, got[0].Items[0].Current)
	assert.True(t, got[2].Items[4].Current)
}

func TestServiceSidebar_Error(t *testing.T) {
	svc := NewService(fakeStore{"error": nil}, "https://ops.example.com", nil)
	_, err := svc.Sidebar(context.Background(), "/")
	assert.ErrorContains(t, err, "db down")
}

func TestTopbar(t *testing.T) {
	empty := NewService(fakeStore{}, "https://ops.example.com", nil)
	got, err := empty.Topbar(context.Background(), "/")
	require.NoError(t, err)
	assert.Empty(t, got)

	svc := NewService(fakeStore{LocationTopbar: {
		{ID: 9, Title: "Inbox", URL: "/sales/inbox/", Classes: []string{"icon-mail"}},
	}}, "https://ops.example.com", nil)
	got, err = svc.Topbar(context.Background(), "/sales/inbox/")
	require.NoError(t, err)
	assert.Equal(t, []model.NavItem{{ID: 9, Title: "Inbox", URL: "https://ops.example.com/sales/inbox/", Target: "_self", Current: true}}, got)
}

func TestServices(t *testing.T) {
	got, err := NewService(fakeStore{}, "https://ops.example.com", nil).Services(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultServices(), got)

	svc := NewService(fakeStore{LocationServices: {
		{ID: 4, Title: "Odoo", URL: "https://erp.example.com", Classes: []string{"icon-grid"}, Image: "https://erp.example.com/logo.png"},
	}}, "https://ops.example.com", nil)
	got, err = svc.Services(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.NavItem{{
		ID: 4, Title: "Odoo", URL: "https://erp.example.com", Icon: "grid", Target: "_blank", Image: "https://erp.example.com/logo.png",
	}}, got)
}

func TestCurrentSection(t *testing.T) {
	svc := NewService(fakeStore{}, "https://ops.example.com", nil)

	sec, ok := svc.CurrentSection("/production/cnc")
	require.True(t, ok)
	assert.Equal(t, "production", sec.Slug)
	assert.Len(t, sec.Items, 7)
	assert.Equal(t, "https://ops.example.com/production/cnc/", sec.Items[6].URL)
	assert.True(t, sec.Items[6].Active)
	assert.False(t, sec.Items[0].Active)

	sec, ok = svc.CurrentSection("/hr/")
	require.True(t, ok)
	assert.True(t, sec.Items[0].Active)

	_, ok = svc.CurrentSection("/crmx/")
	assert.False(t, ok)
	_, ok = svc.CurrentSection("/")
	assert.False(t, ok)

	// the stored definitions are not mutated by lookups
	assert.Empty(t, svc.Sections()[5].Items[6].URL)
}

func TestLoadSections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sections.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sections:
  - slug: fleet
    title: Fleet
    icon: truck
    items:
      - {title: Overview, path: /fleet/, slug: fleet}
      - {title: Vehicles, path: /fleet/vehicles/, slug: vehicles}
`), 0o600))

	got, err := LoadSections(path)
	require.NoError(t, err)
	want := []model.Section{{Slug: "fleet", Title: "Fleet", Icon: "truck", Items: []model.SubNavItem{
		{Title: "Overview", Path: "/fleet/", Slug: "fleet"},
		{Title: "Vehicles", Path: "/fleet/vehicles/", Slug: "vehicles"},
	}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadSections mismatch (-want +got):\n%s", diff)
	}

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("sections:\n  - slug: x\n    items:\n      - {title: A, path: relative/}\n"), 0o600))
	_, err = LoadSections(bad)
	assert.ErrorContains(t, err, "must start with /")

	_, err = LoadSections(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestIconFromClasses(t *testing.T) {
	assert.Equal(t, "document", IconFromClasses(nil))
	assert.Equal(t, "truck", IconFromClasses([]string{"menu-item", "icon-truck", "icon-grid"}))
}

func sectionNames(s []model.MenuSection) []string {
	out := make([]string, len(s))
	for i, sec := range s {
		out[i] = sec.Section
	}
	return out
}
