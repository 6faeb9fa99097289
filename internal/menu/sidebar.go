package menu

import (
	"net/url"
	"strings"

	"github.com/onabhani/SimpleDashboard/pkg/model"
)

const (
	defaultIcon   = "document"
	defaultTarget = "_self"
)

// BuildSidebar turns a flat, parent-referencing item list into sections.
// Top-level items open a section in the order they appear, children attach
// to their parent section, and sections left without children are dropped.
// fallback is returned when nothing survives.
func BuildSidebar(items []model.MenuItem, link func(string) string, path string, fallback []model.MenuSection) []model.MenuSection {
	var order []int64
	sections := make(map[int64]*model.MenuSection)
	for _, it := range items {
		if it.ParentID == 0 {
			if _, dup := sections[it.ID]; !dup {
				order = append(order, it.ID)
				sections[it.ID] = &model.MenuSection{Section: it.Title, Items: []model.NavItem{}}
			}
		}
	}

	for _, it := range items {
		if it.ParentID == 0 {
			continue
		}
		sec, ok := sections[it.ParentID]
		if !ok {
			continue
		}
		sec.Items = append(sec.Items, navItem(it, link, path))
	}

	var out []model.MenuSection
	for _, id := range order {
		if sec := sections[id]; len(sec.Items) > 0 {
			out = append(out, *sec)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func navItem(it model.MenuItem, link func(string) string, path string) model.NavItem {
	target := it.Target
	if target == "" {
		target = defaultTarget
	}
	u := link(it.URL)
	return model.NavItem{
		ID:      it.ID,
		Title:   it.Title,
		URL:     u,
		Target:  target,
		Icon:    IconFromClasses(it.Classes),
		Current: IsCurrent(u, path),
	}
}

// IconFromClasses returns the name carried by the first icon-* CSS class.
func IconFromClasses(classes []string) string {
	for _, c := range classes {
		if name, ok := strings.CutPrefix(c, "icon-"); ok {
			return name
		}
	}
	return defaultIcon
}

// IsCurrent reports whether link points at the request path, ignoring a
// trailing slash, host and query.
func IsCurrent(link, path string) bool {
	u, err := url.Parse(link)
	if err != nil || u.Path == "" {
		return false
	}
	return normalizePath(u.Path) == normalizePath(path)
}

func normalizePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

// DefaultSidebar is the navigation tree used until an admin assigns a
// sidebar menu.
func DefaultSidebar(link func(string) string, path string) []model.MenuSection {
	item := func(id int64, title, p, icon string) model.NavItem {
		u := link(p)
		return model.NavItem{ID: id, Title: title, URL: u, Icon: icon, Current: IsCurrent(u, path)}
	}

	return []model.MenuSection{
		{Section: "MAIN", Items: []model.NavItem{
			item(1, "Dashboard", "/", "home"),
		}},
		{Section: "BUSINESS", Items: []model.NavItem{
			item(2, "CRM", "/crm/", "users"),
			item(3, "Sales & Orders", "/sales/", "chart"),
		}},
		{Section: "OPERATIONS", Items: []model.NavItem{
			item(4, "Measurements", "/measurements/", "ruler"),
			item(5, "Installation", "/installation/", "wrench"),
			item(6, "Design", "/design/", "pencil"),
			item(7, "Production", "/production/", "factory"),
			item(8, "Warehouse", "/warehouse/", "warehouse"),
			item(9, "Logistics", "/logistics/", "truck"),
		}},
		{Section: "MANAGEMENT", Items: []model.NavItem{
			item(10, "Projects", "/projects/", "grid"),
			item(11, "Maintenance", "/maintenance/", "tool"),
			item(12, "Reports & Analytics", "/reports/", "chart-bar"),
		}},
		{Section: "ADMINISTRATION", Items: []model.NavItem{
			item(13, "Administration", "/admin/", "settings"),
			item(14, "Human Resources", "/hr/", "user"),
		}},
		{Section: "SETTINGS", Items: []model.NavItem{
			item(15, "Settings", "/settings/", "cog"),
			item(16, "Help", "/help/", "help"),
		}},
	}
}
