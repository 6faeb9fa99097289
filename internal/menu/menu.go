package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/onabhani/SimpleDashboard/pkg/model"
)

// Menu locations an admin can assign menus to.
const (
	LocationSidebar  = "dofs_sidebar"
	LocationTopbar   = "dofs_topbar"
	LocationUser     = "dofs_user"
	LocationServices = "dofs_services"
)

type Store interface {
	MenuItems(ctx context.Context, location string) ([]model.MenuItem, error)
}

type Service struct {
	store    Store
	homeURL  string
	sections []model.Section
}

// NewService uses DefaultSections when sections is empty.
func NewService(store Store, homeURL string, sections []model.Section) *Service {
	if len(sections) == 0 {
		sections = DefaultSections()
	}
	return &Service{store: store, homeURL: strings.TrimRight(homeURL, "/"), sections: sections}
}

// Link resolves a site-relative path against the home URL; absolute URLs
// and fragments pass through.
func (s *Service) Link(p string) string {
	if strings.HasPrefix(p, "/") {
		return s.homeURL + p
	}
	return p
}

func (s *Service) Sidebar(ctx context.Context, path string) ([]model.MenuSection, error) {
	items, err := s.store.MenuItems(ctx, LocationSidebar)
	if err != nil {
		return nil, fmt.Errorf("load sidebar menu: %w", err)
	}
	return BuildSidebar(items, s.Link, path, DefaultSidebar(s.Link, path)), nil
}

// Topbar is empty until a menu is assigned.
func (s *Service) Topbar(ctx context.Context, path string) ([]model.NavItem, error) {
	return s.flat(ctx, LocationTopbar, path)
}

func (s *Service) UserMenu(ctx context.Context, path string) ([]model.NavItem, error) {
	return s.flat(ctx, LocationUser, path)
}

func (s *Service) flat(ctx context.Context, location, path string) ([]model.NavItem, error) {
	items, err := s.store.MenuItems(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("load %s menu: %w", location, err)
	}

	out := make([]model.NavItem, 0, len(items))
	for _, it := range items {
		nav := navItem(it, s.Link, path)
		nav.Icon = ""
		out = append(out, nav)
	}
	return out, nil
}

// Services lists the app launcher entries, which always open in a new tab.
func (s *Service) Services(ctx context.Context) ([]model.NavItem, error) {
	items, err := s.store.MenuItems(ctx, LocationServices)
	if err != nil {
		return nil, fmt.Errorf("load services menu: %w", err)
	}
	if len(items) == 0 {
		return DefaultServices(), nil
	}

	out := make([]model.NavItem, 0, len(items))
	for _, it := range items {
		out = append(out, model.NavItem{
			ID:     it.ID,
			Title:  it.Title,
			URL:    s.Link(it.URL),
			Icon:   IconFromClasses(it.Classes),
			Target: "_blank",
			Image:  it.Image,
		})
	}
	return out, nil
}

func DefaultServices() []model.NavItem {
	return []model.NavItem{
		{ID: 1, Title: "Odoo ERP", URL: "#", Icon: "external-link"},
		{ID: 2, Title: "Google Drive", URL: "#", Icon: "external-link"},
		{ID: 3, Title: "Email", URL: "#", Icon: "external-link"},
	}
}

func (s *Service) Sections() []model.Section {
	return s.sections
}

// CurrentSection returns the first section whose /slug/ prefixes path, with
// sub-navigation links resolved and the matching item marked active.
func (s *Service) CurrentSection(path string) (model.Section, bool) {
	p := normalizePath(path)
	for _, sec := range s.sections {
		if !strings.HasPrefix(p, "/"+sec.Slug+"/") {
			continue
		}

		out := sec
		out.Items = make([]model.SubNavItem, len(sec.Items))
		for i, it := range sec.Items {
			it.URL = s.Link(it.Path)
			it.Active = normalizePath(it.Path) == p
			out.Items[i] = it
		}
		return out, true
	}
	return model.Section{}, false
}
