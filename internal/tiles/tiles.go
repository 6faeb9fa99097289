package tiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/onabhani/SimpleDashboard/pkg"
	"github.com/onabhani/SimpleDashboard/pkg/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrUnknownSet = errors.New("unknown tile set")

type OptionStore interface {
	Option(ctx context.Context, name string) ([]byte, error)
	SetOption(ctx context.Context, name string, value []byte) error
}

// IconResolver finds an image for a service tile that has none.
type IconResolver interface {
	Favicon(ctx context.Context, pageURL string) (string, error)
}

type Service struct {
	store   OptionStore
	homeURL string
	icons   IconResolver
	log     *zap.Logger
}

// NewService wires the tile store. icons may be nil to skip favicon lookups.
func NewService(store OptionStore, homeURL string, icons IconResolver, log *zap.Logger) *Service {
	return &Service{store: store, homeURL: strings.TrimRight(homeURL, "/"), icons: icons, log: log}
}

// Items returns the stored tiles of set, or the defaults when nothing has
// been saved yet. Disabled tiles are included.
func (s *Service) Items(ctx context.Context, set model.TileSet) ([]model.Tile, error) {
	stored, err := s.load(ctx, set)
	if err != nil {
		return nil, err
	}
	if len(stored) == 0 {
		return s.Defaults(set), nil
	}
	return stored, nil
}

// Configured returns what the dashboard shows for set: the defaults while
// nothing is saved, otherwise only enabled tiles.
func (s *Service) Configured(ctx context.Context, set model.TileSet) ([]model.Tile, error) {
	stored, err := s.load(ctx, set)
	if err != nil {
		return nil, err
	}
	if len(stored) == 0 {
		return s.Defaults(set), nil
	}

	out := make([]model.Tile, 0, len(stored))
	for _, t := range stored {
		if !t.Enabled {
			continue
		}
		if set == model.TileSetQuickAccess {
			t.Shadow = ShadowFor(t.Gradient)
		}
		out = append(out, t)
	}
	return out, nil
}

// Save sanitizes items and replaces the stored set with the result. Service
// tiles without an image get their favicon looked up here, once, and the
// image is stored with the tile.
func (s *Service) Save(ctx context.Context, set model.TileSet, items []model.Tile) ([]model.Tile, error) {
	if !set.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSet, set)
	}

	clean := Sanitize(items)
	if set == model.TileSetServices {
		s.resolveImages(ctx, clean)
	}
	b, err := json.Marshal(clean)
	if err != nil {
		return nil, fmt.Errorf("marshal tiles: %w", err)
	}
	if err := s.store.SetOption(ctx, set.OptionName(), b); err != nil {
		return nil, fmt.Errorf("save %s: %w", set, err)
	}
	return clean, nil
}

func (s *Service) load(ctx context.Context, set model.TileSet) ([]model.Tile, error) {
	if !set.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSet, set)
	}

	raw, err := s.store.Option(ctx, set.OptionName())
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", set, err)
	}

	var items []model.Tile
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", set, err)
	}
	return items, nil
}

// resolveImages fills missing service images in place. Lookup failures are
// logged and leave the tile without an image.
func (s *Service) resolveImages(ctx context.Context, items []model.Tile) {
	if s.icons == nil {
		return
	}

	var g errgroup.Group
	g.SetLimit(4)
	for i := range items {
		if items[i].Image != "" || !strings.HasPrefix(items[i].URL, "http") {
			continue
		}
		g.Go(func() error {
			img, err := s.icons.Favicon(ctx, items[i].URL)
			if err != nil {
				s.log.Sugar().Debugw("service icon lookup failed", "url", items[i].URL, "err", err)
				return nil
			}
			items[i].Image = img
			return nil
		})
	}
	_ = g.Wait()
}

// Sanitize drops untitled items and normalizes every field.
func Sanitize(items []model.Tile) []model.Tile {
	out := make([]model.Tile, 0, len(items))
	for _, it := range items {
		title := pkg.SanitizeTextField(it.Title)
		if title == "" {
			continue
		}

		id := pkg.SanitizeKey(it.ID)
		if id == "" {
			id = pkg.Slugify(title)
		}
		icon := pkg.SanitizeKey(it.Icon)
		if icon == "" {
			icon = defaultIcon
		}

		out = append(out, model.Tile{
			ID:       id,
			Title:    title,
			URL:      pkg.SanitizeURL(it.URL),
			Icon:     icon,
			Gradient: pkg.SanitizeTextField(it.Gradient),
			Color:    pkg.SanitizeHexColor(it.Color),
			Image:    pkg.SanitizeURL(it.Image),
			Enabled:  it.Enabled,
		})
	}
	return out
}

func (s *Service) link(p string) string {
	return s.homeURL + p
}

// Defaults returns the built-in tiles of set, all enabled.
func (s *Service) Defaults(set model.TileSet) []model.Tile {
	switch set {
	case model.TileSetQuickAccess:
		access := func(id, title, p, icon, color string) model.Tile {
			return model.Tile{ID: id, Title: title, URL: s.link(p), Icon: icon, Gradient: gradient(color), Shadow: shadow(color), Enabled: true}
		}
		return []model.Tile{
			access("crm", "CRM", "/crm/", "users", "blue"),
			access("sales", "Sales & Orders", "/sales/", "chart", "purple"),
			access("production", "Production", "/production/", "factory", "orange"),
			access("warehouse", "Warehouse", "/warehouse/", "warehouse", "green"),
			access("projects", "Projects", "/projects/", "grid", "pink"),
			access("reports", "Reports", "/reports/", "chart-bar", "cyan"),
		}
	case model.TileSetQuickActions:
		action := func(title, p, icon string) model.Tile {
			return model.Tile{ID: pkg.Slugify(title), Title: title, URL: s.link(p), Icon: icon, Enabled: true}
		}
		return []model.Tile{
			action("All Orders", "/sales/orders/", "chart"),
			action("New Customer", "/crm/new-customer/", "users"),
			action("New Entry", "/crm/new-entry/", "document"),
			action("New Invoice", "/crm/new-invoice/", "cart"),
			action("New Project", "/projects/new/", "grid"),
			action("New Maintenance", "/maintenance/new/", "tool"),
			action("View Reports", "/reports/", "chart-bar"),
		}
	case model.TileSetServices:
		return []model.Tile{
			{ID: "google", Title: "Google", URL: "https://google.com", Icon: "search", Enabled: true},
			{ID: "gmail", Title: "Gmail", URL: "https://mail.google.com", Icon: "mail", Enabled: true},
			{ID: "calendar", Title: "Calendar", URL: "https://calendar.google.com", Icon: "calendar", Enabled: true},
		}
	}
	return nil
}

