package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/onabhani/SimpleDashboard/pkg/model"
)

// MenuItems returns the items of the menu assigned to location in display
// order. An unassigned location yields no items and no error.
func (r *Repository) MenuItems(ctx context.Context, location string) ([]model.MenuItem, error) {
	const q = `
SELECT i.id, i.menu_id, i.parent_id, i.position, i.title, i.url, i.target, i.classes, i.image
FROM nav_menu_locations l
JOIN nav_menu_items i ON i.menu_id = l.menu_id
WHERE l.location = $1
ORDER BY i.position ASC, i.id ASC
`
	rows, err := r.db.Query(ctx, q, location)
	if err != nil {
		return nil, fmt.Errorf("query menu %s: %w", location, err)
	}
	defer rows.Close()

	var out []model.MenuItem
	for rows.Next() {
		var it model.MenuItem
		if err := rows.Scan(&it.ID, &it.MenuID, &it.ParentID, &it.Position, &it.Title, &it.URL, &it.Target, &it.Classes, &it.Image); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		out = append(out, it)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

// ReplaceMenu creates or replaces the named menu, assigns it to location and
// stores items. Item ids are local to the call: a ParentID refers to an
// earlier item's ID in the same slice.
func (r *Repository) ReplaceMenu(ctx context.Context, name, location string, items []model.MenuItem) error {
	return r.execTx(ctx, func(tx pgx.Tx) error {
		var menuID int64
		const upsertMenu = `
INSERT INTO nav_menus (name) VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id
`
		if err := tx.QueryRow(ctx, upsertMenu, name).Scan(&menuID); err != nil {
			return fmt.Errorf("upsert menu: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM nav_menu_items WHERE menu_id = $1`, menuID); err != nil {
			return fmt.Errorf("clear menu items: %w", err)
		}

		const assign = `
INSERT INTO nav_menu_locations (location, menu_id) VALUES ($1, $2)
ON CONFLICT (location) DO UPDATE SET menu_id = EXCLUDED.menu_id
`
		if _, err := tx.Exec(ctx, assign, location, menuID); err != nil {
			return fmt.Errorf("assign menu location: %w", err)
		}

		const insertItem = `
INSERT INTO nav_menu_items (menu_id, parent_id, position, title, url, target, classes, image)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id
`
		ids := make(map[int64]int64, len(items))
		for i, it := range items {
			parent := int64(0)
			if it.ParentID != 0 {
				mapped, ok := ids[it.ParentID]
				if !ok {
					return fmt.Errorf("menu item %q: parent %d not inserted yet", it.Title, it.ParentID)
				}
				parent = mapped
			}
			classes := it.Classes
			if classes == nil {
				classes = []string{}
			}

			var id int64
			err := tx.QueryRow(ctx, insertItem, menuID, parent, i, it.Title, it.URL, it.Target, classes, it.Image).Scan(&id)
			if err != nil {
				return fmt.Errorf("insert menu item %q: %w", it.Title, err)
			}
			ids[it.ID] = id
		}
		return nil
	})
}
