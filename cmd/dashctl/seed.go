package main

import (
	"context"
	"fmt"
	"time"

	"github.com/onabhani/SimpleDashboard/internal/cache"
	"github.com/onabhani/SimpleDashboard/internal/config"
	"github.com/onabhani/SimpleDashboard/internal/menu"
	"github.com/onabhani/SimpleDashboard/internal/repository"
	"github.com/onabhani/SimpleDashboard/pkg/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const demoFlowStep = "Manager approval"

func seedCmd() *cobra.Command {
	var assignee int64

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a demo form, entries and menus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync()
			sugar := log.Sugar()

			ctx := cmd.Context()
			return withRepo(ctx, func(repo *repository.Repository) error {
				formID, entryIDs, err := seedForms(ctx, repo, time.Now())
				if err != nil {
					return err
				}
				sugar.Infow("seeded entries", "form_id", formID, "count", len(entryIDs))

				if err := invalidateForms(ctx, repo, log, formID); err != nil {
					sugar.Warnw("forms cache not invalidated", "err", err)
				}

				for _, m := range demoMenus() {
					if err := repo.ReplaceMenu(ctx, m.name, m.location, m.items); err != nil {
						return fmt.Errorf("menu %s: %w", m.name, err)
					}
					sugar.Infow("seeded menu", "name", m.name, "location", m.location, "items", len(m.items))
				}

				if assignee > 0 {
					for _, id := range entryIDs {
						if _, err := repo.AssignFlowStep(ctx, id, demoFlowStep, assignee); err != nil {
							return fmt.Errorf("assign entry %d: %w", id, err)
						}
					}
					sugar.Infow("assigned workflow steps", "assignee", assignee, "count", len(entryIDs))
				}
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&assignee, "assignee", 0, "user id to assign a workflow step on every active demo entry")
	return cmd
}

// seedForms stores the demo form and its entries. Only active entry ids are
// returned.
func seedForms(ctx context.Context, repo *repository.Repository, now time.Time) (int64, []int64, error) {
	form := demoForm()
	formID, err := repo.CreateForm(ctx, &form)
	if err != nil {
		return 0, nil, fmt.Errorf("create form: %w", err)
	}

	var ids []int64
	for _, e := range demoEntries(formID, now) {
		id, err := repo.CreateEntry(ctx, &e)
		if err != nil {
			return 0, nil, fmt.Errorf("create entry: %w", err)
		}
		if e.Status == model.EntryStatusActive {
			ids = append(ids, id)
		}
	}
	return formID, ids, nil
}

// invalidateForms drops cached form definitions so a running API sees the
// new form. Nothing happens when no redis address is configured.
func invalidateForms(ctx context.Context, repo *repository.Repository, log *zap.Logger, formID int64) error {
	rc, err := config.LoadRedis()
	if err != nil {
		return err
	}
	rdb := cache.NewRedisClient(rc)
	if rdb == nil {
		return nil
	}
	defer rdb.Close()

	if err := cache.Ping(ctx, rdb); err != nil {
		return err
	}
	return cache.NewFormCache(repo, rdb, rc.FormsTTL, log).Invalidate(ctx, formID)
}

func demoForm() model.Form {
	return model.Form{
		Title:    "Customer Requests",
		IsActive: true,
		Fields: []model.Field{
			{ID: 1, Type: "name", Label: "Name", Inputs: []model.FieldInput{
				{ID: "1.3", Label: "First"},
				{ID: "1.6", Label: "Last"},
			}},
			{ID: 2, Type: "email", Label: "Email"},
			{ID: 3, Type: "phone", Label: "Phone"},
			{ID: 4, Type: "textarea", Label: "Request"},
		},
	}
}

func demoEntries(formID int64, now time.Time) []model.Entry {
	rows := []struct {
		first, last, email, phone, request string
		age                                time.Duration
		status                             model.EntryStatus
	}{
		{"Ahmed", "Al-Rashid", "ahmed.rashid@example.com", "0501234567", "Quote for office furniture", 2 * time.Hour, model.EntryStatusActive},
		{"Sara", "Hassan", "sara.hassan@example.com", "0559876543", "Delivery date change", 26 * time.Hour, model.EntryStatusActive},
		{"Omar", "Khalid", "omar.k@example.com", "0541112233", "Warranty claim for order 1042", 3 * 24 * time.Hour, model.EntryStatusActive},
		{"Fatima", "Nasser", "f.nasser@example.com", "0567778899", "Installation appointment", 5 * 24 * time.Hour, model.EntryStatusActive},
		{"Yousef", "Ali", "yousef.ali@example.com", "0533334444", "Duplicate submission", 6 * 24 * time.Hour, model.EntryStatusTrash},
	}

	out := make([]model.Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.Entry{
			FormID:      formID,
			Status:      r.status,
			DateCreated: now.Add(-r.age).UTC(),
			Values: map[string]string{
				"1.3": r.first,
				"1.6": r.last,
				"2":   r.email,
				"3":   r.phone,
				"4":   r.request,
			},
		})
	}
	return out
}

type demoMenu struct {
	name     string
	location string
	items    []model.MenuItem
}

func demoMenus() []demoMenu {
	return []demoMenu{
		{"Dashboard Sidebar", menu.LocationSidebar, []model.MenuItem{
			{ID: 1, Title: "Sales"},
			{ID: 2, ParentID: 1, Title: "Orders", URL: "/sales/orders/", Classes: []string{"icon-cart"}},
			{ID: 3, ParentID: 1, Title: "Customers", URL: "/sales/customers/", Classes: []string{"icon-users"}},
			{ID: 4, Title: "HR"},
			{ID: 5, ParentID: 4, Title: "Leave", URL: "/hr/leave/", Classes: []string{"icon-calendar"}},
			{ID: 6, ParentID: 4, Title: "Loans", URL: "/hr/loans/", Classes: []string{"icon-wallet"}},
			{ID: 7, Title: "Archive"},
		}},
		{"Dashboard Topbar", menu.LocationTopbar, []model.MenuItem{
			{ID: 1, Title: "Dashboard", URL: "/"},
			{ID: 2, Title: "Reports", URL: "/reports/"},
		}},
		{"Dashboard User", menu.LocationUser, []model.MenuItem{
			{ID: 1, Title: "Profile", URL: "/profile/"},
			{ID: 2, Title: "Settings", URL: "/settings/"},
			{ID: 3, Title: "Log out", URL: "/wp-login.php?action=logout"},
		}},
		{"Dashboard Services", menu.LocationServices, []model.MenuItem{
			{ID: 1, Title: "Helpdesk", URL: "https://help.example.com", Target: "_blank"},
			{ID: 2, Title: "Knowledge Base", URL: "https://kb.example.com", Target: "_blank"},
		}},
	}
}
