package menu

import (
	"fmt"
	"os"
	"strings"

	"github.com/onabhani/SimpleDashboard/pkg/model"
	"gopkg.in/yaml.v3"
)

type sectionsFile struct {
	Sections []model.Section `yaml:"sections"`
}

// LoadSections reads section definitions from a YAML file of the form
//
//	sections:
//	  - slug: crm
//	    title: CRM
//	    icon: users
//	    items:
//	      - {title: Overview, path: /crm/, slug: crm}
func LoadSections(path string) ([]model.Section, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sections file: %w", err)
	}

	var f sectionsFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse sections file %s: %w", path, err)
	}
	for i, s := range f.Sections {
		if strings.TrimSpace(s.Slug) == "" {
			return nil, fmt.Errorf("sections file %s: section %d has no slug", path, i)
		}
		for j, it := range s.Items {
			if !strings.HasPrefix(it.Path, "/") {
				return nil, fmt.Errorf("sections file %s: %s item %d path %q must start with /", path, s.Slug, j, it.Path)
			}
		}
	}
	return f.Sections, nil
}

func sub(title, path, slug string) model.SubNavItem {
	return model.SubNavItem{Title: title, Path: path, Slug: slug}
}

// DefaultSections are the site areas and their sub-navigation.
func DefaultSections() []model.Section {
	return []model.Section{
		{Slug: "crm", Title: "CRM", Icon: "users", Items: []model.SubNavItem{
			sub("Overview", "/crm/", "crm"),
			sub("All Customers", "/crm/customers/", "customers"),
			sub("New Customer", "/crm/new-customer/", "new-customer"),
			sub("New Entry", "/crm/new-entry/", "new-entry"),
			sub("New Invoice", "/crm/new-invoice/", "new-invoice"),
		}},
		{Slug: "sales", Title: "Sales & Orders", Icon: "chart", Items: []model.SubNavItem{
			sub("Overview", "/sales/", "sales"),
			sub("All Orders", "/sales/orders/", "orders"),
			sub("Inbox", "/sales/inbox/", "inbox"),
			sub("My Customers", "/sales/my-customers/", "my-customers"),
			sub("Delivery Confirmation", "/sales/delivery-confirmation/", "delivery-confirmation"),
		}},
		{Slug: "measurements", Title: "Measurements", Icon: "ruler", Items: []model.SubNavItem{
			sub("Overview", "/measurements/", "measurements"),
			sub("New Measurements", "/measurements/new/", "new"),
			sub("On Hold", "/measurements/on-hold/", "on-hold"),
			sub("Returned", "/measurements/returned/", "returned"),
		}},
		{Slug: "installation", Title: "Installation", Icon: "wrench", Items: []model.SubNavItem{
			sub("Overview", "/installation/", "installation"),
			sub("New Jobs", "/installation/new/", "new"),
			sub("On Hold", "/installation/on-hold/", "on-hold"),
			sub("Loading", "/installation/loading/", "loading"),
			sub("Scheduling", "/installation/scheduling/", "scheduling"),
			sub("All Jobs", "/installation/all/", "all"),
		}},
		{Slug: "design", Title: "Design", Icon: "pencil", Items: []model.SubNavItem{
			sub("Overview", "/design/", "design"),
			sub("New Drawing Job", "/design/new/", "new"),
			sub("Rejected Drawings", "/design/rejected/", "rejected"),
		}},
		{Slug: "production", Title: "Production", Icon: "factory", Items: []model.SubNavItem{
			sub("Overview", "/production/", "production"),
			sub("Receiving", "/production/receiving/", "receiving"),
			sub("Preparing", "/production/preparing/", "preparing"),
			sub("Under Production", "/production/under-production/", "under-production"),
			sub("Entry Updating", "/production/entry-updating/", "entry-updating"),
			sub("Quality Rejection", "/production/quality-rejection/", "quality-rejection"),
			sub("CNC Operations", "/production/cnc/", "cnc"),
		}},
		{Slug: "warehouse", Title: "Warehouse", Icon: "warehouse", Items: []model.SubNavItem{
			sub("Overview", "/warehouse/", "warehouse"),
			sub("Order Receiving", "/warehouse/order-receiving/", "order-receiving"),
			sub("Receiving", "/warehouse/receiving/", "receiving"),
			sub("Order Loading", "/warehouse/order-loading/", "order-loading"),
			sub("Quality Control", "/warehouse/quality-control/", "quality-control"),
		}},
		{Slug: "logistics", Title: "Logistics", Icon: "truck", Items: []model.SubNavItem{
			sub("Overview", "/logistics/", "logistics"),
			sub("Goods Delivery", "/logistics/delivery/", "delivery"),
		}},
		{Slug: "projects", Title: "Projects", Icon: "grid", Items: []model.SubNavItem{
			sub("Overview", "/projects/", "projects"),
			sub("All Projects", "/projects/all/", "all"),
			sub("New Project", "/projects/new/", "new"),
			sub("Project Drawings", "/projects/drawings/", "drawings"),
			sub("Manufacturing", "/projects/manufacturing/", "manufacturing"),
			sub("Delivery & Preparing", "/projects/delivery/", "delivery"),
		}},
		{Slug: "maintenance", Title: "Maintenance", Icon: "tool", Items: []model.SubNavItem{
			sub("Overview", "/maintenance/", "maintenance"),
			sub("All Requests", "/maintenance/all/", "all"),
			sub("New Request", "/maintenance/new/", "new"),
			sub("Jobs", "/maintenance/jobs/", "jobs"),
		}},
		{Slug: "reports", Title: "Reports & Analytics", Icon: "chart-bar", Items: []model.SubNavItem{
			sub("Overview", "/reports/", "reports"),
			sub("Sales Reports", "/reports/sales/", "sales"),
			sub("Order Reports", "/reports/orders/", "orders"),
			sub("Production Reports", "/reports/production/", "production"),
			sub("Custom Reports", "/reports/custom/", "custom"),
		}},
		{Slug: "admin", Title: "Administration", Icon: "settings", Items: []model.SubNavItem{
			sub("Overview", "/admin/", "admin"),
			sub("Documents Library", "/admin/documents/", "documents"),
			sub("Delayed Entry", "/admin/delayed-entry/", "delayed-entry"),
			sub("DOFS Monitoring", "/admin/monitoring/", "monitoring"),
			sub("Installation Evaluation", "/admin/evaluation/", "evaluation"),
		}},
		{Slug: "hr", Title: "Human Resources", Icon: "user", Items: []model.SubNavItem{
			sub("Overview", "/hr/", "hr"),
			sub("My HR", "/my-hr/", "my-hr"),
			sub("My Team", "/my-team/", "my-team"),
		}},
	}
}
