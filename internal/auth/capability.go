package auth

import (
	"slices"

	"github.com/onabhani/SimpleDashboard/pkg/model"
)

const (
	CapViewDashboard        = "dofs.view_dashboard"
	CapViewSales            = "dofs.view_sales"
	CapViewOrders           = "dofs.view_orders"
	CapViewReports          = "dofs.view_reports"
	CapViewInventory        = "dofs.view_inventory"
	CapViewSelf             = "sfs_hr.view_self"
	CapViewTeam             = "sfs_hr.view_team"
	CapApproveLeave         = "sfs_hr.approve_leave"
	CapApproveLoan          = "sfs_hr.approve_loan"
	CapViewManagerDashboard = "sfs_hr.view_dashboard_manager"
	CapViewEntries          = "gravityforms_view_entries"
	CapManageOptions        = "manage_options"
)

const (
	RoleAdministrator = "administrator"
	RoleManager       = "manager"
	RoleEmployee      = "employee"
)

var roleCapabilities = map[string][]string{
	RoleAdministrator: {
		CapViewDashboard, CapViewSales, CapViewOrders, CapViewReports, CapViewInventory,
		CapViewSelf, CapViewTeam, CapApproveLeave, CapApproveLoan, CapViewManagerDashboard,
		CapViewEntries, CapManageOptions,
	},
	RoleManager: {
		CapViewDashboard, CapViewSales, CapViewOrders, CapViewReports,
		CapViewSelf, CapViewTeam, CapApproveLeave, CapApproveLoan, CapViewManagerDashboard,
	},
	RoleEmployee: {
		CapViewDashboard, CapViewSelf,
	},
}

// KnownRole reports whether role has an entry in the role table.
func KnownRole(role string) bool {
	_, ok := roleCapabilities[role]
	return ok
}

// Principal is the authenticated caller a request runs as.
type Principal struct {
	UserID       int64
	Email        string
	DisplayName  string
	Roles        []string
	Capabilities []string
}

func NewPrincipal(u model.User) *Principal {
	return &Principal{
		UserID:       u.UserID,
		Email:        u.Email,
		DisplayName:  u.DisplayName,
		Roles:        u.Roles,
		Capabilities: u.Capabilities,
	}
}

// Can is true when capability is granted directly, through one of the
// principal's roles, or names one of those roles.
func (p *Principal) Can(capability string) bool {
	if p == nil {
		return false
	}
	if slices.Contains(p.Capabilities, capability) {
		return true
	}
	for _, role := range p.Roles {
		if role == capability || slices.Contains(roleCapabilities[role], capability) {
			return true
		}
	}
	return false
}

// CanAny is true when at least one of caps is granted.
func (p *Principal) CanAny(caps ...string) bool {
	for _, c := range caps {
		if p.Can(c) {
			return true
		}
	}
	return false
}
