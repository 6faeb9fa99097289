package dashboard

import (
	"context"

	"github.com/onabhani/SimpleDashboard/pkg/model"
)

// TeamSource lists the people reporting to a manager.
type TeamSource interface {
	Members(ctx context.Context, managerID int64) ([]model.TeamMember, error)
	Employees(ctx context.Context, managerID int64, rng model.Range, scope string) ([]model.Employee, error)
}

// HRRequestSource serves the approval queues.
type HRRequestSource interface {
	LeaveRequests(ctx context.Context, managerID int64, q model.HRRequestQuery) ([]model.LeaveRequest, error)
	LoanRequests(ctx context.Context, managerID int64, q model.HRRequestQuery) ([]model.LoanRequest, error)
	PendingCounts(ctx context.Context, managerID int64) (model.PendingCounts, error)
}

// SelfServiceSource serves an employee's own attendance, leave and loans.
type SelfServiceSource interface {
	Today(ctx context.Context, userID int64) (model.TodayStatus, error)
	Leave(ctx context.Context, userID int64) (model.LeaveInfo, error)
	Loans(ctx context.Context, userID int64) (model.LoanInfo, error)
	Links(ctx context.Context, userID int64) (model.ActionLinks, error)
	MyStatus(ctx context.Context, userID int64) (model.MyStatus, error)
}

type FlowTaskSource interface {
	Tasks(ctx context.Context, userID int64) ([]model.FlowTask, error)
}

type SalesSource interface {
	Stats(ctx context.Context, rng model.Range) (model.SalesStats, error)
	RecentOrders(ctx context.Context, rng model.Range) ([]model.Order, error)
	OrderStatus(ctx context.Context, rng model.Range) (model.OrderStatusSummary, error)
}

type ReportsSource interface {
	RevenueTrend(ctx context.Context) (model.Series, error)
	SalesByCategory(ctx context.Context) (model.Series, error)
	TopProducts(ctx context.Context) ([]model.TopProduct, error)
	RecentReports(ctx context.Context) ([]model.Report, error)
	QuickStats(ctx context.Context) (model.QuickStats, error)
}
