package dashboard

import (
	"context"
	"fmt"

	"github.com/onabhani/SimpleDashboard/pkg/model"
	"golang.org/x/sync/errgroup"
)

const (
	ScopeMyTeam = "my_team"
	StatusAll   = "all"
)

// Sources bundles the data providers behind the dashboard endpoints.
type Sources struct {
	Team     TeamSource
	Requests HRRequestSource
	Self     SelfServiceSource
	Flow     FlowTaskSource
	Sales    SalesSource
	Reports  ReportsSource
}

// DemoSources wires d into every provider slot.
func DemoSources(d *Demo) Sources {
	return Sources{Team: d, Requests: d, Self: d, Flow: d, Sales: d, Reports: d}
}

type Service struct {
	src Sources
}

func NewService(src Sources) *Service {
	return &Service{src: src}
}

// Attendance splits a headcount the way the summary card reports it:
// 75% present, 10% absent, the rest on leave, and 20% of those present late.
func Attendance(total int) model.AttendanceSummary {
	present := total * 75 / 100
	absent := total * 10 / 100
	return model.AttendanceSummary{
		Present: present,
		Absent:  absent,
		OnLeave: total - present - absent,
		Off:     0,
		Total:   total,
		Late:    present * 20 / 100,
	}
}

// ManagerSummary gathers the three summary cards concurrently.
func (s *Service) ManagerSummary(ctx context.Context, managerID int64, rng model.Range) (model.ManagerSummary, error) {
	out := model.ManagerSummary{Range: rng}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		members, err := s.src.Team.Members(ctx, managerID)
		if err != nil {
			return fmt.Errorf("team members: %w", err)
		}
		out.TeamAttendance = Attendance(len(members))
		return nil
	})
	g.Go(func() error {
		counts, err := s.src.Requests.PendingCounts(ctx, managerID)
		if err != nil {
			return fmt.Errorf("pending counts: %w", err)
		}
		out.HRPending = counts
		return nil
	})
	g.Go(func() error {
		mine, err := s.src.Self.MyStatus(ctx, managerID)
		if err != nil {
			return fmt.Errorf("my status: %w", err)
		}
		out.MyHR = mine
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.ManagerSummary{}, err
	}
	return out, nil
}

// Team lists the manager's employees, keeping only those in status unless
// status is "all".
func (s *Service) Team(ctx context.Context, managerID int64, rng model.Range, scope, status string) (model.TeamSnapshot, error) {
	if scope == "" {
		scope = ScopeMyTeam
	}
	employees, err := s.src.Team.Employees(ctx, managerID, rng, scope)
	if err != nil {
		return model.TeamSnapshot{}, fmt.Errorf("team employees: %w", err)
	}
	if status != "" && status != StatusAll {
		employees = filter(employees, func(e model.Employee) bool {
			return string(e.Status) == status
		})
	}
	if employees == nil {
		employees = []model.Employee{}
	}
	return model.TeamSnapshot{Range: rng, Scope: scope, Employees: employees}, nil
}

func (s *Service) HRStatus(ctx context.Context, userID int64) (model.HRStatus, error) {
	var out model.HRStatus

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Today, err = s.src.Self.Today(ctx, userID)
		return wrap("today status", err)
	})
	g.Go(func() (err error) {
		out.Leave, err = s.src.Self.Leave(ctx, userID)
		return wrap("leave info", err)
	})
	g.Go(func() (err error) {
		out.Loans, err = s.src.Self.Loans(ctx, userID)
		return wrap("loan info", err)
	})
	g.Go(func() (err error) {
		out.Links, err = s.src.Self.Links(ctx, userID)
		return wrap("links", err)
	})
	if err := g.Wait(); err != nil {
		return model.HRStatus{}, err
	}
	return out, nil
}

// HRRequests fetches the leave and loan queues the caller asked for.
func (s *Service) HRRequests(ctx context.Context, managerID int64, q model.HRRequestQuery, leave, loan bool) (model.HRRequests, error) {
	var out model.HRRequests
	if leave {
		items, err := s.src.Requests.LeaveRequests(ctx, managerID, q)
		if err != nil {
			return model.HRRequests{}, fmt.Errorf("leave requests: %w", err)
		}
		out.Leave = nonNil(items)
	}
	if loan {
		items, err := s.src.Requests.LoanRequests(ctx, managerID, q)
		if err != nil {
			return model.HRRequests{}, fmt.Errorf("loan requests: %w", err)
		}
		out.Loan = nonNil(items)
	}
	return out, nil
}

func (s *Service) FlowTasks(ctx context.Context, userID int64) ([]model.FlowTask, error) {
	tasks, err := s.src.Flow.Tasks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("flow tasks: %w", err)
	}
	return nonNil(tasks), nil
}

func (s *Service) Sales(ctx context.Context, rng model.Range) (model.SalesOverview, error) {
	out := model.SalesOverview{Range: rng}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Stats, err = s.src.Sales.Stats(ctx, rng)
		return wrap("sales stats", err)
	})
	g.Go(func() (err error) {
		out.RecentOrders, err = s.src.Sales.RecentOrders(ctx, rng)
		return wrap("recent orders", err)
	})
	g.Go(func() (err error) {
		out.OrderStatus, err = s.src.Sales.OrderStatus(ctx, rng)
		return wrap("order status", err)
	})
	if err := g.Wait(); err != nil {
		return model.SalesOverview{}, err
	}
	out.RecentOrders = nonNil(out.RecentOrders)
	return out, nil
}

func (s *Service) Reports(ctx context.Context) (model.ReportsOverview, error) {
	var out model.ReportsOverview

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.RevenueTrend, err = s.src.Reports.RevenueTrend(ctx)
		return wrap("revenue trend", err)
	})
	g.Go(func() (err error) {
		out.SalesByCategory, err = s.src.Reports.SalesByCategory(ctx)
		return wrap("sales by category", err)
	})
	g.Go(func() (err error) {
		out.TopProducts, err = s.src.Reports.TopProducts(ctx)
		return wrap("top products", err)
	})
	g.Go(func() (err error) {
		out.RecentReports, err = s.src.Reports.RecentReports(ctx)
		return wrap("recent reports", err)
	})
	g.Go(func() (err error) {
		out.QuickStats, err = s.src.Reports.QuickStats(ctx)
		return wrap("quick stats", err)
	})
	if err := g.Wait(); err != nil {
		return model.ReportsOverview{}, err
	}
	out.TopProducts = nonNil(out.TopProducts)
	out.RecentReports = nonNil(out.RecentReports)
	return out, nil
}

func wrap(op string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
