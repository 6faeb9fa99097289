package dashboard

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/onabhani/SimpleDashboard/pkg/model"
)

// demoTeamSize is the headcount reported while no HR backend is attached.
const demoTeamSize = 15

// Demo serves fixed demonstration data for every dashboard source. Punch
// times depend on the hour of day, so the clock and the random source are
// injectable.
type Demo struct {
	now  func() time.Time
	intn func(n int) int
}

// NewDemo returns a demo source. nil arguments fall back to the wall clock
// and math/rand.
func NewDemo(now func() time.Time, intn func(n int) int) *Demo {
	if now == nil {
		now = time.Now
	}
	if intn == nil {
		intn = rand.IntN
	}
	return &Demo{now: now, intn: intn}
}

// between returns a random integer in [lo, hi].
func (d *Demo) between(lo, hi int) int {
	return lo + d.intn(hi-lo+1)
}

func (d *Demo) Members(ctx context.Context, managerID int64) ([]model.TeamMember, error) {
	return make([]model.TeamMember, demoTeamSize), nil
}

func (d *Demo) Employees(ctx context.Context, managerID int64, rng model.Range, scope string) ([]model.Employee, error) {
	present := func(id int64, name, first, last string, late int, dept string) model.Employee {
		e := model.Employee{
			EmployeeID:  id,
			Name:        name,
			Status:      model.AttendancePresent,
			StatusLabel: "Present",
			FirstPunch:  &first,
			LateMinutes: late,
			Department:  dept,
		}
		if last != "" {
			e.LastPunch = &last
		}
		return e
	}
	away := func(id int64, name string, status model.AttendanceStatus, label, dept string) model.Employee {
		return model.Employee{EmployeeID: id, Name: name, Status: status, StatusLabel: label, Department: dept}
	}

	return []model.Employee{
		present(101, "Ahmed Ali", "08:07", "12:30", 5, "Sales - Riyadh"),
		away(102, "Sara Mohammed", model.AttendanceOnLeave, "On leave (Annual)", "Sales - Riyadh"),
		present(103, "Yousef Ibrahim", "07:55", "12:45", 0, "Sales - Riyadh"),
		present(104, "Fatima Hassan", "08:15", "12:20", 15, "Operations"),
		away(105, "Omar Khalid", model.AttendanceAbsent, "Absent", "Operations"),
		present(106, "Layla Ahmed", "08:02", "", 2, "HR"),
		present(107, "Khalid Nasser", "07:45", "12:30", 0, "Finance"),
		away(108, "Nora Abdullah", model.AttendanceOnLeave, "On leave (Sick)", "Sales - Riyadh"),
	}, nil
}

func (d *Demo) LeaveRequests(ctx context.Context, managerID int64, q model.HRRequestQuery) ([]model.LeaveRequest, error) {
	all := []model.LeaveRequest{
		{
			RequestID:    201,
			EmployeeID:   101,
			EmployeeName: "Ahmed Ali",
			Type:         "annual",
			From:         "2026-01-20",
			To:           "2026-01-22",
			Days:         3,
			SubmittedAt:  "2026-01-10 09:10",
			Status:       model.RequestPending,
			ManageURL:    "/hr/leave/201",
		},
		{
			RequestID:    202,
			EmployeeID:   104,
			EmployeeName: "Fatima Hassan",
			Type:         "sick",
			From:         "2026-01-25",
			To:           "2026-01-25",
			Days:         1,
			SubmittedAt:  "2026-01-12 14:30",
			Status:       model.RequestPending,
			ManageURL:    "/hr/leave/202",
		},
	}
	matched := filter(all, func(r model.LeaveRequest) bool { return r.Status == q.Status })
	return paginate(matched, q.Page, q.PerPage), nil
}

func (d *Demo) LoanRequests(ctx context.Context, managerID int64, q model.HRRequestQuery) ([]model.LoanRequest, error) {
	all := []model.LoanRequest{
		{
			LoanID:       301,
			EmployeeID:   103,
			EmployeeName: "Yousef Ibrahim",
			Amount:       5000,
			Installments: 5,
			SubmittedAt:  "2026-01-08 10:05",
			Status:       model.RequestPending,
			ManageURL:    "/hr/loan/301",
		},
	}
	matched := filter(all, func(r model.LoanRequest) bool { return r.Status == q.Status })
	return paginate(matched, q.Page, q.PerPage), nil
}

func (d *Demo) PendingCounts(ctx context.Context, managerID int64) (model.PendingCounts, error) {
	return model.PendingCounts{Total: 3, Leave: 2, Loan: 1}, nil
}

// Today reports punches that have already happened at the current hour.
func (d *Demo) Today(ctx context.Context, userID int64) (model.TodayStatus, error) {
	hour := d.now().Hour()

	punches := []model.Punch{{Type: "in", Time: "08:05"}}
	if hour > 12 {
		punches = append(punches, model.Punch{Type: "out", Time: "12:15"})
	}
	if hour > 13 {
		punches = append(punches, model.Punch{Type: "in", Time: "13:00"})
	}
	if hour > 17 {
		punches = append(punches, model.Punch{Type: "out", Time: "17:05"})
	}

	return model.TodayStatus{
		Status:      model.AttendancePresent,
		StatusLabel: "On duty",
		FirstPunch:  "08:05",
		LastPunch:   punches[len(punches)-1].Time,
		Punches:     punches,
	}, nil
}

func (d *Demo) Leave(ctx context.Context, userID int64) (model.LeaveInfo, error) {
	return model.LeaveInfo{
		AnnualBalance: 12,
		SickBalance:   5,
		NextLeave:     &model.LeavePeriod{From: "2026-01-20", To: "2026-01-22", Type: "annual"},
	}, nil
}

func (d *Demo) Loans(ctx context.Context, userID int64) (model.LoanInfo, error) {
	return model.LoanInfo{
		HasActive: true,
		Active: []model.Loan{
			{LoanID: 55, Label: "Cash advance - Oct", RemainingAmount: 2500, NextInstallmentMonth: "2026-02"},
		},
	}, nil
}

func (d *Demo) Links(ctx context.Context, userID int64) (model.ActionLinks, error) {
	return model.ActionLinks{
		Punch:        "/my-attendance",
		RequestLeave: "/leave-request",
		RequestLoan:  "/loan-request",
	}, nil
}

// MyStatus is the manager's own attendance line on the summary card. The
// first punch lands between 07:00 and 09:59, the last one only after noon.
func (d *Demo) MyStatus(ctx context.Context, userID int64) (model.MyStatus, error) {
	hour := d.now().Hour()

	firstHour := max(7, min(9, hour-d.between(0, 2)))
	status := model.MyStatus{
		Status:      model.AttendancePresent,
		StatusLabel: "On duty",
		FirstPunch:  fmt.Sprintf("%02d:%02d", firstHour, d.between(0, 59)),
		HasOpenLoan: true,
	}
	if hour > 12 {
		last := fmt.Sprintf("%02d:%02d", min(hour, 17), d.between(0, 59))
		status.LastPunch = &last
	}
	return status, nil
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// paginate returns the 1-based page of items. Out of range pages are empty.
func paginate[T any](items []T, page, perPage int) []T {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		return items
	}
	if page-1 > len(items)/perPage {
		return []T{}
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	return items[start:min(start+perPage, len(items))]
}
