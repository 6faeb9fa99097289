package model

type Range string

const (
	RangeToday   Range = "today"
	RangeWeek    Range = "week"
	RangeMonth   Range = "month"
	RangeQuarter Range = "quarter"
	RangeYear    Range = "year"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceOnLeave AttendanceStatus = "on_leave"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

type TeamMember struct {
	ID int64 `json:"id"`
}

type AttendanceSummary struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	OnLeave int `json:"on_leave"`
	Off     int `json:"off"`
	Total   int `json:"total"`
	Late    int `json:"late"`
}

type PendingCounts struct {
	Total int `json:"total"`
	Leave int `json:"leave"`
	Loan  int `json:"loan"`
}

type MyStatus struct {
	Status      AttendanceStatus `json:"status"`
	StatusLabel string           `json:"status_label"`
	FirstPunch  string           `json:"first_punch"`
	LastPunch   *string          `json:"last_punch"`
	HasOpenLoan bool             `json:"has_open_loan"`
}

type ManagerSummary struct {
	Range          Range             `json:"range"`
	TeamAttendance AttendanceSummary `json:"team_attendance"`
	HRPending      PendingCounts     `json:"hr_pending"`
	MyHR           MyStatus          `json:"my_hr"`
}

type Employee struct {
	EmployeeID  int64            `json:"employee_id"`
	Name        string           `json:"name"`
	Avatar      *string          `json:"avatar"`
	Status      AttendanceStatus `json:"status"`
	StatusLabel string           `json:"status_label"`
	FirstPunch  *string          `json:"first_punch"`
	LastPunch   *string          `json:"last_punch"`
	LateMinutes int              `json:"late_minutes"`
	Department  string           `json:"department"`
}

type TeamSnapshot struct {
	Range     Range      `json:"range"`
	Scope     string     `json:"scope"`
	Employees []Employee `json:"employees"`
}

type Punch struct {
	Type string `json:"type"`
	Time string `json:"time"`
}

type TodayStatus struct {
	Status      AttendanceStatus `json:"status"`
	StatusLabel string           `json:"status_label"`
	FirstPunch  string           `json:"first_punch"`
	LastPunch   string           `json:"last_punch"`
	Punches     []Punch          `json:"punches"`
}

type LeavePeriod struct {
	From string `json:"from"`
	To   string `json:"to"`
	Type string `json:"type"`
}

type LeaveInfo struct {
	AnnualBalance int          `json:"annual_balance"`
	SickBalance   int          `json:"sick_balance"`
	NextLeave     *LeavePeriod `json:"next_leave"`
}

type Loan struct {
	LoanID               int64   `json:"loan_id"`
	Label                string  `json:"label"`
	RemainingAmount      float64 `json:"remaining_amount"`
	NextInstallmentMonth string  `json:"next_installment_month"`
}

type LoanInfo struct {
	HasActive bool   `json:"has_active"`
	Active    []Loan `json:"active"`
}

type ActionLinks struct {
	Punch        string `json:"punch"`
	RequestLeave string `json:"request_leave"`
	RequestLoan  string `json:"request_loan"`
}

type HRStatus struct {
	Today TodayStatus `json:"today"`
	Leave LeaveInfo   `json:"leave"`
	Loans LoanInfo    `json:"loans"`
	Links ActionLinks `json:"links"`
}

type HRRequestQuery struct {
	Status  RequestStatus
	Page    int
	PerPage int
}

type LeaveRequest struct {
	RequestID    int64         `json:"request_id"`
	EmployeeID   int64         `json:"employee_id"`
	EmployeeName string        `json:"employee_name"`
	Type         string        `json:"type"`
	From         string        `json:"from"`
	To           string        `json:"to"`
	Days         int           `json:"days"`
	SubmittedAt  string        `json:"submitted_at"`
	Status       RequestStatus `json:"status"`
	ManageURL    string        `json:"manage_url"`
}

type LoanRequest struct {
	LoanID       int64         `json:"loan_id"`
	EmployeeID   int64         `json:"employee_id"`
	EmployeeName string        `json:"employee_name"`
	Amount       float64       `json:"amount"`
	Installments int           `json:"installments"`
	SubmittedAt  string        `json:"submitted_at"`
	Status       RequestStatus `json:"status"`
	ManageURL    string        `json:"manage_url"`
}

// HRRequests only carries the lists the caller may approve.
type HRRequests struct {
	Leave []LeaveRequest
	Loan  []LoanRequest
}

type FlowTask struct {
	ID          int64  `json:"id"`
	EntryID     int64  `json:"entry_id"`
	Workflow    string `json:"workflow"`
	Step        string `json:"step"`
	SubmittedAt string `json:"submitted_at"`
	Summary     string `json:"summary"`
	URL         string `json:"url"`
}

// FlowAssignment is a pending workflow step with the entry it runs on.
type FlowAssignment struct {
	StepID   int64
	StepName string
	Entry    Entry
	Form     Form
}
