package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/onabhani/SimpleDashboard/internal/auth"
	"github.com/onabhani/SimpleDashboard/internal/dashboard"
	"github.com/onabhani/SimpleDashboard/pkg/model"
	"github.com/onabhani/SimpleDashboard/pkg/response"
)

var (
	teamRanges  = []string{string(model.RangeToday), string(model.RangeWeek), string(model.RangeMonth)}
	salesRanges = []string{
		string(model.RangeToday), string(model.RangeWeek), string(model.RangeMonth),
		string(model.RangeQuarter), string(model.RangeYear),
	}
	teamStatuses = []string{
		dashboard.StatusAll, string(model.AttendancePresent), string(model.AttendanceAbsent), string(model.AttendanceOnLeave),
	}
	requestTypes    = []string{"all", "leave", "loan"}
	requestStatuses = []string{string(model.RequestPending), string(model.RequestApproved), string(model.RequestRejected)}
)

// ManagerSummary returns the KPI cards of the manager dashboard
// @Summary      Manager summary
// @Tags         dashboard
// @Produce      json
// @Param        range  query  string  false  "today, week or month"  default(today)
// @Success      200  {object}  model.ManagerSummary
// @Failure      401  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Router       /manager/summary [get]
func (h *Handler) ManagerSummary(c *gin.Context) {
	rng, ok := enumParam(c, "range", string(model.RangeToday), teamRanges...)
	if !ok {
		return
	}

	p := h.PrincipalFromContext(c)
	out, err := h.Dashboard.ManagerSummary(c.Request.Context(), p.UserID, model.Range(rng))
	if err != nil {
		h.Logger.Sugar().Errorw("manager summary failed", "user_id", p.UserID, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, out)
}

// ManagerTeam lists the manager's employees with today's attendance
// @Summary      Team attendance
// @Tags         dashboard
// @Produce      json
// @Param        range   query  string  false  "today, week or month"                   default(today)
// @Param        scope   query  string  false  "Team scope"                             default(my_team)
// @Param        status  query  string  false  "all, present, absent or on_leave"       default(all)
// @Success      200  {object}  model.TeamSnapshot
// @Router       /manager/team [get]
func (h *Handler) ManagerTeam(c *gin.Context) {
	rng, ok := enumParam(c, "range", string(model.RangeToday), teamRanges...)
	if !ok {
		return
	}
	status, ok := enumParam(c, "status", dashboard.StatusAll, teamStatuses...)
	if !ok {
		return
	}
	scope := textParam(c, "scope", dashboard.ScopeMyTeam)

	p := h.PrincipalFromContext(c)
	out, err := h.Dashboard.Team(c.Request.Context(), p.UserID, model.Range(rng), scope, status)
	if err != nil {
		h.Logger.Sugar().Errorw("manager team failed", "user_id", p.UserID, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, out)
}

// MyHRStatus returns the caller's attendance, leave and loan status
// @Summary      My HR status
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  model.HRStatus
// @Router       /me/hr-status [get]
func (h *Handler) MyHRStatus(c *gin.Context) {
	p := h.PrincipalFromContext(c)
	out, err := h.Dashboard.HRStatus(c.Request.Context(), p.UserID)
	if err != nil {
		h.Logger.Sugar().Errorw("hr status failed", "user_id", p.UserID, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, out)
}

// HRRequests returns the approval queues the caller may act on
// @Summary      Pending HR requests
// @Tags         dashboard
// @Produce      json
// @Param        type      query  string  false  "all, leave or loan"              default(all)
// @Param        status    query  string  false  "pending, approved or rejected"   default(pending)
// @Param        page      query  int     false  "Page number"                     default(1)
// @Param        per_page  query  int     false  "Items per page"                  default(10)
// @Success      200  {object}  map[string]interface{}
// @Router       /manager/hr-requests [get]
func (h *Handler) HRRequests(c *gin.Context) {
	kind, ok := enumParam(c, "type", "all", requestTypes...)
	if !ok {
		return
	}
	status, ok := enumParam(c, "status", string(model.RequestPending), requestStatuses...)
	if !ok {
		return
	}
	page, ok := absIntParam(c, "page", 1)
	if !ok {
		return
	}
	perPage, ok := absIntParam(c, "per_page", 10)
	if !ok {
		return
	}

	p := h.PrincipalFromContext(c)
	leave := (kind == "all" || kind == "leave") && p.Can(auth.CapApproveLeave)
	loan := (kind == "all" || kind == "loan") && p.Can(auth.CapApproveLoan)

	q := model.HRRequestQuery{Status: model.RequestStatus(status), Page: page, PerPage: perPage}
	reqs, err := h.Dashboard.HRRequests(c.Request.Context(), p.UserID, q, leave, loan)
	if err != nil {
		h.Logger.Sugar().Errorw("hr requests failed", "user_id", p.UserID, "err", err)
		response.InternalError(c, "")
		return
	}

	out := gin.H{}
	if leave {
		out["leave"] = reqs.Leave
	}
	if loan {
		out["loan"] = reqs.Loan
	}
	response.OK(c, out)
}

// FlowTasks returns the caller's open workflow steps
// @Summary      My workflow tasks
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  map[string][]model.FlowTask
// @Router       /me/flow-tasks [get]
func (h *Handler) FlowTasks(c *gin.Context) {
	p := h.PrincipalFromContext(c)
	tasks, err := h.Dashboard.FlowTasks(c.Request.Context(), p.UserID)
	if err != nil {
		h.Logger.Sugar().Errorw("flow tasks failed", "user_id", p.UserID, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, gin.H{"tasks": tasks})
}

// SalesOverview returns sales KPIs, recent orders and order status counts
// @Summary      Sales overview
// @Tags         dashboard
// @Produce      json
// @Param        range  query  string  false  "today, week, month, quarter or year"  default(month)
// @Success      200  {object}  model.SalesOverview
// @Router       /sales/overview [get]
func (h *Handler) SalesOverview(c *gin.Context) {
	rng, ok := enumParam(c, "range", string(model.RangeMonth), salesRanges...)
	if !ok {
		return
	}

	out, err := h.Dashboard.Sales(c.Request.Context(), model.Range(rng))
	if err != nil {
		h.Logger.Sugar().Errorw("sales overview failed", "range", rng, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, out)
}

// ReportsOverview returns the report charts and quick stats
// @Summary      Reports overview
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  model.ReportsOverview
// @Router       /reports/overview [get]
func (h *Handler) ReportsOverview(c *gin.Context) {
	out, err := h.Dashboard.Reports(c.Request.Context())
	if err != nil {
		h.Logger.Sugar().Errorw("reports overview failed", "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, out)
}
