package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onabhani/SimpleDashboard/internal/auth"
)

// Messages returned when the caller lacks the capability a route needs.
const (
	msgNotAllowed    = "Sorry, you are not allowed to do that."
	msgManagerOnly   = "You do not have permission to access this endpoint."
	msgTeam          = "You do not have permission to view team data."
	msgHRStatus      = "You do not have permission to view your HR status."
	msgHRRequests    = "You do not have permission to view HR requests."
	msgFlowTasks     = "You do not have permission to view tasks."
	msgSales         = "You do not have permission to view sales data."
	msgReports       = "You do not have permission to view reports."
	msgManageOptions = "Sorry, you are not allowed to manage options."
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(app.requestLogger())
	r.Use(app.cors())
	if app.Config.Limiter.Enabled {
		r.Use(app.rateLimit())
	}

	h := app.Handler
	r.GET("/healthz", h.Health)

	api := r.Group(app.Config.APIPrefix())
	api.POST("/auth/login", h.Login)

	protected := api.Group("")
	protected.Use(app.AuthMiddleware())
	{
		protected.GET("/me", h.Me)
		protected.GET("/me/settings", h.GetSettings)
		protected.PUT("/me/settings", h.SaveSettings)
		protected.GET("/me/notification-preferences", h.NotificationPreferences)

		// navigation and tiles
		protected.GET("/navigation/sidebar", h.Sidebar)
		protected.GET("/navigation/topbar", h.Topbar)
		protected.GET("/navigation/user", h.UserMenu)
		protected.GET("/navigation/services", h.Services)
		protected.GET("/navigation/section", h.Section)
		protected.GET("/tiles/:set", h.DashboardTiles)

		protected.GET("/search/entries",
			app.RequireAny(msgNotAllowed, auth.CapViewEntries, auth.CapViewDashboard, auth.RoleAdministrator),
			h.SearchEntries)

		// dashboard
		protected.GET("/manager/summary", app.RequireAny(msgManagerOnly, auth.CapViewManagerDashboard), h.ManagerSummary)
		protected.GET("/manager/team", app.RequireAny(msgTeam, auth.CapViewTeam), h.ManagerTeam)
		protected.GET("/manager/hr-requests", app.RequireAny(msgHRRequests, auth.CapApproveLeave, auth.CapApproveLoan), h.HRRequests)
		protected.GET("/me/hr-status", app.RequireAny(msgHRStatus, auth.CapViewSelf), h.MyHRStatus)
		protected.GET("/me/flow-tasks", app.RequireAny(msgFlowTasks, auth.CapViewSelf), h.FlowTasks)
		protected.GET("/sales/overview", app.RequireAny(msgSales, auth.CapViewManagerDashboard), h.SalesOverview)
		protected.GET("/reports/overview", app.RequireAny(msgReports, auth.CapViewManagerDashboard), h.ReportsOverview)
	}

	admin := protected.Group("/admin")
	admin.Use(app.RequireAny(msgManageOptions, auth.CapManageOptions))
	{
		admin.GET("/tiles/catalog", h.TileCatalog)
		admin.GET("/tiles/:set", h.AdminTiles)
		admin.PUT("/tiles/:set", h.SaveTiles)
	}

	return r
}
