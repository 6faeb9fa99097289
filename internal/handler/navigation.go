package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/onabhani/SimpleDashboard/pkg/response"
)

// requestPath is the page the navigation is rendered for.
func requestPath(c *gin.Context) string {
	return textParam(c, "path", "/")
}

// Sidebar returns the sectioned sidebar menu
// @Summary      Sidebar navigation
// @Tags         navigation
// @Produce      json
// @Param        path  query  string  false  "Current page path"  default(/)
// @Success      200  {array}  model.MenuSection
// @Router       /navigation/sidebar [get]
func (h *Handler) Sidebar(c *gin.Context) {
	sections, err := h.Menu.Sidebar(c.Request.Context(), requestPath(c))
	if err != nil {
		h.Logger.Sugar().Errorw("sidebar failed", "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, sections)
}

// Topbar returns the flat top bar menu
// @Router       /navigation/topbar [get]
func (h *Handler) Topbar(c *gin.Context) {
	items, err := h.Menu.Topbar(c.Request.Context(), requestPath(c))
	if err != nil {
		h.Logger.Sugar().Errorw("topbar failed", "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, items)
}

// UserMenu returns the account dropdown menu
// @Router       /navigation/user [get]
func (h *Handler) UserMenu(c *gin.Context) {
	items, err := h.Menu.UserMenu(c.Request.Context(), requestPath(c))
	if err != nil {
		h.Logger.Sugar().Errorw("user menu failed", "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, items)
}

// Services returns the external services launcher
// @Router       /navigation/services [get]
func (h *Handler) Services(c *gin.Context) {
	items, err := h.Menu.Services(c.Request.Context())
	if err != nil {
		h.Logger.Sugar().Errorw("services menu failed", "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, items)
}

// Section returns the section the path belongs to with its sub-navigation
// @Summary      Section sub-navigation
// @Tags         navigation
// @Produce      json
// @Param        path  query  string  true  "Current page path"
// @Success      200  {object}  model.Section
// @Failure      404  {object}  response.ErrorBody
// @Router       /navigation/section [get]
func (h *Handler) Section(c *gin.Context) {
	path := requestPath(c)
	sec, ok := h.Menu.CurrentSection(path)
	if !ok {
		response.NotFound(c, "No section matches this path.")
		return
	}
	response.OK(c, sec)
}
