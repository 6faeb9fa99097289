package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/onabhani/SimpleDashboard/pkg/model"
	"github.com/onabhani/SimpleDashboard/pkg/response"
)

// GetSettings returns the caller's preferences
// @Summary      My settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  model.UserSettings
// @Router       /me/settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	p := h.PrincipalFromContext(c)
	out, err := h.Settings.Get(c.Request.Context(), p.UserID)
	if err != nil {
		h.Logger.Sugar().Errorw("load settings failed", "user_id", p.UserID, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, out)
}

// SaveSettings stores the caller's preferences
// @Summary      Save my settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  model.SaveSettingsRequest  true  "Settings"
// @Success      200  {object}  model.UserSettings
// @Failure      400  {object}  response.ErrorBody
// @Router       /me/settings [put]
func (h *Handler) SaveSettings(c *gin.Context) {
	var req model.SaveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("save settings bad request", "err", err)
		response.InvalidParam(c, "settings", "Invalid settings.")
		return
	}

	p := h.PrincipalFromContext(c)
	out, err := h.Settings.Save(c.Request.Context(), p.UserID, req)
	if err != nil {
		h.Logger.Sugar().Errorw("save settings failed", "user_id", p.UserID, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, out)
}

// NotificationPreferences returns how and when the caller is notified
// @Router       /me/notification-preferences [get]
func (h *Handler) NotificationPreferences(c *gin.Context) {
	p := h.PrincipalFromContext(c)
	out, err := h.Settings.NotificationPreferences(c.Request.Context(), p.UserID)
	if err != nil {
		h.Logger.Sugar().Errorw("load notification preferences failed", "user_id", p.UserID, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, out)
}
