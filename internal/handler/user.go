package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onabhani/SimpleDashboard/internal/auth"
	"github.com/onabhani/SimpleDashboard/pkg"
	"github.com/onabhani/SimpleDashboard/pkg/model"
	"github.com/onabhani/SimpleDashboard/pkg/response"
)

const invalidLoginMessage = "Invalid email or password."

// Login verifies credentials and returns a session token
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  model.LoginRequest  true  "Credentials"
// @Success      200   {object}  model.TokenResponse
// @Failure      401   {object}  response.ErrorBody
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("login bad request", "err", err)
		response.InvalidParam(c, "email", "A valid email and password are required.")
		return
	}

	ctx := c.Request.Context()
	user, err := h.Users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			h.Logger.Sugar().Errorw("login lookup failed", "email", req.Email, "err", err)
			response.InternalError(c, "")
			return
		}
		h.Logger.Sugar().Warnw("login user not found", "email", req.Email)
		response.Error(c, http.StatusUnauthorized, response.CodeInvalidLogin, invalidLoginMessage)
		return
	}
	if !pkg.PasswordMatches(user.PasswordHash, req.Password) {
		h.Logger.Sugar().Warnw("login password mismatch", "user_id", user.UserID)
		response.Error(c, http.StatusUnauthorized, response.CodeInvalidLogin, invalidLoginMessage)
		return
	}

	token, claims, err := h.Sessions.Issue(user.UserID, user.Email)
	if err != nil {
		h.Logger.Sugar().Errorw("error creating token", "err", err)
		response.InternalError(c, "could not create session")
		return
	}

	response.OK(c, model.TokenResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAtTime().Unix(),
		User:      userResponse(auth.NewPrincipal(user)),
	})
}

// Me returns the current user
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  model.UserResponse
// @Failure      401  {object}  response.ErrorBody
// @Router       /me [get]
func (h *Handler) Me(c *gin.Context) {
	p := h.PrincipalFromContext(c)
	if p == nil {
		response.Unauthorized(c, "")
		return
	}
	response.OK(c, userResponse(p))
}

func userResponse(p *auth.Principal) model.UserResponse {
	roles := p.Roles
	if roles == nil {
		roles = []string{}
	}
	return model.UserResponse{
		ID:        p.UserID,
		Name:      p.DisplayName,
		Email:     p.Email,
		Roles:     roles,
		IsManager: p.Can(auth.CapViewManagerDashboard),
	}
}
