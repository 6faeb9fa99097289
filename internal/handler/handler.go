package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/onabhani/SimpleDashboard/internal/auth"
	"github.com/onabhani/SimpleDashboard/internal/dashboard"
	"github.com/onabhani/SimpleDashboard/internal/menu"
	"github.com/onabhani/SimpleDashboard/internal/search"
	"github.com/onabhani/SimpleDashboard/internal/settings"
	"github.com/onabhani/SimpleDashboard/internal/tiles"
	"github.com/onabhani/SimpleDashboard/pkg/model"
	"go.uber.org/zap"
)

const principalKey = "principal"

type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByID(ctx context.Context, id int64) (model.User, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Logger    *zap.Logger
	Users     UserStore
	DB        Pinger
	Sessions  *auth.SessionMaker
	Search    *search.Searcher
	Dashboard *dashboard.Service
	Menu      *menu.Service
	Tiles     *tiles.Service
	Settings  *settings.Service
}

// SetPrincipal stores the authenticated caller on the request context.
func SetPrincipal(c *gin.Context, p *auth.Principal) {
	c.Set(principalKey, p)
}

// PrincipalFromContext returns the caller set by the auth middleware, or nil.
func (h *Handler) PrincipalFromContext(c *gin.Context) *auth.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*auth.Principal)
	return p
}
