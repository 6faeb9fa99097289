package main

import (
	"errors"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/onabhani/SimpleDashboard/internal/auth"
	"github.com/onabhani/SimpleDashboard/internal/handler"
	"github.com/onabhani/SimpleDashboard/pkg/model"
	"github.com/onabhani/SimpleDashboard/pkg/response"
	"golang.org/x/time/rate"
)

const requestIDHeader = "X-Request-ID"

// AuthMiddleware resolves the session token to a live user.
func (app *application) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			response.Unauthorized(c, "")
			return
		}

		claims, err := app.Handler.Sessions.Verify(token)
		if err != nil {
			app.Logger.Sugar().Debugw("rejected session token", "err", err)
			response.Unauthorized(c, "")
			return
		}

		// the account may have been removed since the token was issued
		user, err := app.Handler.Users.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				app.Logger.Sugar().Errorw("session user lookup failed", "user_id", claims.UserID, "err", err)
			}
			response.Unauthorized(c, "")
			return
		}

		handler.SetPrincipal(c, auth.NewPrincipal(user))
		c.Next()
	}
}

// RequireAny lets the request through when the caller holds at least one of
// caps, otherwise it answers 403 with message.
func (app *application) RequireAny(message string, caps ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := app.Handler.PrincipalFromContext(c)
		if p == nil {
			response.Unauthorized(c, "")
			return
		}
		if !p.CanAny(caps...) {
			response.Forbidden(c, message)
			return
		}
		c.Next()
	}
}

// tokenFromRequest reads the session token from X-WP-Nonce or a bearer
// Authorization header.
func tokenFromRequest(c *gin.Context) string {
	if nonce := strings.TrimSpace(c.GetHeader("X-WP-Nonce")); nonce != "" {
		return nonce
	}
	fields := strings.Fields(c.GetHeader("Authorization"))
	if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		return fields[1]
	}
	return ""
}

func (app *application) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Next()

		app.Logger.Sugar().Infow("http",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func (app *application) cors() gin.HandlerFunc {
	origins := app.Config.GetCORSOrigins()
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && slices.Contains(origins, origin) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-WP-Nonce, X-Request-ID, Accept, Cache-Control, X-Requested-With")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
			h.Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiter keeps one token bucket per client IP. Idle buckets are
// swept at most once a minute.
type clientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	rps       rate.Limit
	burst     int
	lastSweep time.Time
}

func newClientLimiter(rps float64, burst int) *clientLimiter {
	return &clientLimiter{clients: map[string]*client{}, rps: rate.Limit(rps), burst: burst, lastSweep: time.Now()}
}

func (l *clientLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastSweep) > time.Minute {
		for k, cl := range l.clients {
			if now.Sub(cl.lastSeen) > 3*time.Minute {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	cl, ok := l.clients[ip]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter.Allow()
}

func (app *application) rateLimit() gin.HandlerFunc {
	if app.limiter == nil {
		app.limiter = newClientLimiter(app.Config.Limiter.RPS, app.Config.Limiter.Burst)
	}
	return func(c *gin.Context) {
		ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
		if err != nil {
			ip = c.Request.RemoteAddr
		}
		if !app.limiter.allow(ip) {
			response.TooManyRequests(c, "")
			return
		}
		c.Next()
	}
}
