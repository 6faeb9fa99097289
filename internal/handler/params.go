package handler

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/onabhani/SimpleDashboard/pkg"
	"github.com/onabhani/SimpleDashboard/pkg/response"
)

// enumParam reads a sanitized query value that must be one of allowed.
// An invalid value aborts the request with a 400.
func enumParam(c *gin.Context, name, def string, allowed ...string) (string, bool) {
	v := pkg.SanitizeTextField(c.Query(name))
	if v == "" {
		return def, true
	}
	if !slices.Contains(allowed, v) {
		response.InvalidParam(c, name, fmt.Sprintf("%s is not one of %s.", name, strings.Join(allowed, ", ")))
		return "", false
	}
	return v, true
}

// absIntParam reads an integer query value and drops its sign.
func absIntParam(c *gin.Context, name string, def int) (int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		response.InvalidParam(c, name, fmt.Sprintf("%s is not of type integer.", name))
		return 0, false
	}
	switch {
	case n == math.MinInt:
		n = math.MaxInt
	case n < 0:
		n = -n
	}
	return n, true
}

func textParam(c *gin.Context, name, def string) string {
	if v := pkg.SanitizeTextField(c.Query(name)); v != "" {
		return v
	}
	return def
}
