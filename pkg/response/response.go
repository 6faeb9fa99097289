package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes shared with the dashboard front end.
const (
	CodeNotLoggedIn    = "rest_not_logged_in"
	CodeForbidden      = "rest_forbidden"
	CodeInvalidParam   = "rest_invalid_param"
	CodeMissingParam   = "rest_missing_callback_param"
	CodeFormsNotActive = "gravity_forms_not_active"
	CodeNotFound       = "rest_not_found"
	CodeInternal       = "rest_internal_error"
	CodeRateLimited    = "rest_rate_limited"
	CodeInvalidLogin   = "rest_invalid_login"
)

// ErrorBody mirrors the WordPress REST error shape the front end already parses.
type ErrorBody struct {
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Data    ErrorData `json:"data"`
}

type ErrorData struct {
	Status int    `json:"status"`
	Params string `json:"params,omitempty"`
}

// OK sends data as the bare response body.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// --- Error Responses ---

// Error aborts the request with a structured error body.
func Error(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Code:    code,
		Message: message,
		Data:    ErrorData{Status: status},
	})
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "You must be logged in to access this endpoint."
	}
	Error(c, http.StatusUnauthorized, CodeNotLoggedIn, message)
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "You do not have permission to access this endpoint."
	}
	Error(c, http.StatusForbidden, CodeForbidden, message)
}

// InvalidParam sends a 400 response naming the offending parameter.
func InvalidParam(c *gin.Context, param, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorBody{
		Code:    CodeInvalidParam,
		Message: message,
		Data:    ErrorData{Status: http.StatusBadRequest, Params: param},
	})
}

// MissingParam sends a 400 response for an absent required parameter.
func MissingParam(c *gin.Context, param string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorBody{
		Code:    CodeMissingParam,
		Message: "Missing parameter(s): " + param,
		Data:    ErrorData{Status: http.StatusBadRequest, Params: param},
	})
}

// PreconditionFailed sends a 400 response for a missing backend dependency.
func PreconditionFailed(c *gin.Context, code, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}
	Error(c, http.StatusNotFound, CodeNotFound, message)
}

// InternalError sends a 500 response
// Note: Never expose internal error details to clients
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	Error(c, http.StatusInternalServerError, CodeInternal, message)
}

// TooManyRequests sends a 429 response
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "rate limit exceeded, please try again later"
	}
	Error(c, http.StatusTooManyRequests, CodeRateLimited, message)
}
