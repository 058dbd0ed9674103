package apierrors

import (
	"net/http"

	"affiliate-server/internal/observability"

	"github.com/gin-gonic/gin"
)

var logger = observability.NewLogger()

// Error codes
const (
	CodeNotFound               = "NOT_FOUND"
	CodeInvalidInput           = "INVALID_INPUT"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeForbidden              = "FORBIDDEN"
	CodeInternal               = "INTERNAL_ERROR"
	CodeDependencyUnavailable  = "DEPENDENCY_UNAVAILABLE"
	CodeEmailAlreadyRegistered = "EMAIL_ALREADY_REGISTERED"
	CodeReferralLinkNotFound   = "REFERRAL_LINK_NOT_FOUND"
	CodeProfileNotFound        = "PROFILE_NOT_FOUND"
	CodeInvalidAmount          = "INVALID_AMOUNT"
	CodeRateLimited            = "RATE_LIMIT_EXCEEDED"
)

// ErrorResponse is the JSON structure returned to API clients
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// respond writes the error response and logs correlation info
func respond(c *gin.Context, statusCode int, body ErrorResponse) {
	ctx := c.Request.Context()
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "status_code", Value: statusCode},
		observability.Field{Key: "error_code", Value: body.Code},
		observability.Field{Key: "error_message", Value: body.Error},
	)
	logger.Info(ctx, "API error response")

	c.AbortWithStatusJSON(statusCode, body)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, code, message string) {
	respond(c, http.StatusNotFound, ErrorResponse{Error: message, Code: code})
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, code, message string) {
	respond(c, http.StatusBadRequest, ErrorResponse{Error: message, Code: code})
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	respond(c, http.StatusUnauthorized, ErrorResponse{Error: message, Code: CodeUnauthorized})
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	respond(c, http.StatusForbidden, ErrorResponse{Error: message, Code: CodeForbidden})
}

// TooManyRequests sends a 429 response
func TooManyRequests(c *gin.Context, details string) {
	respond(c, http.StatusTooManyRequests, ErrorResponse{
		Error:   "Rate limit exceeded",
		Code:    CodeRateLimited,
		Details: details,
	})
}

// DependencyUnavailable sends a 500 naming the missing backing service. The process keeps
// serving so operators can see the problem on /health.
func DependencyUnavailable(c *gin.Context, dependency, details string) {
	respond(c, http.StatusInternalServerError, ErrorResponse{
		Error:   dependency + " is not configured",
		Code:    CodeDependencyUnavailable,
		Details: details,
	})
}

// InternalError sends a sanitized 500 response - never exposes internal details
func InternalError(c *gin.Context, internalErr error) {
	ctx := c.Request.Context()
	logger.Error(ctx, "internal error", internalErr)
	respond(c, http.StatusInternalServerError, ErrorResponse{
		Error: "An internal error occurred. Please try again later.",
		Code:  CodeInternal,
	})
}
