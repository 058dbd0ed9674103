package apierrors

import (
	"errors"
	"net/http"

	affiliateProcessor "affiliate-server/internal/affiliate/processor"
	authProcessor "affiliate-server/internal/auth/processor"
	"affiliate-server/internal/store"
	trackingProcessor "affiliate-server/internal/tracking/processor"

	"github.com/gin-gonic/gin"
)

// APIError pairs an HTTP status with the body sent to the client.
type APIError struct {
	StatusCode int
	Response   ErrorResponse
	cause      error
}

func (e *APIError) Error() string {
	return e.Response.Error
}

func (e *APIError) Unwrap() error {
	return e.cause
}

func newAPIError(status int, code, message string, cause error) *APIError {
	return &APIError{StatusCode: status, Response: ErrorResponse{Error: message, Code: code}, cause: cause}
}

// MapError converts processor and store errors to API errors. Unknown errors map to a
// sanitized 500.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// tracking
	case errors.Is(err, trackingProcessor.ErrReferralLinkNotFound):
		return newAPIError(http.StatusNotFound, CodeReferralLinkNotFound, "Referral link not found", err)

	case errors.Is(err, trackingProcessor.ErrInvalidPurchaseAmount):
		return newAPIError(http.StatusBadRequest, CodeInvalidAmount, "Purchase amount must be greater than zero", err)

	// affiliate
	case errors.Is(err, affiliateProcessor.ErrEmailAlreadyRegistered),
		errors.Is(err, store.ErrEmailAlreadyRegistered):
		return newAPIError(http.StatusBadRequest, CodeEmailAlreadyRegistered, "Email already registered", err)

	case errors.Is(err, affiliateProcessor.ErrProfileNotFound):
		return newAPIError(http.StatusNotFound, CodeProfileNotFound, "Affiliate profile not found", err)

	// auth
	case errors.Is(err, authProcessor.ErrInvalidCredentials):
		return newAPIError(http.StatusUnauthorized, CodeUnauthorized, "Invalid email or password", err)

	case errors.Is(err, authProcessor.ErrExpiredToken),
		errors.Is(err, authProcessor.ErrInvalidJWTToken),
		errors.Is(err, authProcessor.ErrParseJWTToken):
		return newAPIError(http.StatusUnauthorized, CodeUnauthorized, "Authorization token is missing or invalid", err)

	case errors.Is(err, authProcessor.ErrAuthNotConfigured):
		apiErr := newAPIError(http.StatusInternalServerError, CodeDependencyUnavailable, "auth is not configured", err)
		apiErr.Response.Details = "JWT_SECRET is not set"
		return apiErr

	case errors.Is(err, store.ErrNotFound):
		return newAPIError(http.StatusNotFound, CodeNotFound, "Resource not found", err)
	}

	return newAPIError(http.StatusInternalServerError, CodeInternal,
		"An internal error occurred. Please try again later.", err)
}

// RespondWithError maps err and writes the response. Internal errors are logged with their
// cause; the client only sees the sanitized message.
func RespondWithError(c *gin.Context, err error) {
	apiErr := MapError(err)
	if apiErr == nil {
		return
	}
	if apiErr.StatusCode >= http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "request failed", err)
	}
	respond(c, apiErr.StatusCode, apiErr.Response)
}
