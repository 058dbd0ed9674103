package ratelimit

import (
	"fmt"
	"math"

	"affiliate-server/internal/apierrors"
	"affiliate-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits requests per client IP within scope. Store failures let the request through.
func (s *Service) Middleware(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.Enabled() {
			c.Next()
			return
		}

		clientIP := observability.GetRealClientIP(c)
		ctx := observability.WithFields(c.Request.Context(),
			observability.Field{Key: "rate_limit_scope", Value: scope},
			observability.Field{Key: "rate_limit_rpm", Value: s.limit},
		)

		result, err := s.Check(ctx, fmt.Sprintf("%s:%s", scope, clientIP))
		if err != nil {
			s.logger.Error(ctx, "rate limit check failed, allowing request", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			retryAfter := int(math.Ceil(result.RetryAfter.Seconds()))
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			s.logger.Warn(ctx, "rate limit exceeded")
			apierrors.TooManyRequests(c, fmt.Sprintf("retry after %d seconds", retryAfter))
			return
		}

		c.Next()
	}
}
