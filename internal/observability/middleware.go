package observability

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Middleware attaches a request id and request fields to the request context, logs each request
// and turns panics into a 500.
func Middleware(l *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("req-%s", uuid.New().String())
			c.Request.Header.Set("X-Request-ID", requestID)
		}
		c.Writer.Header().Set("X-Request-ID", requestID)

		ctx := WithFields(context.Background(),
			Field{"request_id", requestID},
			Field{"path", c.Request.URL.Path},
			Field{"method", c.Request.Method},
			Field{"client_ip", GetRealClientIP(c)},
		)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				l.Error(ctx, "recovered from panic", fmt.Errorf("reason: %+v", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}

			if c.Request.URL.Path == "/health" || c.Request.URL.Path == "/api/affiliate/health" {
				return
			}
			latency := time.Since(start)
			l.Info(WithFields(ctx, Field{"latency_ns", latency.Nanoseconds()}), "request processed")
			l.Metrics(ctx,
				MetricField{"status", c.Writer.Status()},
				MetricField{"latency", latency},
			)
		}()
		c.Next()
	}
}
