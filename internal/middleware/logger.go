package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"deliciae/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Logging injects a request-scoped logger and writes one line per request.
func Logging(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader("X-Request-Id")
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Header("X-Request-Id", reqID)

		l := base.With(
			"req_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"remote", c.ClientIP(),
		)
		logging.With(c, l)

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"status", status,
			"dur_ms", time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}

		if status >= http.StatusBadRequest {
			l.Error("http_request", attrs...)
			return
		}
		l.Info("http_request", attrs...)
	}
}
