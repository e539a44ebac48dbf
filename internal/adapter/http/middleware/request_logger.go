package middleware

import (
	"strconv"
	"time"

	"academia_bere/internal/infrastructure/metrics"
	"academia_bere/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestLogger tags the request context with a request id, logs one line per
// request and records the HTTP metrics.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		l := logger.WithRequestID(requestID)
		c.Request = c.Request.WithContext(logger.NewContext(c.Request.Context(), &l))

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)
		statusLabel := strconv.Itoa(status)
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, statusLabel).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, statusLabel).Observe(elapsed.Seconds())

		event := logger.WithContext(c.Request.Context()).Info()
		if status >= 500 {
			event = logger.WithContext(c.Request.Context()).Error()
		}
		if identity := IdentityFrom(c); identity != nil {
			event = event.Str("user_id", identity.UID)
		}
		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("duration", elapsed).
			Str("client_ip", c.ClientIP()).
			Msg("[http] request")
	}
}
