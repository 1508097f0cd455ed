package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/synthspec/synthspec/internal/infrastructure/monitoring/logging"
	"github.com/synthspec/synthspec/internal/infrastructure/monitoring/metrics"
	"github.com/synthspec/synthspec/pkg/errors"
)

// AccessLog logs one line per request and records the HTTP metrics.  The
// metrics path label uses the route template, not the raw URL, so path
// parameters do not explode label cardinality.
func AccessLog(logger logging.Logger, m *metrics.AppMetrics) gin.HandlerFunc {
	if m == nil {
		m = metrics.NewNopAppMetrics()
	}
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		m.HTTPActiveRequests.WithLabelValues(method).Inc()
		c.Next()
		m.HTTPActiveRequests.WithLabelValues(method).Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())

		fields := []logging.Field{
			logging.String("method", method),
			logging.String("path", c.Request.URL.Path),
			logging.Int("status", status),
			logging.Duration("elapsed", elapsed),
			logging.String("request_id", GetRequestID(c)),
			logging.String("client_ip", c.ClientIP()),
		}
		if status >= http.StatusInternalServerError {
			logger.Error("request failed", fields...)
		} else {
			logger.Info("request", fields...)
		}
	}
}

// Recovery turns panics into structured 500 responses instead of gin's
// default stack dump.
func Recovery(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					logging.Any("panic", r),
					logging.String("path", c.Request.URL.Path),
					logging.String("request_id", GetRequestID(c)),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    errors.CodeInternal.String(),
						"message": "internal server error",
					},
					"request_id": GetRequestID(c),
				})
			}
		}()
		c.Next()
	}
}
