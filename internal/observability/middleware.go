package observability

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestLogger logs each admin-surface request (healthz/metrics/catalog),
// tagged with the service instance name and a per-request id so a single
// operator-facing log stream can be correlated across the handful of
// routes adminhttp exposes.
func RequestLogger(instance string, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		started := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		elapsed := time.Since(started)
		status := c.Writer.Status()

		log := logger.Info()
		switch {
		case status >= 500:
			log = logger.Error()
		case status >= 400:
			log = logger.Warn()
		}

		log.
			Str("component", "adminhttp").
			Str("instance", instance).
			Str("request_id", requestID).
			Str("route", route).
			Str("method", c.Request.Method).
			Int("status", status).
			Int("response_bytes", c.Writer.Size()).
			Dur("elapsed", elapsed).
			Msg("adminhttp request")
	}
}

// RequestMetricsMiddleware records each admin-surface request against
// the adminRequestsTotal counter, keyed the same way RequestLogger logs
// it (instance/method/route/status).
func RequestMetricsMiddleware(instance string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		RecordAdminRequest(instance, c.Request.Method, route, c.Writer.Status())
	}
}
