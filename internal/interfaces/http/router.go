// Package http wires the gin route tree and owns the server lifecycle.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synthspec/synthspec/internal/infrastructure/monitoring/logging"
	"github.com/synthspec/synthspec/internal/infrastructure/monitoring/metrics"
	"github.com/synthspec/synthspec/internal/interfaces/http/handlers"
	"github.com/synthspec/synthspec/internal/interfaces/http/middleware"
)

// RouterConfig aggregates everything the route tree needs.  Nil handlers
// leave their routes unmounted; nil middleware pieces are skipped.
type RouterConfig struct {
	SpectraHandler *handlers.SpectraHandler
	CatalogHandler *handlers.CatalogHandler
	HealthHandler  *handlers.HealthHandler

	RateLimiter    *middleware.TokenBucketLimiter
	Logger         logging.Logger
	AppMetrics     *metrics.AppMetrics
	MetricsHandler http.Handler

	// Mode is the gin mode: "debug", "release" or "test".
	Mode string
}

// NewRouter builds the complete route tree.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.AccessLog(logger, cfg.AppMetrics))
	if cfg.RateLimiter != nil {
		r.Use(middleware.RateLimit(cfg.RateLimiter))
	}

	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.Liveness)
		r.GET("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(cfg.MetricsHandler))
	}

	api := r.Group("/api/v1")
	{
		if cfg.SpectraHandler != nil {
			api.POST("/spectra/synthesize", cfg.SpectraHandler.Synthesize)
			api.POST("/spectra/detect", cfg.SpectraHandler.Detect)
		}
		if cfg.CatalogHandler != nil {
			api.GET("/catalog/molecules", cfg.CatalogHandler.List)
			api.GET("/catalog/molecules/:name", cfg.CatalogHandler.Get)
		}
	}

	return r
}
