package http

import (
	"time"

	"github.com/synthspec/synthspec/internal/application/spectra"
	"github.com/synthspec/synthspec/internal/config"
	"github.com/synthspec/synthspec/internal/domain/catalog"
	"github.com/synthspec/synthspec/internal/domain/spectrum"
	cacheredis "github.com/synthspec/synthspec/internal/infrastructure/cache/redis"
	"github.com/synthspec/synthspec/internal/infrastructure/monitoring/logging"
	"github.com/synthspec/synthspec/internal/infrastructure/monitoring/metrics"
	"github.com/synthspec/synthspec/internal/interfaces/http/handlers"
	"github.com/synthspec/synthspec/internal/interfaces/http/middleware"
)

// Bootstrap assembles the whole service from configuration: engine, catalog,
// optional Redis cache, metrics, route tree and server.  The returned
// cleanup function releases the limiter and the cache connection and must be
// called after Shutdown.
func Bootstrap(cfg *config.Config, logger logging.Logger) (*Server, func(), error) {
	appMetrics := metrics.NewNopAppMetrics()

	routerCfg := RouterConfig{
		Logger: logger,
		Mode:   cfg.Server.Mode,
	}

	if cfg.Metrics.Enabled {
		collector, err := metrics.NewCollector(metrics.Config{
			Namespace:            cfg.Metrics.Namespace,
			EnableProcessMetrics: true,
			EnableGoMetrics:      true,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		appMetrics = metrics.NewAppMetrics(collector)
		routerCfg.MetricsHandler = collector.Handler()
	}
	routerCfg.AppMetrics = appMetrics

	cleanups := []func(){}
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	svcOpts := []spectra.ServiceOption{spectra.WithMetrics(appMetrics)}
	healthDeps := map[string]handlers.Pinger{}

	if cfg.Cache.Enabled {
		client, err := cacheredis.NewClient(cfg.Cache, logger)
		if err != nil {
			return nil, nil, err
		}
		cleanups = append(cleanups, func() { client.Close() })
		svcOpts = append(svcOpts, spectra.WithCache(
			cacheredis.NewSpectraCache(client, cfg.Cache, logger)))
		healthDeps["redis"] = client
	}

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewTokenBucketLimiter(
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, 5*time.Minute)
		cleanups = append(cleanups, limiter.Stop)
		routerCfg.RateLimiter = limiter
	}

	svc := spectra.NewService(spectrum.NewSynthesizer(), catalog.Default(), logger, svcOpts...)
	routerCfg.SpectraHandler = handlers.NewSpectraHandler(svc)
	routerCfg.CatalogHandler = handlers.NewCatalogHandler(svc)
	routerCfg.HealthHandler = handlers.NewHealthHandler(appMetrics, healthDeps)

	server := NewServer(cfg.Server, NewRouter(routerCfg), logger)
	return server, cleanup, nil
}
