package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/synthspec/synthspec/internal/infrastructure/monitoring/metrics"
)

// Pinger is anything whose liveness gates readiness (the Redis client).
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the orchestrator probes.
type HealthHandler struct {
	deps    map[string]Pinger
	metrics *metrics.AppMetrics
	started time.Time
}

// NewHealthHandler creates the handler.  deps maps a check name to the
// dependency it probes; pass nothing when the service runs standalone.
func NewHealthHandler(m *metrics.AppMetrics, deps map[string]Pinger) *HealthHandler {
	if m == nil {
		m = metrics.NewNopAppMetrics()
	}
	return &HealthHandler{deps: deps, metrics: m, started: time.Now()}
}

// Liveness handles GET /healthz: the process is up.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.started).Truncate(time.Second).String(),
	})
}

// Readiness handles GET /readyz: every registered dependency must answer a
// ping within the probe deadline.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := gin.H{}
	ready := true
	for name, dep := range h.deps {
		if err := dep.Ping(ctx); err != nil {
			checks[name] = "unavailable: " + err.Error()
			h.metrics.HealthCheckStatus.WithLabelValues(name).Set(0)
			ready = false
			continue
		}
		checks[name] = "ok"
		h.metrics.HealthCheckStatus.WithLabelValues(name).Set(1)
	}

	status := http.StatusOK
	state := "ready"
	if !ready {
		status = http.StatusServiceUnavailable
		state = "not ready"
	}
	c.JSON(status, gin.H{"status": state, "checks": checks})
}
