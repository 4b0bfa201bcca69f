package api

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/salesboard/pkg/metrics"
)

// Health states reported by /healthz.
const (
	healthOK       = "ok"
	healthStarting = "starting"
)

// HealthHandler reports whether the service is ready and exposes the
// metrics registry.
type HealthHandler struct {
	stats StatsProvider
}

// NewHealthHandler creates a health handler reading readiness from stats.
func NewHealthHandler(stats StatsProvider) *HealthHandler {
	return &HealthHandler{stats: stats}
}

type healthResponse struct {
	Status string `json:"status"`
}

// HandleHealth handles GET /healthz. Scrapers asking for the text or
// OpenMetrics exposition get the metrics; everyone else gets a JSON status,
// 503 until the service has loaded its dataset.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	if wantsExposition(r.Header.Get("Accept")) {
		h.HandleMetrics(w, r)
		return
	}
	if started, _ := h.stats.GetStats()["started"].(bool); !started {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: healthStarting})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: healthOK})
}

// HandleMetrics handles GET /metrics.
func (h *HealthHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{EnableOpenMetrics: true}).ServeHTTP(w, r)
}

func wantsExposition(accept string) bool {
	return strings.Contains(accept, "application/openmetrics-text") || strings.Contains(accept, "text/plain")
}
