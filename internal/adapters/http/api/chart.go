package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/okian/salesboard/internal/adapters/chart"
	"github.com/okian/salesboard/internal/domain/selection"
	"github.com/okian/salesboard/pkg/logger"
	"github.com/okian/salesboard/pkg/metrics"
)

// ChartHandler handles chart image requests.
type ChartHandler struct {
	deps     Dependencies
	renderer ChartRenderer
	logger   logger.Logger
}

// NewChartHandler creates a new chart handler.
func NewChartHandler(deps Dependencies, renderer ChartRenderer, log logger.Logger) *ChartHandler {
	return &ChartHandler{deps: deps, renderer: renderer, logger: log}
}

// HandleChart handles GET /chart.svg?metric=M&compact=B requests.
func (h *ChartHandler) HandleChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	metric, err := selection.ParseMetric(q.Get(paramMetric))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}
	variant := chart.Full
	if v := q.Get("compact"); v != "" {
		compact, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: invalid compact %q", ErrBadRequest, v))
			return
		}
		if compact {
			variant = chart.Compact
		}
	}

	points, err := h.deps.Points(r.Context(), metric)
	if err != nil {
		logError(r.Context(), h.logger, "chart series failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", fmt.Errorf("%w: %w", ErrInternal, err))
		return
	}

	start := time.Now()
	var buf bytes.Buffer
	if err := h.renderer.RenderSVG(&buf, metric, points, variant); err != nil {
		metrics.RecordChartRenderError()
		if errors.Is(err, chart.ErrNotEnoughPoints) {
			metrics.RecordErrorByComponent("chart", "not_enough_points")
			writeError(w, http.StatusUnprocessableEntity, "not_enough_points", err)
			return
		}
		metrics.RecordErrorByComponent("chart", "render")
		logError(r.Context(), h.logger, "chart render failed", err)
		writeError(w, http.StatusInternalServerError, "render_error", fmt.Errorf("%w: %w", ErrRender, err))
		return
	}
	metrics.RecordChartRender(metric.String(), variant.String(), float64(time.Since(start).Microseconds())/1000)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
