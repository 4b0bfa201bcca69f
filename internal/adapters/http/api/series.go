package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/okian/salesboard/internal/domain/model"
	"github.com/okian/salesboard/internal/domain/selection"
	"github.com/okian/salesboard/internal/domain/types"
)

// SeriesDependencies defines the interface for metric history reads.
type SeriesDependencies interface {
	Series(ctx context.Context, metric model.Metric) ([]types.SeriesPoint, error)
}

// SeriesHandler handles metric history requests.
type SeriesHandler struct {
	deps SeriesDependencies
}

// NewSeriesHandler creates a new series handler.
func NewSeriesHandler(deps SeriesDependencies) *SeriesHandler {
	return &SeriesHandler{deps: deps}
}

// HandleGetSeries handles GET /api/series?metric=M requests.
func (h *SeriesHandler) HandleGetSeries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	metric, err := selection.ParseMetric(r.URL.Query().Get(paramMetric))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}
	points, err := h.deps.Series(r.Context(), metric)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}
