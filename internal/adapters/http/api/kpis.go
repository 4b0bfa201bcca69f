package api

import (
	"context"
	"net/http"

	"github.com/okian/salesboard/internal/domain/types"
)

// KPIsDependencies defines the interface for KPI card reads.
type KPIsDependencies interface {
	KPIs(ctx context.Context) ([]types.KPICard, error)
}

// KPIsHandler handles KPI requests.
type KPIsHandler struct {
	deps KPIsDependencies
}

// NewKPIsHandler creates a new KPI handler.
func NewKPIsHandler(deps KPIsDependencies) *KPIsHandler {
	return &KPIsHandler{deps: deps}
}

// HandleGetKPIs handles GET /api/kpis requests.
func (h *KPIsHandler) HandleGetKPIs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	cards, err := h.deps.KPIs(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}
