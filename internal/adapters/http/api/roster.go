package api

import (
	"context"
	"net/http"

	"github.com/okian/salesboard/internal/domain/selection"
	"github.com/okian/salesboard/internal/domain/types"
)

// RosterDependencies defines the interface for filtered roster reads.
type RosterDependencies interface {
	Roster(ctx context.Context, sel selection.State) ([]types.RosterRow, error)
}

// RosterHandler handles roster requests.
type RosterHandler struct {
	deps RosterDependencies
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(deps RosterDependencies) *RosterHandler {
	return &RosterHandler{deps: deps}
}

// HandleGetRoster handles GET /api/roster?status=S&name=N... requests.
// The name parameter may repeat; none selects everyone.
func (h *RosterHandler) HandleGetRoster(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	sel, err := parseSelection(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	rows, err := h.deps.Roster(r.Context(), sel)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
