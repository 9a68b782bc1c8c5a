// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/okian/fairslot/internal/domain/types"
)

// HeatmapHandler handles day-heatmap requests.
type HeatmapHandler struct {
	deps Dependencies
}

// NewHeatmapHandler creates a new heatmap handler.
func NewHeatmapHandler(deps Dependencies) *HeatmapHandler {
	return &HeatmapHandler{deps: deps}
}

// heatmapRequest mirrors the OpenAPI schema for POST /heatmap.
type heatmapRequest struct {
	Date         string               `json:"date"` // YYYY-MM-DD
	Participants []participantRequest `json:"participants"`
}

type heatmapResponse struct {
	Date  string                `json:"date"`
	Slots []types.TimeSlotScore `json:"slots"`
}

// HandleHeatmap handles POST /heatmap requests.
func (h *HeatmapHandler) HandleHeatmap(w http.ResponseWriter, r *http.Request) {
	const op = "api.heatmap"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req heatmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	date, err := parseDateField(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	participants, err := participantsFromRequest(req.Participants)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	slots, err := h.deps.Heatmap(r.Context(), date, participants)
	if err != nil {
		writeEngineError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, heatmapResponse{Date: date.String(), Slots: slots})
}
