// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/okian/fairslot/internal/domain/types"
)

// SuggestHandler handles optimal-time suggestion requests.
type SuggestHandler struct {
	deps Dependencies
}

// NewSuggestHandler creates a new suggest handler.
func NewSuggestHandler(deps Dependencies) *SuggestHandler {
	return &SuggestHandler{deps: deps}
}

// suggestRequest mirrors the OpenAPI schema for POST /suggest. A zero limit
// means the service default.
type suggestRequest struct {
	Date         string               `json:"date"` // YYYY-MM-DD
	Participants []participantRequest `json:"participants"`
	Limit        int                  `json:"limit"`
}

type suggestResponse struct {
	Date        string                `json:"date"`
	Suggestions []types.TimeSlotScore `json:"suggestions"`
}

// HandleSuggest handles POST /suggest requests.
func (h *SuggestHandler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	const op = "api.suggest"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req suggestRequest
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
	if req.Limit < 0 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	suggestions, err := h.deps.Suggest(r.Context(), date, participants, req.Limit)
	if err != nil {
		writeEngineError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestResponse{Date: date.String(), Suggestions: suggestions})
}
