// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/okian/fairslot/internal/domain/model"
	"github.com/okian/fairslot/internal/domain/types"
)

// defaultDurationMinutes is assumed when a proposal omits its duration.
const defaultDurationMinutes = 30

// EvaluateHandler handles meeting proposal evaluation requests.
type EvaluateHandler struct {
	deps Dependencies
}

// NewEvaluateHandler creates a new evaluate handler.
func NewEvaluateHandler(deps Dependencies) *EvaluateHandler {
	return &EvaluateHandler{deps: deps}
}

// evaluateRequest mirrors the OpenAPI schema for POST /evaluate.
type evaluateRequest struct {
	ProposedTime    string               `json:"proposed_time"` // RFC3339, UTC
	DurationMinutes int                  `json:"duration_minutes"`
	Participants    []participantRequest `json:"participants"`
}

// evaluateResponse carries the per-participant statuses, the equity result,
// and the presentation labels derived from the engine's shared thresholds.
type evaluateResponse struct {
	Statuses []types.ParticipantStatus `json:"statuses"`
	Equity   types.EquityScoreResult   `json:"equity"`
	Quality  string                    `json:"quality,omitempty"`
	Severity string                    `json:"severity,omitempty"`
}

// HandleEvaluate handles POST /evaluate requests.
func (h *EvaluateHandler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	const op = "api.evaluate"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	instant, err := parseInstantField(req.ProposedTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	participants, err := participantsFromRequest(req.Participants)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	duration := req.DurationMinutes
	if duration <= 0 {
		duration = defaultDurationMinutes
	}

	statuses, equityResult, err := h.deps.Evaluate(r.Context(), model.MeetingProposal{
		ProposedTime:    instant,
		DurationMinutes: duration,
		Participants:    participants,
	})
	if err != nil {
		writeEngineError(w, op, err)
		return
	}

	resp := evaluateResponse{Statuses: statuses, Equity: equityResult}
	if equityResult.Score != nil {
		resp.Quality = types.QualityLabel(*equityResult.Score)
		resp.Severity = types.SeverityTier(*equityResult.Score)
	}
	writeJSON(w, http.StatusOK, resp)
}
