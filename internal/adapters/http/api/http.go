// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	service "github.com/okian/fairslot/internal/app"
	"github.com/okian/fairslot/internal/domain/model"
	"github.com/okian/fairslot/internal/domain/schedule"
	"github.com/okian/fairslot/internal/domain/types"
	"github.com/okian/fairslot/internal/domain/workhours"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Evaluate(ctx context.Context, proposal model.MeetingProposal) ([]types.ParticipantStatus, types.EquityScoreResult, error)
	Heatmap(ctx context.Context, date model.Date, participants []model.Participant) ([]types.TimeSlotScore, error)
	Suggest(ctx context.Context, date model.Date, participants []model.Participant, limit int) ([]types.TimeSlotScore, error)

	PutConfig(ctx context.Context, cfg model.WorkingHoursConfig) (workhours.Result, error)
	GetConfig(ctx context.Context, countryCode string) (model.WorkingHoursConfig, error)
	ListConfigs(ctx context.Context) ([]model.WorkingHoursConfig, error)
	DeleteConfig(ctx context.Context, countryCode string) error
	ResolveConfig(ctx context.Context, countryCode string) (model.WorkingHoursConfig, error)

	Holiday(ctx context.Context, countryCode string, date model.Date) (model.HolidayEntry, bool, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	evaluateHandler *EvaluateHandler
	heatmapHandler  *HeatmapHandler
	suggestHandler  *SuggestHandler
	configsHandler  *ConfigsHandler
	holidaysHandler *HolidaysHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		evaluateHandler: NewEvaluateHandler(deps),
		heatmapHandler:  NewHeatmapHandler(deps),
		suggestHandler:  NewSuggestHandler(deps),
		configsHandler:  NewConfigsHandler(deps),
		holidaysHandler: NewHolidaysHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/evaluate", MetricsMiddleware(s.evaluateHandler.HandleEvaluate, "evaluate"))
	mux.HandleFunc("/heatmap", MetricsMiddleware(s.heatmapHandler.HandleHeatmap, "heatmap"))
	mux.HandleFunc("/suggest", MetricsMiddleware(s.suggestHandler.HandleSuggest, "suggest"))
	mux.HandleFunc("/configs", MetricsMiddleware(s.configsHandler.HandleConfigs, "configs"))
	mux.HandleFunc("/configs/", MetricsMiddleware(s.configsHandler.HandleConfig, "configs"))
	mux.HandleFunc("/holidays", MetricsMiddleware(s.holidaysHandler.HandleGetHoliday, "holidays"))
}

// participantRequest mirrors the participant schema shared by the evaluate,
// heatmap, and suggest endpoints.
type participantRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Timezone    string `json:"timezone"`
	CountryCode string `json:"country_code"`
	Notes       string `json:"notes"`
}

func (p participantRequest) validate() error {
	if strings.TrimSpace(p.Timezone) == "" {
		return errors.New("missing participant timezone")
	}
	return nil
}

// toModel converts the request shape, assigning a fresh ID when the caller
// did not supply one.
func (p participantRequest) toModel() model.Participant {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		id = uuid.NewString()
	}
	return model.Participant{
		ID:          id,
		Name:        p.Name,
		Timezone:    p.Timezone,
		CountryCode: p.CountryCode,
		Notes:       p.Notes,
	}
}

func participantsFromRequest(reqs []participantRequest) ([]model.Participant, error) {
	if len(reqs) == 0 {
		return nil, errors.New("missing participants")
	}
	out := make([]model.Participant, 0, len(reqs))
	for _, r := range reqs {
		if err := r.validate(); err != nil {
			return nil, err
		}
		out = append(out, r.toModel())
	}
	return out, nil
}

// parseDateField parses the shared "date" request field.
func parseDateField(raw string) (model.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return model.Date{}, errors.New("missing date")
	}
	date, err := model.ParseDate(raw)
	if err != nil {
		return model.Date{}, errors.New("invalid date; must be YYYY-MM-DD")
	}
	return date, nil
}

// parseInstantField parses the shared "proposed_time" request field.
func parseInstantField(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, errors.New("missing proposed_time")
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.New("invalid proposed_time; must be RFC3339")
	}
	return t.UTC(), nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeEngineError translates engine and service error kinds to HTTP codes.
func writeEngineError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, schedule.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_input", err)
	case errors.Is(err, service.ErrTooManyParticipants):
		writeError(w, http.StatusBadRequest, "too_many_participants", err)
	case errors.Is(err, service.ErrLimitExceeded):
		writeError(w, http.StatusBadRequest, "limit_exceeded", err)
	case errors.Is(err, service.ErrNotStarted):
		writeError(w, http.StatusServiceUnavailable, "unavailable", NewKind(op, ErrUnavailable))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
