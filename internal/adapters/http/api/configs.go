// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/fairslot/internal/adapters/repository"
	"github.com/okian/fairslot/internal/domain/model"
)

// ConfigsHandler handles working-hours override authoring requests.
type ConfigsHandler struct {
	deps Dependencies
}

// NewConfigsHandler creates a new configs handler.
func NewConfigsHandler(deps Dependencies) *ConfigsHandler {
	return &ConfigsHandler{deps: deps}
}

// HandleConfigs handles GET /configs requests.
func (h *ConfigsHandler) HandleConfigs(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_configs"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	configs, err := h.deps.ListConfigs(r.Context())
	if err != nil {
		writeEngineError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, configs)
}

// HandleConfig handles GET, PUT, and DELETE /configs/{country} requests.
// GET supports ?effective=true to resolve through the global default.
func (h *ConfigsHandler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	const op = "api.config"
	country := strings.TrimPrefix(r.URL.Path, "/configs/")
	if country == "" || strings.Contains(country, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	country = strings.ToUpper(country)

	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r, country)
	case http.MethodPut:
		h.handlePut(w, r, country)
	case http.MethodDelete:
		h.handleDelete(w, r, country)
	default:
		http.NotFound(w, r)
	}
}

func (h *ConfigsHandler) handleGet(w http.ResponseWriter, r *http.Request, country string) {
	const op = "api.get_config"
	if r.URL.Query().Get("effective") == "true" {
		cfg, err := h.deps.ResolveConfig(r.Context(), country)
		if err != nil {
			writeEngineError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
		return
	}

	cfg, err := h.deps.GetConfig(r.Context(), country)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeEngineError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (h *ConfigsHandler) handlePut(w http.ResponseWriter, r *http.Request, country string) {
	const op = "api.put_config"
	var cfg model.WorkingHoursConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	// The path is authoritative for the country key.
	cfg.CountryCode = country

	result, err := h.deps.PutConfig(r.Context(), cfg)
	if err != nil {
		writeEngineError(w, op, err)
		return
	}
	if !result.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ConfigsHandler) handleDelete(w http.ResponseWriter, r *http.Request, country string) {
	const op = "api.delete_config"
	if err := h.deps.DeleteConfig(r.Context(), country); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeEngineError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
