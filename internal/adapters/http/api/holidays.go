// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/okian/fairslot/internal/domain/model"
)

// HolidaysHandler handles holiday reference lookups.
type HolidaysHandler struct {
	deps Dependencies
}

// NewHolidaysHandler creates a new holidays handler.
func NewHolidaysHandler(deps Dependencies) *HolidaysHandler {
	return &HolidaysHandler{deps: deps}
}

// holidayResponse reports whether the (country, date) pair is a holiday.
// Absence is a defined outcome, not a 404.
type holidayResponse struct {
	IsHoliday bool                `json:"is_holiday"`
	Holiday   *model.HolidayEntry `json:"holiday,omitempty"`
}

// HandleGetHoliday handles GET /holidays?country=XX&date=YYYY-MM-DD requests.
func (h *HolidaysHandler) HandleGetHoliday(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_holiday"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	country := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("country")))
	if country == "" {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing country")))
		return
	}
	date, err := parseDateField(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	entry, ok, err := h.deps.Holiday(r.Context(), country, date)
	if err != nil {
		writeEngineError(w, op, err)
		return
	}
	resp := holidayResponse{IsHoliday: ok}
	if ok {
		resp.Holiday = &entry
	}
	writeJSON(w, http.StatusOK, resp)
}
