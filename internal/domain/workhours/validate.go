package workhours

import (
	"github.com/okian/fairslot/internal/domain/model"
)

// ISO weekday bounds for work-day validation.
const (
	minWeekday = 1
	maxWeekday = 7
)

// Result is the outcome of validating a user-edited config. Errors maps a
// field name to a human-readable message; all violated rules are reported
// together so a form can render them at once.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Validate checks the structural invariants of a working-hours config before
// it is persisted. It never rejects a config for overwriting an existing
// override; that is the storage layer's concern.
func Validate(cfg model.WorkingHoursConfig) Result {
	errs := make(map[string]string)

	if cfg.CountryCode == "" {
		errs["country_code"] = "country code is required"
	}

	if !cfg.Green().Valid() {
		errs["green_end"] = "green start must precede green end"
	}
	if !cfg.OrangeMorning().Valid() {
		errs["orange_morning_end"] = "orange morning start must precede orange morning end"
	}
	if !cfg.OrangeEvening().Valid() {
		errs["orange_evening_end"] = "orange evening start must precede orange evening end"
	}

	if cfg.OrangeMorningEnd.After(cfg.GreenStart) {
		errs["orange_morning_end"] = "orange morning must end at or before green start"
	}
	if cfg.OrangeEveningStart.Before(cfg.GreenEnd) {
		errs["orange_evening_start"] = "orange evening must start at or after green end"
	}

	if len(cfg.WorkDays) == 0 {
		errs["work_days"] = "at least one work day is required"
	}
	for _, d := range cfg.WorkDays {
		if d < minWeekday || d > maxWeekday {
			errs["work_days"] = "work days must be between 1 (Monday) and 7 (Sunday)"
			break
		}
	}

	if len(errs) == 0 {
		return Result{Valid: true}
	}
	return Result{Valid: false, Errors: errs}
}
