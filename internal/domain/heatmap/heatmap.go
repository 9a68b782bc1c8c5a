// Package heatmap evaluates the 24 hours of a UTC day for a fixed
// participant set and ranks the best candidate times.
package heatmap

import (
	"time"

	"github.com/okian/fairslot/internal/domain/equity"
	"github.com/okian/fairslot/internal/domain/model"
	"github.com/okian/fairslot/internal/domain/schedule"
	"github.com/okian/fairslot/internal/domain/types"
	"github.com/okian/fairslot/internal/domain/workhours"
)

// HoursPerDay is the number of slots in a generated heatmap.
const HoursPerDay = 24

// Generate classifies every participant at each UTC hour of date and scores
// the result. It always returns exactly 24 entries ordered by hour, is a
// pure function of its inputs, and keeps no memory between calls. Each
// participant's config is resolved against configs with the global default
// as fallback.
func Generate(date model.Date, participants []model.Participant, configs []model.WorkingHoursConfig, classifier *schedule.Classifier) ([]types.TimeSlotScore, error) {
	slots := make([]types.TimeSlotScore, 0, HoursPerDay)
	for hour := 0; hour < HoursPerDay; hour++ {
		slot, err := EvaluateHour(date, hour, participants, configs, classifier)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// EvaluateHour scores a single UTC hour of date. Exposed separately so a
// caller may fan the 24 independent evaluations out across goroutines
// without changing the result.
func EvaluateHour(date model.Date, hour int, participants []model.Participant, configs []model.WorkingHoursConfig, classifier *schedule.Classifier) (types.TimeSlotScore, error) {
	instant := time.Date(date.Year, date.Month, date.Day, hour, 0, 0, 0, time.UTC)

	statuses := make([]types.ParticipantStatus, 0, len(participants))
	for _, p := range participants {
		cfg := workhours.Resolve(p.CountryCode, configs)
		st, err := classifier.Classify(instant, p, cfg)
		if err != nil {
			return types.TimeSlotScore{}, err
		}
		statuses = append(statuses, st)
	}

	result := equity.Score(statuses)
	return types.TimeSlotScore{
		Hour:      hour,
		Datetime:  instant,
		Score:     result.Score,
		Breakdown: result.Breakdown,
	}, nil
}
