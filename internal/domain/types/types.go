// Package types contains the serializable result shapes shared between the
// engine, the application service, and the HTTP layer.
package types

import "time"

// Status is a participant's suitability tier for a candidate meeting time,
// in decreasing order of convenience.
type Status string

// Suitability tiers.
const (
	StatusGreen    Status = "green"
	StatusOrange   Status = "orange"
	StatusRed      Status = "red"
	StatusCritical Status = "critical"
)

// Valid reports whether s is one of the four known tiers.
func (s Status) Valid() bool {
	switch s {
	case StatusGreen, StatusOrange, StatusRed, StatusCritical:
		return true
	default:
		return false
	}
}

// Classification reasons. Every ParticipantStatus carries exactly one;
// holiday hits use the "Holiday: <name>" prefix form.
const (
	ReasonOptimal       = "Within optimal working hours"
	ReasonAcceptable    = "Within acceptable working hours"
	ReasonOutsideHours  = "Outside working hours"
	ReasonOutsideWindow = "Outside optimal working hours"
	ReasonHolidayPrefix = "Holiday: "
)

// ParticipantStatus is the classification of one participant at one instant.
type ParticipantStatus struct {
	ParticipantID string `json:"participant_id"`
	Status        Status `json:"status"`
	IsCritical    bool   `json:"is_critical"`
	Reason        string `json:"reason"`
	Holiday       string `json:"holiday,omitempty"`
}

// Breakdown counts statuses per tier across all participants.
type Breakdown struct {
	Green    int `json:"green"`
	Orange   int `json:"orange"`
	Red      int `json:"red"`
	Critical int `json:"critical"`
}

// Total returns the number of counted participants.
func (b Breakdown) Total() int { return b.Green + b.Orange + b.Red + b.Critical }

// EquityScoreResult aggregates a status set into a 0-100 fairness score.
// Score is nil when there were no participants to be fair to.
type EquityScoreResult struct {
	Score     *int      `json:"score"`
	Breakdown Breakdown `json:"breakdown"`
}

// TimeSlotScore is one hour of a day's heatmap.
type TimeSlotScore struct {
	Hour      int       `json:"hour"` // 0-23, UTC
	Datetime  time.Time `json:"datetime"`
	Score     *int      `json:"score"`
	Breakdown Breakdown `json:"breakdown"`
}

// Quality labels and severity tiers derived from an equity score. These are
// engine constants so every caller agrees on their meaning; the engine never
// writes them into results.
const (
	QualityExcellent = "Excellent" // score >= 80
	QualityGood      = "Good"      // score >= 50
	QualityFair      = "Fair"      // score >= 30
	QualityPoor      = "Poor"

	SeverityFavorable   = "favorable" // score >= 71
	SeverityCaution     = "caution"   // score >= 41
	SeverityUnfavorable = "unfavorable"
)

// Threshold constants for QualityLabel and SeverityTier.
const (
	qualityExcellentMin  = 80
	qualityGoodMin       = 50
	qualityFairMin       = 30
	severityFavorableMin = 71
	severityCautionMin   = 41
)

// QualityLabel maps a score to its presentation label.
func QualityLabel(score int) string {
	switch {
	case score >= qualityExcellentMin:
		return QualityExcellent
	case score >= qualityGoodMin:
		return QualityGood
	case score >= qualityFairMin:
		return QualityFair
	default:
		return QualityPoor
	}
}

// SeverityTier maps a score to its severity tier.
func SeverityTier(score int) string {
	switch {
	case score >= severityFavorableMin:
		return SeverityFavorable
	case score >= severityCautionMin:
		return SeverityCaution
	default:
		return SeverityUnfavorable
	}
}
