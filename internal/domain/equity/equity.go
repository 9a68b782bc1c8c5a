// Package equity folds participant status classifications into a single
// 0-100 fairness score.
package equity

import (
	"math"

	"github.com/okian/fairslot/internal/domain/types"
)

// Per-tier weights on the 0-1 scale.
const (
	weightGreen    = 1.0
	weightOrange   = 0.6
	weightRed      = 0.2
	weightCritical = 0.0
	maxScoreValue  = 100
)

// Weight returns the scoring weight of a status tier. Unknown tiers weigh
// zero, same as critical.
func Weight(s types.Status) float64 {
	switch s {
	case types.StatusGreen:
		return weightGreen
	case types.StatusOrange:
		return weightOrange
	case types.StatusRed:
		return weightRed
	case types.StatusCritical:
		return weightCritical
	default:
		return weightCritical
	}
}

// Score aggregates statuses into an equity result. The breakdown counts
// every tier regardless of weight. An empty input yields a nil score: there
// are no participants to be fair to, which is a defined outcome rather than
// a zero or an error.
func Score(statuses []types.ParticipantStatus) types.EquityScoreResult {
	var breakdown types.Breakdown
	var sum float64
	for _, st := range statuses {
		sum += Weight(st.Status)
		switch st.Status {
		case types.StatusGreen:
			breakdown.Green++
		case types.StatusOrange:
			breakdown.Orange++
		case types.StatusRed:
			breakdown.Red++
		case types.StatusCritical:
			breakdown.Critical++
		}
	}

	if len(statuses) == 0 {
		return types.EquityScoreResult{Breakdown: breakdown}
	}

	score := int(math.Round(maxScoreValue * sum / float64(len(statuses))))
	return types.EquityScoreResult{Score: &score, Breakdown: breakdown}
}
