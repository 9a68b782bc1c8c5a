package heatmap

import (
	"sort"

	"github.com/okian/fairslot/internal/domain/types"
)

// DefaultSuggestionLimit is the number of suggestions returned when the
// caller does not ask for a specific count.
const DefaultSuggestionLimit = 3

// Suggest ranks slots by score descending, ties broken by ascending hour so
// the earlier time of day wins, and returns the first limit entries. The
// input is never mutated. A limit below one falls back to
// DefaultSuggestionLimit; a limit beyond the available slots returns all of
// them.
func Suggest(slots []types.TimeSlotScore, limit int) []types.TimeSlotScore {
	if limit < 1 {
		limit = DefaultSuggestionLimit
	}

	ranked := make([]types.TimeSlotScore, len(slots))
	copy(ranked, slots)
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := slotScore(ranked[i]), slotScore(ranked[j])
		if si != sj {
			return si > sj
		}
		return ranked[i].Hour < ranked[j].Hour
	})

	if limit > len(ranked) {
		limit = len(ranked)
	}
	return ranked[:limit]
}

// slotScore orders slots with no score (no participants) behind scored ones.
func slotScore(s types.TimeSlotScore) int {
	if s.Score == nil {
		return -1
	}
	return *s.Score
}
