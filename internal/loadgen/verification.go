package loadgen

import (
	"context"
	"fmt"
	"log"
)

// verifyResults checks every heatmap for shape and bounds and cross-checks
// the suggestions against the heatmap they were derived from.
func verifyResults(_ context.Context, config *Config, heatmaps map[string]HeatmapResponse, suggestions map[string]SuggestResponse, stats *Stats) error {
	log.Println("🔍 Verifying results...")

	if len(heatmaps) == 0 {
		return fmt.Errorf("no heatmaps to verify")
	}

	for date, hm := range heatmaps {
		if err := verifyHeatmap(hm); err != nil {
			return fmt.Errorf("heatmap for %s: %w", date, err)
		}

		if sr, ok := suggestions[date]; ok {
			if err := verifySuggestions(hm, sr, config.Limit); err != nil {
				return fmt.Errorf("suggestions for %s: %w", date, err)
			}
		}
	}

	displayTopSlots(suggestions, config.Verbose)

	log.Println("✅ Result verification completed")
	return nil
}

// verifyHeatmap checks a single day's heatmap shape: exactly 24 slots,
// hours ascending from 0, every score nil or within [0, 100].
func verifyHeatmap(hm HeatmapResponse) error {
	if len(hm.Slots) != HoursPerDay {
		return fmt.Errorf("expected %d slots, got %d", HoursPerDay, len(hm.Slots))
	}

	for i, slot := range hm.Slots {
		if slot.Hour != i {
			return fmt.Errorf("slot %d carries hour %d", i, slot.Hour)
		}
		if slot.Score != nil && (*slot.Score < 0 || *slot.Score > MaxScore) {
			return fmt.Errorf("slot %d score %d out of bounds", i, *slot.Score)
		}
	}
	return nil
}

// verifySuggestions checks the suggestion list is sorted by score descending
// with earlier hours winning ties, and that every suggestion matches the
// heatmap slot it names.
func verifySuggestions(hm HeatmapResponse, sr SuggestResponse, limit int) error {
	if limit > 0 && len(sr.Suggestions) > limit {
		return fmt.Errorf("got %d suggestions, limit was %d", len(sr.Suggestions), limit)
	}

	for i, s := range sr.Suggestions {
		if s.Hour < 0 || s.Hour >= HoursPerDay {
			return fmt.Errorf("suggestion %d names hour %d", i, s.Hour)
		}
		slot := hm.Slots[s.Hour]
		if !scoresEqual(slot.Score, s.Score) {
			return fmt.Errorf("suggestion %d score disagrees with heatmap slot %d", i, s.Hour)
		}

		if i == 0 {
			continue
		}
		prev := sr.Suggestions[i-1]
		if scoreValue(s.Score) > scoreValue(prev.Score) {
			return fmt.Errorf("suggestion %d outranks suggestion %d", i, i-1)
		}
		if scoreValue(s.Score) == scoreValue(prev.Score) && s.Hour < prev.Hour {
			return fmt.Errorf("tie between suggestions %d and %d broken against the earlier hour", i-1, i)
		}
	}
	return nil
}

// displayTopSlots shows the best slot of each probed day.
func displayTopSlots(suggestions map[string]SuggestResponse, verbose bool) {
	for date, sr := range suggestions {
		if len(sr.Suggestions) == 0 {
			continue
		}
		top := sr.Suggestions[0]
		log.Printf("🏆 %s best slot: %s (score %d)", date, top.Datetime, scoreValue(top.Score))

		if verbose {
			for i, s := range sr.Suggestions[1:] {
				log.Printf("   %d. %s - score: %d", i+2, s.Datetime, scoreValue(s.Score))
			}
		}
	}
}

// scoresEqual compares two optional scores.
func scoresEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// scoreValue treats an absent score as the lowest possible rank.
func scoreValue(s *int) int {
	if s == nil {
		return -1
	}
	return *s
}
