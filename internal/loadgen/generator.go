package loadgen

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"

	"github.com/google/uuid"
	"github.com/okian/fairslot/pkg/logger"
)

// region holds a timezone with its country and a selection weight. Weights
// skew the pool toward a realistic distributed-team shape: heavy in the US
// and Europe, a meaningful APAC tail, and a few outliers.
type region struct {
	timezone string
	country  string
	weight   int
}

// regionPool covers the spread of a typical distributed company.
var regionPool = []region{
	{"America/New_York", "US", 20},
	{"America/Chicago", "US", 10},
	{"America/Los_Angeles", "US", 15},
	{"America/Sao_Paulo", "BR", 5},
	{"Europe/London", "GB", 12},
	{"Europe/Berlin", "DE", 10},
	{"Europe/Paris", "FR", 6},
	{"Europe/Madrid", "ES", 4},
	{"Asia/Kolkata", "IN", 8},
	{"Asia/Tokyo", "JP", 4},
	{"Asia/Singapore", "SG", 3},
	{"Australia/Sydney", "AU", 2},
	{"Pacific/Auckland", "NZ", 1},
}

// totalRegionWeight is the sum of all pool weights, computed once.
var totalRegionWeight = func() int {
	total := 0
	for _, r := range regionPool {
		total += r.weight
	}
	return total
}()

// pickRegion selects a weighted random region using crypto/rand.
func pickRegion() region {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(totalRegionWeight)))
	remaining := int(n.Int64())
	for _, r := range regionPool {
		remaining -= r.weight
		if remaining < 0 {
			return r
		}
	}
	return regionPool[0]
}

// generateParticipants creates the specified number of participants with
// unique IDs and weighted-random regions.
func generateParticipants(ctx context.Context, config *Config, stats *Stats) ([]Participant, error) {
	logger.Get().Info(ctx, "generating participants", logger.Int("numParticipants", config.NumParticipants))

	participants := make([]Participant, config.NumParticipants)

	// Generate participants concurrently
	type participantResult struct {
		index       int
		participant Participant
		err         error
	}

	resultChan := make(chan participantResult, config.NumParticipants)

	// Use worker pool for participant generation
	workerCount := minInt(config.Workers, config.NumParticipants)
	perWorker := config.NumParticipants / workerCount

	for worker := 0; worker < workerCount; worker++ {
		start := worker * perWorker
		end := start + perWorker
		if worker == workerCount-1 {
			end = config.NumParticipants // Last worker gets the remainder
		}

		go func(start, end int) {
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					resultChan <- participantResult{index: i, err: ctx.Err()}
					return
				default:
					resultChan <- participantResult{index: i, participant: generateSingleParticipant(i)}
				}
			}
		}(start, end)
	}

	// Collect results
	for i := 0; i < config.NumParticipants; i++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during participant generation: %w", ctx.Err())
		case result := <-resultChan:
			if result.err != nil {
				return nil, fmt.Errorf("failed to generate participant %d: %w", result.index, result.err)
			}
			participants[result.index] = result.participant
		}
	}

	stats.ParticipantsGenerated = len(participants)
	logger.Get().Info(ctx, "generated participants successfully", logger.Int("count", len(participants)))

	return participants, nil
}

// generateSingleParticipant creates a single participant with the given index.
func generateSingleParticipant(index int) Participant {
	r := pickRegion()
	return Participant{
		ID:          uuid.New().String(),
		Name:        "participant-" + strconv.Itoa(index),
		Timezone:    r.timezone,
		CountryCode: r.country,
	}
}

// minInt returns the minimum of two integers.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
