package loadgen

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/fairslot/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// Run executes the complete scheduling load test.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
		BestScore: -1,
	}

	logger.Get().Info(ctx, "starting fairslot load test",
		logger.String("baseURL", config.BaseURL),
		logger.Int("participants", config.NumParticipants),
		logger.Int("days", config.NumDays),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.Int("limit", config.Limit),
		logger.String("logFile", config.LogFile),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Generate participants
	participants, err := generateParticipants(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("participant generation failed: %w", err)
	}

	// Step 3: Request heatmaps for every probed day concurrently
	heatmaps, err := probeDays(ctx, config, participants, stats)
	if err != nil {
		return fmt.Errorf("heatmap probing failed: %w", err)
	}

	// Step 4: Retrieve top suggestions per day
	suggestions, err := retrieveSuggestions(ctx, config, participants, stats)
	if err != nil {
		return fmt.Errorf("suggestion retrieval failed: %w", err)
	}

	// Step 5: Verify heatmaps against suggestions
	if err := verifyResults(ctx, config, heatmaps, suggestions, stats); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	// Step 6: Evaluate the single best slot found
	if err := evaluateBestSlot(ctx, config, participants, stats); err != nil {
		logger.Get().Warn(ctx, "best-slot evaluation failed", logger.Error(err))
	}

	// Step 7: Save participants to file
	if err := saveParticipantsToFile(ctx, config, participants); err != nil {
		logger.Get().Warn(ctx, "failed to save participants to file", logger.Error(err))
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "test completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// probeDates returns the list of probed days, YYYY-MM-DD, starting at
// config.StartDate (or tomorrow when unset).
func probeDates(config *Config) ([]string, error) {
	start := time.Now().UTC().AddDate(0, 0, 1)
	if config.StartDate != "" {
		parsed, err := time.Parse(time.DateOnly, config.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q: %w", config.StartDate, err)
		}
		start = parsed
	}

	dates := make([]string, config.NumDays)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i).Format(time.DateOnly)
	}
	return dates, nil
}

// heatmapRequest is the POST /heatmap and /suggest payload.
type heatmapRequest struct {
	Date         string        `json:"date"`
	Participants []Participant `json:"participants"`
	Limit        int           `json:"limit,omitempty"`
}

// probeDays requests the heatmap of every probed day concurrently using
// a worker pool.
func probeDays(ctx context.Context, config *Config, participants []Participant, stats *Stats) (map[string]HeatmapResponse, error) {
	dates, err := probeDates(config)
	if err != nil {
		return nil, err
	}

	log.Printf("📤 Probing %d days with %d workers...", len(dates), config.Workers)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/heatmap"

	var (
		successful int64
		failed     int64
	)

	heatmaps := make(map[string]HeatmapResponse, len(dates))
	var heatmapMu sync.Mutex

	dateChan := make(chan string, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	workers := minInt(config.Workers, len(dates))
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for date := range dateChan {
				select {
				case <-ctx.Done():
					return
				default:
					hm, err := fetchHeatmap(ctx, client, url, date, participants)
					if err != nil {
						atomic.AddInt64(&failed, 1)
						if config.Verbose {
							log.Printf("⚠️  Heatmap for %s failed: %v", date, err)
						}
						continue
					}
					atomic.AddInt64(&successful, 1)
					heatmapMu.Lock()
					heatmaps[date] = hm
					heatmapMu.Unlock()
				}
			}
		}()
	}

	// Send dates to workers
	go func() {
		defer close(dateChan)
		for _, date := range dates {
			select {
			case <-ctx.Done():
				return
			case dateChan <- date:
			}
		}
	}()

	wg.Wait()

	stats.HeatmapsRequested = len(dates)
	stats.HeatmapsSuccessful = int(atomic.LoadInt64(&successful))
	stats.HeatmapsFailed = int(atomic.LoadInt64(&failed))

	log.Printf(`✅ Heatmap probing completed:
   Successful: %d
   Failed: %d
`, stats.HeatmapsSuccessful, stats.HeatmapsFailed)

	if stats.HeatmapsSuccessful == 0 {
		return nil, fmt.Errorf("all %d heatmap requests failed", stats.HeatmapsRequested)
	}
	return heatmaps, nil
}

// fetchHeatmap requests and decodes a single day's heatmap.
func fetchHeatmap(ctx context.Context, client *HTTPClient, url, date string, participants []Participant) (HeatmapResponse, error) {
	resp, err := client.Post(ctx, url, heatmapRequest{Date: date, Participants: participants})
	if err != nil {
		return HeatmapResponse{}, err
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return HeatmapResponse{}, err
	}
	if resp.StatusCode != StatusOK {
		return HeatmapResponse{}, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var hm HeatmapResponse
	if err := unmarshalJSON(body, &hm); err != nil {
		return HeatmapResponse{}, fmt.Errorf("failed to decode heatmap: %w", err)
	}
	return hm, nil
}

// retrieveSuggestions fetches the top-N slots for every probed day and
// tracks the single best slot seen across all days.
func retrieveSuggestions(ctx context.Context, config *Config, participants []Participant, stats *Stats) (map[string]SuggestResponse, error) {
	dates, err := probeDates(config)
	if err != nil {
		return nil, err
	}

	log.Printf("🔎 Retrieving suggestions for %d days...", len(dates))

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/suggest"

	suggestions := make(map[string]SuggestResponse, len(dates))
	for _, date := range dates {
		resp, err := client.Post(ctx, url, heatmapRequest{Date: date, Participants: participants, Limit: config.Limit})
		if err != nil {
			return nil, err
		}

		body, err := readResponseBody(resp)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != StatusOK {
			return nil, fmt.Errorf("unexpected status %d for %s: %s", resp.StatusCode, date, string(body))
		}

		var sr SuggestResponse
		if err := unmarshalJSON(body, &sr); err != nil {
			return nil, fmt.Errorf("failed to decode suggestions for %s: %w", date, err)
		}
		suggestions[date] = sr
		stats.SuggestionsRetrieved += len(sr.Suggestions)

		if len(sr.Suggestions) > 0 && sr.Suggestions[0].Score != nil && *sr.Suggestions[0].Score > stats.BestScore {
			stats.BestScore = *sr.Suggestions[0].Score
			stats.BestSlot = sr.Suggestions[0].Datetime
		}
	}

	log.Printf("✅ Retrieved %d suggestions", stats.SuggestionsRetrieved)
	return suggestions, nil
}

// evaluateBestSlot runs a full proposal evaluation at the best slot found
// by the suggestion sweep.
func evaluateBestSlot(ctx context.Context, config *Config, participants []Participant, stats *Stats) error {
	if stats.BestSlot == "" {
		return fmt.Errorf("no best slot found")
	}

	log.Printf("🏅 Evaluating best slot %s (score %d)...", stats.BestSlot, stats.BestScore)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/evaluate"

	payload := map[string]interface{}{
		"proposed_time": stats.BestSlot,
		"participants":  participants,
	}
	resp, err := client.Post(ctx, url, payload)
	if err != nil {
		return err
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return err
	}
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var er EvaluateResponse
	if err := unmarshalJSON(body, &er); err != nil {
		return fmt.Errorf("failed to decode evaluation: %w", err)
	}
	stats.EvaluationsRun++

	if er.Equity.Score == nil {
		return fmt.Errorf("evaluation returned no score")
	}
	if *er.Equity.Score != stats.BestScore {
		return fmt.Errorf("evaluation score %d disagrees with suggestion score %d", *er.Equity.Score, stats.BestScore)
	}

	log.Printf("✅ Evaluation confirmed: score %d, quality %s, severity %s", *er.Equity.Score, er.Quality, er.Severity)
	return nil
}

// saveParticipantsToFile saves the generated participants to a JSON file.
func saveParticipantsToFile(ctx context.Context, config *Config, participants []Participant) error {
	if len(participants) == 0 {
		return fmt.Errorf("no participants to save")
	}

	// Determine output filename
	filename := config.OutputFile
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = "generated_participants_" + timestamp + ".json"
	}

	// Ensure the directory exists
	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close file", logger.Error(err))
		}
	}()

	// Write JSON array
	if _, err := file.WriteString("[\n"); err != nil {
		return fmt.Errorf("failed to write opening bracket: %w", err)
	}

	for i, participant := range participants {
		jsonData, err := marshalJSON(participant)
		if err != nil {
			return fmt.Errorf("failed to marshal participant %d: %w", i, err)
		}

		if _, err := file.Write(jsonData); err != nil {
			return fmt.Errorf("failed to write participant %d: %w", i, err)
		}

		// Add comma except for last participant
		if i < len(participants)-1 {
			if _, err := file.WriteString(","); err != nil {
				return fmt.Errorf("failed to write comma: %w", err)
			}
		}
		_, _ = file.WriteString("\n")
	}

	if _, err := file.WriteString("]\n"); err != nil {
		return fmt.Errorf("failed to write closing bracket: %w", err)
	}

	logger.Get().Info(ctx, "participants saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats prints the final test statistics.
func displayFinalStats(stats *Stats) {
	var successRate, heatmapsPerSecond float64

	if stats.HeatmapsRequested > 0 {
		successRate = float64(stats.HeatmapsSuccessful) / float64(stats.HeatmapsRequested) * PercentageMultiplier
	}

	if stats.Duration > 0 {
		heatmapsPerSecond = float64(stats.HeatmapsRequested) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("participantsGenerated", stats.ParticipantsGenerated),
		logger.Int("heatmapsRequested", stats.HeatmapsRequested),
		logger.Int("heatmapsSuccessful", stats.HeatmapsSuccessful),
		logger.Int("heatmapsFailed", stats.HeatmapsFailed),
		logger.Int("suggestionsRetrieved", stats.SuggestionsRetrieved),
		logger.Int("evaluationsRun", stats.EvaluationsRun),
		logger.Int("bestScore", stats.BestScore),
		logger.String("bestSlot", stats.BestSlot),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("heatmapsPerSecond", heatmapsPerSecond))
}
