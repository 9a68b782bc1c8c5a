package loadgen

import "time"

// Config holds configuration for the scheduling load test
type Config struct {
	BaseURL         string        // Base URL of the service
	NumParticipants int           // Number of participants to generate
	NumDays         int           // Number of consecutive days to probe
	StartDate       string        // First probed day, YYYY-MM-DD (default: tomorrow)
	Limit           int           // Top-N suggestions to request per day
	Workers         int           // Number of concurrent workers
	Timeout         time.Duration // HTTP request timeout
	OutputFile      string        // Output file for participants
	LogFile         string        // Log file for test output
	Verbose         bool          // Enable verbose logging
}

// Participant mirrors the API participant payload
type Participant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Timezone    string `json:"timezone"`
	CountryCode string `json:"country_code,omitempty"`
}

// Breakdown mirrors the API status breakdown payload
type Breakdown struct {
	Green    int `json:"green"`
	Orange   int `json:"orange"`
	Red      int `json:"red"`
	Critical int `json:"critical"`
}

// Slot mirrors the API time slot payload
type Slot struct {
	Hour      int       `json:"hour"`
	Datetime  string    `json:"datetime"`
	Score     *int      `json:"score"`
	Breakdown Breakdown `json:"breakdown"`
}

// HeatmapResponse mirrors the POST /heatmap response
type HeatmapResponse struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

// SuggestResponse mirrors the POST /suggest response
type SuggestResponse struct {
	Date        string `json:"date"`
	Suggestions []Slot `json:"suggestions"`
}

// EvaluateResponse mirrors the POST /evaluate response
type EvaluateResponse struct {
	Equity struct {
		Score     *int      `json:"score"`
		Breakdown Breakdown `json:"breakdown"`
	} `json:"equity"`
	Quality  string `json:"quality"`
	Severity string `json:"severity"`
}

// Stats holds test statistics
type Stats struct {
	ParticipantsGenerated int
	HeatmapsRequested     int
	HeatmapsSuccessful    int
	HeatmapsFailed        int
	SuggestionsRetrieved  int
	EvaluationsRun        int
	BestScore             int
	BestSlot              string
	StartTime             time.Time
	EndTime               time.Time
	Duration              time.Duration
}
