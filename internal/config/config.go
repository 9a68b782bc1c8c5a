// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import "runtime"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DeadZoneStart and DeadZoneEnd bound the local-midnight window that is
	// critical even on work days, "HH:MM" format.
	DeadZoneStart string `koanf:"dead_zone_start"`
	DeadZoneEnd   string `koanf:"dead_zone_end"`

	// SuggestionLimit is the default top-N for time suggestions.
	SuggestionLimit int `koanf:"suggestion_limit"`

	// MaxSuggestionLimit caps the limit a request may ask for.
	MaxSuggestionLimit int `koanf:"max_suggestion_limit"`

	// MaxParticipants caps the participant list accepted per request.
	MaxParticipants int `koanf:"max_participants"`

	// WorkerCount sets the goroutine fan-out for heatmap generation.
	WorkerCount int `koanf:"worker_count"`

	// HolidayFile points at the YAML holiday reference data; empty means no
	// holidays are loaded.
	HolidayFile string `koanf:"holiday_file"`

	// SeedConfigFile points at a YAML file of working-hours overrides loaded
	// at startup; empty means the store starts empty.
	SeedConfigFile string `koanf:"seed_config_file"`
}

// Default limits.
const (
	defaultSuggestionLimit    = 3
	defaultMaxSuggestionLimit = 24
	defaultMaxParticipants    = 200
)

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":9080",
		DeadZoneStart:      "00:00",
		DeadZoneEnd:        "05:00",
		SuggestionLimit:    defaultSuggestionLimit,
		MaxSuggestionLimit: defaultMaxSuggestionLimit,
		MaxParticipants:    defaultMaxParticipants,
		WorkerCount:        runtime.NumCPU(),
	}
}
