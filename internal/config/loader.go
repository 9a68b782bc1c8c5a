package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/fairslot/internal/domain/model"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if FAIRSLOT_CONFIG is set
//  3. env (prefix FAIRSLOT_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("FAIRSLOT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: FAIRSLOT_ADDR, FAIRSLOT_WORKER_COUNT, ...
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("FAIRSLOT_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "fairslot_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	start, err := model.ParseTimeOfDay(c.DeadZoneStart)
	if err != nil {
		return fmt.Errorf("%w: dead_zone_start: %v", ErrInvalidConfig, err)
	}
	end, err := model.ParseTimeOfDay(c.DeadZoneEnd)
	if err != nil {
		return fmt.Errorf("%w: dead_zone_end: %v", ErrInvalidConfig, err)
	}
	// An empty dead zone (start == end) is legal and disables the check;
	// an inverted one is a configuration mistake.
	if end.Before(start) {
		return fmt.Errorf("%w: dead_zone_end must not precede dead_zone_start", ErrInvalidConfig)
	}
	if c.SuggestionLimit < 1 || c.SuggestionLimit > c.MaxSuggestionLimit {
		return fmt.Errorf("%w: suggestion_limit must be between 1 and max_suggestion_limit", ErrInvalidConfig)
	}
	return nil
}

// DeadZone returns the parsed dead-zone window. Call after Load has
// validated the bounds.
func (c *Config) DeadZone() (start, end model.TimeOfDay) {
	return model.MustTimeOfDay(c.DeadZoneStart), model.MustTimeOfDay(c.DeadZoneEnd)
}
