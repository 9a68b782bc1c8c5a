// Package repository provides the in-memory reference-data stores standing
// in for the persistence collaborator: working-hours overrides and the
// holiday calendar.
package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/okian/fairslot/internal/domain/model"
)

// ConfigOption applies a configuration option to the ConfigStore.
type ConfigOption func(*ConfigStore)

// WithSeedConfigs preloads working-hours overrides. Entries without a
// country code are ignored; the global default never lives in the store.
func WithSeedConfigs(configs []model.WorkingHoursConfig) ConfigOption {
	return func(s *ConfigStore) {
		for _, c := range configs {
			if c.CountryCode != "" {
				s.configs[c.CountryCode] = c
			}
		}
	}
}

// ConfigStore holds per-country working-hours overrides. Writes are gated by
// the validator at the service layer; the store itself only enforces the
// country-code key. Safe for concurrent use.
type ConfigStore struct {
	mu      sync.RWMutex
	configs map[string]model.WorkingHoursConfig
}

// NewConfigStore creates a store from the given options.
func NewConfigStore(opts ...ConfigOption) *ConfigStore {
	s := &ConfigStore{
		configs: make(map[string]model.WorkingHoursConfig),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Put inserts or replaces the override for the config's country.
func (s *ConfigStore) Put(_ context.Context, cfg model.WorkingHoursConfig) error {
	if cfg.CountryCode == "" {
		return ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs[cfg.CountryCode] = cfg
	return nil
}

// Get returns the override for a country. Returns ErrNotFound when no
// override exists; callers resolving for classification should fall back to
// the default instead of treating this as a failure.
func (s *ConfigStore) Get(_ context.Context, countryCode string) (model.WorkingHoursConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg, ok := s.configs[countryCode]
	if !ok {
		return model.WorkingHoursConfig{}, ErrNotFound
	}
	return cfg, nil
}

// List returns all overrides ordered by country code.
func (s *ConfigStore) List(_ context.Context) []model.WorkingHoursConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.WorkingHoursConfig, 0, len(s.configs))
	for _, cfg := range s.configs {
		out = append(out, cfg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CountryCode < out[j].CountryCode })
	return out
}

// Delete removes the override for a country. Returns ErrNotFound when no
// override exists.
func (s *ConfigStore) Delete(_ context.Context, countryCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.configs[countryCode]; !ok {
		return ErrNotFound
	}
	delete(s.configs, countryCode)
	return nil
}

// Count returns the number of stored overrides.
func (s *ConfigStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.configs)
}
