// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/okian/fairslot/internal/adapters/repository"
	"github.com/okian/fairslot/internal/domain/equity"
	"github.com/okian/fairslot/internal/domain/heatmap"
	"github.com/okian/fairslot/internal/domain/holiday"
	"github.com/okian/fairslot/internal/domain/model"
	"github.com/okian/fairslot/internal/domain/schedule"
	"github.com/okian/fairslot/internal/domain/types"
	"github.com/okian/fairslot/internal/domain/workhours"
	"github.com/okian/fairslot/pkg/logger"
	"github.com/okian/fairslot/pkg/metrics"
)

// Service wires the pure scheduling engine to the reference-data stores and
// exposes the operations the HTTP API depends on.
type Service struct {
	mu sync.RWMutex

	// Core components
	configStore *repository.ConfigStore
	calendar    *holiday.InMemoryCalendar
	classifier  *schedule.Classifier

	// Configuration
	workerCount        int
	suggestionLimit    int
	maxSuggestionLimit int
	maxParticipants    int
	deadZoneStart      model.TimeOfDay
	deadZoneEnd        model.TimeOfDay
	holidayFile        string
	seedConfigFile     string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithWorkerCount sets the goroutine fan-out for heatmap generation.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithSuggestionLimit sets the default top-N for time suggestions.
func WithSuggestionLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.suggestionLimit = limit
		}
	}
}

// WithMaxSuggestionLimit caps the limit a request may ask for.
func WithMaxSuggestionLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxSuggestionLimit = limit
		}
	}
}

// WithMaxParticipants caps the participant list accepted per request.
func WithMaxParticipants(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.maxParticipants = count
		}
	}
}

// WithDeadZone sets the local-midnight critical window bounds.
func WithDeadZone(start, end model.TimeOfDay) Option {
	return func(s *Service) {
		s.deadZoneStart = start
		s.deadZoneEnd = end
	}
}

// WithHolidayFile points the service at YAML holiday reference data.
func WithHolidayFile(path string) Option {
	return func(s *Service) {
		s.holidayFile = path
	}
}

// WithSeedConfigFile points the service at YAML working-hours overrides
// loaded at startup through the validator gate.
func WithSeedConfigFile(path string) Option {
	return func(s *Service) {
		s.seedConfigFile = path
	}
}

// Default sizing constants.
const (
	defaultSuggestionLimit    = heatmap.DefaultSuggestionLimit
	defaultMaxSuggestionLimit = heatmap.HoursPerDay
	defaultMaxParticipants    = 200
)

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:        runtime.NumCPU(),
		suggestionLimit:    defaultSuggestionLimit,
		maxSuggestionLimit: defaultMaxSuggestionLimit,
		maxParticipants:    defaultMaxParticipants,
		deadZoneStart:      model.MustTimeOfDay("00:00"),
		deadZoneEnd:        model.MustTimeOfDay("05:00"),
		logger:             nil, // Will be replaced when the service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads reference data and assembles the engine components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting scheduling service...")

	var entries []model.HolidayEntry
	if s.holidayFile != "" {
		loaded, err := repository.LoadHolidayFile(s.holidayFile)
		if err != nil {
			return err
		}
		entries = loaded
	}
	s.calendar = holiday.NewInMemoryCalendar(holiday.WithEntries(entries))

	s.configStore = repository.NewConfigStore()
	if s.seedConfigFile != "" {
		seeds, err := repository.LoadConfigFile(s.seedConfigFile)
		if err != nil {
			return err
		}
		for _, cfg := range seeds {
			if result := workhours.Validate(cfg); !result.Valid {
				return fmt.Errorf("%w: country %q: %v", ErrInvalidSeed, cfg.CountryCode, result.Errors)
			}
			if err := s.configStore.Put(ctx, cfg); err != nil {
				return err
			}
		}
	}

	s.classifier = schedule.New(
		schedule.WithCalendar(s.calendar),
		schedule.WithDeadZone(s.deadZoneStart, s.deadZoneEnd),
	)

	s.started = true
	metrics.UpdateWorkerCount(s.workerCount)
	metrics.UpdateHolidayCount(s.calendar.Len())
	metrics.UpdateConfigCount(s.configStore.Count(ctx))
	s.logger.Info(ctx, "scheduling service started",
		logger.Int("workers", s.workerCount),
		logger.Int("holidays", s.calendar.Len()),
		logger.Int("configOverrides", s.configStore.Count(ctx)),
	)

	return nil
}

// Stop shuts the service down. The engine holds no external resources, so
// this only flips state.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "scheduling service stopped")
}

// Evaluate classifies every participant of the proposal at its proposed time
// and folds the statuses into an equity score.
func (s *Service) Evaluate(ctx context.Context, proposal model.MeetingProposal) ([]types.ParticipantStatus, types.EquityScoreResult, error) {
	if err := s.checkReady(len(proposal.Participants)); err != nil {
		return nil, types.EquityScoreResult{}, err
	}

	configs := s.configStore.List(ctx)
	instant := proposal.ProposedTime.UTC()

	statuses := make([]types.ParticipantStatus, 0, len(proposal.Participants))
	for _, p := range proposal.Participants {
		cfg := workhours.Resolve(p.CountryCode, configs)
		st, err := s.classifier.Classify(instant, p, cfg)
		if err != nil {
			return nil, types.EquityScoreResult{}, err
		}
		metrics.RecordClassification(string(st.Status))
		if st.Holiday != "" {
			metrics.RecordHolidayHit()
		}
		statuses = append(statuses, st)
	}

	metrics.RecordEvaluation()
	return statuses, equity.Score(statuses), nil
}

// Heatmap evaluates all 24 UTC hours of date for the participant set. The
// 24 hour slots are independent, so they are fanned out across a bounded
// worker gang; each goroutine writes only its own slot index, which keeps
// the output identical to the sequential loop.
func (s *Service) Heatmap(ctx context.Context, date model.Date, participants []model.Participant) ([]types.TimeSlotScore, error) {
	if err := s.checkReady(len(participants)); err != nil {
		return nil, err
	}

	start := time.Now()
	configs := s.configStore.List(ctx)

	slots := make([]types.TimeSlotScore, heatmap.HoursPerDay)
	hours := make(chan int)

	workers := s.workerCount
	if workers < 1 {
		workers = 1
	}
	if workers > heatmap.HoursPerDay {
		workers = heatmap.HoursPerDay
	}

	var wg sync.WaitGroup
	var errMu sync.Mutex
	var firstErr error

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for h := range hours {
				slot, err := heatmap.EvaluateHour(date, h, participants, configs, s.classifier)
				if err != nil {
					errMu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					errMu.Unlock()
					continue
				}
				slots[h] = slot
			}
		}()
	}

	for h := 0; h < heatmap.HoursPerDay; h++ {
		hours <- h
	}
	close(hours)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	metrics.RecordHeatmapGenerated()
	metrics.RecordHeatmapDuration(float64(time.Since(start).Milliseconds()))
	s.logger.Debug(ctx, "heatmap generated",
		logger.String("date", date.String()),
		logger.Int("participants", len(participants)),
		logger.Duration("took", time.Since(start)),
	)
	return slots, nil
}

// Suggest generates the day's heatmap and returns the top-limit slots. A
// non-positive limit falls back to the configured default.
func (s *Service) Suggest(ctx context.Context, date model.Date, participants []model.Participant, limit int) ([]types.TimeSlotScore, error) {
	if limit < 1 {
		limit = s.suggestionLimit
	}
	if limit > s.maxSuggestionLimit {
		return nil, fmt.Errorf("%w: %d > %d", ErrLimitExceeded, limit, s.maxSuggestionLimit)
	}

	slots, err := s.Heatmap(ctx, date, participants)
	if err != nil {
		return nil, err
	}

	metrics.RecordSuggestionServed()
	return heatmap.Suggest(slots, limit), nil
}

// PutConfig validates a working-hours override and stores it when valid.
// Validation failures are a defined outcome, not an error: the full
// field-to-message map comes back for the caller to render.
func (s *Service) PutConfig(ctx context.Context, cfg model.WorkingHoursConfig) (workhours.Result, error) {
	if err := s.checkReady(0); err != nil {
		return workhours.Result{}, err
	}

	result := workhours.Validate(cfg)
	if !result.Valid {
		metrics.RecordConfigValidationFailure()
		return result, nil
	}

	if err := s.configStore.Put(ctx, cfg); err != nil {
		return workhours.Result{}, err
	}
	metrics.RecordConfigWrite()
	metrics.UpdateConfigCount(s.configStore.Count(ctx))
	return result, nil
}

// GetConfig returns the stored override for a country.
// Returns repository.ErrNotFound when none exists.
func (s *Service) GetConfig(ctx context.Context, countryCode string) (model.WorkingHoursConfig, error) {
	if err := s.checkReady(0); err != nil {
		return model.WorkingHoursConfig{}, err
	}
	return s.configStore.Get(ctx, countryCode)
}

// ListConfigs returns all stored overrides ordered by country code.
func (s *Service) ListConfigs(ctx context.Context) ([]model.WorkingHoursConfig, error) {
	if err := s.checkReady(0); err != nil {
		return nil, err
	}
	return s.configStore.List(ctx), nil
}

// DeleteConfig removes the override for a country.
func (s *Service) DeleteConfig(ctx context.Context, countryCode string) error {
	if err := s.checkReady(0); err != nil {
		return err
	}
	if err := s.configStore.Delete(ctx, countryCode); err != nil {
		return err
	}
	metrics.UpdateConfigCount(s.configStore.Count(ctx))
	return nil
}

// ResolveConfig returns the effective working-hours config for a country,
// falling back to the global default.
func (s *Service) ResolveConfig(ctx context.Context, countryCode string) (model.WorkingHoursConfig, error) {
	if err := s.checkReady(0); err != nil {
		return model.WorkingHoursConfig{}, err
	}
	return workhours.Resolve(countryCode, s.configStore.List(ctx)), nil
}

// Holiday looks up the holiday entry for a country and local date.
func (s *Service) Holiday(_ context.Context, countryCode string, date model.Date) (model.HolidayEntry, bool, error) {
	if err := s.checkReady(0); err != nil {
		return model.HolidayEntry{}, false, err
	}
	entry, ok := s.calendar.Lookup(countryCode, date)
	return entry, ok, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":            s.started,
		"workerCount":        s.workerCount,
		"suggestionLimit":    s.suggestionLimit,
		"maxSuggestionLimit": s.maxSuggestionLimit,
		"maxParticipants":    s.maxParticipants,
		"deadZone":           s.deadZoneStart.String() + "-" + s.deadZoneEnd.String(),
	}

	if s.started {
		stats["configOverrides"] = s.configStore.Count(ctx)
		stats["holidayEntries"] = s.calendar.Len()

		metrics.UpdateConfigCount(s.configStore.Count(ctx))
		metrics.UpdateHolidayCount(s.calendar.Len())
		metrics.UpdateWorkerCount(s.workerCount)
	}

	return stats
}

// checkReady verifies the service is started and the participant count is
// within bounds. A zero count skips the cap check.
func (s *Service) checkReady(participants int) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	if participants > s.maxParticipants {
		return fmt.Errorf("%w: %d > %d", ErrTooManyParticipants, participants, s.maxParticipants)
	}
	return nil
}
