// Package schedule classifies how disruptive a candidate meeting time is
// for a single participant.
package schedule

import (
	"fmt"
	"time"

	"github.com/okian/fairslot/internal/domain/holiday"
	"github.com/okian/fairslot/internal/domain/model"
	"github.com/okian/fairslot/internal/domain/types"
)

// Default dead-zone bounds: local hours treated as critical even on work
// days. Tunable via options; confirm against product acceptance tests
// before relying on the exact boundaries.
var (
	defaultDeadZoneStart = model.MustTimeOfDay("00:00")
	defaultDeadZoneEnd   = model.MustTimeOfDay("05:00")
)

// Option applies a configuration option to the Classifier.
type Option func(*Classifier)

// WithDeadZone sets the critical window around local midnight. A start not
// strictly before end disables the dead zone.
func WithDeadZone(start, end model.TimeOfDay) Option {
	return func(c *Classifier) {
		c.deadZone = model.Window{Start: start, End: end}
	}
}

// WithCalendar sets the holiday calendar consulted during classification.
func WithCalendar(cal holiday.Calendar) Option {
	return func(c *Classifier) {
		if cal != nil {
			c.calendar = cal
		}
	}
}

// Classifier converts a UTC instant plus a participant's timezone, resolved
// working-hours config, and holiday data into a status classification. It is
// stateless after construction and safe for concurrent use.
type Classifier struct {
	calendar holiday.Calendar
	deadZone model.Window
}

// New creates a Classifier. Without WithCalendar the classifier runs with an
// empty calendar and never reports holidays.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		calendar: holiday.NewInMemoryCalendar(),
		deadZone: model.Window{Start: defaultDeadZoneStart, End: defaultDeadZoneEnd},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify evaluates one participant at one UTC instant under an
// already-resolved working-hours config.
//
// Precedence: holiday, then non-work-day, then green window, then orange
// windows, then dead zone, then red. An unresolvable timezone is an
// ErrInvalidInput-kinded error, never silently defaulted.
func (c *Classifier) Classify(utcInstant time.Time, p model.Participant, cfg model.WorkingHoursConfig) (types.ParticipantStatus, error) {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return types.ParticipantStatus{}, fmt.Errorf("%w: timezone %q for participant %q: %v", ErrInvalidInput, p.Timezone, p.ID, err)
	}

	local := utcInstant.In(loc)
	localDate := model.DateOf(local)
	localTime := model.TimeOfDayFrom(local)

	if entry, ok := c.calendar.Lookup(p.CountryCode, localDate); ok {
		return types.ParticipantStatus{
			ParticipantID: p.ID,
			Status:        types.StatusCritical,
			IsCritical:    true,
			Reason:        types.ReasonHolidayPrefix + entry.Name,
			Holiday:       entry.Name,
		}, nil
	}

	if !cfg.IsWorkDay(localDate.Weekday()) {
		return critical(p.ID), nil
	}

	switch {
	case cfg.Green().Contains(localTime):
		return types.ParticipantStatus{
			ParticipantID: p.ID,
			Status:        types.StatusGreen,
			Reason:        types.ReasonOptimal,
		}, nil
	case cfg.OrangeMorning().Contains(localTime), cfg.OrangeEvening().Contains(localTime):
		return types.ParticipantStatus{
			ParticipantID: p.ID,
			Status:        types.StatusOrange,
			Reason:        types.ReasonAcceptable,
		}, nil
	case c.deadZone.Valid() && c.deadZone.Contains(localTime):
		return critical(p.ID), nil
	default:
		return types.ParticipantStatus{
			ParticipantID: p.ID,
			Status:        types.StatusRed,
			Reason:        types.ReasonOutsideWindow,
		}, nil
	}
}

// critical builds the non-holiday critical classification shared by the
// non-work-day and dead-zone branches.
func critical(participantID string) types.ParticipantStatus {
	return types.ParticipantStatus{
		ParticipantID: participantID,
		Status:        types.StatusCritical,
		IsCritical:    true,
		Reason:        types.ReasonOutsideHours,
	}
}
