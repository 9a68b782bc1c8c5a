// Package holiday answers whether a (country, local date) pair is a public
// holiday. Reference data is read-only; missing country data means "no
// holiday", never an error.
package holiday

import (
	"github.com/okian/fairslot/internal/domain/model"
)

// Calendar is a pure lookup against holiday reference data. The caller
// supplies an already-localized date; no timezone conversion happens here.
type Calendar interface {
	// Lookup returns the holiday entry for the country and local date,
	// or ok=false when there is none.
	Lookup(countryCode string, date model.Date) (model.HolidayEntry, bool)
}

// Option applies a configuration option to the InMemoryCalendar.
type Option func(*InMemoryCalendar)

// WithEntries seeds the calendar with reference entries. Later entries for
// the same (country, date) key replace earlier ones.
func WithEntries(entries []model.HolidayEntry) Option {
	return func(c *InMemoryCalendar) {
		for _, e := range entries {
			c.entries[key{country: e.CountryCode, date: e.Date}] = e
		}
	}
}

type key struct {
	country string
	date    model.Date
}

// InMemoryCalendar implements Calendar over a map. It is immutable after
// construction and safe for concurrent lookups.
type InMemoryCalendar struct {
	entries map[key]model.HolidayEntry
}

// NewInMemoryCalendar creates a calendar from the given options.
func NewInMemoryCalendar(opts ...Option) *InMemoryCalendar {
	c := &InMemoryCalendar{
		entries: make(map[key]model.HolidayEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup implements Calendar.
func (c *InMemoryCalendar) Lookup(countryCode string, date model.Date) (model.HolidayEntry, bool) {
	e, ok := c.entries[key{country: countryCode, date: date}]
	return e, ok
}

// Len returns the number of loaded entries.
func (c *InMemoryCalendar) Len() int { return len(c.entries) }
