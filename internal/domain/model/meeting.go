// Package model contains domain models passed between layers.
package model

import "time"

// Participant is one attendee of a proposed meeting. The engine only reads
// Timezone and CountryCode; the rest is carried through for callers.
type Participant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Timezone    string `json:"timezone"` // IANA identifier, e.g. "Europe/Berlin"
	CountryCode string `json:"country_code"`
	Notes       string `json:"notes,omitempty"`
}

// MeetingProposal is the engine's primary input: a UTC instant, a duration,
// and an ordered participant list. Never mutated by the engine.
type MeetingProposal struct {
	ProposedTime    time.Time     `json:"proposed_time"` // UTC instant
	DurationMinutes int           `json:"duration_minutes"`
	Participants    []Participant `json:"participants"`
}

// HolidayEntry is one row of public-holiday reference data, keyed by
// country and local calendar date.
type HolidayEntry struct {
	CountryCode string `json:"country_code"`
	Date        Date   `json:"date"`
	Name        string `json:"name"`
}
