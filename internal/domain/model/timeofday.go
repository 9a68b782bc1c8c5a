package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Minutes-per-unit constants for wall-clock arithmetic.
const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

// TimeOfDay is a local wall-clock time with minute precision, serialized
// as "HH:MM" in 24-hour format. The zero value is midnight.
type TimeOfDay struct {
	minutes int // minutes since local midnight, [0, 1440)
}

// ParseTimeOfDay parses "HH:MM" in 24-hour format.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%2d:%2d", &h, &m); err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("time of day %q out of range", s)
	}
	return TimeOfDay{minutes: h*minutesPerHour + m}, nil
}

// MustTimeOfDay parses "HH:MM" and panics on malformed input. Intended for
// package-level defaults and tests.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfDayFrom extracts the wall-clock portion of an already-localized instant.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{minutes: t.Hour()*minutesPerHour + t.Minute()}
}

// Minutes returns minutes since local midnight.
func (t TimeOfDay) Minutes() int { return t.minutes }

// Before reports whether t is strictly earlier than o.
func (t TimeOfDay) Before(o TimeOfDay) bool { return t.minutes < o.minutes }

// After reports whether t is strictly later than o.
func (t TimeOfDay) After(o TimeOfDay) bool { return t.minutes > o.minutes }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/minutesPerHour, t.minutes%minutesPerHour)
}

// MarshalJSON encodes the time as an "HH:MM" string.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(t.String())
	if err != nil {
		return nil, fmt.Errorf("marshal time of day: %w", err)
	}
	return b, nil
}

// UnmarshalJSON decodes an "HH:MM" string.
func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("unmarshal time of day: %w", err)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Window is a half-open [Start, End) wall-clock interval within one day.
// Windows never wrap midnight.
type Window struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t TimeOfDay) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Valid reports whether the window's start strictly precedes its end.
func (w Window) Valid() bool { return w.Start.Before(w.End) }
