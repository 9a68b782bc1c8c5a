// Package workhours resolves and validates per-country working-hours
// configuration.
package workhours

import (
	"github.com/okian/fairslot/internal/domain/model"
)

// Default is the immutable global working-hours configuration, used whenever
// no country override exists: optimal 09:00-17:00, acceptable 08:00-09:00
// and 17:00-18:00, Monday through Friday.
var Default = model.WorkingHoursConfig{
	GreenStart:         model.MustTimeOfDay("09:00"),
	GreenEnd:           model.MustTimeOfDay("17:00"),
	OrangeMorningStart: model.MustTimeOfDay("08:00"),
	OrangeMorningEnd:   model.MustTimeOfDay("09:00"),
	OrangeEveningStart: model.MustTimeOfDay("17:00"),
	OrangeEveningEnd:   model.MustTimeOfDay("18:00"),
	WorkDays:           []int{1, 2, 3, 4, 5},
}

// Resolve returns the override whose country code matches, else Default.
// Absence of a match is normal, not an error.
func Resolve(countryCode string, configs []model.WorkingHoursConfig) model.WorkingHoursConfig {
	for _, c := range configs {
		if c.CountryCode != "" && c.CountryCode == countryCode {
			return c
		}
	}
	return Default
}
