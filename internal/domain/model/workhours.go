package model

// WorkingHoursConfig defines the local time windows and work days that
// count as optimal or acceptable for one country. A config with an empty
// CountryCode is the global default.
type WorkingHoursConfig struct {
	CountryCode string `json:"country_code,omitempty"` // ISO alpha-2

	GreenStart TimeOfDay `json:"green_start"`
	GreenEnd   TimeOfDay `json:"green_end"`

	OrangeMorningStart TimeOfDay `json:"orange_morning_start"`
	OrangeMorningEnd   TimeOfDay `json:"orange_morning_end"`
	OrangeEveningStart TimeOfDay `json:"orange_evening_start"`
	OrangeEveningEnd   TimeOfDay `json:"orange_evening_end"`

	// WorkDays holds ISO weekday numbers, Monday=1 through Sunday=7.
	WorkDays []int `json:"work_days"`
}

// Green returns the optimal window.
func (c WorkingHoursConfig) Green() Window {
	return Window{Start: c.GreenStart, End: c.GreenEnd}
}

// OrangeMorning returns the acceptable window before the optimal one.
func (c WorkingHoursConfig) OrangeMorning() Window {
	return Window{Start: c.OrangeMorningStart, End: c.OrangeMorningEnd}
}

// OrangeEvening returns the acceptable window after the optimal one.
func (c WorkingHoursConfig) OrangeEvening() Window {
	return Window{Start: c.OrangeEveningStart, End: c.OrangeEveningEnd}
}

// IsWorkDay reports whether the ISO weekday number is a configured work day.
func (c WorkingHoursConfig) IsWorkDay(isoWeekday int) bool {
	for _, d := range c.WorkDays {
		if d == isoWeekday {
			return true
		}
	}
	return false
}
