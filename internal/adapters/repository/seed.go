package repository

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/fairslot/internal/domain/model"
)

// holidayRow mirrors one entry of the holiday YAML file.
type holidayRow struct {
	CountryCode string `koanf:"country_code"`
	Date        string `koanf:"date"` // YYYY-MM-DD
	Name        string `koanf:"name"`
}

// configRow mirrors one entry of the working-hours seed YAML file.
type configRow struct {
	CountryCode        string `koanf:"country_code"`
	GreenStart         string `koanf:"green_start"`
	GreenEnd           string `koanf:"green_end"`
	OrangeMorningStart string `koanf:"orange_morning_start"`
	OrangeMorningEnd   string `koanf:"orange_morning_end"`
	OrangeEveningStart string `koanf:"orange_evening_start"`
	OrangeEveningEnd   string `koanf:"orange_evening_end"`
	WorkDays           []int  `koanf:"work_days"`
}

// LoadHolidayFile reads holiday reference data from a YAML file:
//
//	holidays:
//	  - country_code: "US"
//	    date: "2026-07-04"
//	    name: "Independence Day"
//
// Reference data is trusted but verified: malformed dates fail the load.
func LoadHolidayFile(path string) ([]model.HolidayEntry, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadReference, err)
	}

	var rows []holidayRow
	if err := k.Unmarshal("holidays", &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadReference, err)
	}

	entries := make([]model.HolidayEntry, 0, len(rows))
	for _, r := range rows {
		date, err := model.ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: holiday %q: %v", ErrLoadReference, r.Name, err)
		}
		entries = append(entries, model.HolidayEntry{
			CountryCode: r.CountryCode,
			Date:        date,
			Name:        r.Name,
		})
	}
	return entries, nil
}

// LoadConfigFile reads working-hours overrides from a YAML file keyed under
// "configs", with "HH:MM" window bounds and ISO work-day numbers. Structural
// validation stays with the validator at the service seeding path.
func LoadConfigFile(path string) ([]model.WorkingHoursConfig, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadReference, err)
	}

	var rows []configRow
	if err := k.Unmarshal("configs", &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadReference, err)
	}

	configs := make([]model.WorkingHoursConfig, 0, len(rows))
	for _, r := range rows {
		cfg, err := configFromRow(r)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

func configFromRow(r configRow) (model.WorkingHoursConfig, error) {
	cfg := model.WorkingHoursConfig{
		CountryCode: r.CountryCode,
		WorkDays:    r.WorkDays,
	}

	fields := []struct {
		name  string
		raw   string
		value *model.TimeOfDay
	}{
		{"green_start", r.GreenStart, &cfg.GreenStart},
		{"green_end", r.GreenEnd, &cfg.GreenEnd},
		{"orange_morning_start", r.OrangeMorningStart, &cfg.OrangeMorningStart},
		{"orange_morning_end", r.OrangeMorningEnd, &cfg.OrangeMorningEnd},
		{"orange_evening_start", r.OrangeEveningStart, &cfg.OrangeEveningStart},
		{"orange_evening_end", r.OrangeEveningEnd, &cfg.OrangeEveningEnd},
	}
	for _, f := range fields {
		t, err := model.ParseTimeOfDay(f.raw)
		if err != nil {
			return model.WorkingHoursConfig{}, fmt.Errorf("%w: config %q field %s: %v", ErrLoadReference, r.CountryCode, f.name, err)
		}
		*f.value = t
	}
	return cfg, nil
}
