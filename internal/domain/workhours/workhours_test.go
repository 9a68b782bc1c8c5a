package workhours_test

import (
	"testing"

	"github.com/okian/fairslot/internal/domain/model"
	"github.com/okian/fairslot/internal/domain/workhours"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefault(t *testing.T) {
	Convey("Given the global default config", t, func() {
		Convey("Then the standard windows should be set", func() {
			So(workhours.Default.GreenStart.String(), ShouldEqual, "09:00")
			So(workhours.Default.GreenEnd.String(), ShouldEqual, "17:00")
			So(workhours.Default.OrangeMorningStart.String(), ShouldEqual, "08:00")
			So(workhours.Default.OrangeMorningEnd.String(), ShouldEqual, "09:00")
			So(workhours.Default.OrangeEveningStart.String(), ShouldEqual, "17:00")
			So(workhours.Default.OrangeEveningEnd.String(), ShouldEqual, "18:00")
		})

		Convey("And Monday through Friday should be work days", func() {
			So(workhours.Default.WorkDays, ShouldResemble, []int{1, 2, 3, 4, 5})
			So(workhours.Default.IsWorkDay(1), ShouldBeTrue)
			So(workhours.Default.IsWorkDay(5), ShouldBeTrue)
			So(workhours.Default.IsWorkDay(6), ShouldBeFalse)
			So(workhours.Default.IsWorkDay(7), ShouldBeFalse)
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Given a set of country overrides", t, func() {
		override := workhours.Default
		override.CountryCode = "JP"
		override.GreenStart = model.MustTimeOfDay("10:00")
		configs := []model.WorkingHoursConfig{override}

		Convey("When a matching override exists", func() {
			Convey("Then it should be returned", func() {
				got := workhours.Resolve("JP", configs)
				So(got.CountryCode, ShouldEqual, "JP")
				So(got.GreenStart.String(), ShouldEqual, "10:00")
			})
		})

		Convey("When no override matches", func() {
			Convey("Then the default should be returned", func() {
				got := workhours.Resolve("DE", configs)
				So(got, ShouldResemble, workhours.Default)
			})
		})

		Convey("When the participant carries no country code", func() {
			Convey("Then the default should be returned even if a codeless config exists", func() {
				codeless := workhours.Default
				got := workhours.Resolve("", append(configs, codeless))
				So(got, ShouldResemble, workhours.Default)
			})
		})

		Convey("When the override list is empty", func() {
			Convey("Then the default should be returned", func() {
				So(workhours.Resolve("US", nil), ShouldResemble, workhours.Default)
			})
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given the config validator", t, func() {
		valid := workhours.Default
		valid.CountryCode = "DE"

		Convey("When validating a well-formed config", func() {
			result := workhours.Validate(valid)

			Convey("Then it should pass with no errors", func() {
				So(result.Valid, ShouldBeTrue)
				So(result.Errors, ShouldBeEmpty)
			})
		})

		Convey("When the country code is missing", func() {
			cfg := valid
			cfg.CountryCode = ""
			result := workhours.Validate(cfg)

			Convey("Then it should fail on country_code", func() {
				So(result.Valid, ShouldBeFalse)
				So(result.Errors, ShouldContainKey, "country_code")
			})
		})

		Convey("When the green window is inverted", func() {
			cfg := valid
			cfg.GreenStart = model.MustTimeOfDay("17:00")
			cfg.GreenEnd = model.MustTimeOfDay("09:00")
			result := workhours.Validate(cfg)

			Convey("Then it should fail on green_end", func() {
				So(result.Valid, ShouldBeFalse)
				So(result.Errors, ShouldContainKey, "green_end")
			})
		})

		Convey("When the orange morning runs into the green window", func() {
			cfg := valid
			cfg.OrangeMorningEnd = model.MustTimeOfDay("09:30")
			result := workhours.Validate(cfg)

			Convey("Then it should fail on orange_morning_end", func() {
				So(result.Valid, ShouldBeFalse)
				So(result.Errors, ShouldContainKey, "orange_morning_end")
			})
		})

		Convey("When the orange evening starts before the green window ends", func() {
			cfg := valid
			cfg.OrangeEveningStart = model.MustTimeOfDay("16:30")
			result := workhours.Validate(cfg)

			Convey("Then it should fail on orange_evening_start", func() {
				So(result.Valid, ShouldBeFalse)
				So(result.Errors, ShouldContainKey, "orange_evening_start")
			})
		})

		Convey("When no work days are configured", func() {
			cfg := valid
			cfg.WorkDays = nil
			result := workhours.Validate(cfg)

			Convey("Then it should fail on work_days", func() {
				So(result.Valid, ShouldBeFalse)
				So(result.Errors, ShouldContainKey, "work_days")
			})
		})

		Convey("When a work day is out of the ISO range", func() {
			cfg := valid
			cfg.WorkDays = []int{1, 2, 8}
			result := workhours.Validate(cfg)

			Convey("Then it should fail on work_days", func() {
				So(result.Valid, ShouldBeFalse)
				So(result.Errors, ShouldContainKey, "work_days")
			})
		})

		Convey("When several rules are violated at once", func() {
			cfg := model.WorkingHoursConfig{
				GreenStart:         model.MustTimeOfDay("17:00"),
				GreenEnd:           model.MustTimeOfDay("09:00"),
				OrangeMorningStart: model.MustTimeOfDay("08:00"),
				OrangeMorningEnd:   model.MustTimeOfDay("09:00"),
				OrangeEveningStart: model.MustTimeOfDay("17:00"),
				OrangeEveningEnd:   model.MustTimeOfDay("18:00"),
			}
			result := workhours.Validate(cfg)

			Convey("Then every violation should be reported together", func() {
				So(result.Valid, ShouldBeFalse)
				So(result.Errors, ShouldContainKey, "country_code")
				So(result.Errors, ShouldContainKey, "green_end")
				So(result.Errors, ShouldContainKey, "work_days")
			})
		})
	})
}
