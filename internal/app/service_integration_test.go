package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	service "github.com/okian/fairslot/internal/app"
	"github.com/okian/fairslot/internal/domain/model"
	"github.com/okian/fairslot/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func writeSeedFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestServiceIntegration(t *testing.T) {
	Convey("Given a service booted from seed files", t, func() {
		holidayFile := writeSeedFile(t, "holidays.yaml", `
holidays:
  - country_code: "DE"
    date: "2026-01-15"
    name: "Landesfeiertag"
`)
		configFile := writeSeedFile(t, "configs.yaml", `
configs:
  - country_code: "JP"
    green_start: "10:00"
    green_end: "18:00"
    orange_morning_start: "09:00"
    orange_morning_end: "10:00"
    orange_evening_start: "18:00"
    orange_evening_end: "19:00"
    work_days: [1, 2, 3, 4, 5]
`)

		svc := service.New(
			service.WithWorkerCount(2),
			service.WithHolidayFile(holidayFile),
			service.WithSeedConfigFile(configFile),
		)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		Convey("When starting the service", func() {
			err := svc.Start(ctx)
			defer svc.Stop()

			Convey("Then it should start successfully", func() {
				So(err, ShouldBeNil)
			})

			Convey("And the seeded override should be live", func() {
				So(err, ShouldBeNil)
				cfg, err := svc.GetConfig(ctx, "JP")
				So(err, ShouldBeNil)
				So(cfg.GreenStart.String(), ShouldEqual, "10:00")
			})

			Convey("And the seeded holiday should drive classification", func() {
				So(err, ShouldBeNil)
				statuses, equityResult, err := svc.Evaluate(ctx, model.MeetingProposal{
					ProposedTime: time.Date(2026, time.January, 15, 14, 0, 0, 0, time.UTC),
					Participants: []model.Participant{
						{ID: "p-de", Timezone: "Europe/Berlin", CountryCode: "DE"},
					},
				})
				So(err, ShouldBeNil)
				So(statuses[0].Status, ShouldEqual, types.StatusCritical)
				So(statuses[0].Holiday, ShouldEqual, "Landesfeiertag")
				So(*equityResult.Score, ShouldEqual, 0)
			})

			Convey("And the holiday lookup should answer directly", func() {
				So(err, ShouldBeNil)
				date, _ := model.ParseDate("2026-01-15")
				entry, ok, err := svc.Holiday(ctx, "DE", date)
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(entry.Name, ShouldEqual, "Landesfeiertag")
			})
		})

		Convey("When the seed config violates a structural rule", func() {
			badFile := writeSeedFile(t, "bad.yaml", `
configs:
  - country_code: "JP"
    green_start: "18:00"
    green_end: "10:00"
    orange_morning_start: "09:00"
    orange_morning_end: "10:00"
    orange_evening_start: "18:00"
    orange_evening_end: "19:00"
    work_days: [1]
`)
			badSvc := service.New(service.WithSeedConfigFile(badFile))
			err := badSvc.Start(ctx)

			Convey("Then startup should fail through the validator gate", func() {
				So(errors.Is(err, service.ErrInvalidSeed), ShouldBeTrue)
			})
		})

		Convey("When the holiday file is missing", func() {
			missingSvc := service.New(service.WithHolidayFile(filepath.Join(t.TempDir(), "missing.yaml")))
			err := missingSvc.Start(ctx)

			Convey("Then startup should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When a seeded override changes a participant's windows", func() {
			err := svc.Start(ctx)
			defer svc.Stop()
			So(err, ShouldBeNil)

			tokyo := model.Participant{ID: "p-jp", Timezone: "Asia/Tokyo", CountryCode: "JP"}

			// Thursday 2026-01-15, 00:30 UTC = 09:30 in Tokyo. The default
			// config would call that green; the JP override shifts the green
			// window to 10:00 so it lands in the orange morning.
			statuses, _, err := svc.Evaluate(ctx, model.MeetingProposal{
				ProposedTime: time.Date(2026, time.January, 15, 0, 30, 0, 0, time.UTC),
				Participants: []model.Participant{tokyo},
			})

			Convey("Then the override should govern classification", func() {
				So(err, ShouldBeNil)
				So(statuses[0].Status, ShouldEqual, types.StatusOrange)
			})
		})
	})
}
