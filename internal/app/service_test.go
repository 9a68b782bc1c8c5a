package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/fairslot/internal/adapters/repository"
	service "github.com/okian/fairslot/internal/app"
	"github.com/okian/fairslot/internal/domain/model"
	"github.com/okian/fairslot/internal/domain/types"
	"github.com/okian/fairslot/internal/domain/workhours"
	"github.com/okian/fairslot/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func berlinParticipant() model.Participant {
	return model.Participant{ID: "p-berlin", Timezone: "Europe/Berlin", CountryCode: "DE"}
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(svc, ShouldNotBeNil)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithWorkerCount(8),
			service.WithSuggestionLimit(5),
			service.WithMaxSuggestionLimit(12),
			service.WithMaxParticipants(10),
			service.WithDeadZone(model.MustTimeOfDay("01:00"), model.MustTimeOfDay("04:00")),
		)

		Convey("Then it should be created successfully", func() {
			So(svc, ShouldNotBeNil)
		})
	})
}

func TestService_NotStarted(t *testing.T) {
	Convey("Given a service that has not been started", t, func() {
		svc := service.New()
		ctx := context.Background()

		Convey("When evaluating a proposal", func() {
			_, _, err := svc.Evaluate(ctx, model.MeetingProposal{
				ProposedTime: time.Now().UTC(),
				Participants: []model.Participant{berlinParticipant()},
			})

			Convey("Then it should refuse", func() {
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			})
		})

		Convey("When touching the config store", func() {
			_, err := svc.ListConfigs(ctx)

			Convey("Then it should refuse", func() {
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			})
		})
	})
}

func TestService_Evaluate(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New(service.WithWorkerCount(2))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When evaluating a green-hour proposal", func() {
			// Thursday 2026-01-15, 14:00 UTC = 15:00 in Berlin
			statuses, equityResult, err := svc.Evaluate(ctx, model.MeetingProposal{
				ProposedTime:    time.Date(2026, time.January, 15, 14, 0, 0, 0, time.UTC),
				DurationMinutes: 30,
				Participants:    []model.Participant{berlinParticipant()},
			})

			Convey("Then the participant should be green with a perfect score", func() {
				So(err, ShouldBeNil)
				So(len(statuses), ShouldEqual, 1)
				So(statuses[0].Status, ShouldEqual, types.StatusGreen)
				So(equityResult.Score, ShouldNotBeNil)
				So(*equityResult.Score, ShouldEqual, 100)
			})
		})

		Convey("When a participant's timezone is invalid", func() {
			_, _, err := svc.Evaluate(ctx, model.MeetingProposal{
				ProposedTime: time.Now().UTC(),
				Participants: []model.Participant{{ID: "bad", Timezone: "Not/AZone"}},
			})

			Convey("Then evaluation should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})

	Convey("Given a service with a tight participant cap", t, func() {
		svc := service.New(service.WithMaxParticipants(1))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When more participants than allowed are submitted", func() {
			_, _, err := svc.Evaluate(ctx, model.MeetingProposal{
				ProposedTime: time.Now().UTC(),
				Participants: []model.Participant{berlinParticipant(), berlinParticipant()},
			})

			Convey("Then evaluation should refuse", func() {
				So(errors.Is(err, service.ErrTooManyParticipants), ShouldBeTrue)
			})
		})
	})
}

func TestService_Heatmap(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New(service.WithWorkerCount(4))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		date, _ := model.ParseDate("2026-01-15")
		participants := []model.Participant{berlinParticipant()}

		Convey("When generating a heatmap", func() {
			slots, err := svc.Heatmap(ctx, date, participants)

			Convey("Then it should return 24 slots ordered by hour", func() {
				So(err, ShouldBeNil)
				So(len(slots), ShouldEqual, 24)
				for i, slot := range slots {
					So(slot.Hour, ShouldEqual, i)
				}
			})
		})

		Convey("When generating the same heatmap twice", func() {
			first, err1 := svc.Heatmap(ctx, date, participants)
			second, err2 := svc.Heatmap(ctx, date, participants)

			Convey("Then the concurrent fan-out should stay deterministic", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(first, ShouldResemble, second)
			})
		})

		Convey("When a timezone cannot be resolved", func() {
			_, err := svc.Heatmap(ctx, date, []model.Participant{{ID: "bad", Timezone: "Nope"}})

			Convey("Then the heatmap should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestService_Suggest(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New(service.WithSuggestionLimit(3), service.WithMaxSuggestionLimit(10))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		date, _ := model.ParseDate("2026-01-15")
		participants := []model.Participant{berlinParticipant()}

		Convey("When no limit is given", func() {
			suggestions, err := svc.Suggest(ctx, date, participants, 0)

			Convey("Then the default limit should apply", func() {
				So(err, ShouldBeNil)
				So(len(suggestions), ShouldEqual, 3)
			})
		})

		Convey("When suggestions are ranked", func() {
			suggestions, err := svc.Suggest(ctx, date, participants, 5)

			Convey("Then scores should never increase down the list", func() {
				So(err, ShouldBeNil)
				for i := 1; i < len(suggestions); i++ {
					So(*suggestions[i].Score, ShouldBeLessThanOrEqualTo, *suggestions[i-1].Score)
				}
			})
		})

		Convey("When the limit exceeds the configured maximum", func() {
			_, err := svc.Suggest(ctx, date, participants, 11)

			Convey("Then the request should refuse", func() {
				So(errors.Is(err, service.ErrLimitExceeded), ShouldBeTrue)
			})
		})
	})
}

func TestService_Configs(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New()
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		valid := workhours.Default
		valid.CountryCode = "JP"
		valid.GreenStart = model.MustTimeOfDay("10:00")
		valid.OrangeMorningStart = model.MustTimeOfDay("09:00")
		valid.OrangeMorningEnd = model.MustTimeOfDay("10:00")

		Convey("When storing a valid override", func() {
			result, err := svc.PutConfig(ctx, valid)

			Convey("Then it should be accepted and retrievable", func() {
				So(err, ShouldBeNil)
				So(result.Valid, ShouldBeTrue)

				got, err := svc.GetConfig(ctx, "JP")
				So(err, ShouldBeNil)
				So(got.GreenStart.String(), ShouldEqual, "10:00")
			})
		})

		Convey("When storing an invalid override", func() {
			bad := valid
			bad.GreenEnd = model.MustTimeOfDay("08:00")
			result, err := svc.PutConfig(ctx, bad)

			Convey("Then validation failure is an outcome, not an error", func() {
				So(err, ShouldBeNil)
				So(result.Valid, ShouldBeFalse)
				So(result.Errors, ShouldNotBeEmpty)

				_, err := svc.GetConfig(ctx, "JP")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When resolving the effective config", func() {
			_, err := svc.PutConfig(ctx, valid)
			So(err, ShouldBeNil)

			Convey("Then a stored country should get its override", func() {
				got, err := svc.ResolveConfig(ctx, "JP")
				So(err, ShouldBeNil)
				So(got.CountryCode, ShouldEqual, "JP")
			})

			Convey("And an unknown country should get the default", func() {
				got, err := svc.ResolveConfig(ctx, "FR")
				So(err, ShouldBeNil)
				So(got, ShouldResemble, workhours.Default)
			})
		})

		Convey("When deleting an override", func() {
			_, err := svc.PutConfig(ctx, valid)
			So(err, ShouldBeNil)
			So(svc.DeleteConfig(ctx, "JP"), ShouldBeNil)

			Convey("Then it should be gone", func() {
				_, err := svc.GetConfig(ctx, "JP")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When deleting a missing override", func() {
			err := svc.DeleteConfig(ctx, "XX")

			Convey("Then not found should surface", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestService_GetStats(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New(service.WithWorkerCount(4))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When reading stats", func() {
			stats := svc.GetStats()

			Convey("Then the operational numbers should be present", func() {
				So(stats["started"], ShouldEqual, true)
				So(stats["workerCount"], ShouldEqual, 4)
				So(stats["configOverrides"], ShouldEqual, 0)
				So(stats["holidayEntries"], ShouldEqual, 0)
				So(stats["deadZone"], ShouldEqual, "00:00-05:00")
			})
		})
	})
}
