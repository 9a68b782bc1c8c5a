package heatmap_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/fairslot/internal/domain/heatmap"
	"github.com/okian/fairslot/internal/domain/model"
	"github.com/okian/fairslot/internal/domain/schedule"
	"github.com/okian/fairslot/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerate(t *testing.T) {
	Convey("Given a heatmap generator over a work day", t, func() {
		classifier := schedule.New()
		date, _ := model.ParseDate("2026-01-15") // Thursday

		berlin := []model.Participant{
			{ID: "p-berlin", Timezone: "Europe/Berlin", CountryCode: "DE"},
		}

		Convey("When generating for a single participant", func() {
			slots, err := heatmap.Generate(date, berlin, nil, classifier)

			Convey("Then there should be exactly 24 slots ordered by hour", func() {
				So(err, ShouldBeNil)
				So(len(slots), ShouldEqual, 24)
				for i, slot := range slots {
					So(slot.Hour, ShouldEqual, i)
					So(slot.Datetime, ShouldEqual, time.Date(2026, time.January, 15, i, 0, 0, 0, time.UTC))
				}
			})

			Convey("And each hour should score by the participant's local window", func() {
				So(err, ShouldBeNil)
				// 13:00 UTC = 14:00 Berlin, green
				So(*slots[13].Score, ShouldEqual, 100)
				So(slots[13].Breakdown.Green, ShouldEqual, 1)
				// 07:00 UTC = 08:00 Berlin, orange morning
				So(*slots[7].Score, ShouldEqual, 60)
				// 20:00 UTC = 21:00 Berlin, red
				So(*slots[20].Score, ShouldEqual, 20)
				// 01:00 UTC = 02:00 Berlin, dead zone
				So(*slots[1].Score, ShouldEqual, 0)
				So(slots[1].Breakdown.Critical, ShouldEqual, 1)
			})
		})

		Convey("When generating twice for the same inputs", func() {
			first, err1 := heatmap.Generate(date, berlin, nil, classifier)
			second, err2 := heatmap.Generate(date, berlin, nil, classifier)

			Convey("Then the results should be identical", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(first, ShouldResemble, second)
			})
		})

		Convey("When there are no participants", func() {
			slots, err := heatmap.Generate(date, nil, nil, classifier)

			Convey("Then all 24 slots should carry an absent score", func() {
				So(err, ShouldBeNil)
				So(len(slots), ShouldEqual, 24)
				for _, slot := range slots {
					So(slot.Score, ShouldBeNil)
					So(slot.Breakdown.Total(), ShouldEqual, 0)
				}
			})
		})

		Convey("When a participant's timezone cannot be resolved", func() {
			bad := []model.Participant{{ID: "p-bad", Timezone: "Nowhere/Invalid"}}
			_, err := heatmap.Generate(date, bad, nil, classifier)

			Convey("Then generation should fail with an invalid-input error", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, schedule.ErrInvalidInput), ShouldBeTrue)
			})
		})

		Convey("When evaluating a single hour directly", func() {
			sequential, err := heatmap.Generate(date, berlin, nil, classifier)
			So(err, ShouldBeNil)

			Convey("Then it should match the full generation slot for slot", func() {
				for h := 0; h < heatmap.HoursPerDay; h++ {
					slot, err := heatmap.EvaluateHour(date, h, berlin, nil, classifier)
					So(err, ShouldBeNil)
					So(slot, ShouldResemble, sequential[h])
				}
			})
		})
	})
}

func TestSuggest(t *testing.T) {
	Convey("Given a ranked suggestion over heatmap slots", t, func() {
		score := func(v int) *int { return &v }
		slots := []types.TimeSlotScore{
			{Hour: 0, Score: score(20)},
			{Hour: 1, Score: score(80)},
			{Hour: 2, Score: score(80)},
			{Hour: 3, Score: score(100)},
			{Hour: 4, Score: score(40)},
			{Hour: 5, Score: nil},
		}

		Convey("When suggesting the top three", func() {
			top := heatmap.Suggest(slots, 3)

			Convey("Then slots should rank by score descending", func() {
				So(len(top), ShouldEqual, 3)
				So(top[0].Hour, ShouldEqual, 3)
			})

			Convey("And ties should break toward the earlier hour", func() {
				So(top[1].Hour, ShouldEqual, 1)
				So(top[2].Hour, ShouldEqual, 2)
			})
		})

		Convey("When the limit is below one", func() {
			top := heatmap.Suggest(slots, 0)

			Convey("Then the default limit should apply", func() {
				So(len(top), ShouldEqual, heatmap.DefaultSuggestionLimit)
			})
		})

		Convey("When the limit exceeds the slot count", func() {
			top := heatmap.Suggest(slots, 50)

			Convey("Then all slots should be returned", func() {
				So(len(top), ShouldEqual, len(slots))
			})
		})

		Convey("When a slot has no score", func() {
			top := heatmap.Suggest(slots, len(slots))

			Convey("Then it should rank behind every scored slot", func() {
				So(top[len(top)-1].Hour, ShouldEqual, 5)
			})
		})

		Convey("When suggesting", func() {
			before := make([]types.TimeSlotScore, len(slots))
			copy(before, slots)
			_ = heatmap.Suggest(slots, 2)

			Convey("Then the input slice should stay untouched", func() {
				So(slots, ShouldResemble, before)
			})
		})
	})
}
