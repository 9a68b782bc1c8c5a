package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/okian/fairslot/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestTimeOfDay(t *testing.T) {
	convey.Convey("Given the HH:MM time-of-day format", t, func() {
		convey.Convey("When parsing valid times", func() {
			convey.Convey("Then midnight should parse", func() {
				tod, err := model.ParseTimeOfDay("00:00")
				convey.So(err, convey.ShouldBeNil)
				convey.So(tod.Minutes(), convey.ShouldEqual, 0)
			})

			convey.Convey("And a mid-day time should parse", func() {
				tod, err := model.ParseTimeOfDay("09:30")
				convey.So(err, convey.ShouldBeNil)
				convey.So(tod.Minutes(), convey.ShouldEqual, 9*60+30)
			})

			convey.Convey("And the last minute of the day should parse", func() {
				tod, err := model.ParseTimeOfDay("23:59")
				convey.So(err, convey.ShouldBeNil)
				convey.So(tod.Minutes(), convey.ShouldEqual, 23*60+59)
			})
		})

		convey.Convey("When parsing invalid times", func() {
			convey.Convey("Then garbage should fail", func() {
				_, err := model.ParseTimeOfDay("not a time")
				convey.So(err, convey.ShouldNotBeNil)
			})

			convey.Convey("And an out-of-range hour should fail", func() {
				_, err := model.ParseTimeOfDay("24:00")
				convey.So(err, convey.ShouldNotBeNil)
			})

			convey.Convey("And an out-of-range minute should fail", func() {
				_, err := model.ParseTimeOfDay("12:60")
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When formatting", func() {
			convey.Convey("Then String should round-trip the parsed value", func() {
				tod := model.MustTimeOfDay("07:05")
				convey.So(tod.String(), convey.ShouldEqual, "07:05")
			})
		})

		convey.Convey("When comparing", func() {
			early := model.MustTimeOfDay("08:00")
			late := model.MustTimeOfDay("17:00")

			convey.Convey("Then Before and After should be strict", func() {
				convey.So(early.Before(late), convey.ShouldBeTrue)
				convey.So(late.After(early), convey.ShouldBeTrue)
				convey.So(early.Before(early), convey.ShouldBeFalse)
				convey.So(early.After(early), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When extracting from a localized instant", func() {
			instant := time.Date(2026, time.January, 15, 14, 45, 59, 0, time.UTC)

			convey.Convey("Then seconds should be truncated", func() {
				tod := model.TimeOfDayFrom(instant)
				convey.So(tod.String(), convey.ShouldEqual, "14:45")
			})
		})

		convey.Convey("When encoding to JSON", func() {
			convey.Convey("Then it should serialize as an HH:MM string", func() {
				b, err := json.Marshal(model.MustTimeOfDay("09:00"))
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(b), convey.ShouldEqual, `"09:00"`)
			})

			convey.Convey("And it should deserialize back", func() {
				var tod model.TimeOfDay
				err := json.Unmarshal([]byte(`"17:30"`), &tod)
				convey.So(err, convey.ShouldBeNil)
				convey.So(tod.String(), convey.ShouldEqual, "17:30")
			})

			convey.Convey("And a malformed string should fail", func() {
				var tod model.TimeOfDay
				err := json.Unmarshal([]byte(`"25:00"`), &tod)
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestWindow(t *testing.T) {
	convey.Convey("Given a wall-clock window", t, func() {
		w := model.Window{Start: model.MustTimeOfDay("09:00"), End: model.MustTimeOfDay("17:00")}

		convey.Convey("When checking containment", func() {
			convey.Convey("Then the start should be inside", func() {
				convey.So(w.Contains(model.MustTimeOfDay("09:00")), convey.ShouldBeTrue)
			})

			convey.Convey("And the end should be outside", func() {
				convey.So(w.Contains(model.MustTimeOfDay("17:00")), convey.ShouldBeFalse)
			})

			convey.Convey("And a time in the middle should be inside", func() {
				convey.So(w.Contains(model.MustTimeOfDay("12:30")), convey.ShouldBeTrue)
			})

			convey.Convey("And a time before the start should be outside", func() {
				convey.So(w.Contains(model.MustTimeOfDay("08:59")), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When checking validity", func() {
			convey.Convey("Then a forward window should be valid", func() {
				convey.So(w.Valid(), convey.ShouldBeTrue)
			})

			convey.Convey("And an empty window should be invalid", func() {
				empty := model.Window{Start: w.Start, End: w.Start}
				convey.So(empty.Valid(), convey.ShouldBeFalse)
			})

			convey.Convey("And an inverted window should be invalid", func() {
				inverted := model.Window{Start: w.End, End: w.Start}
				convey.So(inverted.Valid(), convey.ShouldBeFalse)
			})
		})
	})
}
