package types_test

import (
	"testing"

	"github.com/okian/fairslot/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStatus(t *testing.T) {
	Convey("Given the status tiers", t, func() {
		Convey("When validating known tiers", func() {
			Convey("Then all four should be valid", func() {
				So(types.StatusGreen.Valid(), ShouldBeTrue)
				So(types.StatusOrange.Valid(), ShouldBeTrue)
				So(types.StatusRed.Valid(), ShouldBeTrue)
				So(types.StatusCritical.Valid(), ShouldBeTrue)
			})
		})

		Convey("When validating unknown values", func() {
			Convey("Then they should be invalid", func() {
				So(types.Status("purple").Valid(), ShouldBeFalse)
				So(types.Status("").Valid(), ShouldBeFalse)
			})
		})
	})
}

func TestBreakdown(t *testing.T) {
	Convey("Given a status breakdown", t, func() {
		b := types.Breakdown{Green: 3, Orange: 2, Red: 1, Critical: 4}

		Convey("When totaling", func() {
			Convey("Then every tier should count", func() {
				So(b.Total(), ShouldEqual, 10)
			})
		})

		Convey("When empty", func() {
			Convey("Then the total should be zero", func() {
				So(types.Breakdown{}.Total(), ShouldEqual, 0)
			})
		})
	})
}

func TestQualityLabel(t *testing.T) {
	Convey("Given the quality thresholds", t, func() {
		Convey("When the score is 80 or above", func() {
			Convey("Then the label should be Excellent", func() {
				So(types.QualityLabel(100), ShouldEqual, types.QualityExcellent)
				So(types.QualityLabel(80), ShouldEqual, types.QualityExcellent)
			})
		})

		Convey("When the score is between 50 and 79", func() {
			Convey("Then the label should be Good", func() {
				So(types.QualityLabel(79), ShouldEqual, types.QualityGood)
				So(types.QualityLabel(50), ShouldEqual, types.QualityGood)
			})
		})

		Convey("When the score is between 30 and 49", func() {
			Convey("Then the label should be Fair", func() {
				So(types.QualityLabel(49), ShouldEqual, types.QualityFair)
				So(types.QualityLabel(30), ShouldEqual, types.QualityFair)
			})
		})

		Convey("When the score is below 30", func() {
			Convey("Then the label should be Poor", func() {
				So(types.QualityLabel(29), ShouldEqual, types.QualityPoor)
				So(types.QualityLabel(0), ShouldEqual, types.QualityPoor)
			})
		})
	})
}

func TestSeverityTier(t *testing.T) {
	Convey("Given the severity thresholds", t, func() {
		Convey("When the score is 71 or above", func() {
			Convey("Then the tier should be favorable", func() {
				So(types.SeverityTier(100), ShouldEqual, types.SeverityFavorable)
				So(types.SeverityTier(71), ShouldEqual, types.SeverityFavorable)
			})
		})

		Convey("When the score is between 41 and 70", func() {
			Convey("Then the tier should be caution", func() {
				So(types.SeverityTier(70), ShouldEqual, types.SeverityCaution)
				So(types.SeverityTier(41), ShouldEqual, types.SeverityCaution)
			})
		})

		Convey("When the score is below 41", func() {
			Convey("Then the tier should be unfavorable", func() {
				So(types.SeverityTier(40), ShouldEqual, types.SeverityUnfavorable)
				So(types.SeverityTier(0), ShouldEqual, types.SeverityUnfavorable)
			})
		})
	})
}
