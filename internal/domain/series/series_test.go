package series_test

import (
	"testing"
	"time"

	"github.com/okian/salesboard/internal/domain/model"
	"github.com/okian/salesboard/internal/domain/series"
	. "github.com/smartystreets/goconvey/convey"
)

func day(d int) time.Time { return time.Date(2023, 5, d, 0, 0, 0, 0, time.UTC) }

func history() []model.MetricPoint {
	return []model.MetricPoint{
		{Date: day(1), Sales: 900.73, Profit: 173, Customers: 73},
		{Date: day(2), Sales: 1000.74, Profit: 174.6, Customers: 74},
		{Date: day(3), Sales: 1100.93, Profit: 293.1, Customers: 293},
		{Date: day(4), Sales: 1200.9, Profit: 290.2, Customers: 29},
	}
}

func TestProject(t *testing.T) {
	Convey("Given the daily history", t, func() {
		Convey("When projecting profit", func() {
			pts := series.Project(history(), model.MetricProfit)

			Convey("Then values and labels should follow the dates", func() {
				So(len(pts), ShouldEqual, 4)
				So(pts[0].Date, ShouldEqual, day(1))
				So(pts[1].Value, ShouldEqual, 174.6)
				So(pts[1].Label, ShouldEqual, "$ 175")
				So(pts[3].Date, ShouldEqual, day(4))
			})
		})

		Convey("When projecting customers", func() {
			pts := series.Project(history(), model.MetricCustomers)
			So(pts[2].Value, ShouldEqual, 293.0)
			So(pts[2].Label, ShouldEqual, "293")
		})

		Convey("When projecting a non-chartable metric", func() {
			So(func() { series.Project(history(), model.MetricDelta) }, ShouldPanic)
		})

		Convey("When projecting an empty history", func() {
			So(series.Project(nil, model.MetricSales), ShouldBeEmpty)
		})
	})
}

func TestRangeAndBounds(t *testing.T) {
	Convey("Given a projected series", t, func() {
		pts := series.Project(history(), model.MetricCustomers)

		Convey("Then the range should span first to last date", func() {
			start, end, ok := series.Range(pts)
			So(ok, ShouldBeTrue)
			So(start, ShouldEqual, day(1))
			So(end, ShouldEqual, day(4))
		})

		Convey("And bounds should be the extreme values", func() {
			lo, hi := series.Bounds(pts)
			So(lo, ShouldEqual, 29.0)
			So(hi, ShouldEqual, 293.0)
		})

		Convey("When the series is empty", func() {
			_, _, ok := series.Range(nil)
			So(ok, ShouldBeFalse)
		})
	})
}
