package format_test

import (
	"testing"

	"github.com/okian/salesboard/internal/domain/format"
	"github.com/okian/salesboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricFormatters(t *testing.T) {
	Convey("Given the metric formatters", t, func() {
		Convey("When formatting sales", func() {
			So(format.Sales(12699), ShouldEqual, "$ 12,699")
			So(format.Sales(80000), ShouldEqual, "$ 80,000")
			So(format.Sales(900.73), ShouldEqual, "$ 901")
		})

		Convey("When formatting profit", func() {
			So(format.Profit(45564), ShouldEqual, "$ 45,564")
			So(format.Profit(174.6), ShouldEqual, "$ 175")
		})

		Convey("When formatting customers", func() {
			So(format.Customers(1072), ShouldEqual, "1,072")
			So(format.Customers(73), ShouldEqual, "73")
			So(format.Customers(1234567), ShouldEqual, "1,234,567")
		})

		Convey("When formatting deltas", func() {
			So(format.Delta(13.2), ShouldEqual, "13.20%")
			So(format.Delta(0), ShouldEqual, "0.00%")
			So(format.Delta(-2.5), ShouldEqual, "-2.50%")
		})

		Convey("When rounding halves", func() {
			Convey("Then they should round away from zero", func() {
				So(format.Customers(0.5), ShouldEqual, "1")
				So(format.Customers(2.5), ShouldEqual, "3")
				So(format.Customers(-0.4), ShouldEqual, "0")
				So(format.Customers(-2.5), ShouldEqual, "-3")
				So(format.Delta(0.125), ShouldEqual, "0.13%")
			})

			Convey("And values stored just below a half should round down", func() {
				So(format.Delta(0.015), ShouldEqual, "0.01%")
				So(format.Delta(0.045), ShouldEqual, "0.04%")
				So(format.Delta(1.005), ShouldEqual, "1.00%")
				So(format.Delta(1.015), ShouldEqual, "1.01%")
				So(format.Customers(0.49999999999999994), ShouldEqual, "0")
			})

			Convey("And values stored just above a half should round up", func() {
				So(format.Delta(999.995), ShouldEqual, "1,000.00%")
			})
		})
	})
}

func TestFormatDispatch(t *testing.T) {
	Convey("Given Format and For", t, func() {
		Convey("When dispatching on every known metric", func() {
			cases := map[model.Metric]string{
				model.MetricSales:     "$ 1,000",
				model.MetricProfit:    "$ 1,000",
				model.MetricCustomers: "1,000",
				model.MetricDelta:     "1,000.00%",
			}
			for m, want := range cases {
				So(format.Format(m, 1000), ShouldEqual, want)
				So(format.For(m)(1000), ShouldEqual, want)
			}
		})

		Convey("When the same input is formatted twice", func() {
			So(format.Format(model.MetricSales, 1200.9), ShouldEqual, format.Format(model.MetricSales, 1200.9))
		})

		Convey("When the metric is unknown", func() {
			Convey("Then it should panic", func() {
				So(func() { format.Format(model.Metric("Revenue"), 1) }, ShouldPanic)
				So(func() { format.For(model.Metric("")) }, ShouldPanic)
			})
		})
	})
}

func TestAmountAndPercent(t *testing.T) {
	Convey("Given roster amounts and KPI progress", t, func() {
		So(format.Amount(1_000_000), ShouldEqual, "1,000,000")
		So(format.Amount(390_000), ShouldEqual, "390,000")
		So(format.Percent(15.9), ShouldEqual, "15.9%")
		So(format.Percent(53.6), ShouldEqual, "53.6%")
		So(format.Percent(50), ShouldEqual, "50%")
		So(format.Percent(100.25), ShouldEqual, "100.25%")
		So(format.Percent(0.125), ShouldEqual, "0.125%")
	})
}
