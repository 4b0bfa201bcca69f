package model_test

import (
	"testing"
	"time"

	model "github.com/okian/salesboard/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestMetricPointValue(t *testing.T) {
	convey.Convey("Given a metric point", t, func() {
		p := model.MetricPoint{
			Date:      time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
			Sales:     900.73,
			Profit:    173,
			Customers: 73,
		}

		convey.Convey("When reading each chartable metric", func() {
			convey.Convey("Then it should return the matching field", func() {
				convey.So(p.Value(model.MetricSales), convey.ShouldEqual, 900.73)
				convey.So(p.Value(model.MetricProfit), convey.ShouldEqual, 173.0)
				convey.So(p.Value(model.MetricCustomers), convey.ShouldEqual, 73.0)
			})
		})

		convey.Convey("When reading the Delta metric", func() {
			convey.Convey("Then it should panic", func() {
				convey.So(func() { p.Value(model.MetricDelta) }, convey.ShouldPanic)
			})
		})

		convey.Convey("When reading an unknown metric", func() {
			convey.Convey("Then it should panic", func() {
				convey.So(func() { p.Value(model.Metric("Revenue")) }, convey.ShouldPanic)
			})
		})
	})
}

func TestEnumValidity(t *testing.T) {
	convey.Convey("Given the closed enums", t, func() {
		convey.Convey("Then every listed status should be valid", func() {
			for _, s := range model.Statuses {
				convey.So(s.Valid(), convey.ShouldBeTrue)
			}
			convey.So(model.Status("all").Valid(), convey.ShouldBeFalse)
			convey.So(model.Status("").Valid(), convey.ShouldBeFalse)
		})

		convey.Convey("And variances should validate", func() {
			convey.So(model.VarianceLow.Valid(), convey.ShouldBeTrue)
			convey.So(model.VarianceMedium.Valid(), convey.ShouldBeTrue)
			convey.So(model.VarianceHigh.Valid(), convey.ShouldBeTrue)
			convey.So(model.Variance("extreme").Valid(), convey.ShouldBeFalse)
		})

		convey.Convey("And trends should validate", func() {
			convey.So(model.TrendModerateIncrease.Valid(), convey.ShouldBeTrue)
			convey.So(model.Trend("sideways").Valid(), convey.ShouldBeFalse)
		})

		convey.Convey("And the metric tab order should be Sales, Profit, Customers", func() {
			convey.So(model.Metrics, convey.ShouldResemble, []model.Metric{
				model.MetricSales, model.MetricProfit, model.MetricCustomers,
			})
		})
	})
}
