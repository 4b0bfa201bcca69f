// Package series projects the daily KPI history onto a single metric for charting.
package series

import (
	"time"

	"github.com/okian/salesboard/internal/domain/format"
	"github.com/okian/salesboard/internal/domain/model"
)

// Point is one charted value.
type Point struct {
	Date  time.Time
	Value float64
	Label string
}

// Project extracts metric from every point, keeping date order.
func Project(points []model.MetricPoint, metric model.Metric) []Point {
	fmtValue := format.For(metric)
	out := make([]Point, len(points))
	for i, p := range points {
		v := p.Value(metric)
		out[i] = Point{Date: p.Date, Value: v, Label: fmtValue(v)}
	}
	return out
}

// Range returns the first and last dates, used by the compact chart which
// only labels its ends. ok is false for an empty series.
func Range(points []Point) (start, end time.Time, ok bool) {
	if len(points) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return points[0].Date, points[len(points)-1].Date, true
}

// Bounds returns the smallest and largest values.
func Bounds(points []Point) (lo, hi float64) {
	for i, p := range points {
		if i == 0 || p.Value < lo {
			lo = p.Value
		}
		if i == 0 || p.Value > hi {
			hi = p.Value
		}
	}
	return lo, hi
}
