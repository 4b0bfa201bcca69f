// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"time"
)

// Metric names a KPI tracked over time.
type Metric string

// KPI metrics in display order. Delta is only valid for formatting.
const (
	MetricSales     Metric = "Sales"
	MetricProfit    Metric = "Profit"
	MetricCustomers Metric = "Customers"
	MetricDelta     Metric = "Delta"
)

// Metrics lists the chartable KPIs in tab order.
var Metrics = []Metric{MetricSales, MetricProfit, MetricCustomers}

func (m Metric) String() string { return string(m) }

// Status is a salesperson's performance bucket.
type Status string

// Performance statuses.
const (
	StatusOverperforming  Status = "overperforming"
	StatusAverage         Status = "average"
	StatusUnderperforming Status = "underperforming"
)

// Statuses lists every performance status in filter order.
var Statuses = []Status{StatusOverperforming, StatusAverage, StatusUnderperforming}

// Valid reports whether s belongs to the closed status set.
func (s Status) Valid() bool {
	switch s {
	case StatusOverperforming, StatusAverage, StatusUnderperforming:
		return true
	}
	return false
}

// Variance is the spread of a salesperson's results.
type Variance string

// Variance levels.
const (
	VarianceLow    Variance = "low"
	VarianceMedium Variance = "medium"
	VarianceHigh   Variance = "high"
)

// Valid reports whether v belongs to the closed variance set.
func (v Variance) Valid() bool {
	switch v {
	case VarianceLow, VarianceMedium, VarianceHigh:
		return true
	}
	return false
}

// Trend is the qualitative delta indicator shown next to a value.
type Trend string

// Trend values, ordered from best to worst.
const (
	TrendIncrease         Trend = "increase"
	TrendModerateIncrease Trend = "moderateIncrease"
	TrendUnchanged        Trend = "unchanged"
	TrendModerateDecrease Trend = "moderateDecrease"
	TrendDecrease         Trend = "decrease"
)

// Valid reports whether t belongs to the closed trend set.
func (t Trend) Valid() bool {
	switch t {
	case TrendIncrease, TrendModerateIncrease, TrendUnchanged, TrendModerateDecrease, TrendDecrease:
		return true
	}
	return false
}

// MetricPoint is one day of KPI values.
type MetricPoint struct {
	Date      time.Time
	Sales     float64
	Profit    float64
	Customers int
}

// Value returns the point's value for a chartable metric.
// Any other metric is a programming error.
func (p MetricPoint) Value(m Metric) float64 {
	switch m {
	case MetricSales:
		return p.Sales
	case MetricProfit:
		return p.Profit
	case MetricCustomers:
		return float64(p.Customers)
	}
	panic(fmt.Sprintf("model: metric %q has no series value", string(m)))
}

// SalesPerson is one roster row. Sales and Quota are preformatted amounts.
type SalesPerson struct {
	Name     string
	Leads    int
	Sales    string
	Quota    string
	Variance Variance
	Region   string
	Status   Status
}

// KPI is a headline card: current value against target.
type KPI struct {
	Title     Metric
	Value     float64
	Progress  float64 // percent of target reached
	Target    float64
	Delta     float64 // percent change
	DeltaType Trend
}
