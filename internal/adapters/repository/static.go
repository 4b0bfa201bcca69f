package repository

import (
	"context"
	"time"

	"github.com/okian/salesboard/internal/domain/format"
	"github.com/okian/salesboard/internal/domain/model"
)

// StaticStore is an in-memory Store over fixed data. It is never mutated
// after construction, so concurrent reads need no locking.
type StaticStore struct {
	roster []model.SalesPerson
	series []model.MetricPoint
	kpis   []model.KPI
}

// NewStaticStore returns a store over the built-in sample data, optionally
// replaced piecewise by opts.
func NewStaticStore(opts ...Option) *StaticStore {
	s := &StaticStore{
		roster: sampleRoster(),
		series: sampleSeries(),
		kpis:   sampleKPIs(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Roster implements Store.
func (s *StaticStore) Roster(ctx context.Context) ([]model.SalesPerson, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]model.SalesPerson(nil), s.roster...), nil
}

// Series implements Store.
func (s *StaticStore) Series(ctx context.Context) ([]model.MetricPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]model.MetricPoint(nil), s.series...), nil
}

// KPIs implements Store.
func (s *StaticStore) KPIs(ctx context.Context) ([]model.KPI, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]model.KPI(nil), s.kpis...), nil
}

func date(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func sampleSeries() []model.MetricPoint {
	return []model.MetricPoint{
		{Date: date(2023, time.May, 1), Sales: 900.73, Profit: 173, Customers: 73},
		{Date: date(2023, time.May, 2), Sales: 1000.74, Profit: 174.6, Customers: 74},
		{Date: date(2023, time.May, 3), Sales: 1100.93, Profit: 293.1, Customers: 293},
		{Date: date(2023, time.May, 4), Sales: 1200.9, Profit: 290.2, Customers: 29},
	}
}

func sampleRoster() []model.SalesPerson {
	person := func(name string, leads int, sales, quota int64, v model.Variance, region string, st model.Status) model.SalesPerson {
		return model.SalesPerson{
			Name:     name,
			Leads:    leads,
			Sales:    format.Amount(sales),
			Quota:    format.Amount(quota),
			Variance: v,
			Region:   region,
			Status:   st,
		}
	}
	return []model.SalesPerson{
		person("Peter Doe", 45, 1_000_000, 1_200_000, model.VarianceLow, "Region A", model.StatusOverperforming),
		person("Lena Whitehouse", 35, 900_000, 1_000_000, model.VarianceLow, "Region B", model.StatusAverage),
		person("Phil Less", 52, 930_000, 1_000_000, model.VarianceMedium, "Region C", model.StatusUnderperforming),
		person("John Camper", 22, 390_000, 250_000, model.VarianceLow, "Region A", model.StatusOverperforming),
		person("Max Balmoore", 49, 860_000, 750_000, model.VarianceLow, "Region B", model.StatusOverperforming),
	}
}

func sampleKPIs() []model.KPI {
	return []model.KPI{
		{Title: model.MetricSales, Value: 12_699, Progress: 15.9, Target: 80_000, Delta: 13.2, DeltaType: model.TrendModerateIncrease},
		{Title: model.MetricProfit, Value: 45_564, Progress: 36.5, Target: 125_000, Delta: 23.9, DeltaType: model.TrendIncrease},
		{Title: model.MetricCustomers, Value: 1_072, Progress: 53.6, Target: 2_000, Delta: 10.1, DeltaType: model.TrendModerateDecrease},
	}
}
