// Package repository serves the immutable dashboard datasets.
package repository

import "github.com/okian/salesboard/internal/domain/model"

// Option applies a configuration option to the StaticStore.
type Option func(*StaticStore)

// WithRoster replaces the sample roster.
func WithRoster(people []model.SalesPerson) Option {
	return func(s *StaticStore) {
		if people != nil {
			s.roster = append([]model.SalesPerson(nil), people...)
		}
	}
}

// WithSeries replaces the sample KPI history.
func WithSeries(points []model.MetricPoint) Option {
	return func(s *StaticStore) {
		if points != nil {
			s.series = append([]model.MetricPoint(nil), points...)
		}
	}
}

// WithKPIs replaces the sample headline cards.
func WithKPIs(kpis []model.KPI) Option {
	return func(s *StaticStore) {
		if kpis != nil {
			s.kpis = append([]model.KPI(nil), kpis...)
		}
	}
}
