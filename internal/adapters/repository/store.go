// Package repository serves the immutable dashboard datasets.
package repository

import (
	"context"

	"github.com/okian/salesboard/internal/domain/model"
)

// Store provides read access to the dashboard datasets.
// Every call returns a fresh copy; callers may modify the result freely.
type Store interface {
	// Roster returns the salespeople in display order.
	Roster(ctx context.Context) ([]model.SalesPerson, error)

	// Series returns the daily KPI history ordered by date ascending.
	Series(ctx context.Context) ([]model.MetricPoint, error)

	// KPIs returns the headline cards in display order.
	KPIs(ctx context.Context) ([]model.KPI, error)
}
