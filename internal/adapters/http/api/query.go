package api

import (
	"fmt"
	"net/url"

	"github.com/okian/salesboard/internal/domain/selection"
)

// Query parameter names of a dashboard selection.
const (
	paramTab    = "tab"
	paramMetric = "metric"
	paramStatus = "status"
	paramName   = "name"
)

// parseSelection reads a selection from q. Missing values take their defaults.
func parseSelection(q url.Values) (selection.State, error) {
	sel := selection.Default()

	tab, err := selection.ParseTab(q.Get(paramTab))
	if err != nil {
		return sel, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	metric, err := selection.ParseMetric(q.Get(paramMetric))
	if err != nil {
		return sel, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	status, err := selection.ParseStatus(q.Get(paramStatus))
	if err != nil {
		return sel, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	sel.Tab = tab
	sel.Metric = metric
	sel.Status = status
	return sel.WithNames(q[paramName]...), nil
}

// encodeSelection is the inverse of parseSelection. names keeps the caller's
// order so links are stable.
func encodeSelection(sel selection.State, names []string) url.Values {
	q := url.Values{}
	q.Set(paramTab, string(sel.Tab))
	q.Set(paramMetric, sel.Metric.String())
	q.Set(paramStatus, string(sel.Status))
	for _, n := range names {
		q.Add(paramName, n)
	}
	return q
}
