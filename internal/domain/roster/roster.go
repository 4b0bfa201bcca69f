// Package roster filters the salespeople table and maps statuses to trend badges.
package roster

import (
	"fmt"

	"github.com/okian/salesboard/internal/domain/model"
	"github.com/okian/salesboard/internal/domain/selection"
)

// Visible reports whether p passes both the status and the name filter of sel.
func Visible(p model.SalesPerson, sel selection.State) bool {
	return sel.Status.Matches(p.Status) && sel.Selected(p.Name)
}

// Filter returns the people visible under sel in their original order.
// The result never shares a backing array with people.
func Filter(people []model.SalesPerson, sel selection.State) []model.SalesPerson {
	out := make([]model.SalesPerson, 0, len(people))
	for _, p := range people {
		if Visible(p, sel) {
			out = append(out, p)
		}
	}
	return out
}

// Names lists the roster names in order, as offered by the name picker.
func Names(people []model.SalesPerson) []string {
	out := make([]string, len(people))
	for i, p := range people {
		out[i] = p.Name
	}
	return out
}

// TrendFor maps a performance status to its badge trend.
// A status outside the closed set is a programming error.
func TrendFor(s model.Status) model.Trend {
	switch s {
	case model.StatusAverage:
		return model.TrendUnchanged
	case model.StatusOverperforming:
		return model.TrendModerateIncrease
	case model.StatusUnderperforming:
		return model.TrendModerateDecrease
	}
	panic(fmt.Sprintf("roster: unknown status %q", string(s)))
}
