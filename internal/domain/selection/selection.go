// Package selection holds the transient filter and tab choices of one dashboard view.
package selection

import (
	"fmt"
	"strings"

	"github.com/okian/salesboard/internal/domain/model"
)

// StatusFilter is a performance status or the "all" wildcard.
type StatusFilter string

// StatusAll matches every status.
const StatusAll StatusFilter = "all"

// Only narrows a filter to a single status.
func Only(s model.Status) StatusFilter { return StatusFilter(s) }

// Matches reports whether status passes the filter.
func (f StatusFilter) Matches(status model.Status) bool {
	return f == StatusAll || model.Status(f) == status
}

// StatusFilters lists the filter options in menu order.
func StatusFilters() []StatusFilter {
	out := make([]StatusFilter, 0, len(model.Statuses)+1)
	out = append(out, StatusAll)
	for _, s := range model.Statuses {
		out = append(out, Only(s))
	}
	return out
}

// Tab is the top-level dashboard panel.
type Tab string

// Dashboard tabs.
const (
	TabOverview Tab = "overview"
	TabDetail   Tab = "detail"
)

// State is the selection of one dashboard view. The zero value is not
// meaningful; start from Default.
type State struct {
	Tab    Tab
	Metric model.Metric
	Status StatusFilter
	// Names holds the selected salespeople; empty selects everyone.
	Names map[string]struct{}
}

// Default returns the state a freshly mounted view starts with.
func Default() State {
	return State{
		Tab:    TabOverview,
		Metric: model.Metrics[0],
		Status: StatusAll,
	}
}

// WithNames returns a copy of s selecting names. Blank entries are dropped.
func (s State) WithNames(names ...string) State {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		set[n] = struct{}{}
	}
	if len(set) == 0 {
		set = nil
	}
	s.Names = set
	return s
}

// Selected reports whether name passes the name filter.
func (s State) Selected(name string) bool {
	if len(s.Names) == 0 {
		return true
	}
	_, ok := s.Names[name]
	return ok
}

// MetricIndex returns the position of the selected metric in model.Metrics.
func (s State) MetricIndex() int {
	for i, m := range model.Metrics {
		if m == s.Metric {
			return i
		}
	}
	panic(fmt.Sprintf("selection: metric %q is not chartable", string(s.Metric)))
}

// MetricAt returns the metric for a chart tab index.
func MetricAt(i int) (model.Metric, error) {
	if i < 0 || i >= len(model.Metrics) {
		return "", fmt.Errorf("%w: index %d", ErrUnknownMetric, i)
	}
	return model.Metrics[i], nil
}

// ParseMetric resolves a chartable metric name case-insensitively.
// An empty string yields the default metric.
func ParseMetric(v string) (model.Metric, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return model.Metrics[0], nil
	}
	for _, m := range model.Metrics {
		if strings.EqualFold(v, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, v)
}

// ParseStatus resolves a status filter. An empty string yields StatusAll.
func ParseStatus(v string) (StatusFilter, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" || v == string(StatusAll) {
		return StatusAll, nil
	}
	if s := model.Status(v); s.Valid() {
		return Only(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, v)
}

// ParseTab resolves a tab name. An empty string yields the overview tab.
func ParseTab(v string) (Tab, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", string(TabOverview):
		return TabOverview, nil
	case string(TabDetail):
		return TabDetail, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, v)
}
