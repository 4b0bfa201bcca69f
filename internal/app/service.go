// Package service provides the dashboard service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/salesboard/internal/adapters/preferences"
	"github.com/okian/salesboard/internal/adapters/repository"
	"github.com/okian/salesboard/internal/domain/format"
	"github.com/okian/salesboard/internal/domain/model"
	"github.com/okian/salesboard/internal/domain/roster"
	"github.com/okian/salesboard/internal/domain/selection"
	"github.com/okian/salesboard/internal/domain/series"
	"github.com/okian/salesboard/internal/domain/theme"
	"github.com/okian/salesboard/internal/domain/types"
	"github.com/okian/salesboard/pkg/logger"
	"github.com/okian/salesboard/pkg/metrics"
)

const seriesDateLayout = "2006-01-02"

// Service implements the API dependencies for the dashboard.
type Service struct {
	mu sync.RWMutex

	// Components
	store repository.Store
	prefs preferences.Store

	// Configuration
	preferenceTTL time.Duration

	// State
	started   bool
	startedAt time.Time

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStore sets the dataset store. The sample data is used otherwise.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithPreferences sets the preference store. An in-memory store is used otherwise.
func WithPreferences(prefs preferences.Store) Option {
	return func(s *Service) {
		if prefs != nil {
			s.prefs = prefs
		}
	}
}

// WithPreferenceTTL sets the expiry of the default in-memory preference store.
func WithPreferenceTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.preferenceTTL = ttl
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		preferenceTTL: 30 * 24 * time.Hour,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		s.store = repository.NewStaticStore()
	}
	if s.prefs == nil {
		s.prefs = preferences.NewMemoryStore(preferences.WithTTL(s.preferenceTTL))
	}

	return s
}

// Start validates the dataset and records its size.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	people, err := s.store.Roster(ctx)
	if err != nil {
		metrics.RecordErrorByComponent("service", "load_roster")
		return fmt.Errorf("load roster: %w", err)
	}
	points, err := s.store.Series(ctx)
	if err != nil {
		metrics.RecordErrorByComponent("service", "load_series")
		return fmt.Errorf("load series: %w", err)
	}
	kpis, err := s.store.KPIs(ctx)
	if err != nil {
		metrics.RecordErrorByComponent("service", "load_kpis")
		return fmt.Errorf("load kpis: %w", err)
	}

	metrics.UpdateDatasetRows("roster", len(people))
	metrics.UpdateDatasetRows("series", len(points))
	metrics.UpdateDatasetRows("kpis", len(kpis))

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "dashboard service started",
		logger.Int("roster", len(people)),
		logger.Int("series", len(points)),
		logger.Int("kpis", len(kpis)),
	)
	return nil
}

// Stop marks the service stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// KPIs returns the formatted headline cards.
func (s *Service) KPIs(ctx context.Context) ([]types.KPICard, error) {
	kpis, err := s.store.KPIs(ctx)
	if err != nil {
		return nil, err
	}
	cards := make([]types.KPICard, len(kpis))
	for i, k := range kpis {
		value := format.Format(k.Title, k.Value)
		cards[i] = types.KPICard{
			Title:     k.Title.String(),
			Metric:    value,
			Progress:  k.Progress,
			ProgressL: fmt.Sprintf("%s (%s)", format.Percent(k.Progress), value),
			Target:    format.Format(k.Title, k.Target),
			Delta:     format.Delta(k.Delta),
			DeltaType: string(k.DeltaType),
		}
	}
	return cards, nil
}

// Series returns the history of metric with display labels.
func (s *Service) Series(ctx context.Context, metric model.Metric) ([]types.SeriesPoint, error) {
	pts, err := s.Points(ctx, metric)
	if err != nil {
		return nil, err
	}
	out := make([]types.SeriesPoint, len(pts))
	for i, p := range pts {
		out[i] = types.SeriesPoint{Date: p.Date.Format(seriesDateLayout), Value: p.Value, Label: p.Label}
	}
	return out, nil
}

// Points returns the projected history of metric for charting.
func (s *Service) Points(ctx context.Context, metric model.Metric) ([]series.Point, error) {
	history, err := s.store.Series(ctx)
	if err != nil {
		return nil, err
	}
	return series.Project(history, metric), nil
}

// Roster returns the rows visible under sel.
func (s *Service) Roster(ctx context.Context, sel selection.State) ([]types.RosterRow, error) {
	people, err := s.store.Roster(ctx)
	if err != nil {
		return nil, err
	}
	visible := roster.Filter(people, sel)
	metrics.RecordRosterFilter(string(sel.Status), len(visible))

	rows := make([]types.RosterRow, len(visible))
	for i, p := range visible {
		rows[i] = types.RosterRow{
			Name:     p.Name,
			Leads:    p.Leads,
			Sales:    p.Sales,
			Quota:    p.Quota,
			Variance: string(p.Variance),
			Region:   p.Region,
			Status:   string(p.Status),
			Trend:    string(roster.TrendFor(p.Status)),
		}
	}
	return rows, nil
}

// Theme returns the active theme for c.
func (s *Service) Theme(ctx context.Context, c types.Client) types.ThemeState {
	var stored string
	if c.ID != "" {
		stored, _ = s.prefs.Get(ctx, preferences.Key(c.ID, theme.StorageKey))
	}
	t := theme.Resolve(stored, c.PrefersDark)
	return types.ThemeState{Theme: t, Icons: theme.IconsFor(t)}
}

// ToggleTheme flips the active theme for c and persists the result.
func (s *Service) ToggleTheme(ctx context.Context, c types.Client) types.ThemeState {
	next := theme.Toggle(s.Theme(ctx, c).Theme)
	if c.ID != "" {
		s.prefs.Set(ctx, preferences.Key(c.ID, theme.StorageKey), string(next))
		metrics.UpdatePreferenceEntries(s.prefs.Len())
	}
	metrics.RecordThemeToggle(string(next))
	s.log().Debug(ctx, "theme toggled", logger.String("client", c.ID), logger.String("theme", string(next)))
	return types.ThemeState{Theme: next, Icons: theme.IconsFor(next)}
}

// Dashboard assembles the full page view for sel.
func (s *Service) Dashboard(ctx context.Context, sel selection.State, c types.Client) (types.Dashboard, error) {
	kpis, err := s.KPIs(ctx)
	if err != nil {
		return types.Dashboard{}, err
	}
	pts, err := s.Series(ctx, sel.Metric)
	if err != nil {
		return types.Dashboard{}, err
	}
	rows, err := s.Roster(ctx, sel)
	if err != nil {
		return types.Dashboard{}, err
	}
	people, err := s.store.Roster(ctx)
	if err != nil {
		return types.Dashboard{}, err
	}

	metrics.RecordDashboardRender(string(sel.Tab))

	return types.Dashboard{
		Tab:      string(sel.Tab),
		Metric:   sel.Metric.String(),
		Metrics:  metricOptions(sel),
		Statuses: statusOptions(sel),
		Names:    nameOptions(people, sel),
		KPIs:     kpis,
		Series:   pts,
		Rows:     rows,
		Theme:    s.Theme(ctx, c),
	}, nil
}

// GetStats returns service statistics.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"preferences": s.prefs.Len(),
	}
	if s.started {
		stats["uptimeSeconds"] = int(time.Since(s.startedAt).Seconds())
	}
	ctx := context.Background()
	if people, err := s.store.Roster(ctx); err == nil {
		stats["rosterSize"] = len(people)
	}
	if points, err := s.store.Series(ctx); err == nil {
		stats["seriesLength"] = len(points)
	}
	return stats
}

func (s *Service) log() logger.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.logger == nil {
		return nopLogger{}
	}
	return s.logger
}

func metricOptions(sel selection.State) []types.Option {
	out := make([]types.Option, len(model.Metrics))
	for i, m := range model.Metrics {
		out[i] = types.Option{Value: m.String(), Label: m.String(), Selected: m == sel.Metric}
	}
	return out
}

var statusLabels = map[selection.StatusFilter]string{
	selection.StatusAll:                         "All Performances",
	selection.Only(model.StatusOverperforming):  "Overperforming",
	selection.Only(model.StatusAverage):         "Average",
	selection.Only(model.StatusUnderperforming): "Underperforming",
}

func statusOptions(sel selection.State) []types.Option {
	filters := selection.StatusFilters()
	out := make([]types.Option, len(filters))
	for i, f := range filters {
		out[i] = types.Option{Value: string(f), Label: statusLabels[f], Selected: f == sel.Status}
	}
	return out
}

func nameOptions(people []model.SalesPerson, sel selection.State) []types.Option {
	names := roster.Names(people)
	out := make([]types.Option, len(names))
	for i, n := range names {
		_, picked := sel.Names[n]
		out[i] = types.Option{Value: n, Label: n, Selected: picked}
	}
	return out
}

// nopLogger discards everything; used before Start wires the real logger.
type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...logger.Field)  {}
func (nopLogger) Error(context.Context, string, ...logger.Field) {}
func (nopLogger) Debug(context.Context, string, ...logger.Field) {}
func (nopLogger) Warn(context.Context, string, ...logger.Field)  {}
func (nopLogger) Fatal(context.Context, string, ...logger.Field) {}
func (n nopLogger) Named(string) logger.Logger                   { return n }
