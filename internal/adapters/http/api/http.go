// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/okian/salesboard/internal/adapters/chart"
	"github.com/okian/salesboard/internal/domain/model"
	"github.com/okian/salesboard/internal/domain/selection"
	"github.com/okian/salesboard/internal/domain/series"
	"github.com/okian/salesboard/internal/domain/types"
	"github.com/okian/salesboard/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Dashboard assembles the full page view for a selection.
	Dashboard(ctx context.Context, sel selection.State, c types.Client) (types.Dashboard, error)

	// Read operations expose the datasets.
	KPIs(ctx context.Context) ([]types.KPICard, error)
	Series(ctx context.Context, metric model.Metric) ([]types.SeriesPoint, error)
	Points(ctx context.Context, metric model.Metric) ([]series.Point, error)
	Roster(ctx context.Context, sel selection.State) ([]types.RosterRow, error)

	// Theme operations read and flip the per-client color scheme.
	Theme(ctx context.Context, c types.Client) types.ThemeState
	ToggleTheme(ctx context.Context, c types.Client) types.ThemeState
}

// ChartRenderer draws a metric history as SVG.
type ChartRenderer interface {
	RenderSVG(w io.Writer, metric model.Metric, points []series.Point, variant chart.Variant) error
}

// Server wires HTTP routes for the dashboard.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	dashboardHandler *DashboardHandler
	chartHandler     *ChartHandler
	kpisHandler      *KPIsHandler
	seriesHandler    *SeriesHandler
	rosterHandler    *RosterHandler
	themeHandler     *ThemeHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	cfg := serverConfig{
		cookieName:   defaultCookieName,
		cookieMaxAge: defaultCookieMaxAge,
		toggleRate:   defaultToggleRate,
		toggleBurst:  defaultToggleBurst,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.renderer == nil {
		cfg.renderer = chart.NewRenderer()
	}
	clients := newClientResolver(cfg.cookieName, cfg.cookieMaxAge)

	return &Server{
		healthHandler:    NewHealthHandler(statsProvider),
		statsHandler:     NewStatsHandler(statsProvider),
		dashboardHandler: NewDashboardHandler(deps, clients, cfg.logger),
		chartHandler:     NewChartHandler(deps, cfg.renderer, cfg.logger),
		kpisHandler:      NewKPIsHandler(deps),
		seriesHandler:    NewSeriesHandler(deps),
		rosterHandler:    NewRosterHandler(deps),
		themeHandler:     NewThemeHandler(deps, clients, newClientLimiter(cfg.toggleRate, cfg.toggleBurst)),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("/{$}", MetricsMiddleware(s.dashboardHandler.HandleDashboard, "dashboard"))
	mux.HandleFunc("/dashboard", MetricsMiddleware(s.dashboardHandler.HandleDashboard, "dashboard"))
	mux.HandleFunc("/chart.svg", MetricsMiddleware(s.chartHandler.HandleChart, "chart"))
	mux.HandleFunc("/theme/toggle", MetricsMiddleware(s.themeHandler.HandleToggleForm, "theme_toggle_form"))

	mux.HandleFunc("/api/kpis", MetricsMiddleware(s.kpisHandler.HandleGetKPIs, "kpis"))
	mux.HandleFunc("/api/series", MetricsMiddleware(s.seriesHandler.HandleGetSeries, "series"))
	mux.HandleFunc("/api/roster", MetricsMiddleware(s.rosterHandler.HandleGetRoster, "roster"))
	mux.HandleFunc("/api/theme", MetricsMiddleware(s.themeHandler.HandleGetTheme, "theme"))
	mux.HandleFunc("/api/theme/toggle", MetricsMiddleware(s.themeHandler.HandleToggle, "theme_toggle"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func logError(ctx context.Context, log logger.Logger, msg string, err error) {
	if log == nil {
		return
	}
	log.Error(ctx, msg, logger.Error(err))
}
