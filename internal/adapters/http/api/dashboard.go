package api

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/okian/salesboard/internal/domain/model"
	"github.com/okian/salesboard/internal/domain/selection"
	"github.com/okian/salesboard/internal/domain/theme"
	"github.com/okian/salesboard/internal/domain/types"
	"github.com/okian/salesboard/pkg/logger"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

// link is a navigation target rendered as a tab.
type link struct {
	Label  string
	Href   string
	Active bool
}

// dashboardPage is the template data of one render.
type dashboardPage struct {
	types.Dashboard
	Dark         bool
	TabLinks     []link
	MetricLinks  []link
	ChartURL     string
	CompactURL   string
	ReturnPath   string
	StatusParam  string
	MetricParam  string
	TabParam     string
	NameParam    string
	ShowOverview bool
}

// DashboardHandler renders the dashboard page.
type DashboardHandler struct {
	deps    Dependencies
	clients *clientResolver
	logger  logger.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(deps Dependencies, clients *clientResolver, log logger.Logger) *DashboardHandler {
	return &DashboardHandler{deps: deps, clients: clients, logger: log}
}

// HandleDashboard handles GET / and GET /dashboard requests.
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	sel, err := parseSelection(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	client, _ := h.clients.resolve(w, r)

	view, err := h.deps.Dashboard(r.Context(), sel, client)
	if err != nil {
		logError(r.Context(), h.logger, "dashboard failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", fmt.Errorf("%w: %w", ErrInternal, err))
		return
	}

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, newDashboardPage(r.URL.Path, sel, view)); err != nil {
		logError(r.Context(), h.logger, "dashboard template failed", err)
		writeError(w, http.StatusInternalServerError, "render_error", fmt.Errorf("%w: %w", ErrRender, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func newDashboardPage(path string, sel selection.State, view types.Dashboard) dashboardPage {
	names := selectedNames(view.Names)
	href := func(s selection.State) string {
		return path + "?" + encodeSelection(s, names).Encode()
	}

	tabs := []struct {
		tab   selection.Tab
		label string
	}{
		{selection.TabOverview, "Overview"},
		{selection.TabDetail, "Detail"},
	}
	tabLinks := make([]link, len(tabs))
	for i, t := range tabs {
		next := sel
		next.Tab = t.tab
		tabLinks[i] = link{Label: t.label, Href: href(next), Active: t.tab == sel.Tab}
	}

	metricLinks := make([]link, len(model.Metrics))
	for i, m := range model.Metrics {
		next := sel
		next.Metric = m
		metricLinks[i] = link{Label: m.String(), Href: href(next), Active: m == sel.Metric}
	}

	chartQuery := url.Values{paramMetric: {sel.Metric.String()}}
	compactQuery := url.Values{paramMetric: {sel.Metric.String()}, "compact": {"true"}}

	return dashboardPage{
		Dashboard:    view,
		Dark:         view.Theme.Theme == theme.Dark,
		TabLinks:     tabLinks,
		MetricLinks:  metricLinks,
		ChartURL:     "/chart.svg?" + chartQuery.Encode(),
		CompactURL:   "/chart.svg?" + compactQuery.Encode(),
		ReturnPath:   href(sel),
		StatusParam:  paramStatus,
		MetricParam:  paramMetric,
		TabParam:     paramTab,
		NameParam:    paramName,
		ShowOverview: sel.Tab == selection.TabOverview,
	}
}

func selectedNames(opts []types.Option) []string {
	var out []string
	for _, o := range opts {
		if o.Selected {
			out = append(out, o.Value)
		}
	}
	return out
}
