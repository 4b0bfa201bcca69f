// Package types contains the read shapes served to views and API clients
package types

import "github.com/okian/salesboard/internal/domain/theme"

// KPICard is a rendered headline card.
type KPICard struct {
	Title     string  `json:"title"`
	Metric    string  `json:"metric"`
	Progress  float64 `json:"progress"`
	ProgressL string  `json:"progress_label"`
	Target    string  `json:"target"`
	Delta     string  `json:"delta"`
	DeltaType string  `json:"delta_type"`
}

// SeriesPoint is one charted value with its display label.
type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// RosterRow is a visible table row.
type RosterRow struct {
	Name     string `json:"name"`
	Leads    int    `json:"leads"`
	Sales    string `json:"sales"`
	Quota    string `json:"quota"`
	Variance string `json:"variance"`
	Region   string `json:"region"`
	Status   string `json:"status"`
	Trend    string `json:"trend"`
}

// ThemeState is the active color scheme and its toggle icons.
type ThemeState struct {
	Theme theme.Theme `json:"theme"`
	theme.Icons
}

// Option is a labeled choice in a picker.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// Dashboard is the complete view model of one page render.
type Dashboard struct {
	Tab      string        `json:"tab"`
	Metric   string        `json:"metric"`
	Metrics  []Option      `json:"metrics"`
	Statuses []Option      `json:"statuses"`
	Names    []Option      `json:"names"`
	KPIs     []KPICard     `json:"kpis"`
	Series   []SeriesPoint `json:"series"`
	Rows     []RosterRow   `json:"rows"`
	Theme    ThemeState    `json:"theme"`
}

// Client identifies the browser a request came from.
type Client struct {
	// ID keys the client's stored preferences. Empty means nothing is stored.
	ID string
	// PrefersDark reflects the OS color-scheme preference.
	PrefersDark bool
}
