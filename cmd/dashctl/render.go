package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/okian/salesboard/internal/domain/types"
)

// Output formats.
const (
	outputTable = "table"
	outputJSON  = "json"
)

// trendColors mirrors the badge colors of the web page.
var trendColors = map[string]text.Colors{
	"increase":         {text.FgHiGreen},
	"moderateIncrease": {text.FgGreen},
	"unchanged":        {text.FgYellow},
	"moderateDecrease": {text.FgRed},
	"decrease":         {text.FgHiRed},
}

type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) *printer {
	return &printer{w: w, format: format}
}

func (p *printer) newTable() table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(p.w)
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateColumns = false
	return tw
}

func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func rightAligned(cols ...int) []table.ColumnConfig {
	out := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		out[i] = table.ColumnConfig{Number: c, Align: text.AlignRight, AlignHeader: text.AlignRight}
	}
	return out
}

func trend(label, deltaType string) string {
	if c, ok := trendColors[deltaType]; ok {
		return c.Sprint(label)
	}
	return label
}

func (p *printer) kpis(cards []types.KPICard) error {
	if p.format == outputJSON {
		return p.json(cards)
	}
	tw := p.newTable()
	tw.AppendHeader(table.Row{"KPI", "Value", "Target", "Progress", "Delta"})
	tw.SetColumnConfigs(rightAligned(2, 3, 4, 5))
	for _, c := range cards {
		tw.AppendRow(table.Row{c.Title, c.Metric, c.Target, c.ProgressL, trend(c.Delta, c.DeltaType)})
	}
	tw.Render()
	return nil
}

func (p *printer) series(metric string, pts []types.SeriesPoint) error {
	if p.format == outputJSON {
		return p.json(pts)
	}
	tw := p.newTable()
	tw.SetTitle(fmt.Sprintf("%s performance history", metric))
	tw.AppendHeader(table.Row{"Date", metric})
	tw.SetColumnConfigs(rightAligned(2))
	for _, pt := range pts {
		tw.AppendRow(table.Row{pt.Date, pt.Label})
	}
	tw.Render()
	return nil
}

func (p *printer) roster(rows []types.RosterRow) error {
	if p.format == outputJSON {
		return p.json(rows)
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(p.w, "No salespeople match the current filters.")
		return err
	}
	tw := p.newTable()
	tw.AppendHeader(table.Row{"Name", "Leads", "Sales ($)", "Quota ($)", "Variance", "Region", "Status"})
	tw.SetColumnConfigs(rightAligned(2, 3, 4, 5, 6, 7))
	for _, r := range rows {
		tw.AppendRow(table.Row{r.Name, r.Leads, r.Sales, r.Quota, r.Variance, r.Region, trend(r.Status, r.Trend)})
	}
	tw.Render()
	return nil
}

func (p *printer) theme(state types.ThemeState) error {
	if p.format == outputJSON {
		return p.json(state)
	}
	icon := "dark (moon) icon"
	if state.DarkIconHidden {
		icon = "light (sun) icon"
	}
	_, err := fmt.Fprintf(p.w, "theme: %s\ntoggle shows: %s\n", state.Theme, icon)
	return err
}
