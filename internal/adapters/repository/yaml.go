package repository

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/okian/salesboard/internal/domain/format"
	"github.com/okian/salesboard/internal/domain/model"
)

const dateLayout = "2006-01-02"

// datasetFile is the on-disk shape. Omitted sections keep the sample data.
type datasetFile struct {
	Series []struct {
		Date      string  `yaml:"date"`
		Sales     float64 `yaml:"sales"`
		Profit    float64 `yaml:"profit"`
		Customers int     `yaml:"customers"`
	} `yaml:"series"`
	Roster []struct {
		Name     string `yaml:"name"`
		Leads    int    `yaml:"leads"`
		Sales    int64  `yaml:"sales"`
		Quota    int64  `yaml:"quota"`
		Variance string `yaml:"variance"`
		Region   string `yaml:"region"`
		Status   string `yaml:"status"`
	} `yaml:"roster"`
	KPIs []struct {
		Title     string  `yaml:"title"`
		Value     float64 `yaml:"value"`
		Progress  float64 `yaml:"progress"`
		Target    float64 `yaml:"target"`
		Delta     float64 `yaml:"delta"`
		DeltaType string  `yaml:"delta_type"`
	} `yaml:"kpis"`
}

// LoadYAML reads a dataset file and returns a StaticStore over it.
func LoadYAML(ctx context.Context, path string) (*StaticStore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadDataset, path, err)
	}
	return ParseYAML(data)
}

// ParseYAML decodes and validates a dataset document.
func ParseYAML(data []byte) (*StaticStore, error) {
	var f datasetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}

	var opts []Option
	if len(f.Series) > 0 {
		points, err := f.series()
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithSeries(points))
	}
	if len(f.Roster) > 0 {
		people, err := f.roster()
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithRoster(people))
	}
	if len(f.KPIs) > 0 {
		kpis, err := f.kpis()
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithKPIs(kpis))
	}
	return NewStaticStore(opts...), nil
}

func (f *datasetFile) series() ([]model.MetricPoint, error) {
	out := make([]model.MetricPoint, 0, len(f.Series))
	var prev time.Time
	for i, row := range f.Series {
		d, err := time.Parse(dateLayout, row.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: series[%d]: date %q: %w", ErrInvalidDataset, i, row.Date, err)
		}
		if i > 0 && !d.After(prev) {
			return nil, fmt.Errorf("%w: series[%d]: date %s is not after %s", ErrInvalidDataset, i, row.Date, prev.Format(dateLayout))
		}
		prev = d
		out = append(out, model.MetricPoint{Date: d, Sales: row.Sales, Profit: row.Profit, Customers: row.Customers})
	}
	return out, nil
}

func (f *datasetFile) roster() ([]model.SalesPerson, error) {
	out := make([]model.SalesPerson, 0, len(f.Roster))
	seen := make(map[string]struct{}, len(f.Roster))
	for i, row := range f.Roster {
		if row.Name == "" {
			return nil, fmt.Errorf("%w: roster[%d]: missing name", ErrInvalidDataset, i)
		}
		if _, dup := seen[row.Name]; dup {
			return nil, fmt.Errorf("%w: roster[%d]: duplicate name %q", ErrInvalidDataset, i, row.Name)
		}
		seen[row.Name] = struct{}{}

		status := model.Status(row.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: roster[%d]: unknown status %q", ErrInvalidDataset, i, row.Status)
		}
		variance := model.Variance(row.Variance)
		if !variance.Valid() {
			return nil, fmt.Errorf("%w: roster[%d]: unknown variance %q", ErrInvalidDataset, i, row.Variance)
		}
		out = append(out, model.SalesPerson{
			Name:     row.Name,
			Leads:    row.Leads,
			Sales:    format.Amount(row.Sales),
			Quota:    format.Amount(row.Quota),
			Variance: variance,
			Region:   row.Region,
			Status:   status,
		})
	}
	return out, nil
}

func (f *datasetFile) kpis() ([]model.KPI, error) {
	out := make([]model.KPI, 0, len(f.KPIs))
	for i, row := range f.KPIs {
		title, ok := chartable(row.Title)
		if !ok {
			return nil, fmt.Errorf("%w: kpis[%d]: unknown metric %q", ErrInvalidDataset, i, row.Title)
		}
		trend := model.Trend(row.DeltaType)
		if !trend.Valid() {
			return nil, fmt.Errorf("%w: kpis[%d]: unknown delta_type %q", ErrInvalidDataset, i, row.DeltaType)
		}
		out = append(out, model.KPI{
			Title:     title,
			Value:     row.Value,
			Progress:  row.Progress,
			Target:    row.Target,
			Delta:     row.Delta,
			DeltaType: trend,
		})
	}
	return out, nil
}

func chartable(v string) (model.Metric, bool) {
	for _, m := range model.Metrics {
		if string(m) == v {
			return m, true
		}
	}
	return "", false
}
