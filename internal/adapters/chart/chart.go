// Package chart renders KPI history as an SVG area chart.
package chart

import (
	"errors"
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/okian/salesboard/internal/domain/format"
	"github.com/okian/salesboard/internal/domain/model"
	"github.com/okian/salesboard/internal/domain/series"
)

// Sentinel kinds for chart errors.
var (
	ErrNotEnoughPoints = errors.New("chart needs at least two points")
	ErrRender          = errors.New("chart render failed")
)

// Default canvas geometry.
const (
	defaultWidth   = 960
	defaultHeight  = 288
	fillAlpha      = 64
	strokeWidth    = 2
	minPoints      = 2
	dateTickLayout = "2006-01-02"
)

// Option applies a configuration option to the Renderer.
type Option func(*Renderer)

// WithSize sets the canvas size in pixels. Non-positive values keep the default.
func WithSize(width, height int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}

// Renderer draws one metric's history.
type Renderer struct {
	width  int
	height int
}

// NewRenderer creates a renderer with the dashboard's defaults.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		width:  defaultWidth,
		height: defaultHeight,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Variant selects the chart layout.
type Variant int

// Chart layouts. Compact labels only the first and last date, hides the
// Y axis and draws no gradient fill.
const (
	Full Variant = iota
	Compact
)

func (v Variant) String() string {
	if v == Compact {
		return "compact"
	}
	return "full"
}

// RenderSVG writes points for metric to w.
func (r *Renderer) RenderSVG(w io.Writer, metric model.Metric, points []series.Point, variant Variant) error {
	if len(points) < minPoints {
		return fmt.Errorf("%w: got %d", ErrNotEnoughPoints, len(points))
	}
	fmtValue := format.For(metric)

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = gochart.TimeToFloat64(p.Date)
		ys[i] = p.Value
	}

	style := gochart.Style{StrokeColor: gochart.ColorBlue, StrokeWidth: strokeWidth}
	if variant == Full {
		style.FillColor = gochart.ColorBlue.WithAlpha(fillAlpha)
	}

	ticks := make([]gochart.Tick, 0, len(points))
	for i, p := range points {
		if variant == Compact && i != 0 && i != len(points)-1 {
			continue
		}
		ticks = append(ticks, gochart.Tick{Value: xs[i], Label: p.Date.Format(dateTickLayout)})
	}

	lo, hi := series.Bounds(points)
	c := gochart.Chart{
		Width:  r.width,
		Height: r.height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 16, Left: 16, Right: 24, Bottom: 8},
		},
		XAxis: gochart.XAxis{
			Ticks: ticks,
		},
		YAxis: gochart.YAxis{
			Style: gochart.Style{Hidden: variant == Compact},
			Range: &gochart.ContinuousRange{Min: lowerBound(lo), Max: hi},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmtValue(f)
				}
				return ""
			},
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    metric.String(),
				XValues: xs,
				YValues: ys,
				Style:   style,
			},
		},
	}

	if err := c.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}

// lowerBound anchors area charts at zero unless the data goes negative.
func lowerBound(lo float64) float64 {
	if lo > 0 {
		return 0
	}
	return lo
}
