// Package chart renders price-history line charts as SVG.
package chart

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrEmptySeries is returned when there is nothing to plot. Rendering an
// empty series must be a caller-visible validation error, not a crash in
// the min/max computation.
var ErrEmptySeries = errors.New("chart: empty price series")

var (
	lineColor = drawing.ColorFromHex("1f77b4")
	minColor  = drawing.ColorRed
	maxColor  = drawing.ColorGreen
)

// Renderer draws a single-stock price trend: a filled line with the lowest
// and highest points highlighted and date ticks on every fifth day over the
// n days before today. It is stateless apart from the clock.
type Renderer struct {
	now func() time.Time
}

// NewRenderer creates a Renderer using the system clock.
func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

// Render writes an SVG chart of prices (oldest first) for symbol to w.
func (r *Renderer) Render(w io.Writer, symbol string, prices []float64) error {
	if len(prices) == 0 {
		return ErrEmptySeries
	}

	xs := make([]float64, len(prices))
	minIdx, maxIdx := 0, 0
	for i, p := range prices {
		xs[i] = float64(i)
		if p < prices[minIdx] {
			minIdx = i
		}
		if p > prices[maxIdx] {
			maxIdx = i
		}
	}

	line := chart.ContinuousSeries{
		Name:    symbol,
		XValues: xs,
		YValues: prices,
		Style: chart.Style{
			StrokeColor: lineColor,
			StrokeWidth: 2,
			FillColor:   lineColor.WithAlpha(76),
		},
	}

	lowest := pointSeries("Lowest", float64(minIdx), prices[minIdx], minColor)
	highest := pointSeries("Highest", float64(maxIdx), prices[maxIdx], maxColor)

	labels := chart.AnnotationSeries{
		Annotations: []chart.Value2{
			{XValue: float64(minIdx), YValue: prices[minIdx], Label: fmt.Sprintf("%.2f", prices[minIdx])},
			{XValue: float64(maxIdx), YValue: prices[maxIdx], Label: fmt.Sprintf("%.2f", prices[maxIdx])},
		},
		Style: chart.Style{StrokeColor: chart.ColorTransparent},
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s - %d Day Price Trend", symbol, len(prices)),
		Width:  1000,
		Height: 500,
		XAxis: chart.XAxis{
			Name:  "Days",
			Ticks: r.dateTicks(len(prices)),
		},
		YAxis:  chart.YAxis{Name: "Price"},
		Series: []chart.Series{line, lowest, highest, labels},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.SVG, w)
}

// dateTicks labels every fifth point with a MM/DD date. The axis runs from
// n days ago up to yesterday, oldest on the left.
func (r *Renderer) dateTicks(n int) []chart.Tick {
	today := r.now()
	ticks := make([]chart.Tick, 0, n/5+2)
	for i := 0; i < n; i += 5 {
		d := today.AddDate(0, 0, -(n - i))
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: d.Format("01/02")})
	}
	// The tick list has to span the full x range or the axis clips the plot.
	if last := ticks[len(ticks)-1].Value; last < float64(n-1) {
		ticks = append(ticks, chart.Tick{Value: float64(n - 1), Label: ""})
	}
	return ticks
}

// pointSeries is a single highlighted dot used for the min/max markers.
func pointSeries(name string, x, y float64, color drawing.Color) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    name,
		XValues: []float64{x},
		YValues: []float64{y},
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    5,
			DotColor:    color,
		},
	}
}
