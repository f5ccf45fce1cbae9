// Package plotting renders the four report figures with gonum/plot: two
// histograms of daily totals, a line plot of the mean intra-day pattern and a
// two-panel weekday/weekend comparison.
package plotting

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

var (
	barFill   = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	meanStrok = color.RGBA{R: 220, G: 20, B: 60, A: 255}
	lineStrok = color.RGBA{R: 31, G: 119, B: 180, A: 255}
)

const (
	figWidth  = 8 * vg.Inch
	figHeight = 5 * vg.Inch
)

// newFigure builds a plot with the house style applied
func newFigure(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(newGrid())
	return p
}

// hourTicks places axis ticks on whole hours for minutes-since-midnight axes
type hourTicks struct {
	// every is the tick spacing in hours
	every int
}

// Ticks implements plot.Ticker
func (t hourTicks) Ticks(min, max float64) []plot.Tick {
	every := t.every
	if every <= 0 {
		every = 3
	}
	var ticks []plot.Tick
	for h := 0; h <= 24; h += every {
		m := float64(h * 60)
		if m < min || m > max {
			continue
		}
		ticks = append(ticks, plot.Tick{
			Value: m,
			Label: fmt.Sprintf("%02d:00", h),
		})
	}
	return ticks
}
