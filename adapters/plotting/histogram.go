package plotting

import (
	"fmt"
	"math"
	"sort"

	"stride/domain/activity"
	"stride/domain/core"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DailyTotalHistogram renders a histogram of the defined daily totals with a
// vertical marker at their mean, saved as a PNG at path. Undefined days are
// left out of the figure, consistent with their exclusion from the summary
// statistics.
func DailyTotalHistogram(totals []activity.DailyTotal, bins int, mean float64, title, path string) error {
	values := make(plotter.Values, 0, len(totals))
	for _, t := range totals {
		if t.Defined() {
			values = append(values, t.Total)
		}
	}
	if len(values) == 0 {
		return core.ErrNoObservations
	}
	if bins <= 0 {
		bins = 12
	}

	p := newFigure(title, "Total steps per day", "Days")

	hist, err := plotter.NewHist(values, bins)
	if err != nil {
		return fmt.Errorf("failed to build histogram: %w", err)
	}
	hist.FillColor = barFill
	p.Add(hist)

	marker, err := meanMarker(values, bins, mean)
	if err != nil {
		return err
	}
	p.Add(marker)
	p.Legend.Add(fmt.Sprintf("mean %.0f", mean), marker)
	p.Legend.Top = true

	if err := p.Save(figWidth, figHeight, path); err != nil {
		return fmt.Errorf("failed to save histogram %s: %w", path, err)
	}
	return nil
}

// meanMarker builds the vertical mean line. Its height is the tallest bin of
// the same equal-width binning the histogram uses, so the marker spans the
// full figure.
func meanMarker(values plotter.Values, bins int, mean float64) (*plotter.Line, error) {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	min, max := sorted[0], sorted[len(sorted)-1]
	if min == max {
		max = min + 1
	}
	dividers := make([]float64, bins+1)
	floats.Span(dividers, min, max)
	// stat.Histogram bins are half-open; nudge the last divider so the
	// maximum value is counted
	dividers[bins] = math.Nextafter(max, math.Inf(1))
	counts := stat.Histogram(nil, dividers, sorted, nil)

	top := floats.Max(counts)
	line, err := plotter.NewLine(plotter.XYs{
		{X: mean, Y: 0},
		{X: mean, Y: top},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build mean marker: %w", err)
	}
	line.Color = meanStrok
	line.Width = vg.Points(2)
	line.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	return line, nil
}
