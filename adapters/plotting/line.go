package plotting

import (
	"fmt"
	"math"

	"stride/domain/activity"
	"stride/domain/core"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// IntervalPatternPlot renders mean steps against time of day as a single line
// across all 5-minute intervals, saved as a PNG at path.
func IntervalPatternPlot(profiles []activity.IntervalProfile, title, path string) error {
	xys := profileXYs(profiles)
	if len(xys) == 0 {
		return core.ErrEmptyProfile
	}

	p := newFigure(title, "Interval", "Mean steps")
	p.X.Tick.Marker = hourTicks{every: 3}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("failed to build interval line: %w", err)
	}
	line.Color = lineStrok
	line.Width = vg.Points(1.5)
	p.Add(line)

	if err := p.Save(figWidth, figHeight, path); err != nil {
		return fmt.Errorf("failed to save line plot %s: %w", path, err)
	}
	return nil
}

// profileXYs converts profiles to plot coordinates, skipping intervals whose
// mean is undefined (no non-missing observations)
func profileXYs(profiles []activity.IntervalProfile) plotter.XYs {
	xys := make(plotter.XYs, 0, len(profiles))
	for _, pr := range profiles {
		if math.IsNaN(pr.MeanSteps) {
			continue
		}
		xys = append(xys, plotter.XY{
			X: float64(pr.Interval.Minutes()),
			Y: pr.MeanSteps,
		})
	}
	return xys
}
