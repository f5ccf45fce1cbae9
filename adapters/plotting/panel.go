package plotting

import (
	"fmt"
	"os"

	"stride/domain/activity"
	"stride/domain/core"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DayKindPanelPlot renders the weekend and weekday interval patterns as two
// stacked panels sharing the figure, weekend on top, saved as a PNG at path.
func DayKindPanelPlot(weekday, weekend []activity.IntervalProfile, title, path string) error {
	top, err := panelPlot(weekend, fmt.Sprintf("%s — %s", title, activity.Weekend))
	if err != nil {
		return err
	}
	bottom, err := panelPlot(weekday, fmt.Sprintf("%s — %s", title, activity.Weekday))
	if err != nil {
		return err
	}

	img := vgimg.New(figWidth, 2*figHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2,
		Cols: 1,
		PadY: vg.Millimeter * 2,
	}

	panels := [][]*plot.Plot{{top}, {bottom}}
	canvases := plot.Align(panels, tiles, dc)
	top.Draw(canvases[0][0])
	bottom.Draw(canvases[1][0])

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create panel plot %s: %w", path, err)
	}
	defer out.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(out); err != nil {
		return fmt.Errorf("failed to save panel plot %s: %w", path, err)
	}
	return nil
}

func panelPlot(profiles []activity.IntervalProfile, title string) (*plot.Plot, error) {
	xys := profileXYs(profiles)
	if len(xys) == 0 {
		return nil, core.ErrEmptyProfile
	}

	p := newFigure(title, "Interval", "Mean steps")
	p.X.Tick.Marker = hourTicks{every: 3}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("failed to build panel line: %w", err)
	}
	line.Color = lineStrok
	line.Width = vg.Points(1.5)
	p.Add(line)
	return p, nil
}
