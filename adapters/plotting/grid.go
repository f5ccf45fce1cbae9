package plotting

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// newGrid builds the faint background grid shared by all figures
func newGrid() *plotter.Grid {
	g := plotter.NewGrid()
	g.Vertical.Color = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	g.Horizontal.Color = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	g.Vertical.Width = vg.Points(0.5)
	g.Horizontal.Width = vg.Points(0.5)
	return g
}
