package explorer

import (
	"gonum.org/v1/gonum/floats"
)

// HistGrid is a fixed-bin 2-D histogram over paired samples. It
// implements plotter.GridXYZ so it can be drawn as a heat map.
type HistGrid struct {
	counts []float64 // row-major, rows*cols
	cols   int
	rows   int
	xMin   float64
	xWidth float64
	yMin   float64
	yWidth float64
}

// NewHistGrid bins the paired samples (xs[i], ys[i]) into a cols x rows
// grid spanning the data extent.
func NewHistGrid(xs, ys []float64, cols, rows int) *HistGrid {
	g := &HistGrid{
		counts: make([]float64, cols*rows),
		cols:   cols,
		rows:   rows,
	}
	g.xMin, g.xWidth = binWidth(xs, cols)
	g.yMin, g.yWidth = binWidth(ys, rows)

	for i := range xs {
		c := binIndex(xs[i], g.xMin, g.xWidth, cols)
		r := binIndex(ys[i], g.yMin, g.yWidth, rows)
		g.counts[r*cols+c]++
	}
	return g
}

// binWidth returns the lower edge and bin width covering the samples.
// Empty or constant samples get a unit span so the grid stays well-formed.
func binWidth(values []float64, bins int) (min, width float64) {
	if len(values) == 0 {
		return 0, 1.0 / float64(bins)
	}
	min = floats.Min(values)
	max := floats.Max(values)
	if max == min {
		max = min + 1
	}
	return min, (max - min) / float64(bins)
}

func binIndex(v, min, width float64, bins int) int {
	i := int((v - min) / width)
	if i < 0 {
		i = 0
	}
	if i >= bins {
		i = bins - 1
	}
	return i
}

func (g *HistGrid) Dims() (c, r int) { return g.cols, g.rows }

func (g *HistGrid) Z(c, r int) float64 { return g.counts[r*g.cols+c] }

func (g *HistGrid) X(c int) float64 { return g.xMin + (float64(c)+0.5)*g.xWidth }

func (g *HistGrid) Y(r int) float64 { return g.yMin + (float64(r)+0.5)*g.yWidth }

// MaxCount returns the largest bin count in the grid.
func (g *HistGrid) MaxCount() float64 {
	if len(g.counts) == 0 {
		return 0
	}
	return floats.Max(g.counts)
}
