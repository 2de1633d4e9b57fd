package explorer

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// BuildFigures renders the canonical chart sequence: the ToF spectrum,
// the ToF-vs-x heat map, then one x-vs-y heat map per range in
// declaration order. The returned list owns the figures; there is no
// ambient current-figure state.
func BuildFigures(data EventData, ranges []ToFRange, binsToF, bins2D int) ([]*plot.Plot, error) {
	figures := make([]*plot.Plot, 0, 2+len(ranges))

	spectrum, err := ToFSpectrumPlot(data.ToF, binsToF)
	if err != nil {
		return nil, fmt.Errorf("error building ToF spectrum: %w", err)
	}
	figures = append(figures, spectrum)
	figures = append(figures, ToFvsXPlot(data, bins2D))

	for _, r := range ranges {
		figures = append(figures, RangeXYPlot(data, r, bins2D))
	}
	return figures, nil
}

// ToFSpectrumPlot draws the 1-D time-of-flight histogram.
func ToFSpectrumPlot(tof []float64, bins int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Time-of-Flight Spectrum"
	p.X.Label.Text = "Time of Flight (ns)"
	p.Y.Label.Text = "Counts"

	h, err := plotter.NewHist(plotter.Values(tof), bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = nil
	h.LineStyle.Color = color.RGBA{B: 255, A: 255}
	p.Add(h, plotter.NewGrid())
	return p, nil
}

// ToFvsXPlot draws the 2-D histogram of ToF against x position.
func ToFvsXPlot(data EventData, bins int) *plot.Plot {
	p := plot.New()
	p.Title.Text = "2D Histogram: ToF vs x-position"
	p.X.Label.Text = "x-position (mm)"
	p.Y.Label.Text = "Time of Flight (ns)"

	grid := NewHistGrid(data.X, data.ToF, bins, bins)
	p.Add(plotter.NewHeatMap(grid, palette.Heat(256, 1)))
	return p
}

// RangeXYPlot draws the x-vs-y 2-D histogram for the events inside one
// ToF range.
func RangeXYPlot(data EventData, r ToFRange, bins int) *plot.Plot {
	sel := Mask(data, r)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("x vs y for ToF range %s: %d-%d ns", r.Label, r.Min, r.Max)
	p.X.Label.Text = "x-position (mm)"
	p.Y.Label.Text = "y-position (mm)"

	grid := NewHistGrid(sel.X, sel.Y, bins, bins)
	p.Add(plotter.NewHeatMap(grid, palette.Heat(256, 1)))
	return p
}

// PDFFileName returns the timestamped export file name.
func PDFFileName(t time.Time) string {
	return fmt.Sprintf("hilux_plots_%s.pdf", t.Format("2006-01-02_15-04"))
}

// WritePDF serializes the figures, one page each in order, into a single
// PDF document.
func WritePDF(figures []*plot.Plot, path string) error {
	canvas := vgpdf.New(8*vg.Inch, 6*vg.Inch)
	for i, fig := range figures {
		if i > 0 {
			canvas.NextPage()
		}
		fig.Draw(draw.New(canvas))
	}

	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := canvas.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// WritePNGs renders each figure to its own PNG under dir, returning the
// paths in figure order.
func WritePNGs(figures []*plot.Plot, dir string) ([]string, error) {
	paths := make([]string, 0, len(figures))
	for i, fig := range figures {
		path := filepath.Join(dir, fmt.Sprintf("hilux_fig_%02d.png", i+1))
		if err := fig.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
