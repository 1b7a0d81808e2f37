package diagram

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ImagePlot collects mode shapes into a gonum/plot figure
type ImagePlot struct {
	p     *plot.Plot
	count int
	err   error
}

// NewImagePlot creates an empty mode-shape figure
func NewImagePlot(title string) *ImagePlot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Position along beam (m)"
	p.Y.Label.Text = "Normalized displacement"
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())
	return &ImagePlot{p: p}
}

// Plot adds one mode shape as a line. The first error is kept and returned
// by Save.
func (ip *ImagePlot) Plot(label string, x, y []float64) {
	if ip.err != nil {
		return
	}
	if len(x) != len(y) {
		ip.err = fmt.Errorf("series %q: %d x values, %d y values", label, len(x), len(y))
		return
	}

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		ip.err = fmt.Errorf("series %q: %w", label, err)
		return
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = plotutil.Color(ip.count)
	line.LineStyle.Dashes = plotutil.Dashes(ip.count / len(plotutil.DefaultColors))

	ip.p.Add(line)
	ip.p.Legend.Add(label, line)
	ip.count++
}

// Len returns the number of series
func (ip *ImagePlot) Len() int {
	return ip.count
}

// Save writes the figure. The format follows the extension (png, svg, pdf);
// any other name gets ".png" appended.
func (ip *ImagePlot) Save(filename string) error {
	if ip.err != nil {
		return ip.err
	}
	if ip.count == 0 {
		return errors.New("no mode shapes to export")
	}

	width := 8 * vg.Inch
	height := 5 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return ip.p.Save(width, height, filename)
	default:
		return ip.p.Save(width, height, filename+".png")
	}
}
