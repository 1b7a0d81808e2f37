package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Yellow,
	asciigraph.Magenta,
	asciigraph.Cyan,
}

// ASCIIPlot collects mode shapes and renders them as a terminal chart
type ASCIIPlot struct {
	Width  int  // columns of the plot area
	Height int  // rows of the plot area
	Color  bool // ANSI colors per series

	labels []string
	series [][]float64
	xMin   float64
	xMax   float64
}

// NewASCIIPlot creates an empty terminal chart
func NewASCIIPlot(width, height int) *ASCIIPlot {
	return &ASCIIPlot{Width: width, Height: height}
}

// Plot adds one series. The chart x axis spans the node coordinates of the
// first series.
func (p *ASCIIPlot) Plot(label string, x, y []float64) {
	if len(y) == 0 {
		return
	}
	if len(p.series) == 0 && len(x) > 0 {
		p.xMin, p.xMax = x[0], x[len(x)-1]
	}
	p.labels = append(p.labels, label)
	p.series = append(p.series, append([]float64(nil), y...))
}

// Len returns the number of series
func (p *ASCIIPlot) Len() int {
	return len(p.series)
}

// Render draws all series in one chart
func (p *ASCIIPlot) Render() string {
	if len(p.series) == 0 {
		return ""
	}

	opts := []asciigraph.Option{
		asciigraph.Height(p.Height),
		asciigraph.Width(p.Width),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("x = %.4g m … %.4g m", p.xMin, p.xMax)),
		asciigraph.SeriesLegends(p.labels...),
	}

	// Legends need one color per series
	colors := make([]asciigraph.AnsiColor, len(p.series))
	for i := range colors {
		colors[i] = asciigraph.Default
		if p.Color {
			colors[i] = seriesColors[i%len(seriesColors)]
		}
	}
	opts = append(opts, asciigraph.SeriesColors(colors...))

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciigraph.PlotMany(p.series, opts...))
	sb.WriteString("\n")
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s with spaces to width runes
func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
