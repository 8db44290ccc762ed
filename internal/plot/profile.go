// Package plot draws escape-count profiles as terminal line charts.
package plot

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mandelterm/internal/mandel"
)

// Row returns the escape counts of one field row as a plot series.
// Out-of-range rows yield nil.
func Row(f mandel.Field, row int) []float64 {
	if row < 0 || row >= f.Rows() {
		return nil
	}
	series := make([]float64, len(f[row]))
	for i, n := range f[row] {
		series[i] = float64(n)
	}
	return series
}

// Profile plots the escape counts along the centre row of p's raster.
func Profile(p mandel.Params, height int) string {
	f := mandel.Compute(p)
	mid := p.Height / 2
	series := Row(f, mid)
	if len(series) == 0 {
		return ""
	}
	_, cy := p.Point(0, mid)
	caption := fmt.Sprintf("escape counts along im = %.4f, re in [%.4f, %.4f)", cy, p.XMin, p.XMax)
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Precision(0),
		asciigraph.Caption(caption),
	)
}
