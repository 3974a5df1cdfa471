package layout

import (
	"math"

	"github.com/matzehuels/ffimg/pkg/spec"
)

const (
	// DefaultMaxIterations bounds the row height search.
	DefaultMaxIterations = 10

	// MinRows is the fewest rows the row height is sized for. Sparse specs
	// would otherwise get a handful of very tall rows.
	MinRows = 10

	// fontRowRatio is the row height to font size ratio.
	fontRowRatio = 3.0

	// convergence is the row height change, in pixels, below which the
	// search stops.
	convergence = 1.0

	// minRowHeight keeps fonts measurable when a spec has more rows than
	// fit on the canvas.
	minRowHeight = 3.0
)

// RowEstimate is the outcome of the row height search.
type RowEstimate struct {
	RowHeight  float64 // Height of every row
	FontSize   float64 // Font size the last trial layout was measured with
	Rows       int     // Rows produced by the last trial layout, before clamping to MinRows
	Iterations int     // Trial layouts run
	Converged  bool    // False if maxIter was hit first
}

// Estimate searches for a row height and font size that agree with each
// other. The font size is a third of the row height, the font size decides
// label widths and therefore the row count, and the row count decides the
// row height. Starting from a tenth of the usable height, each iteration
// runs a trial packing and recomputes the row height until it moves by less
// than a pixel or maxIter trials have run. Hitting maxIter is not an error;
// the last estimate is used as is.
func Estimate(fields []spec.ParsedField, c CanvasConfig, m WidthModel, measure Measurer, maxIter int) RowEstimate {
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	rowHeight := c.UsableHeight / MinRows
	var est RowEstimate
	for i := 0; i < maxIter; i++ {
		next, fontSize, rows := step(fields, c, m, measure, rowHeight)
		est = RowEstimate{
			RowHeight:  next,
			FontSize:   fontSize,
			Rows:       rows,
			Iterations: i + 1,
		}
		if math.Abs(next-rowHeight) < convergence {
			est.Converged = true
			break
		}
		rowHeight = next
	}
	return est
}

// step runs one trial layout at rowHeight and returns the row height it
// implies, the font size it measured with, and the rows it produced.
func step(fields []spec.ParsedField, c CanvasConfig, m WidthModel, measure Measurer, rowHeight float64) (next, fontSize float64, rows int) {
	fontSize = rowHeight / fontRowRatio
	rows = len(Pack(Size(fields, c, m, measure, fontSize), c))
	n := max(rows, MinRows)
	next = (c.UsableHeight - c.Padding*float64(n-1)) / float64(n)
	return max(next, minRowHeight), fontSize, rows
}
