package layout

import (
	"github.com/matzehuels/ffimg/pkg/errors"
	"github.com/matzehuels/ffimg/pkg/spec"
)

// Layout is the final, render-ready geometry for a spec.
type Layout struct {
	Canvas     CanvasConfig
	ByteWidth  float64
	RowHeight  float64
	FontSize   float64
	Rows       []Row
	Iterations int  // Row height search iterations
	Converged  bool // Whether the row height search settled

	// Oversized lists fields whose label alone is wider than the usable
	// area. Each sits alone on its row and overflows the right margin.
	Oversized []*errors.FieldTooWideError
}

// Blocks returns all blocks in row order.
func (l Layout) Blocks() []Block {
	var out []Block
	for _, r := range l.Rows {
		out = append(out, r...)
	}
	return out
}

// Option configures Build.
type Option func(*options)

type options struct {
	maxIterations int
}

// WithMaxIterations bounds the row height search. Values ≤ 0 use
// DefaultMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIterations = n }
}

// Build lays out fields on the canvas. Text is measured with measure, which
// must be the same measurer the renderer draws with.
//
// It returns an EMPTY_SPEC error when fields is empty.
func Build(fields []spec.ParsedField, c CanvasConfig, measure Measurer, opts ...Option) (Layout, error) {
	o := options{maxIterations: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&o)
	}

	byteWidth, err := ByteWidth(spec.Sizes(fields), c.UsableWidth)
	if err != nil {
		return Layout{}, err
	}
	model := NewWidthModel(c, byteWidth, spec.MaxBytes(fields))
	est := Estimate(fields, c, model, measure, o.maxIterations)

	l := Layout{
		Canvas:     c,
		ByteWidth:  byteWidth,
		RowHeight:  est.RowHeight,
		FontSize:   est.FontSize,
		Iterations: est.Iterations,
		Converged:  est.Converged,
	}

	items := Size(fields, c, model, measure, est.FontSize)
	for _, it := range items {
		if it.MinWidth > c.UsableWidth {
			l.Oversized = append(l.Oversized, &errors.FieldTooWideError{
				Field:    it.Field.Name,
				MinWidth: it.MinWidth,
				Usable:   c.UsableWidth,
			})
		}
	}

	y := c.Padding
	for r, packed := range Pack(items, c) {
		row := make(Row, len(packed))
		for i, it := range packed {
			row[i] = Block{
				Y:        y,
				Width:    it.Width,
				Height:   est.RowHeight,
				MinWidth: it.MinWidth,
				Row:      r,
				Field:    it.Field,
			}
		}
		Distribute(row, c.UsableWidth, c.Padding)
		l.Rows = append(l.Rows, row)
		y += est.RowHeight + c.Padding
	}
	return l, nil
}
