package pipeline

import (
	"github.com/matzehuels/ffimg/pkg/layout"
	"github.com/matzehuels/ffimg/pkg/spec"
)

// GenerateLayout computes the layout for fields on a canvas of the
// configured resolution. Labels are measured with measure, which must be
// the measurer the image is later drawn with.
func GenerateLayout(fields []spec.ParsedField, measure layout.Measurer, opts Options) (layout.Layout, error) {
	canvas := layout.NewCanvas(opts.Width, opts.Height)
	l, err := layout.Build(fields, canvas, measure, layout.WithMaxIterations(opts.MaxIterations))
	if err != nil {
		return layout.Layout{}, err
	}

	logger := opts.Logger
	if logger != nil {
		if !l.Converged {
			logger.Debug("row height search did not settle",
				"iterations", l.Iterations,
				"row_height", l.RowHeight)
		}
		for _, o := range l.Oversized {
			logger.Warn("field does not fit the canvas", "field", o.Field, "detail", o.Error())
		}
	}
	return l, nil
}
