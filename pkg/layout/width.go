package layout

import (
	"unicode/utf8"

	"github.com/matzehuels/ffimg/pkg/spec"
)

// Measurer reports the rendered width of text.
type Measurer interface {
	// MeasureString returns the advance width of s in pixels at fontSize.
	MeasureString(s string, fontSize float64) float64
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(s string, fontSize float64) float64

// MeasureString calls f(s, fontSize).
func (f MeasureFunc) MeasureString(s string, fontSize float64) float64 { return f(s, fontSize) }

// WidthModel maps byte counts to on-screen widths.
//
// Widths up to Threshold are linear in the byte count. Above it they are
// remapped from [Threshold, MaxBytes*ByteWidth] onto [Threshold, MaxWidth],
// so the largest field in the spec spans exactly MaxWidth and every other
// large field stays proportionally smaller.
type WidthModel struct {
	ByteWidth float64 // Pixels per byte
	Threshold float64 // Start of the compressed range
	MaxBytes  uint64  // Largest byte count in the spec
	MaxWidth  float64 // Upper bound of the compressed range
}

// NewWidthModel builds the width model for a canvas.
func NewWidthModel(c CanvasConfig, byteWidth float64, maxBytes uint64) WidthModel {
	return WidthModel{
		ByteWidth: byteWidth,
		Threshold: c.Threshold,
		MaxBytes:  maxBytes,
		MaxWidth:  c.UsableWidth,
	}
}

// Width returns the width for a field of the given size that needs at least
// minWidth pixels for its label.
func (m WidthModel) Width(bytes uint64, minWidth float64) float64 {
	w := float64(bytes) * m.ByteWidth
	if w > m.Threshold {
		w = interp(w, m.Threshold, float64(m.MaxBytes)*m.ByteWidth, m.Threshold, m.MaxWidth)
	}
	return max(w, minWidth)
}

// interp maps x from [x0, x1] onto [y0, y1], clamping outside the domain.
func interp(x, x0, x1, y0, y1 float64) float64 {
	switch {
	case x >= x1:
		return y1
	case x <= x0:
		return y0
	}
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

// Label returns the longer of the field name and its size label, which
// decides how wide the block must be. Ties go to the name.
func Label(f spec.ParsedField) string {
	if utf8.RuneCountInString(f.Display) > utf8.RuneCountInString(f.Name) {
		return f.Display
	}
	return f.Name
}

// MinWidth returns the width needed to fit the field's longer label with
// padding on both sides.
func MinWidth(f spec.ParsedField, c CanvasConfig, measure Measurer, fontSize float64) float64 {
	return measure.MeasureString(Label(f), fontSize) + c.Padding*2
}
