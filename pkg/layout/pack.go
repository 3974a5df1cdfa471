package layout

import "github.com/matzehuels/ffimg/pkg/spec"

// Sized is a field with its provisional width, before row distribution.
type Sized struct {
	Field    spec.ParsedField
	Width    float64
	MinWidth float64
}

// Size computes the provisional width of every field at fontSize.
func Size(fields []spec.ParsedField, c CanvasConfig, m WidthModel, measure Measurer, fontSize float64) []Sized {
	out := make([]Sized, len(fields))
	for i, f := range fields {
		minWidth := MinWidth(f, c, measure, fontSize)
		out[i] = Sized{
			Field:    f,
			Width:    m.Width(f.Bytes, minWidth),
			MinWidth: minWidth,
		}
	}
	return out
}

// Pack splits items into rows greedily, in order. A row ends when the next
// item would cross the right edge of the usable area. An item wider than
// the usable area gets a row of its own; items are never dropped, split,
// or reordered.
func Pack(items []Sized, c CanvasConfig) [][]Sized {
	var rows [][]Sized
	var row []Sized
	x := c.Padding
	for _, it := range items {
		if len(row) > 0 && x+it.Width > c.Right() {
			rows = append(rows, row)
			row = nil
			x = c.Padding
		}
		row = append(row, it)
		x += it.Width
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}
