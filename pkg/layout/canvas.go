package layout

// CanvasConfig holds the dimensions derived from the output resolution.
// It is computed once per run and passed by value; nothing in it changes
// after construction.
type CanvasConfig struct {
	Width, Height int     // Output resolution in pixels
	Padding       float64 // Margin around the canvas and between rows
	UsableWidth   float64 // Width minus padding on both sides
	UsableHeight  float64 // Height minus padding on both sides
	Threshold     float64 // Widths above this are compressed by the width model
}

// NewCanvas derives the canvas constants for a width×height image.
// Padding is 1% of the width.
func NewCanvas(width, height int) CanvasConfig {
	padding := float64(width) / 100
	usableWidth := float64(width) - padding*2
	return CanvasConfig{
		Width:        width,
		Height:       height,
		Padding:      padding,
		UsableWidth:  usableWidth,
		UsableHeight: float64(height) - padding*2,
		Threshold:    usableWidth / 2,
	}
}

// Right returns the X coordinate of the right edge of the usable area.
func (c CanvasConfig) Right() float64 { return c.Padding + c.UsableWidth }
