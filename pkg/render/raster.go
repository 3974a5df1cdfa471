package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/matzehuels/ffimg/pkg/layout"
)

// Default palette.
var (
	DefaultBackground color.Color = color.White
	DefaultFill       color.Color = color.RGBA{R: 255, G: 165, A: 255} // orange
	DefaultOutline    color.Color = color.Black
	DefaultText       color.Color = color.Black
)

// RasterOption configures a Raster.
type RasterOption func(*Raster)

// WithFill sets the block fill color.
func WithFill(c color.Color) RasterOption {
	return func(r *Raster) { r.fill = c }
}

// WithBackground sets the canvas color.
func WithBackground(c color.Color) RasterOption {
	return func(r *Raster) { r.background = c }
}

// WithLineWidth sets the outline width in pixels (default 1).
func WithLineWidth(w float64) RasterOption {
	return func(r *Raster) { r.lineWidth = w }
}

// Raster paints layouts. It holds no per-layout state; the same Raster can
// draw any number of layouts built with its Measurer.
type Raster struct {
	measure    *Measurer
	background color.Color
	fill       color.Color
	outline    color.Color
	text       color.Color
	lineWidth  float64
}

// NewRaster creates a Raster that draws text with m's font.
func NewRaster(m *Measurer, opts ...RasterOption) *Raster {
	r := &Raster{
		measure:    m,
		background: DefaultBackground,
		fill:       DefaultFill,
		outline:    DefaultOutline,
		text:       DefaultText,
		lineWidth:  1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Draw paints every block of l onto a new canvas of l's resolution.
func (r *Raster) Draw(l layout.Layout) image.Image {
	dc := gg.NewContext(l.Canvas.Width, l.Canvas.Height)
	dc.SetColor(r.background)
	dc.Clear()

	dc.SetFontFace(r.measure.Face(l.FontSize))
	ascent, descent := r.measure.Metrics(l.FontSize)

	for _, row := range l.Rows {
		for _, b := range row {
			r.drawBlock(dc, b, ascent, descent)
		}
	}
	return dc.Image()
}

// drawBlock paints one block. The name's descender line and the size
// label's ascender line both sit on the block's vertical center.
func (r *Raster) drawBlock(dc *gg.Context, b layout.Block, ascent, descent float64) {
	dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
	dc.SetColor(r.fill)
	dc.FillPreserve()
	dc.SetColor(r.outline)
	dc.SetLineWidth(r.lineWidth)
	dc.Stroke()

	cx, cy := b.CenterX(), b.CenterY()
	dc.SetColor(r.text)
	dc.DrawStringAnchored(b.Field.Name, cx, cy-descent, 0.5, 0)
	dc.DrawStringAnchored(b.Field.Display, cx, cy+ascent, 0.5, 0)
}
