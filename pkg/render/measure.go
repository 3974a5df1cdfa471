package render

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Measurer measures and provides font faces for one TrueType font.
// Faces are created lazily per size and reused. A Measurer is not safe for
// concurrent use.
type Measurer struct {
	font  *truetype.Font
	faces map[float64]font.Face
}

// NewMeasurer creates a Measurer for f.
func NewMeasurer(f *truetype.Font) *Measurer {
	return &Measurer{font: f, faces: make(map[float64]font.Face)}
}

// Face returns the face for size, in pixels.
func (m *Measurer) Face(size float64) font.Face {
	if face, ok := m.faces[size]; ok {
		return face
	}
	face := truetype.NewFace(m.font, &truetype.Options{
		Size:    size,
		DPI:     72, // points == pixels
		Hinting: font.HintingNone,
	})
	m.faces[size] = face
	return face
}

// MeasureString returns the advance width of s in pixels at size.
func (m *Measurer) MeasureString(s string, size float64) float64 {
	return toFloat(font.MeasureString(m.Face(size), s))
}

// Metrics returns the ascent and descent, in pixels, at size.
func (m *Measurer) Metrics(size float64) (ascent, descent float64) {
	metrics := m.Face(size).Metrics()
	return toFloat(metrics.Ascent), toFloat(metrics.Descent)
}

// Close releases all cached faces.
func (m *Measurer) Close() error {
	for size, face := range m.faces {
		face.Close()
		delete(m.faces, size)
	}
	return nil
}

func toFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }
