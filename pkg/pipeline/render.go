package pipeline

import (
	"bytes"

	"github.com/matzehuels/ffimg/pkg/layout"
	"github.com/matzehuels/ffimg/pkg/render"
)

// Render draws l with the measurer's font and encodes it in format.
func Render(l layout.Layout, m *render.Measurer, format render.Format) ([]byte, error) {
	img := render.NewRaster(m).Draw(l)

	var buf bytes.Buffer
	if err := render.Encode(&buf, img, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
