package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/ffimg/pkg/errors"
	"github.com/matzehuels/ffimg/pkg/fonts"
	"github.com/matzehuels/ffimg/pkg/layout"
	"github.com/matzehuels/ffimg/pkg/spec"
)

func newMeasurer(t *testing.T) *Measurer {
	t.Helper()
	f, err := fonts.Default()
	if err != nil {
		t.Fatalf("fonts.Default() error: %v", err)
	}
	m := NewMeasurer(f)
	t.Cleanup(func() { m.Close() })
	return m
}

func isFill(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r>>8 > 230 && g>>8 > 140 && g>>8 < 190 && b>>8 < 40
}

func TestMeasurer(t *testing.T) {
	m := newMeasurer(t)

	short := m.MeasureString("ab", 20)
	long := m.MeasureString("abcd", 20)
	if short <= 0 || long <= short {
		t.Errorf("MeasureString widths short=%v long=%v, want 0 < short < long", short, long)
	}
	if big := m.MeasureString("ab", 40); big <= short {
		t.Errorf("MeasureString at 40px = %v, want > %v", big, short)
	}
	if got := m.MeasureString("", 20); got != 0 {
		t.Errorf("MeasureString(\"\") = %v, want 0", got)
	}

	ascent, descent := m.Metrics(20)
	if ascent <= 0 || descent <= 0 || ascent+descent > 30 {
		t.Errorf("Metrics(20) = %v, %v", ascent, descent)
	}
	if m.Face(20) != m.Face(20) {
		t.Error("Face() should reuse faces per size")
	}
}

func TestDrawPaintsBlocks(t *testing.T) {
	m := newMeasurer(t)
	c := layout.NewCanvas(640, 360)
	in := []spec.ParsedField{
		{Name: "magic", Bytes: 4, Display: "4 bytes"},
		{Name: "length", Bytes: 2, Display: "2 bytes"},
	}
	l, err := layout.Build(in, c, m)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	img := NewRaster(m).Draw(l)
	if got := img.Bounds(); got.Dx() != 640 || got.Dy() != 360 {
		t.Fatalf("Draw() bounds = %v, want 640x360", got)
	}

	// Margin keeps the background.
	if r, g, b, _ := img.At(1, 1).RGBA(); r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("margin pixel = %v, want white", img.At(1, 1))
	}

	for _, b := range l.Blocks() {
		x, y := int(b.X)+3, int(b.Y)+3
		if !isFill(img.At(x, y)) {
			t.Errorf("block %q pixel (%d,%d) = %v, want fill", b.Field.Name, x, y, img.At(x, y))
		}
	}

	// Below the last row is empty canvas.
	last := l.Rows[len(l.Rows)-1][0]
	if y := int(last.Bottom()) + 3; y < 360 && isFill(img.At(10, y)) {
		t.Errorf("pixel below last row is filled")
	}
}

func TestDrawCustomColors(t *testing.T) {
	m := newMeasurer(t)
	l, err := layout.Build([]spec.ParsedField{{Name: "x", Bytes: 1, Display: "1 byte"}}, layout.NewCanvas(200, 100), m)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	blue := color.RGBA{B: 255, A: 255}
	gray := color.RGBA{R: 128, G: 128, B: 128, A: 255}
	img := NewRaster(m, WithFill(blue), WithBackground(gray), WithLineWidth(2)).Draw(l)

	b := l.Rows[0][0]
	if r, g, bl, _ := img.At(int(b.X)+4, int(b.Y)+4).RGBA(); r != 0 || g != 0 || bl>>8 != 255 {
		t.Errorf("block pixel = %v, want blue", img.At(int(b.X)+4, int(b.Y)+4))
	}
	if r, g, bl, _ := img.At(0, 0).RGBA(); r>>8 != 128 || g>>8 != 128 || bl>>8 != 128 {
		t.Errorf("background pixel = %v, want gray", img.At(0, 0))
	}
	// The outline keeps its default color under a 2px stroke.
	edge := img.At(int(b.X), int(b.Y)+4)
	if r, g, bl, _ := edge.RGBA(); r>>8 > 16 || g>>8 > 16 || bl>>8 > 16 {
		t.Errorf("outline pixel = %v, want black", edge)
	}
}

// A long name at a small font must widen its rectangle to the measured
// label width plus padding.
func TestDrawLongNameRectangle(t *testing.T) {
	m := newMeasurer(t)
	c := layout.NewCanvas(1920, 1080)
	long := strings.Repeat("m", 50)
	in := []spec.ParsedField{
		{Name: long, Bytes: 1, Display: "1 byte"},
		{Name: "b", Bytes: 1, Display: "1 byte"},
		{Name: "c", Bytes: 1, Display: "1 byte"},
	}
	l, err := layout.Build(in, c, m)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	img := NewRaster(m).Draw(l)

	b := l.Rows[0][0]
	want := m.MeasureString(long, l.FontSize) + 2*c.Padding
	if b.Width < want {
		t.Fatalf("block width = %v, want >= %v", b.Width, want)
	}

	// Walk the fill just below the top edge to find the drawn right edge.
	y := int(b.Y) + 3
	x := int(b.X) + 3
	for x < c.Width && isFill(img.At(x, y)) {
		x++
	}
	if drawn := float64(x) - b.X; drawn < want-3 {
		t.Errorf("drawn rectangle width = %v, want >= %v", drawn, want)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"output.png", FormatPNG, false},
		{"out/diagram.PNG", FormatPNG, false},
		{"diagram.jpg", FormatJPEG, false},
		{"diagram.jpeg", FormatJPEG, false},
		{"diagram.gif", FormatGIF, false},
		{"diagram.tiff", FormatTIFF, false},
		{"diagram.bmp", FormatBMP, false},
		{"diagram.svg", 0, true},
		{"diagram", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Errorf("FormatFromPath(%q) code = %v", tt.path, errors.GetCode(err))
				}
				return
			}
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestEncodePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 16))

	var buf bytes.Buffer
	if err := Encode(&buf, img, FormatPNG); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if got := decoded.Bounds(); got.Dx() != 32 || got.Dy() != 16 {
		t.Errorf("decoded bounds = %v, want 32x16", got)
	}
}
