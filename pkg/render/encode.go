package render

import (
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/ffimg/pkg/errors"
)

// Format is an output image encoding.
type Format = imaging.Format

// Supported output formats.
const (
	FormatPNG  = imaging.PNG
	FormatJPEG = imaging.JPEG
	FormatGIF  = imaging.GIF
	FormatTIFF = imaging.TIFF
	FormatBMP  = imaging.BMP
)

// FormatFromPath picks the output format from the file extension.
func FormatFromPath(path string) (Format, error) {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		return 0, errors.Wrap(errors.ErrCodeInvalidFormat, err,
			"unsupported output format %q (use png, jpg, gif, tif or bmp)", ext)
	}
	return f, nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	if err := imaging.Encode(w, img, format); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", format)
	}
	return nil
}
