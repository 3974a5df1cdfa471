// Package render paints a finished layout onto a raster image and encodes it.
//
// # Overview
//
// The package provides the drawing side of ffimg:
//
//   - [Raster] draws blocks and their labels with fogleman/gg
//   - [Measurer] measures label widths with the same font faces Raster
//     draws with, so the layout and the pixels agree
//   - [Encode] writes the image as PNG, JPEG, GIF, TIFF or BMP
//
// # Usage
//
//	f, _ := fonts.Default()
//	m := render.NewMeasurer(f)
//	l, err := layout.Build(fields, canvas, m)
//	img := render.NewRaster(m).Draw(l)
//	err = render.Encode(w, img, render.FormatPNG)
//
// Each block is an outlined rectangle with the field name sitting on the
// row's vertical center and the size label hanging below it.
package render
