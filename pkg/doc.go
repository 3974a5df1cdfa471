// Package pkg provides the core libraries for ffimg file format diagrams.
//
// # Overview
//
// ffimg turns a description of a binary file format into an image: every
// field is a block whose width reflects its size, packed into rows that fill
// the canvas. The pkg directory is organized into these areas:
//
//  1. [spec] - Spec files (YAML, TOML, JSON) and byte size parsing
//  2. [layout] - Size normalization, width model, row packing and row height
//  3. [render] - Text measurement, drawing and image encoding
//  4. [fonts] - Embedded and system font resolution
//  5. [pipeline] - Orchestration (load → layout → render)
//  6. [cache] - Rendered image cache
//  7. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow through ffimg:
//
//	Spec file (YAML/TOML/JSON)
//	         ↓
//	    [spec] package (decode + parse sizes)
//	         ↓
//	    [layout] package (byte width, row height, rows of blocks)
//	         ↓
//	    [render] package (raster + encode)
//	         ↓
//	    PNG/JPEG/GIF/TIFF/BMP output
//
// # Quick Start
//
// Render a spec with the default settings:
//
//	import "github.com/matzehuels/ffimg/pkg/pipeline"
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{Input: "header.yaml"})
//	if err != nil {
//	    return err
//	}
//	return pipeline.WriteFile(result.Output, result.Data)
//
// Or drive the stages directly:
//
//	s, _ := spec.Load("header.yaml")
//	fields, _ := s.Parse()
//	f, _ := fonts.Default()
//	m := render.NewMeasurer(f)
//	l, _ := layout.Build(fields, layout.NewCanvas(1920, 1080), m)
//	img := render.NewRaster(m).Draw(l)
//
// [spec]: https://pkg.go.dev/github.com/matzehuels/ffimg/pkg/spec
// [layout]: https://pkg.go.dev/github.com/matzehuels/ffimg/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/ffimg/pkg/render
// [fonts]: https://pkg.go.dev/github.com/matzehuels/ffimg/pkg/fonts
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/ffimg/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/ffimg/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/ffimg/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/ffimg/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/ffimg/pkg/buildinfo
package pkg
