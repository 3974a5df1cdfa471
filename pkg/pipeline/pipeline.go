// Package pipeline provides the end-to-end rendering pipeline for ffimg.
//
// This package turns a spec file into an encoded image. The CLI calls it
// through a [Runner], which adds caching and timing around the stages.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read the spec file, decode it and parse every size
//  2. Layout: Derive the byte scale and row height, then pack fields into rows
//  3. Render: Paint the layout with the selected font and encode it
//
// Each stage can be run on its own: [Parse], [GenerateLayout] and [Render].
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:  "header.yaml",
//	    Output: "header.png",
//	    Width:  1920,
//	    Height: 1080,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = pipeline.WriteFile(result.Output, result.Data)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ffimg/pkg/cache"
	"github.com/matzehuels/ffimg/pkg/errors"
	"github.com/matzehuels/ffimg/pkg/layout"
	"github.com/matzehuels/ffimg/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for the CLI and library callers
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 1920

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 1080

	// DefaultOutput is the default output path. Its extension selects PNG.
	DefaultOutput = "output.png"

	// DefaultMaxIterations bounds the row height search.
	DefaultMaxIterations = layout.DefaultMaxIterations
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	Input         string // Spec file path
	Output        string // Output image path; its extension picks the format
	Width         int
	Height        int
	Font          string // Font name or path, "" for the embedded default
	MaxIterations int
	Refresh       bool // Ignore cached artifacts, still store the new one

	// Runtime options
	Logger *log.Logger

	format    render.Format
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Data is the encoded image.
	Data []byte

	// Output is the path the image is meant for.
	Output string

	// Format is the encoding of Data.
	Format render.Format

	// Layout is the computed geometry. It is empty when Cached is set.
	Layout layout.Layout

	// Cached reports whether Data came from the cache.
	Cached bool

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	FieldCount int
	RowCount   int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidatePath(o.Input); err != nil {
		return err
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if err := errors.ValidatePath(o.Output); err != nil {
		return err
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Width < 0 || o.Height < 0 || o.Width > errors.MaxDimension || o.Height > errors.MaxDimension {
		return errors.New(errors.ErrCodeInvalidResolution, "invalid resolution %dx%d", o.Width, o.Height)
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	format, err := render.FormatFromPath(o.Output)
	if err != nil {
		return err
	}
	o.format = format
	o.validated = true
	return nil
}

// Format returns the output format selected by the output extension.
// It is only meaningful after ValidateAndSetDefaults succeeded.
func (o *Options) Format() render.Format {
	return o.format
}

// ArtifactKeyOpts returns cache key options for the rendered image.
// fontHash is the content hash of the resolved font file, so editing or
// replacing a font at the same path invalidates cached images.
func (o *Options) ArtifactKeyOpts(fontHash string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Width:         o.Width,
		Height:        o.Height,
		Format:        o.format.String(),
		Font:          o.Font,
		FontHash:      fontHash,
		MaxIterations: o.MaxIterations,
	}
}
