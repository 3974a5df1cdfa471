package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ffimg/pkg/errors"
	"github.com/matzehuels/ffimg/pkg/pipeline"
)

// renderFlags holds the command-line flags for rendering.
type renderFlags struct {
	output        string // output image path; extension selects the format
	resolution    string // canvas size as WIDTHxHEIGHT
	font          string // font name or path
	maxIterations int    // row height search bound
	noCache       bool   // skip the artifact cache entirely
	refresh       bool   // re-render even when a cached image exists
}

// renderCommand creates the root render command.
func (c *CLI) renderCommand() *cobra.Command {
	flags := renderFlags{
		output:        pipeline.DefaultOutput,
		resolution:    fmt.Sprintf("%dx%d", pipeline.DefaultWidth, pipeline.DefaultHeight),
		maxIterations: pipeline.DefaultMaxIterations,
	}

	cmd := &cobra.Command{
		Use:   "ffimg [spec-file]",
		Short: "ffimg draws file format layouts as images",
		Long: `ffimg draws the layout of a binary file format as an image.

The spec file lists categories of fields, each with a name and a size such
as "4 bytes" or "2 KiB". Every field becomes a block whose width follows
its size, packed left to right into rows that fill the canvas.

Spec files may be YAML (default), TOML or JSON, chosen by extension. The
output format follows the output extension: png, jpg, gif, tif or bmp.

Rendered images are cached locally for faster subsequent runs.`,
		Example: `  ffimg header.yaml
  ffimg header.yaml -o header.jpg -r 1280x720
  ffimg header.toml --font DejaVuSans`,
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		ValidArgsFunction: completeSpecFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(args[0])
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, flags.noCache)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", flags.output, "output image (png, jpg, gif, tif, bmp)")
	cmd.Flags().StringVarP(&flags.resolution, "resolution", "r", flags.resolution, "canvas size as WIDTHxHEIGHT")
	cmd.Flags().StringVar(&flags.font, "font", "", "font name or .ttf path (default: embedded Go Regular)")
	cmd.Flags().IntVar(&flags.maxIterations, "max-iterations", flags.maxIterations, "bound on the row height search")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "re-render even if a cached image exists")
	_ = cmd.RegisterFlagCompletionFunc("output", completeImageFiles)

	return cmd
}

// options validates the flags and converts them to pipeline options.
func (f renderFlags) options(input string) (pipeline.Options, error) {
	width, height, err := errors.ParseResolution(f.resolution)
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		Input:         input,
		Output:        f.output,
		Width:         width,
		Height:        height,
		Font:          f.font,
		MaxIterations: f.maxIterations,
		Refresh:       f.refresh,
	}, nil
}

// runRender executes the pipeline and writes the image. Nothing is written
// unless the whole pipeline succeeds.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, noCache bool) error {
	logger := loggerFromContext(ctx)
	runner := c.newRunner(noCache)
	defer runner.Close()

	opts.Logger = logger
	prog := newProgress(logger)

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	if err := pipeline.WriteFile(result.Output, result.Data); err != nil {
		return err
	}
	prog.done("Rendered "+result.Output, "cached", result.Cached)

	printSuccess("Rendered %s", opts.Input)
	printStats(result.Stats.FieldCount, result.Stats.RowCount, result.Cached)
	printFile(result.Output)
	return nil
}
