package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/matzehuels/ffimg/pkg/cache"
	"github.com/matzehuels/ffimg/pkg/fonts"
	"github.com/matzehuels/ffimg/pkg/observability"
	"github.com/matzehuels/ffimg/pkg/render"
	"github.com/matzehuels/ffimg/pkg/spec"
)

// cacheKeyType labels cache events for hooks.
const cacheKeyType = "artifact"

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
// It never writes the output file; see WriteFile.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Output: opts.Output,
		Format: opts.Format(),
	}

	// Stage 1: Load
	loadStart := time.Now()
	data, fields, err := r.load(ctx, opts.Input)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.FieldCount = len(fields)

	r.Logger.Info("loaded spec",
		"path", opts.Input,
		"fields", len(fields),
		"duration", result.Stats.LoadTime)

	fontData, err := fonts.Read(opts.Font)
	if err != nil {
		return nil, err
	}

	cacheKey := r.Keyer.ArtifactKey(cache.Hash(data), opts.ArtifactKeyOpts(cache.Hash(fontData)))
	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, cacheKeyType)
			r.Logger.Debug("using cached image", "size", humanize.IBytes(uint64(len(cached))))
			result.Data = cached
			result.Cached = true
			return result, nil
		} else if err != nil {
			r.Logger.Debug("cache read failed", "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := fonts.Parse(opts.Font, fontData)
	if err != nil {
		return nil, err
	}
	m := render.NewMeasurer(f)
	defer m.Close()

	// Stage 2: Layout
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, len(fields))
	l, err := GenerateLayout(fields, m, opts)
	result.Stats.LayoutTime = time.Since(layoutStart)
	observability.Pipeline().OnLayoutComplete(ctx, len(l.Rows), result.Stats.LayoutTime, err)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats.RowCount = len(l.Rows)

	r.Logger.Info("computed layout",
		"rows", len(l.Rows),
		"row_height", humanize.FtoaWithDigits(l.RowHeight, 2),
		"font_size", humanize.FtoaWithDigits(l.FontSize, 2),
		"duration", result.Stats.LayoutTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	format := opts.Format().String()
	observability.Pipeline().OnRenderStart(ctx, format)
	img, err := Render(l, m, opts.Format())
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, format, len(img), result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Data = img

	r.Logger.Info("rendered image",
		"format", format,
		"size", humanize.IBytes(uint64(len(img))),
		"duration", result.Stats.RenderTime)

	if err := r.Cache.Set(ctx, cacheKey, img, cache.DefaultArtifactTTL); err != nil {
		r.Logger.Debug("cache write failed", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, cacheKeyType, len(img))
	}

	return result, nil
}

// load reads the spec at path and parses its fields. The raw bytes are
// returned as well since they identify the spec in cache keys.
func (r *Runner) load(ctx context.Context, path string) (data []byte, fields []spec.ParsedField, err error) {
	start := time.Now()
	observability.Pipeline().OnLoadStart(ctx, path)
	defer func() {
		observability.Pipeline().OnLoadComplete(ctx, path, len(fields), time.Since(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	data, err = spec.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	fields, err = Parse(data, spec.FormatFromPath(path))
	if err != nil {
		return nil, nil, err
	}
	return data, fields, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
