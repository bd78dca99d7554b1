package fxaa

import (
	"context"
	"fmt"
	"image"
	"runtime"

	"github.com/gogpu/fxaa/internal/filter"
	intImage "github.com/gogpu/fxaa/internal/image"
	"github.com/gogpu/fxaa/internal/parallel"
)

// bandsPerWorker oversubscribes bands so idle workers have work to steal.
const bandsPerWorker = 2

// Stats describes a completed filter run.
type Stats struct {
	// Passes is the number of passes executed.
	Passes int

	// Blended holds the number of blended pixels of each pass.
	Blended []int

	// Pixels is the number of pixels in the image.
	Pixels int
}

// TotalBlended returns the number of blended pixels over all passes.
func (s Stats) TotalBlended() int {
	n := 0
	for _, b := range s.Blended {
		n += b
	}
	return n
}

// Filter is a configured anti-aliasing filter.
//
// A Filter owns a worker pool and recycles its scratch buffers between
// runs, so reuse one Filter for a stream of frames and Close it when done.
//
// Thread safety: Filter is safe for concurrent use. Every Process call owns
// its buffers; the worker pool is shared.
type Filter struct {
	cfg     Config
	pool    *parallel.WorkerPool
	workers int
	buffers *intImage.Pool
}

// New creates a Filter from DefaultConfig modified by opts.
// Returns an error wrapping ErrInvalidConfig if the result does not validate.
func New(opts ...Option) (*Filter, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	f := &Filter{
		cfg:     cfg,
		workers: workers,
		buffers: intImage.NewPool(2),
	}
	if workers > 1 {
		f.pool = parallel.NewWorkerPool(workers)
	}
	return f, nil
}

// Config returns the filter's configuration.
func (f *Filter) Config() Config {
	return f.cfg
}

// Close stops the worker pool. A closed Filter still works, running each
// pass on the calling goroutine. Close is safe to call multiple times.
func (f *Filter) Close() {
	if f.pool != nil {
		f.pool.Close()
	}
}

// Process filters buf and returns a new buffer. buf is never modified.
//
// ctx is checked between passes; a canceled context returns ctx.Err()
// and no buffer. Images narrower or shorter than 3 pixels have no interior
// pixels and are returned as an unchanged copy.
func (f *Filter) Process(ctx context.Context, buf *PixelBuffer) (*PixelBuffer, Stats, error) {
	if buf == nil {
		return nil, Stats{}, ErrNilBuffer
	}

	width, height := buf.Bounds()
	stats := Stats{Pixels: width * height}
	log := Logger()

	if width < 3 || height < 3 {
		log.Warn("fxaa: image has no interior pixels, returning copy",
			"width", width, "height", height)
		return buf.Clone(), stats, nil
	}

	input := f.buffers.Get(width, height, buf.Format())
	scratch := f.buffers.Get(width, height, buf.Format())
	if input == nil || scratch == nil {
		return nil, Stats{}, fmt.Errorf("fxaa: %dx%d %v: %w", width, height, buf.Format(), ErrInvalidDimensions)
	}
	if err := input.CopyFrom(buf); err != nil {
		return nil, Stats{}, fmt.Errorf("fxaa: copy input: %w", err)
	}

	var exec parallel.Executor = parallel.Inline{}
	if f.pool != nil {
		exec = f.pool
	}

	log.Debug("fxaa: filter start",
		"width", width,
		"height", height,
		"format", buf.Format().String(),
		"passes", f.cfg.Passes,
		"policy", f.cfg.Policy.String(),
		"workers", f.workers)

	o := filter.NewOrchestrator(f.cfg.params(), exec, f.workers*bandsPerWorker, log)
	if err := o.Start(input, scratch); err != nil {
		f.buffers.Put(input)
		f.buffers.Put(scratch)
		return nil, Stats{}, fmt.Errorf("fxaa: start: %w", err)
	}
	if err := o.Run(ctx); err != nil {
		f.buffers.Put(input)
		f.buffers.Put(scratch)
		return nil, Stats{}, err
	}

	f.buffers.Put(o.Scratch())

	stats.Passes = o.Pass()
	stats.Blended = o.Blended()
	return o.Result(), stats, nil
}

// Apply filters buf and returns a new buffer. buf is never modified.
func (f *Filter) Apply(buf *PixelBuffer) (*PixelBuffer, error) {
	out, _, err := f.Process(context.Background(), buf)
	return out, err
}

// ApplyImage filters any image.Image and returns the result as NRGBA.
func (f *Filter) ApplyImage(img image.Image) (*image.NRGBA, error) {
	buf, err := FromImage(img)
	if err != nil {
		return nil, err
	}
	out, err := f.Apply(buf)
	if err != nil {
		return nil, err
	}
	return out.ToStdImage(), nil
}

// Apply runs the filter described by cfg over buf and returns a new
// buffer. It is deterministic and never modifies buf.
func Apply(buf *PixelBuffer, cfg Config) (*PixelBuffer, error) {
	f, err := New(WithConfig(cfg))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.Apply(buf)
}

// ApplyImage runs the filter described by cfg over img.
func ApplyImage(img image.Image, cfg Config) (*image.NRGBA, error) {
	f, err := New(WithConfig(cfg))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.ApplyImage(img)
}
