package filter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/fxaa/internal/image"
	"github.com/gogpu/fxaa/internal/parallel"
)

// Orchestrator errors.
var (
	// ErrNotRunning is returned by Step outside the Running state.
	ErrNotRunning = errors.New("filter: orchestrator not running")

	// ErrAlreadyStarted is returned by Start when called twice.
	ErrAlreadyStarted = errors.New("filter: orchestrator already started")
)

// State is the lifecycle state of an Orchestrator.
type State uint8

const (
	// StateIdle is the state before Start.
	StateIdle State = iota

	// StateRunning means passes remain to be executed.
	StateRunning

	// StateDone means all passes have run and Result is available.
	StateDone
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Params are the immutable parameters of a filter run.
type Params struct {
	Weights            Weights
	Threshold          float32
	Policy             BlendPolicy
	Passes             int
	RecomputeLuminance bool
}

// bufferPair owns the two ping-pong buffers. bufs[active] is the input of
// the next pass; the pass writes only into the other one.
type bufferPair struct {
	bufs   [2]*image.PixelBuffer
	active int
}

func (p *bufferPair) input() *image.PixelBuffer  { return p.bufs[p.active] }
func (p *bufferPair) output() *image.PixelBuffer { return p.bufs[1-p.active] }
func (p *bufferPair) flip()                      { p.active = 1 - p.active }

// Orchestrator drives the passes of one filter run:
// Idle → Running(pass 1..N) → Done.
//
// An Orchestrator is single-use and not safe for concurrent use; the
// parallelism lives inside each pass.
type Orchestrator struct {
	params Params
	exec   parallel.Executor
	bands  int
	logger *slog.Logger

	state   State
	pass    int
	pair    bufferPair
	luma    *LuminanceMap
	blended []int
}

// NewOrchestrator creates an idle orchestrator. A nil exec runs bands
// inline; bands is the requested number of row bands per pass.
func NewOrchestrator(params Params, exec parallel.Executor, bands int, logger *slog.Logger) *Orchestrator {
	if exec == nil {
		exec = parallel.Inline{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Orchestrator{
		params: params,
		exec:   exec,
		bands:  bands,
		logger: logger,
	}
}

// Start takes ownership of input and scratch, computes the initial
// luminance map and enters Running (or Done when Passes is 0).
// Both buffers are written during the run; scratch contents are ignored.
func (o *Orchestrator) Start(input, scratch *image.PixelBuffer) error {
	if o.state != StateIdle {
		return ErrAlreadyStarted
	}
	if input == nil || scratch == nil {
		return fmt.Errorf("filter: start: nil buffer: %w", image.ErrInvalidDimensions)
	}
	if !input.SameShape(scratch) {
		return fmt.Errorf("filter: start: scratch buffer shape differs from input: %w", image.ErrInvalidDimensions)
	}

	luma, err := ComputeLuminance(input, o.params.Weights)
	if err != nil {
		return err
	}

	o.pair = bufferPair{bufs: [2]*image.PixelBuffer{input, scratch}}
	o.luma = luma
	o.blended = make([]int, 0, max(o.params.Passes, 0))

	if o.params.Passes <= 0 {
		o.state = StateDone
		return nil
	}
	o.state = StateRunning
	return nil
}

// Step runs one pass and flips the buffer roles.
func (o *Orchestrator) Step() error {
	if o.state != StateRunning {
		return ErrNotRunning
	}

	o.pass++
	if o.params.RecomputeLuminance && o.pass > 1 {
		if err := o.luma.Compute(o.pair.input(), o.params.Weights); err != nil {
			return err
		}
	}

	blended := o.runPass(o.pair.input(), o.pair.output())
	o.pair.flip()
	o.blended = append(o.blended, blended)

	o.logger.Debug("fxaa: pass complete",
		"pass", o.pass,
		"of", o.params.Passes,
		"blended", blended,
		"policy", o.params.Policy.String(),
		"recompute", o.params.RecomputeLuminance)

	if o.pass >= o.params.Passes {
		o.state = StateDone
	}
	return nil
}

// Run executes the remaining passes, checking ctx between passes.
func (o *Orchestrator) Run(ctx context.Context) error {
	for o.state == StateRunning {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := o.Step(); err != nil {
			return err
		}
	}
	if o.state != StateDone {
		return ErrNotRunning
	}
	return nil
}

// runPass filters src into dst band by band and returns the number of
// blended pixels. ExecuteAll returns after every band is written.
func (o *Orchestrator) runPass(src, dst *image.PixelBuffer) int {
	bands := parallel.SplitRows(src.Height(), o.bands)
	counts := make([]int, len(bands))
	work := make([]func(), len(bands))

	for i, b := range bands {
		work[i] = func() {
			counts[i] = filterRows(src, dst, o.luma, o.params.Threshold, o.params.Policy, b.Y0, b.Y1)
		}
	}
	o.exec.ExecuteAll(work)

	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}

// filterRows writes rows [y0, y1) of dst from src. Border pixels and pixels
// whose edge strength does not exceed threshold are copied; the rest are
// blended. Returns the number of blended pixels.
func filterRows(src, dst *image.PixelBuffer, lm *LuminanceMap, threshold float32, policy BlendPolicy, y0, y1 int) int {
	width, height := src.Width(), src.Height()
	bpp := src.Format().BytesPerPixel()
	blended := 0

	for y := y0; y < y1; y++ {
		srcRow := src.RowBytes(y)
		dstRow := dst.RowBytes(y)

		for x := range width {
			px := dstRow[x*bpp : (x+1)*bpp]

			if isBorderPixel(x, y, width, height) {
				copy(px, srcRow[x*bpp:(x+1)*bpp])
				continue
			}

			edge := EdgeStrength(lm, x, y)
			if edge > threshold {
				policy.Blend(src, lm, x, y, edge, px)
				blended++
			} else {
				copy(px, srcRow[x*bpp:(x+1)*bpp])
			}
		}
	}
	return blended
}

// State returns the current lifecycle state.
func (o *Orchestrator) State() State { return o.state }

// Pass returns the number of completed passes.
func (o *Orchestrator) Pass() int { return o.pass }

// Blended returns the blended pixel count of each completed pass.
func (o *Orchestrator) Blended() []int { return o.blended }

// Result returns the input-role buffer after the last flip, or nil before
// the run is Done.
func (o *Orchestrator) Result() *image.PixelBuffer {
	if o.state != StateDone {
		return nil
	}
	return o.pair.input()
}

// Scratch returns the buffer that is not the result, or nil before Done.
// Callers may recycle it.
func (o *Orchestrator) Scratch() *image.PixelBuffer {
	if o.state != StateDone {
		return nil
	}
	return o.pair.output()
}

// Luminance returns the luminance map of the current run.
func (o *Orchestrator) Luminance() *LuminanceMap { return o.luma }
