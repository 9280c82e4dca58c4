package mandel

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
)

// Request describes one frame. It is immutable once constructed; the
// interactive layer builds a fresh Request per pan/zoom step.
type Request struct {
	Viewport   Viewport
	Resolution Resolution
	MaxIters   uint32
	Strategy   Strategy
}

// DefaultRequest mirrors the classic full-set framing: x (-2.5, 1),
// y (-1, 1) at 1920x1080 with a budget of 128 iterations.
func DefaultRequest() Request {
	return Request{
		Viewport:   DefaultViewport,
		Resolution: Resolution{X: 1920, Y: 1080},
		MaxIters:   128,
		Strategy:   PooledPerRow(0),
	}
}

// Validate rejects malformed requests. Render calls it before allocating
// anything or starting any worker.
func (r Request) Validate() error {
	if err := r.Resolution.Validate(); err != nil {
		return err
	}
	if r.MaxIters < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidIterations, r.MaxIters)
	}
	return r.Viewport.Validate()
}

// Renderer drives full-frame computations. It holds no per-render state, so
// one Renderer may serve any number of sequential Render calls (the
// interactive loop reuses a single instance) without leaking goroutines or
// memory between them.
type Renderer struct {
	// CPUCount sizes the worker pools of strategies constructed with
	// default sizing. Defaults to the logical CPU count; tune it per
	// machine rather than trusting the default multipliers.
	CPUCount int
	Logger   bslogger.Logger
}

func NewRenderer() *Renderer {
	return &Renderer{
		CPUCount: runtime.NumCPU(),
		Logger:   bslogger.NewLogger("Renderer", bslogger.Normal, nil),
	}
}

// Render computes one frame and blocks until it is complete. Either every
// pixel of the returned buffer has been computed, or the error is non-nil
// and no buffer is returned; a partially filled frame is never observable.
// Cancelling ctx aborts the render and is how the interactive layer
// discards superseded frames mid-computation.
func (r *Renderer) Render(ctx context.Context, req Request) (*FrameBuffer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	mapper, err := NewMapper(req.Viewport, req.Resolution)
	if err != nil {
		return nil, err
	}

	buf := newFrameBuffer(req.Resolution, req.MaxIters)

	// The re coordinate only depends on the column; compute it once per
	// frame instead of once per pixel.
	reByCol := make([]float64, req.Resolution.X)
	for col := range reByCol {
		reByCol[col], _ = mapper.At(0, col)
	}

	start := time.Now()
	err = req.Strategy.dispatch(ctx, req.Resolution.Y, r.CPUCount, func(row int) error {
		_, im := mapper.At(row, 0)
		out := buf.Row(row)
		for col, re := range reByCol {
			out[col] = Escape(re, im, req.MaxIters)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("render aborted: %w", err)
	}

	r.Logger.Debugf("%s %dx%d max_iters=%d took %s",
		req.Strategy, req.Resolution.X, req.Resolution.Y, req.MaxIters, time.Since(start))
	return buf, nil
}
