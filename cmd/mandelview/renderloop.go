package main

import (
	"context"

	"mandelbrot/mandel"
)

// frame couples a finished buffer with the sequence number and state of the
// request that produced it.
type frame struct {
	seq   uint64
	state viewState
	buf   *mandel.FrameBuffer
	err   error
}

// renderLoop runs renders in the background. Each request supersedes the
// previous one: the in-flight render's context is cancelled, and any result
// that still trickles in is dropped by sequence number, so rapid pan/zoom
// never shows a stale frame or wastes CPU on one.
type renderLoop struct {
	renderer *mandel.Renderer
	strategy mandel.Strategy
	results  chan frame
	seq      uint64
	cancel   context.CancelFunc
}

func newRenderLoop() *renderLoop {
	return &renderLoop{
		renderer: mandel.NewRenderer(),
		strategy: mandel.PooledPerRow(0),
		results:  make(chan frame, 8),
	}
}

// request starts rendering s, cancelling whatever render is in flight.
// Call only from the event loop goroutine.
func (rl *renderLoop) request(s viewState) {
	if rl.cancel != nil {
		rl.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	rl.cancel = cancel
	rl.seq++

	seq := rl.seq
	req := s.request(rl.strategy)
	go func() {
		buf, err := rl.renderer.Render(ctx, req)
		rl.results <- frame{seq: seq, state: s, buf: buf, err: err}
	}()
}

// poll drains finished renders and returns the one matching the current
// sequence, if any. Superseded results are discarded.
func (rl *renderLoop) poll() (frame, bool) {
	var (
		latest frame
		ok     bool
	)
	for {
		select {
		case f := <-rl.results:
			if f.seq == rl.seq {
				latest = f
				ok = true
			}
		default:
			return latest, ok
		}
	}
}

// stop cancels any in-flight render on shutdown.
func (rl *renderLoop) stop() {
	if rl.cancel != nil {
		rl.cancel()
	}
}
