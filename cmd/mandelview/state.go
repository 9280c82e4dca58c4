package main

import "mandelbrot/mandel"

const (
	zoomInFactor  = 0.8  // wheel / +,- step
	arrowPanStep  = 0.25 // fraction of the span per arrow key
	minIters      = 1
	maxItersLimit = 20000
)

// viewState is the whole interactive state: viewport, budget, raster size
// and active scheme index. It is a plain value; events produce a new state
// instead of mutating anything shared with the render workers.
type viewState struct {
	viewport mandel.Viewport
	maxIters uint32
	resx     int
	resy     int
	scheme   int
}

func initialState(w, h int) viewState {
	return viewState{
		viewport: mandel.DefaultViewport,
		maxIters: 128,
		resx:     w,
		resy:     h,
	}
}

func (s viewState) request(strategy mandel.Strategy) mandel.Request {
	return mandel.Request{
		Viewport:   s.viewport,
		Resolution: mandel.Resolution{X: s.resx, Y: s.resy},
		MaxIters:   s.maxIters,
		Strategy:   strategy,
	}
}

// Plane units per pixel. The viewer displays row 0 (y = Y0) at the bottom,
// so a screen y (top-down) maps through resy-1-py.
func (s viewState) planeDX() float64 { return s.viewport.Width() / float64(s.resx-1) }
func (s viewState) planeDY() float64 { return s.viewport.Height() / float64(s.resy-1) }

// planeAt converts a window pixel to the plane point under it.
func (s viewState) planeAt(px, py int) (re, im float64) {
	return s.viewport.X0 + float64(px)*s.planeDX(),
		s.viewport.Y0 + float64(s.resy-1-py)*s.planeDY()
}

// event evolves one state into the next. Implementations must be pure:
// same state and event, same output, no side effects.
type event interface {
	apply(viewState) viewState
}

// update is the single state-transition function of the viewer.
func update(s viewState, e event) viewState {
	return e.apply(s)
}

// dragPan pans by a mouse-drag delta in pixels: the image follows the
// cursor, so the viewport moves the opposite way.
type dragPan struct {
	dx, dy int
}

func (e dragPan) apply(s viewState) viewState {
	s.viewport = s.viewport.Translate(
		-float64(e.dx)*s.planeDX(),
		float64(e.dy)*s.planeDY(),
	)
	return s
}

// arrowPan pans by a fraction of the viewport span.
type arrowPan struct {
	fx, fy float64
}

func (e arrowPan) apply(s viewState) viewState {
	s.viewport = s.viewport.Translate(
		e.fx*s.viewport.Width(),
		e.fy*s.viewport.Height(),
	)
	return s
}

// zoomAt zooms about the plane point under the cursor, which stays fixed.
type zoomAt struct {
	px, py int
	in     bool
}

func (e zoomAt) apply(s viewState) viewState {
	re, im := s.planeAt(e.px, e.py)
	s.viewport = s.viewport.Zoom(zoomFactor(e.in), re, im)
	return s
}

// zoomCenter zooms about the viewport center.
type zoomCenter struct {
	in bool
}

func (e zoomCenter) apply(s viewState) viewState {
	re, im := s.viewport.Center()
	s.viewport = s.viewport.Zoom(zoomFactor(e.in), re, im)
	return s
}

func zoomFactor(in bool) float64 {
	if in {
		return zoomInFactor
	}
	return 1 / zoomInFactor
}

// selectRect sets the viewport to the plane rectangle spanned by a
// shift-drag. Degenerate selections (under 2 pixels a side) are ignored.
type selectRect struct {
	px0, py0 int
	px1, py1 int
}

func (e selectRect) apply(s viewState) viewState {
	if absInt(e.px1-e.px0) < 2 || absInt(e.py1-e.py0) < 2 {
		return s
	}
	ax, ay := s.planeAt(e.px0, e.py0)
	bx, by := s.planeAt(e.px1, e.py1)
	s.viewport = mandel.Viewport{
		X0: min(ax, bx), X1: max(ax, bx),
		Y0: min(ay, by), Y1: max(ay, by),
	}
	return s
}

// adjustIters doubles or halves the iteration budget, floor 1.
type adjustIters struct {
	up bool
}

func (e adjustIters) apply(s viewState) viewState {
	if e.up {
		if s.maxIters <= maxItersLimit/2 {
			s.maxIters *= 2
		}
	} else if s.maxIters > minIters {
		s.maxIters /= 2
		if s.maxIters < minIters {
			s.maxIters = minIters
		}
	}
	return s
}

// resetView restores the default framing of the whole set.
type resetView struct{}

func (resetView) apply(s viewState) viewState {
	s.viewport = mandel.DefaultViewport
	return s
}

// cycleScheme advances the active color scheme, wrapping around.
type cycleScheme struct {
	n int
}

func (e cycleScheme) apply(s viewState) viewState {
	if e.n > 0 {
		s.scheme = (s.scheme + 1) % e.n
	}
	return s
}

// resize follows the window size. Sides are clamped to the smallest
// renderable raster.
type resize struct {
	w, h int
}

func (e resize) apply(s viewState) viewState {
	s.resx = max(e.w, 2)
	s.resy = max(e.h, 2)
	return s
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
