// Package palette turns escape-time results into colors. The computation
// core is color-agnostic: it hands out raw mandel.Results, and anything
// satisfying Scheme can color them, so switching schemes never touches the
// engine or forces a recompute.
package palette

import (
	"image/color"

	"mandelbrot/mandel"
)

// Scheme maps one escape result to a color.
type Scheme interface {
	Name() string
	Color(r mandel.Result, maxIters uint32) color.RGBA
}

// interior is the color of points that never escaped.
var interior = color.RGBA{A: 255}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

type Bluey struct{}

func (Bluey) Name() string { return "bluey" }

func (Bluey) Color(r mandel.Result, maxIters uint32) color.RGBA {
	if !r.Diverged {
		return interior
	}
	c := float64(r.Iterations)
	return color.RGBA{
		R: clamp8(255 * c / float64(maxIters)),
		G: clamp8(255 * c / (c + 8)),
		B: 255,
		A: 255,
	}
}

type Greeny struct{}

func (Greeny) Name() string { return "greeny" }

func (Greeny) Color(r mandel.Result, maxIters uint32) color.RGBA {
	if !r.Diverged {
		return interior
	}
	c := float64(r.Iterations)
	return color.RGBA{
		R: clamp8(255 * c / float64(maxIters)),
		G: 255,
		B: clamp8(255 * c / (c + 8)),
		A: 255,
	}
}

type Purply struct{}

func (Purply) Name() string { return "purply" }

func (Purply) Color(r mandel.Result, maxIters uint32) color.RGBA {
	if !r.Diverged {
		return interior
	}
	c := float64(r.Iterations)
	m := float64(maxIters)
	return color.RGBA{
		R: clamp8(255 * c / m),
		G: clamp8(255 * c / m),
		B: clamp8(255 * c / (c + 8)),
		A: 255,
	}
}

type Weirdy struct{}

func (Weirdy) Name() string { return "weirdy" }

func (Weirdy) Color(r mandel.Result, maxIters uint32) color.RGBA {
	if !r.Diverged {
		return interior
	}
	c := float64(r.Iterations)
	m := float64(maxIters)
	return color.RGBA{
		R: clamp8(abs(255*(2*c/m) - 1)),
		G: clamp8(255 * c / m),
		B: clamp8(255 * c / (c + 8)),
		A: 255,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Gradient interpolates between two colors by normalized iteration count.
type Gradient struct {
	Label      string
	Start, End color.RGBA
}

func (g Gradient) Name() string { return g.Label }

func (g Gradient) Color(r mandel.Result, maxIters uint32) color.RGBA {
	if !r.Diverged {
		return interior
	}
	return lerpRGBA(g.Start, g.End, float64(r.Iterations)/float64(maxIters))
}

func lerpFloat64(v1, v2, fraction float64) float64 {
	return v1 + (v2-v1)*fraction
}

func lerpRGBA(c1, c2 color.RGBA, fraction float64) color.RGBA {
	return color.RGBA{
		R: clamp8(lerpFloat64(float64(c1.R), float64(c2.R), fraction)),
		G: clamp8(lerpFloat64(float64(c1.G), float64(c2.G), fraction)),
		B: clamp8(lerpFloat64(float64(c1.B), float64(c2.B), fraction)),
		A: 255,
	}
}

// Default is the scheme rotation the viewer cycles through with C.
func Default() []Scheme {
	return []Scheme{
		Bluey{},
		Greeny{},
		Purply{},
		Weirdy{},
		Gradient{Label: "ember", Start: color.RGBA{R: 20, A: 255}, End: color.RGBA{R: 255, G: 200, B: 40, A: 255}},
	}
}
