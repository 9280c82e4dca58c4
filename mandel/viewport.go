package mandel

import "fmt"

// Viewport is the rectangle of the complex plane mapped onto the raster:
// x in [X0, X1], y in [Y0, Y1].
type Viewport struct {
	X0, X1 float64
	Y0, Y1 float64
}

// DefaultViewport frames the whole set.
var DefaultViewport = Viewport{X0: -2.5, X1: 1, Y0: -1, Y1: 1}

func (v Viewport) Width() float64  { return v.X1 - v.X0 }
func (v Viewport) Height() float64 { return v.Y1 - v.Y0 }

// Center returns the midpoint of the viewport.
func (v Viewport) Center() (re, im float64) {
	return (v.X0 + v.X1) / 2, (v.Y0 + v.Y1) / 2
}

func (v Viewport) Validate() error {
	if v.X0 >= v.X1 || v.Y0 >= v.Y1 {
		return fmt.Errorf("%w: got x (%g, %g) y (%g, %g)", ErrInvalidViewport, v.X0, v.X1, v.Y0, v.Y1)
	}
	return nil
}

// Translate shifts the viewport by (dx, dy) in plane units.
func (v Viewport) Translate(dx, dy float64) Viewport {
	return Viewport{X0: v.X0 + dx, X1: v.X1 + dx, Y0: v.Y0 + dy, Y1: v.Y1 + dy}
}

// Zoom rescales the viewport about the plane point (cre, cim), which stays
// fixed. A factor below 1 zooms in.
func (v Viewport) Zoom(factor, cre, cim float64) Viewport {
	return Viewport{
		X0: cre + (v.X0-cre)*factor,
		X1: cre + (v.X1-cre)*factor,
		Y0: cim + (v.Y0-cim)*factor,
		Y1: cim + (v.Y1-cim)*factor,
	}
}
