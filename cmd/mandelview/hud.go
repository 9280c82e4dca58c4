package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"mandelbrot/mandel"
)

const hudLineHeight = 13 // basicfont.Face7x13 line advance

// drawHUD writes the viewport bounds, the plane coordinate under the
// cursor, the iteration budget and the scheme name into the bottom-left
// corner of img.
func drawHUD(img *image.RGBA, s viewState, mouseX, mouseY int, scheme string) {
	p := coordPrecision(s.viewport)
	cre, cim := s.planeAt(mouseX, mouseY)
	lines := []string{
		fmt.Sprintf("x (%.*f, %.*f)  y (%.*f, %.*f)", p, s.viewport.X0, p, s.viewport.X1, p, s.viewport.Y0, p, s.viewport.Y1),
		fmt.Sprintf("mouse @ %.*f, %.*f", p, cre, p, cim),
		fmt.Sprintf("max iters: %d  scheme: %s", s.maxIters, scheme),
	}

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 255, A: 255}),
		Face: basicfont.Face7x13,
	}
	base := img.Bounds().Dy() - len(lines)*hudLineHeight
	for i, line := range lines {
		d.Dot = fixed.P(8, base+(i+1)*hudLineHeight-3)
		d.DrawString(line)
	}
}

// coordPrecision picks how many decimals are worth printing for the current
// zoom level: roughly two digits past the viewport's own magnitude.
func coordPrecision(v mandel.Viewport) int {
	delta := math.Min(v.Width(), v.Height())
	if delta <= 0 {
		return 17
	}
	p := 2 - int(math.Floor(math.Log10(delta)))
	if p < 1 {
		p = 1
	}
	if p > 17 {
		p = 17
	}
	return p
}
