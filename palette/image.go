package palette

import (
	"image"

	"mandelbrot/mandel"
)

// Image colors a frame into an RGBA image with buffer row 0 at the top.
// This is the file orientation the CLI writes.
func Image(buf *mandel.FrameBuffer, s Scheme) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.Resx(), buf.Resy()))
	for row := 0; row < buf.Resy(); row++ {
		for col, r := range buf.Row(row) {
			img.SetRGBA(col, row, s.Color(r, buf.MaxIters()))
		}
	}
	return img
}

// ImageFlipped mirrors the rows so that Y0 lands at the bottom of the
// image, the display convention of the interactive viewer.
func ImageFlipped(buf *mandel.FrameBuffer, s Scheme) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.Resx(), buf.Resy()))
	for row := 0; row < buf.Resy(); row++ {
		y := buf.Resy() - 1 - row
		for col, r := range buf.Row(row) {
			img.SetRGBA(col, y, s.Color(r, buf.MaxIters()))
		}
	}
	return img
}
