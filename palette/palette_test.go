package palette

import (
	"context"
	"image/color"
	"testing"

	"mandelbrot/mandel"
)

func TestInteriorIsBlack(t *testing.T) {
	bounded := mandel.Result{Iterations: 500, Diverged: false}
	for _, s := range Default() {
		got := s.Color(bounded, 500)
		if got != (color.RGBA{A: 255}) {
			t.Errorf("%s colors the interior %v", s.Name(), got)
		}
	}
}

func TestColorChannelsNeverOverflow(t *testing.T) {
	// Weirdy's red formula peaks above 255 mid-ramp before clamping;
	// sweep the whole iteration range over every scheme.
	const maxIters = 1000
	for _, s := range Default() {
		for n := uint32(0); n <= maxIters; n++ {
			got := s.Color(mandel.Result{Iterations: n, Diverged: true}, maxIters)
			if got.A != 255 {
				t.Fatalf("%s at %d iterations is transparent: %v", s.Name(), n, got)
			}
		}
	}
}

func TestGradientEndpoints(t *testing.T) {
	g := Gradient{
		Label: "test",
		Start: color.RGBA{R: 10, G: 20, B: 30, A: 255},
		End:   color.RGBA{R: 200, G: 100, B: 50, A: 255},
	}
	const maxIters = 64

	if got := g.Color(mandel.Result{Iterations: 0, Diverged: true}, maxIters); got != g.Start {
		t.Errorf("iteration 0 colored %v, want %v", got, g.Start)
	}
	if got := g.Color(mandel.Result{Iterations: maxIters, Diverged: true}, maxIters); got != g.End {
		t.Errorf("full budget colored %v, want %v", got, g.End)
	}
}

func TestSchemeNamesDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Default() {
		if seen[s.Name()] {
			t.Errorf("duplicate scheme name %q", s.Name())
		}
		seen[s.Name()] = true
	}
}

func renderSmallFrame(t *testing.T) *mandel.FrameBuffer {
	t.Helper()
	buf, err := mandel.NewRenderer().Render(context.Background(), mandel.Request{
		Viewport:   mandel.DefaultViewport,
		Resolution: mandel.Resolution{X: 8, Y: 6},
		MaxIters:   32,
		Strategy:   mandel.StaticChunks(1),
	})
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

func TestImageOrientation(t *testing.T) {
	buf := renderSmallFrame(t)
	s := Greeny{}

	img := Image(buf, s)
	flipped := ImageFlipped(buf, s)

	if img.Bounds().Dx() != buf.Resx() || img.Bounds().Dy() != buf.Resy() {
		t.Fatalf("image is %v, want %dx%d", img.Bounds(), buf.Resx(), buf.Resy())
	}
	if flipped.Bounds() != img.Bounds() {
		t.Fatalf("flipped image bounds %v differ from %v", flipped.Bounds(), img.Bounds())
	}

	for row := 0; row < buf.Resy(); row++ {
		y := buf.Resy() - 1 - row
		for col := 0; col < buf.Resx(); col++ {
			want := s.Color(buf.At(row, col), buf.MaxIters())
			if got := img.RGBAAt(col, row); got != want {
				t.Fatalf("Image at (%d,%d) = %v, want %v", col, row, got, want)
			}
			if got := flipped.RGBAAt(col, y); got != want {
				t.Fatalf("ImageFlipped at (%d,%d) = %v, want %v", col, y, got, want)
			}
		}
	}
}
