package mandel

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func testRequest(s Strategy) Request {
	return Request{
		Viewport:   SeahorseValley,
		Resolution: Resolution{X: 160, Y: 120},
		MaxIters:   200,
		Strategy:   s,
	}
}

// Scheduling must never leak into the output: the same request computed
// under any strategy yields a bit-identical buffer.
func TestRenderStrategiesAgree(t *testing.T) {
	r := NewRenderer()

	ref, err := r.Render(context.Background(), testRequest(StaticChunks(1)))
	if err != nil {
		t.Fatal(err)
	}

	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			buf, err := r.Render(context.Background(), testRequest(s))
			if err != nil {
				t.Fatal(err)
			}
			for row := 0; row < ref.Resy(); row++ {
				if !slices.Equal(buf.Row(row), ref.Row(row)) {
					t.Fatalf("row %d differs from reference", row)
				}
			}
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	r := NewRenderer()
	req := testRequest(PooledPerRow(0))

	a, err := r.Render(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Render(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	for row := 0; row < a.Resy(); row++ {
		if !slices.Equal(a.Row(row), b.Row(row)) {
			t.Fatalf("row %d differs between repeated renders", row)
		}
	}
}

// A valid render writes every pixel. The zero Result is unreachable for a
// computed pixel (an immediate escape has Diverged set, a bounded point
// reports the full budget) so it serves as the unwritten marker.
func TestRenderFillsEveryPixel(t *testing.T) {
	r := NewRenderer()
	buf, err := r.Render(context.Background(), testRequest(PooledChunks(3)))
	if err != nil {
		t.Fatal(err)
	}
	var zero Result
	for row := 0; row < buf.Resy(); row++ {
		for col := 0; col < buf.Resx(); col++ {
			if buf.At(row, col) == zero {
				t.Fatalf("pixel (%d,%d) never computed", row, col)
			}
		}
	}
}

func TestRenderInvalidRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		want   error
	}{
		{"resx one", func(r *Request) { r.Resolution.X = 1 }, ErrInvalidResolution},
		{"resy one", func(r *Request) { r.Resolution.Y = 1 }, ErrInvalidResolution},
		{"resx zero", func(r *Request) { r.Resolution.X = 0 }, ErrInvalidResolution},
		{"negative resy", func(r *Request) { r.Resolution.Y = -4 }, ErrInvalidResolution},
		{"zero iterations", func(r *Request) { r.MaxIters = 0 }, ErrInvalidIterations},
		{"x0 equals x1", func(r *Request) { r.Viewport.X1 = r.Viewport.X0 }, ErrInvalidViewport},
		{"x0 above x1", func(r *Request) { r.Viewport.X0 = r.Viewport.X1 + 1 }, ErrInvalidViewport},
		{"y0 above y1", func(r *Request) { r.Viewport.Y0 = r.Viewport.Y1 + 1 }, ErrInvalidViewport},
	}

	r := NewRenderer()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := DefaultRequest()
			tc.mutate(&req)
			buf, err := r.Render(context.Background(), req)
			if buf != nil {
				t.Error("got a buffer for an invalid request")
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
			if !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("%v does not wrap ErrInvalidRequest", err)
			}
		})
	}
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	buf, err := NewRenderer().Render(ctx, testRequest(PooledPerRow(0)))
	if buf != nil {
		t.Error("got a buffer from a cancelled render")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestDefaultRequestValid(t *testing.T) {
	if err := DefaultRequest().Validate(); err != nil {
		t.Fatal(err)
	}
}
