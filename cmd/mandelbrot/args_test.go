package main

import (
	"strings"
	"testing"

	"mandelbrot/mandel"
)

func TestParseArgsDefaults(t *testing.T) {
	req, err := parseArgs(nil)
	if err != nil {
		t.Fatal(err)
	}
	if req != mandel.DefaultRequest() {
		t.Fatalf("got %+v, want the default request", req)
	}
}

func TestParseArgsFull(t *testing.T) {
	args := strings.Fields("-0.8 -0.7 0.05 0.15 2000 800 600")
	req, err := parseArgs(args)
	if err != nil {
		t.Fatal(err)
	}
	want := mandel.Viewport{X0: -0.8, X1: -0.7, Y0: 0.05, Y1: 0.15}
	if req.Viewport != want {
		t.Errorf("viewport = %+v, want %+v", req.Viewport, want)
	}
	if req.MaxIters != 2000 {
		t.Errorf("max_iters = %d, want 2000", req.MaxIters)
	}
	if req.Resolution != (mandel.Resolution{X: 800, Y: 600}) {
		t.Errorf("resolution = %+v, want 800x600", req.Resolution)
	}
	// unset strategy keeps the default
	if req.Strategy != mandel.DefaultRequest().Strategy {
		t.Errorf("strategy = %v, want default", req.Strategy)
	}
}

func TestParseArgsStrategy(t *testing.T) {
	args := strings.Fields("-2.5 1 -1 1 128 320 240 chunked")
	req, err := parseArgs(args)
	if err != nil {
		t.Fatal(err)
	}
	if got := req.Strategy.String(); got != "chunked" {
		t.Fatalf("strategy = %q, want chunked", got)
	}
}

func TestParseArgsRejects(t *testing.T) {
	tests := []struct {
		name string
		args string
	}{
		{"too few", "-2.5 1 -1 1 128 320"},
		{"too many", "-2.5 1 -1 1 128 320 240 rows extra"},
		{"bad x0", "nope 1 -1 1 128 320 240"},
		{"bad y1", "-2.5 1 -1 one 128 320 240"},
		{"negative max_iters", "-2.5 1 -1 1 -5 320 240"},
		{"fractional max_iters", "-2.5 1 -1 1 12.5 320 240"},
		{"bad resx", "-2.5 1 -1 1 128 wide 240"},
		{"unknown strategy", "-2.5 1 -1 1 128 320 240 fastest"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseArgs(strings.Fields(tc.args)); err == nil {
				t.Fatalf("parseArgs(%q) accepted", tc.args)
			}
		})
	}
}
