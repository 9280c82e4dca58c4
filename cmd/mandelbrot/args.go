package main

import (
	"fmt"
	"strconv"

	"mandelbrot/mandel"
)

// parseArgs builds a render request from the positional arguments. No
// arguments selects the default request; otherwise x0 x1 y0 y1 max_iters
// resx resy are required, with an optional trailing strategy name.
func parseArgs(args []string) (mandel.Request, error) {
	req := mandel.DefaultRequest()
	if len(args) == 0 {
		return req, nil
	}
	if len(args) != 7 && len(args) != 8 {
		return mandel.Request{}, fmt.Errorf("expected 7 or 8 arguments, got %d", len(args))
	}

	var err error
	if req.Viewport.X0, err = parseFloat(args[0], "x0"); err != nil {
		return mandel.Request{}, err
	}
	if req.Viewport.X1, err = parseFloat(args[1], "x1"); err != nil {
		return mandel.Request{}, err
	}
	if req.Viewport.Y0, err = parseFloat(args[2], "y0"); err != nil {
		return mandel.Request{}, err
	}
	if req.Viewport.Y1, err = parseFloat(args[3], "y1"); err != nil {
		return mandel.Request{}, err
	}

	iters, err := strconv.ParseUint(args[4], 10, 32)
	if err != nil {
		return mandel.Request{}, fmt.Errorf("parsing max_iters: got %q", args[4])
	}
	req.MaxIters = uint32(iters)

	if req.Resolution.X, err = parseInt(args[5], "resx"); err != nil {
		return mandel.Request{}, err
	}
	if req.Resolution.Y, err = parseInt(args[6], "resy"); err != nil {
		return mandel.Request{}, err
	}

	if len(args) == 8 {
		if req.Strategy, err = mandel.ParseStrategy(args[7]); err != nil {
			return mandel.Request{}, err
		}
	}
	return req, nil
}

func parseFloat(arg, name string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: got %q", name, arg)
	}
	return v, nil
}

func parseInt(arg, name string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: got %q", name, arg)
	}
	return v, nil
}
