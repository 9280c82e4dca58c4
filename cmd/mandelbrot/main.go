// Command mandelbrot renders one frame of the Mandelbrot set to
// fractal.png.
//
// Usage:
//
//	mandelbrot [x0 x1 y0 y1 max_iters resx resy [strategy]]
//
// With no arguments the classic full-set framing is rendered at 1920x1080
// with 128 iterations. The optional strategy is one of static, chunked or
// rows (the default).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelbrot/imgio"
	"mandelbrot/mandel"
	"mandelbrot/palette"
)

const outputFile = "fractal.png"

func usage() {
	prog := os.Args[0]
	fmt.Fprintln(os.Stderr, "Use:")
	fmt.Fprintf(os.Stderr, "  %s x0 x1 y0 y1 max_iters resx resy [strategy]\n", prog)
	fmt.Fprintln(os.Stderr, "Typical call:")
	fmt.Fprintf(os.Stderr, "  %s -2.5 1.0 -1.0 1.0 128 1920 1080\n", prog)
}

func main() {
	logger := bslogger.NewLogger("mandelbrot", bslogger.Normal, nil)

	req, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		usage()
		os.Exit(1)
	}
	if len(os.Args) == 1 {
		logger.Info("Using default values.")
	}

	start := time.Now()
	buf, err := mandel.NewRenderer().Render(context.Background(), req)
	if err != nil {
		logger.Fatalf("%s", err)
	}
	logger.Infof("render (%s) took %s", req.Strategy, time.Since(start))

	saveStart := time.Now()
	if err := imgio.SavePNG(outputFile, palette.Image(buf, palette.Greeny{})); err != nil {
		logger.Fatalf("%s", err)
	}
	logger.Infof("save took %s", time.Since(saveStart))
	logger.Infof("overall took %s", time.Since(start))
}
