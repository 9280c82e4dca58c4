// Package mandel computes escape-time renders of the Mandelbrot set.
//
// A render maps every pixel of a raster to a point of the complex plane,
// runs the escape-time recurrence on it and collects the iteration counts
// in a FrameBuffer. Rows are computed in parallel; the Strategy value on a
// Request picks how rows are split into jobs and handed to workers, which
// is the main performance knob of the package.
//
// Coloring is not done here. A FrameBuffer holds raw Results so that any
// scheme (see the palette package) can be applied without recomputing.
package mandel
