package mandel

import "fmt"

// Resolution is the raster size in pixels.
type Resolution struct {
	X, Y int
}

func (r Resolution) Validate() error {
	if r.X < 2 || r.Y < 2 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidResolution, r.X, r.Y)
	}
	return nil
}

// Mapper is the pixel-to-plane transform for one viewport/resolution pair.
// Pixel (0, 0) maps to (X0, Y0) and (resx-1, resy-1) to (X1, Y1); rendered
// images are therefore reproducible bit for bit across runs and machines.
// Mapper is pure and safe for concurrent use.
type Mapper struct {
	x0, y0 float64
	dx, dy float64
}

// NewMapper fails with ErrInvalidResolution when either side is below 2,
// since the pixel step is then undefined.
func NewMapper(v Viewport, res Resolution) (Mapper, error) {
	if err := res.Validate(); err != nil {
		return Mapper{}, err
	}
	return Mapper{
		x0: v.X0,
		y0: v.Y0,
		dx: v.Width() / float64(res.X-1),
		dy: v.Height() / float64(res.Y-1),
	}, nil
}

// At returns the plane point of pixel (row, col). Row 0 corresponds to Y0;
// display layers wanting y to grow upward flip rows themselves.
func (m Mapper) At(row, col int) (re, im float64) {
	return m.x0 + float64(col)*m.dx, m.y0 + float64(row)*m.dy
}
