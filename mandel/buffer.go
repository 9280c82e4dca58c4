package mandel

// FrameBuffer is the resy x resx grid of Results from one render. The
// render driver owns it exclusively while workers fill disjoint rows; once
// returned to the caller it must be treated as immutable.
type FrameBuffer struct {
	resx, resy int
	maxIters   uint32
	pix        []Result
}

func newFrameBuffer(res Resolution, maxIters uint32) *FrameBuffer {
	return &FrameBuffer{
		resx:     res.X,
		resy:     res.Y,
		maxIters: maxIters,
		pix:      make([]Result, res.X*res.Y),
	}
}

func (b *FrameBuffer) Resx() int        { return b.resx }
func (b *FrameBuffer) Resy() int        { return b.resy }
func (b *FrameBuffer) MaxIters() uint32 { return b.maxIters }

// At returns the result for pixel (row, col).
func (b *FrameBuffer) At(row, col int) Result {
	return b.pix[row*b.resx+col]
}

// Row returns one scanline backed by the buffer's storage. Callers must not
// modify it after the render has completed.
func (b *FrameBuffer) Row(row int) []Result {
	return b.pix[row*b.resx : (row+1)*b.resx]
}
