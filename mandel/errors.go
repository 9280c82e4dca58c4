package mandel

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest is the parent of all validation failures. The finer
// sentinels below wrap it, so errors.Is(err, ErrInvalidRequest) matches any
// rejected request.
var (
	ErrInvalidRequest    = errors.New("invalid render request")
	ErrInvalidResolution = fmt.Errorf("%w: resolution must be at least 2x2", ErrInvalidRequest)
	ErrInvalidViewport   = fmt.Errorf("%w: viewport intervals must satisfy x0 < x1 and y0 < y1", ErrInvalidRequest)
	ErrInvalidIterations = fmt.Errorf("%w: max iterations must be at least 1", ErrInvalidRequest)
)

// WorkerError reports a row job that panicked mid-render. It aborts the
// whole render; no partially filled buffer is ever returned alongside it.
type WorkerError struct {
	Row   int
	Value any
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("row %d: worker panic: %v", e.Row, e.Value)
}
