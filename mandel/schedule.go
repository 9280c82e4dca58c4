package mandel

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// span is a half-open range of rows [lo, hi): one schedulable job. Spans of
// one render never overlap, which is what lets workers write into the frame
// buffer without locks.
type span struct {
	lo, hi int
}

// splitRows cuts resy rows into n contiguous spans. The division remainder
// goes to the last span. n is clamped to [1, resy].
func splitRows(resy, n int) []span {
	if n < 1 {
		n = 1
	}
	if n > resy {
		n = resy
	}
	size := resy / n
	spans := make([]span, n)
	for i := range spans {
		spans[i] = span{lo: i * size, hi: (i + 1) * size}
	}
	spans[n-1].hi = resy
	return spans
}

// dispatch runs fn exactly once for every row in [0, resy), distributing
// the rows according to the strategy. It blocks until every worker has
// exited, on failure as well as on success, so no goroutine outlives the
// render. The first error (a worker panic, a failed job or context
// cancellation) cancels the remaining work and is returned.
func (s Strategy) dispatch(ctx context.Context, resy, cpus int, fn func(row int) error) error {
	if resy < 1 {
		return nil
	}
	if cpus < 1 {
		cpus = runtime.NumCPU()
	}
	switch s.kind {
	case kindStaticChunks:
		threads := s.size
		if threads <= 0 {
			threads = staticThreadsPerCPU * cpus
		}
		return runStatic(ctx, splitRows(resy, threads), fn)
	case kindPooledChunks:
		chunks := s.size
		if chunks <= 0 {
			chunks = pooledChunksPerCPU * cpus
		}
		return runPooled(ctx, splitRows(resy, chunks), cpus, fn)
	case kindPooledPerRow:
		workers := s.size
		if workers <= 0 {
			workers = perRowWorkersPerCPU * cpus
		}
		return runPooled(ctx, splitRows(resy, resy), workers, fn)
	}
	return fmt.Errorf("unknown strategy kind %d", s.kind)
}

// runStatic gives every span its own worker: a fixed partition with no
// rebalancing once started.
func runStatic(ctx context.Context, spans []span, fn func(row int) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	wg.Add(len(spans))
	for _, sp := range spans {
		go func(sp span) {
			defer wg.Done()
			if err := runSpan(ctx, sp, fn); err != nil {
				fail(err)
			}
		}(sp)
	}
	wg.Wait()
	return firstErr
}

// runPooled has `workers` goroutines pull spans from a shared queue, so a
// fast worker absorbs spans a slow one has not claimed yet.
func runPooled(ctx context.Context, spans []span, workers int, fn func(row int) error) error {
	if workers > len(spans) {
		workers = len(spans)
	}
	if workers < 1 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The job set is fixed up front, so a closed buffered channel is the
	// whole queue.
	jobs := make(chan span, len(spans))
	for _, sp := range spans {
		jobs <- sp
	}
	close(jobs)

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for sp := range jobs {
				if err := runSpan(ctx, sp, fn); err != nil {
					fail(err)
					return
				}
			}
		}()
	}
	wg.Wait()
	return firstErr
}

// runSpan computes one span row by row, checking for cancellation between
// rows so a superseded render stops wasting CPU quickly.
func runSpan(ctx context.Context, sp span, fn func(row int) error) error {
	for row := sp.lo; row < sp.hi; row++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := protect(row, fn); err != nil {
			return err
		}
	}
	return nil
}

// protect confines a panicking row job to a WorkerError so one bad job
// fails the render instead of the process.
func protect(row int, fn func(row int) error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &WorkerError{Row: row, Value: v}
		}
	}()
	return fn(row)
}
