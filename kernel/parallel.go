package kernel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the smallest loop count worth fanning out. Below it
// the goroutine overhead dominates the arithmetic.
const parallelThreshold = 1 << 11

// exec carries the per-instance execution configuration into kernel
// functions.
type exec struct {
	threading Threading
}

// parallelFor runs body over [0, n) in contiguous chunks. Under SingleThread
// or for small n it runs inline on the calling goroutine; otherwise it fans
// out across at most GOMAXPROCS workers and blocks until all complete.
// Chunks never overlap, so bodies may mutate their slice ranges without
// synchronization.
func (e *exec) parallelFor(n int, body func(lo, hi int)) {
	if e.threading != MultiThread || n < parallelThreshold {
		body(0, n)
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	g := new(errgroup.Group)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			body(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // bodies cannot fail; the group only bounds the fan-out
}
