// Package solver implements the collide-stream driver (C7), the
// time-step loop (C9) and the worker pool the driver fans blocks out
// onto.
package solver

import (
	"runtime"

	"github.com/cpmech/gosl/chk"
	"golang.org/x/sync/errgroup"
)

// Pool is a fixed-size worker pool used as the fork-join barrier of the
// collide-stream driver and the boundary-condition hooks. It wraps
// golang.org/x/sync/errgroup the way the rest of the corpus reaches for
// errgroup wherever go-highway pulls it in as an indirect dependency;
// the bounded-concurrency idiom (SetLimit plus a final Wait join) is the
// same fork-join shape exercised by katalvlaran-lvlath's
// concurrency_test.go, the only example in the corpus that tests
// concurrent mutation of a shared structure.
type Pool struct {
	n int
}

// NewPool creates a pool of n worker goroutines. Zero, negative or
// above-hardware-concurrency requests are all rejected alike (spec.md
// §5 "thread-pool lifecycle"); there is no zero-means-default case.
func NewPool(n int) (*Pool, error) {
	max := runtime.GOMAXPROCS(0)
	if n <= 0 {
		return nil, chk.Err("solver: thread count must be positive, got %d", n)
	}
	if n > max {
		return nil, chk.Err("solver: requested %d threads but hardware concurrency is %d", n, max)
	}
	return &Pool{n: n}, nil
}

// N returns the number of workers in the pool.
func (p *Pool) N() int {
	return p.n
}

// Do fans the given jobs out across the pool and blocks until every job
// has completed; a panicking job is not recovered. Each job is expected to mutate a
// disjoint region of shared state (a block of cells, or a slice of
// boundary elements); the A-A access pattern guarantees no two jobs
// touch the same address within one call.
func (p *Pool) Do(jobs []func()) {
	var g errgroup.Group
	g.SetLimit(p.n)
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			job()
			return nil
		})
	}
	g.Wait() // jobs never return an error; Wait only serves as the join
}
