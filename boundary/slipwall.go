package boundary

import (
	"github.com/cpmech/lbt/lattice"
	"github.com/cpmech/lbt/population"
	"github.com/cpmech/lbt/solver"
)

// SlipWall is a free-slip wall: a GuoVelocity boundary whose normal
// velocity component is forced to zero and whose tangential components
// are interpolated from the neighbour, per spec.md §4.8 ("variants of
// Guo with specific macroscopic choices").
type SlipWall[T lattice.Real] struct {
	inner *GuoVelocity[T]
}

// NewSlipWall builds a slip wall over the given elements; U, V, W on
// each Element are ignored — the tangential state is taken from the
// interpolated neighbour and the normal component is zeroed.
func NewSlipWall[T lattice.Real](pop *population.Population[T], lat *lattice.Lattice[T], pool *solver.Pool, elems []Element[T]) *SlipWall[T] {
	// The normal/tangential split is exactly velocityComponent's job,
	// already implemented for pressure BCs, so a slip wall is a
	// GuoPressure-shaped imposition that keeps the interpolated rho.
	return &SlipWall[T]{inner: &GuoVelocity[T]{guo[T]{Pop: pop, Lat: lat, Pool: pool, Elements: elems, kind: kindSlip}}}
}

func (s *SlipWall[T]) BeforeCollision(ts population.TimeStep) { s.inner.BeforeCollision(ts) }
func (s *SlipWall[T]) AfterCollision(ts population.TimeStep)  { s.inner.AfterCollision(ts) }
