package boundary

import (
	"github.com/cpmech/lbt/lattice"
	"github.com/cpmech/lbt/population"
	"github.com/cpmech/lbt/solver"
)

// BounceBack implements the halfway bounce-back solid-wall condition:
// for each boundary cell and each active slot k, the post-collision
// value in direction opp(k) is copied into the cell's own slot k
// (spec.md §4.8, applied in after_collision).
type BounceBack[T lattice.Real] struct {
	Pop      *population.Population[T]
	Lat      *lattice.Lattice[T]
	Pool     *solver.Pool
	Elements []Element[T]
}

// NewBounceBack builds a bounce-back wall over the given elements.
func NewBounceBack[T lattice.Real](pop *population.Population[T], lat *lattice.Lattice[T], pool *solver.Pool, elems []Element[T]) *BounceBack[T] {
	return &BounceBack[T]{Pop: pop, Lat: lat, Pool: pool, Elements: elems}
}

// BeforeCollision is a no-op for bounce-back.
func (b *BounceBack[T]) BeforeCollision(ts population.TimeStep) {}

// AfterCollision swaps each active slot with its opposite, in place, at
// the just-written post-collision addresses (spec.md §8 bounce-back
// boundary behaviour: no velocity component survives along the normal).
func (b *BounceBack[T]) AfterCollision(ts population.TimeStep) {
	lat := b.Lat
	post := ts.Flip() // WriteAddr(ts,...) == ReadAddr(post,...)

	jobs := make([]func(), len(b.Elements))
	for i, e := range b.Elements {
		e := e
		jobs[i] = func() {
			// Read every slot before writing any of them: k and opp(k)
			// alias the same cell, so an interleaved read/write would
			// clobber one side of the swap before it is read.
			old := make([]T, lat.ND)
			for n := 0; n < 2; n++ {
				for d := 0; d < lat.Off; d++ {
					k, vx, vy, vz := velocityOf(lat, n, d)
					if lat.Mask[k] == 0 {
						continue
					}
					old[k] = b.Pop.Read(post, e.X, e.Y, e.Z, n, d, 0, population.Velocity{VX: vx, VY: vy, VZ: vz})
				}
			}
			for n := 0; n < 2; n++ {
				for d := 0; d < lat.Off; d++ {
					k, vx, vy, vz := velocityOf(lat, n, d)
					if lat.Mask[k] == 0 {
						continue
					}
					opp := lat.Opposite(k)
					b.Pop.PokeRead(post, e.X, e.Y, e.Z, n, d, 0, population.Velocity{VX: vx, VY: vy, VZ: vz}, old[opp])
				}
			}
		}
	}
	b.Pool.Do(jobs)
}
