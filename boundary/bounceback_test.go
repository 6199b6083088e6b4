package boundary

import (
	"math"
	"testing"

	"github.com/cpmech/lbt/collision"
	"github.com/cpmech/lbt/continuum"
	"github.com/cpmech/lbt/lattice"
	"github.com/cpmech/lbt/population"
	"github.com/cpmech/lbt/solver"
)

// seed test 6: D3Q19 channel with walls at y=0 and y=NY-1, init u=0.01.
// After 50 steps, wall-cell transverse velocity |v|,|w| < 1e-10.
// ntPlot = 49 makes the final pair (odd step 49) deposit its moments.
func TestBounceBackChannel(t *testing.T) {
	lat := lattice.NewD3Q19[float64]()
	shape := population.Shape{NX: 8, NY: 10, NZ: 8, NP: 1}
	pop := population.NewPopulation(shape, lat)
	pool, err := solver.NewPool(1)
	if err != nil {
		t.Fatal(err)
	}
	field := continuum.NewField[float64](shape.NX, shape.NY, shape.NZ, t.TempDir(), "channel")
	op := collision.NewBGK(pop, lat, field, pool, 0.1, 0.01, 1.0)

	var lo, hi []Element[float64]
	for z := 0; z < shape.NZ; z++ {
		for x := 0; x < shape.NX; x++ {
			lo = append(lo, Element[float64]{X: x, Y: 0, Z: z, Orient: Front})
			hi = append(hi, Element[float64]{X: x, Y: shape.NY - 1, Z: z, Orient: Back})
		}
	}
	wallLo := NewBounceBack(pop, lat, pool, lo)
	wallHi := NewBounceBack(pop, lat, pool, hi)

	sim := solver.NewSim[float64](op, []solver.BC{wallLo, wallHi}, field)

	op.Initialise(population.Even, 1.0, 0.01, 0.0, 0.0)
	if err := sim.Run(50, 49); err != nil {
		t.Fatal(err)
	}

	const eps = 1e-10
	for z := 0; z < shape.NZ; z++ {
		for x := 0; x < shape.NX; x++ {
			for _, y := range []int{0, shape.NY - 1} {
				i := (z*shape.NY+y)*shape.NX + x
				if math.Abs(field.V[i]) > eps {
					t.Fatalf("wall cell (%d,%d,%d): |v| = %v, want < %v", x, y, z, field.V[i], eps)
				}
				if math.Abs(field.W[i]) > eps {
					t.Fatalf("wall cell (%d,%d,%d): |w| = %v, want < %v", x, y, z, field.W[i], eps)
				}
			}
		}
	}
}
