package collision

import (
	"math"
	"runtime"
	"testing"

	"github.com/cpmech/lbt/continuum"
	"github.com/cpmech/lbt/lattice"
	"github.com/cpmech/lbt/population"
	"github.com/cpmech/lbt/solver"
)

// seed test 1: lid-driven-like uniform flow. D3Q19, 32^3, all periodic,
// rho0=1.0, u0=0.05. After 100 (even,odd) pairs max deviation of u from
// 0.05 < 1e-10. On an all-periodic domain with no BCs a uniform flow is
// an exact fixed point of BGK (seed test 3's equilibrium fixed point,
// applied repeatedly), so this also exercises long-run stability.
// ntPlot = 199 makes the final pair (odd step 199) deposit its moments.
func TestSeedUniformFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 32^3 x 100-step scenario in -short mode")
	}
	lat := lattice.NewD3Q19[float64]()
	shape := population.Shape{NX: 32, NY: 32, NZ: 32, NP: 1}
	pop := population.NewPopulation(shape, lat)
	pool, err := solver.NewPool(runtime.GOMAXPROCS(0))
	if err != nil {
		t.Fatal(err)
	}
	field := continuum.NewField[float64](shape.NX, shape.NY, shape.NZ, t.TempDir(), "uniform")
	op := NewBGK(pop, lat, field, pool, 0.05, 0.05, 1.0)

	op.Initialise(population.Even, 1.0, 0.05, 0.0, 0.0)
	sim := solver.NewSim[float64](op, nil, field)
	if err := sim.Run(200, 199); err != nil {
		t.Fatal(err)
	}

	for i, u := range field.U {
		if math.Abs(u-0.05) > 1e-10 {
			t.Fatalf("cell %d: u = %v, want 0.05 within 1e-10", i, u)
		}
	}
}

// seed test 2: mass conservation. D3Q27, 16^3, all periodic, rho seeded
// with a sinusoidal perturbation, u=v=w=0. After 1000 steps the total
// mass must be conserved to 1e-12 relative error.
func TestSeedMassConservation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 1000-step scenario in -short mode")
	}
	lat := lattice.NewD3Q27[float64]()
	shape := population.Shape{NX: 16, NY: 16, NZ: 16, NP: 1}
	pop := population.NewPopulation(shape, lat)
	pool, err := solver.NewPool(runtime.GOMAXPROCS(0))
	if err != nil {
		t.Fatal(err)
	}
	field := continuum.NewField[float64](shape.NX, shape.NY, shape.NZ, t.TempDir(), "mass")
	op := NewBGK(pop, lat, field, pool, 0.1, 0.0, 1.0)

	op.Initialise(population.Even, 1.0, 0, 0, 0)

	// overwrite with the sinusoidal density field, keeping u=v=w=0.
	for z := 0; z < shape.NZ; z++ {
		for y := 0; y < shape.NY; y++ {
			for x := 0; x < shape.NX; x++ {
				rho := 1 + 0.01*math.Sin(2*math.Pi*float64(x)/float64(shape.NX))*
					math.Sin(2*math.Pi*float64(y)/float64(shape.NY))*
					math.Sin(2*math.Pi*float64(z)/float64(shape.NZ))
				for n := 0; n < 2; n++ {
					for d := 0; d < lat.Off; d++ {
						k := lat.Slot(n, d)
						feq := lat.Mask[k] * Equilibrium(lat, k, rho, 0, 0, 0)
						v := population.Velocity{VX: int(lat.DX[k]), VY: int(lat.DY[k]), VZ: int(lat.DZ[k])}
						pop.PokeRead(population.Even, x, y, z, n, d, 0, v, feq)
					}
				}
			}
		}
	}

	op.CollideStream(population.Even, true)
	before := field.Sum()

	sim := solver.NewSim[float64](op, nil, nil)
	if err := sim.Run(1000, 0); err != nil {
		t.Fatal(err)
	}
	op.CollideStream(population.Even, true) // land on an even save to read final moments
	after := field.Sum()

	rel := math.Abs(after-before) / before
	if rel > 1e-12 {
		t.Fatalf("relative mass change = %v, want < 1e-12", rel)
	}
}
