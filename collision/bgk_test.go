package collision

import (
	"math"
	"testing"

	"github.com/cpmech/lbt/continuum"
	"github.com/cpmech/lbt/lattice"
	"github.com/cpmech/lbt/population"
	"github.com/cpmech/lbt/solver"
)

// seed test 3: equilibrium fixed point. D2Q9, uniform (1.0, 0.01, 0.01,
// 0), one BGK step with nu=0.1 must recover the same macroscopic state.
func TestBGKEquilibriumFixedPoint(t *testing.T) {
	lat := lattice.NewD2Q9[float64]()
	shape := population.Shape{NX: 8, NY: 8, NZ: 1, NP: 1}
	pop := population.NewPopulation(shape, lat)
	pool, err := solver.NewPool(1)
	if err != nil {
		t.Fatal(err)
	}
	field := continuum.NewField[float64](shape.NX, shape.NY, shape.NZ, t.TempDir(), "fixed")

	op := NewBGK(pop, lat, field, pool, 0.1, 0.0, 0.0)

	const rho0, u0, v0, w0 = 1.0, 0.01, 0.01, 0.0
	op.Initialise(population.Even, rho0, u0, v0, w0)
	op.CollideStream(population.Even, true)

	const eps = 1e-12
	for i := range field.P {
		if math.Abs(field.P[i]-rho0) > eps {
			t.Fatalf("rho[%d] = %v, want %v", i, field.P[i], rho0)
		}
		if math.Abs(field.U[i]-u0) > eps {
			t.Fatalf("u[%d] = %v, want %v", i, field.U[i], u0)
		}
		if math.Abs(field.V[i]-v0) > eps {
			t.Fatalf("v[%d] = %v, want %v", i, field.V[i], v0)
		}
		if math.Abs(field.W[i]-w0) > eps {
			t.Fatalf("w[%d] = %v, want %v", i, field.W[i], w0)
		}
	}
}

// seed test: round-trip idempotence across one Even/Odd pair on an
// all-periodic domain with v=w=0.
func TestBGKRoundTripTwoSteps(t *testing.T) {
	lat := lattice.NewD3Q19[float64]()
	shape := population.Shape{NX: 6, NY: 6, NZ: 6, NP: 1}
	pop := population.NewPopulation(shape, lat)
	pool, err := solver.NewPool(1)
	if err != nil {
		t.Fatal(err)
	}
	field := continuum.NewField[float64](shape.NX, shape.NY, shape.NZ, t.TempDir(), "rt")

	op := NewBGK(pop, lat, field, pool, 0.05, 0.0, 0.0)

	const rho0, u0 = 1.2, 0.03
	op.Initialise(population.Even, rho0, u0, 0, 0)
	op.CollideStream(population.Even, false)
	op.CollideStream(population.Odd, true)

	const eps = 1e-10
	for i := range field.P {
		if math.Abs(field.P[i]-rho0) > eps {
			t.Fatalf("rho[%d] = %v, want %v", i, field.P[i], rho0)
		}
		if math.Abs(field.U[i]-u0) > eps {
			t.Fatalf("u[%d] = %v, want %v", i, field.U[i], u0)
		}
		if math.Abs(field.V[i]) > eps || math.Abs(field.W[i]) > eps {
			t.Fatalf("expected zero transverse velocity at %d, got v=%v w=%v", i, field.V[i], field.W[i])
		}
	}
}

func TestTRTAndSmagorinskyConstructAndStep(t *testing.T) {
	lat := lattice.NewD3Q27[float64]()
	shape := population.Shape{NX: 4, NY: 4, NZ: 4, NP: 1}
	pool, err := solver.NewPool(1)
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"trt", "smagorinsky"} {
		pop := population.NewPopulation(shape, lat)
		field := continuum.NewField[float64](shape.NX, shape.NY, shape.NZ, t.TempDir(), name)

		var op interface {
			Initialise(population.TimeStep, float64, float64, float64, float64)
			CollideStream(population.TimeStep, bool)
		}
		if name == "trt" {
			op = NewTRT(pop, lat, field, pool, 0.08, 0.02, 1.0)
		} else {
			op = NewSmagorinsky(pop, lat, field, pool, 0.08, 0.02, 1.0)
		}

		op.Initialise(population.Even, 1.0, 0.02, 0.0, 0.0)
		op.CollideStream(population.Even, true)
		op.CollideStream(population.Odd, true)

		for i, rho := range field.P {
			if math.IsNaN(rho) || math.IsInf(rho, 0) {
				t.Fatalf("%s: non-finite rho at %d", name, i)
			}
		}
	}
}
