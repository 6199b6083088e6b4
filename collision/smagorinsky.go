package collision

import (
	"math"

	"github.com/cpmech/lbt/continuum"
	"github.com/cpmech/lbt/lattice"
	"github.com/cpmech/lbt/population"
	"github.com/cpmech/lbt/solver"
)

// smagorinskyConst is the Smagorinsky turbulence constant C_s (spec.md
// §4.5 step 4).
const smagorinskyConst = 0.17

// Smagorinsky is the BGK-Smagorinsky subgrid turbulence operator: BGK
// with a per-cell relaxation rate derived from the non-equilibrium
// stress moments.
type Smagorinsky[T lattice.Real] struct {
	base[T]
	Nu, U, L T
	Tau      T
}

// NewSmagorinsky derives the base tau exactly as BGK does; the
// turbulent increment is added per cell in relax.
func NewSmagorinsky[T lattice.Real](pop *population.Population[T], lat *lattice.Lattice[T], sink continuum.Sink[T], pool *solver.Pool, nu, u, l T) *Smagorinsky[T] {
	tau := nu/(lat.CS*lat.CS) + T(0.5)
	op := &Smagorinsky[T]{
		base: base[T]{Pop: pop, Lat: lat, Sink: sink, Pool: pool},
		Nu:   nu, U: u, L: l,
		Tau: tau,
	}
	op.relax = op.smagorinskyRelax
	return op
}

// smagorinskyRelax implements spec.md §4.5 steps 1-5, looping
// d = 0..OFF (not d = n..HSPEED) for every cell and multiplying by
// MASK — resolving the Open Question about the ambiguous loop bound in
// favour of the documented, mask-correct form (see DESIGN.md §9.2).
func (s *Smagorinsky[T]) smagorinskyRelax(lat *lattice.Lattice[T], f, feq []T, rho T, out []T) {
	var pixx, piyy, pizz, pixy, pixz, piyz T
	for k := 0; k < lat.ND; k++ {
		fneq := lat.Mask[k] * (f[k] - feq[k])
		pixx += lat.DX[k] * lat.DX[k] * fneq
		piyy += lat.DY[k] * lat.DY[k] * fneq
		pizz += lat.DZ[k] * lat.DZ[k] * fneq
		pixy += lat.DX[k] * lat.DY[k] * fneq
		pixz += lat.DX[k] * lat.DZ[k] * fneq
		piyz += lat.DY[k] * lat.DZ[k] * fneq
	}
	piMag := math.Sqrt(float64(pixx*pixx + piyy*piyy + pizz*pizz + 2*pixy*pixy + 2*pixz*pixz + 2*piyz*piyz))

	cs4 := float64(lat.CS) * float64(lat.CS) * float64(lat.CS) * float64(lat.CS)
	tau := float64(s.Tau)
	inner := tau*tau + 2*math.Sqrt2*smagorinskyConst*smagorinskyConst*piMag/(float64(rho)*cs4)
	tauT := 0.5 * (math.Sqrt(inner) - tau)
	omega := T(1 / (tau + tauT))

	for k := 0; k < lat.ND; k++ {
		out[k] = f[k] + omega*(feq[k]-f[k])
	}
}

func init() {
	Register("bgk-smagorinsky", func(d Deps) (Generic, error) {
		return NewSmagorinsky(d.Pop, d.Lat, d.Sink, d.Pool, d.Nu, d.U, d.L), nil
	})
}
