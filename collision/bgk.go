package collision

import (
	"github.com/cpmech/lbt/continuum"
	"github.com/cpmech/lbt/lattice"
	"github.com/cpmech/lbt/population"
	"github.com/cpmech/lbt/solver"
)

// BGK is the single-relaxation-time collision operator.
type BGK[T lattice.Real] struct {
	base[T]
	Nu, U, L T
	Tau      T
	Omega    T
}

// NewBGK derives tau = nu/cs^2 + 1/2, omega = 1/tau once at construction
// (spec.md §4.5) and wires the relax rule f_new(k) = MASK[k]*(f(k) +
// omega*(f_eq(k) - f(k))).
func NewBGK[T lattice.Real](pop *population.Population[T], lat *lattice.Lattice[T], sink continuum.Sink[T], pool *solver.Pool, nu, u, l T) *BGK[T] {
	tau := nu/(lat.CS*lat.CS) + T(0.5)
	op := &BGK[T]{
		base: base[T]{Pop: pop, Lat: lat, Sink: sink, Pool: pool},
		Nu:   nu, U: u, L: l,
		Tau:   tau,
		Omega: 1 / tau,
	}
	op.relax = op.bgkRelax
	return op
}

func (b *BGK[T]) bgkRelax(lat *lattice.Lattice[T], f, feq []T, rho T, out []T) {
	for k := 0; k < lat.ND; k++ {
		out[k] = f[k] + b.Omega*(feq[k]-f[k])
	}
}

func init() {
	Register("bgk", func(d Deps) (Generic, error) {
		return NewBGK(d.Pop, d.Lat, d.Sink, d.Pool, d.Nu, d.U, d.L), nil
	})
}
