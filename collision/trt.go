package collision

import (
	"github.com/cpmech/lbt/continuum"
	"github.com/cpmech/lbt/lattice"
	"github.com/cpmech/lbt/population"
	"github.com/cpmech/lbt/solver"
)

// trtMagic is the default "magic" parameter lambda (spec.md §4.5).
const trtMagic = 0.25

// TRT is the two-relaxation-time operator: symmetric and antisymmetric
// parts of f around f_eq relax at two different rates. Listed for
// completeness per spec.md §4.5 ("implementer may omit") but implemented
// here since the registry and driver are generic enough to host it at no
// extra cost.
type TRT[T lattice.Real] struct {
	base[T]
	Nu, U, L T
	Tau      T
	Lambda   T
	OmegaP   T
	OmegaM   T
}

// NewTRT derives tau as BGK does, then omega_p = 1/tau and
// omega_m = (tau - 1/2) / (lambda + 1/2*(tau - 1/2)) with the default
// magic parameter lambda = 1/4.
func NewTRT[T lattice.Real](pop *population.Population[T], lat *lattice.Lattice[T], sink continuum.Sink[T], pool *solver.Pool, nu, u, l T) *TRT[T] {
	tau := nu/(lat.CS*lat.CS) + T(0.5)
	lambda := T(trtMagic)
	half := tau - T(0.5)
	op := &TRT[T]{
		base: base[T]{Pop: pop, Lat: lat, Sink: sink, Pool: pool},
		Nu:   nu, U: u, L: l,
		Tau:    tau,
		Lambda: lambda,
		OmegaP: 1 / tau,
		OmegaM: half / (lambda + T(0.5)*half),
	}
	op.relax = op.trtRelax
	return op
}

func (o *TRT[T]) trtRelax(lat *lattice.Lattice[T], f, feq []T, rho T, out []T) {
	for k := 0; k < lat.ND; k++ {
		opp := lat.Opposite(k)
		if lat.Mask[opp] == 0 {
			opp = k // the rest slot pairs with itself, not with the masked padding slot
		}
		fSym := T(0.5) * (f[k] + f[opp])
		fAsym := T(0.5) * (f[k] - f[opp])
		feqSym := T(0.5) * (feq[k] + feq[opp])
		feqAsym := T(0.5) * (feq[k] - feq[opp])
		out[k] = f[k] - o.OmegaP*(fSym-feqSym) - o.OmegaM*(fAsym-feqAsym)
	}
}

func init() {
	Register("trt", func(d Deps) (Generic, error) {
		return NewTRT(d.Pop, d.Lat, d.Sink, d.Pool, d.Nu, d.U, d.L), nil
	})
}
