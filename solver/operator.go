package solver

import (
	"github.com/cpmech/lbt/lattice"
	"github.com/cpmech/lbt/population"
)

// Operator is the contract a collision operator (package collision)
// fulfils so the time-step loop can drive it without knowing which
// variant — BGK, Smagorinsky or TRT — is in play (spec.md §4.5).
type Operator[T lattice.Real] interface {
	Initialise(ts population.TimeStep, rho0, u0, v0, w0 T)
	CollideStream(ts population.TimeStep, isSave bool)
}
