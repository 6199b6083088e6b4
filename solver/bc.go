package solver

import "github.com/cpmech/lbt/population"

// BC is the contract a boundary condition (package boundary) fulfils.
// Declared here, not in package boundary, so the loop can hold a slice
// of BCs without boundary needing to import solver's Sim type — only
// solver's Pool, which boundary does import for its own parallel-over-
// elements fan-out.
type BC interface {
	BeforeCollision(ts population.TimeStep)
	AfterCollision(ts population.TimeStep)
}
