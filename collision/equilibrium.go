// Package collision implements the collision operator (C6): BGK,
// BGK-Smagorinsky and TRT, all sharing one equilibrium function and one
// cell-level collide-stream kernel, pluggable via a string-keyed
// allocator registry in the style of gofem's solverallocators map.
package collision

import "github.com/cpmech/lbt/lattice"

// Equilibrium evaluates f_eq(k) for slot k under the Mach-expansion form
// exactly as spec.md §4.5 requires, no other expansion permitted.
func Equilibrium[T lattice.Real](lat *lattice.Lattice[T], k int, rho, u, v, w T) T {
	cs2 := lat.CS * lat.CS
	cu := (u*lat.DX[k] + v*lat.DY[k] + w*lat.DZ[k]) / cs2
	uu := -(u*u + v*v + w*w) / (2 * cs2)
	return lat.W[k] * (rho + rho*(cu*(1+cu/2)+uu))
}
