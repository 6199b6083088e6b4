// Package boundary implements the boundary-condition hooks (C8): each
// BC owns a set of boundary elements and two phases, before_collision
// and after_collision, invoked once per half-step by the time-step loop.
package boundary

import "github.com/cpmech/lbt/lattice"

// Orientation names the six axis-aligned wall directions a boundary
// element can face, each mapped to an inward-pointing unit vector.
type Orientation int

const (
	Left Orientation = iota
	Right
	Front
	Back
	Bottom
	Top
)

// Normal returns the inward-normal unit vector for the orientation —
// e.g. a Left wall (at low x) points fluid-ward along +x.
func (o Orientation) Normal() (nx, ny, nz int) {
	switch o {
	case Left:
		return 1, 0, 0
	case Right:
		return -1, 0, 0
	case Front:
		return 0, 1, 0
	case Back:
		return 0, -1, 0
	case Bottom:
		return 0, 0, 1
	case Top:
		return 0, 0, -1
	default:
		return 0, 0, 0
	}
}

// Element is one boundary cell: its coordinates and the macroscopic
// state a Dirichlet-type BC imposes there. Rho is ignored by velocity
// BCs; pressure BCs use only the component of (U, V, W) along the wall
// normal and take the tangential components from the interpolated state.
type Element[T lattice.Real] struct {
	X, Y, Z    int
	Rho        T
	U, V, W    T
	Orient     Orientation
}

// velocityComponent implements spec.md §4.8's tangential/normal
// selection rule for pressure boundaries: if the normal component
// along an axis is zero, keep the interpolated value; otherwise take
// the boundary value.
func velocityComponent[T lattice.Real](normalAxis int, boundary, interpolated T) T {
	if normalAxis == 0 {
		return interpolated
	}
	return boundary
}

func velocityOf[T lattice.Real](lat *lattice.Lattice[T], n, d int) (k int, vx, vy, vz int) {
	k = lat.Slot(n, d)
	return k, int(lat.DX[k]), int(lat.DY[k]), int(lat.DZ[k])
}
