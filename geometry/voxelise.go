package geometry

import (
	"math"
	"sort"

	"github.com/cpmech/lbt/boundary"
	"github.com/cpmech/lbt/lattice"
	"github.com/cpmech/lbt/population"
)

// VoxelMask flags solid cells of an NX*NY*NZ grid, true meaning solid.
type VoxelMask struct {
	Shape population.Shape
	Solid []bool
}

func (m *VoxelMask) index(x, y, z int) int {
	return (z*m.Shape.NY+y)*m.Shape.NX + x
}

// At reports whether cell (x,y,z) is solid.
func (m *VoxelMask) At(x, y, z int) bool {
	return m.Solid[m.index(x, y, z)]
}

// Voxelise rasterises mesh onto shape within bbox using a z-axis parity
// ray cast per (x,y) column: a cell is solid if the number of triangle
// crossings below its z-centre is odd. Axis-aligned only, matching the
// Non-goal exclusion of adaptive/unstructured grids.
func Voxelise(mesh *Mesh, shape population.Shape, bbox BBox) *VoxelMask {
	size := bbox.Size()
	dx := size.X / float64(shape.NX)
	dy := size.Y / float64(shape.NY)
	dz := size.Z / float64(shape.NZ)

	mask := &VoxelMask{Shape: shape, Solid: make([]bool, shape.Cells())}

	for y := 0; y < shape.NY; y++ {
		py := bbox.Min.Y + (float64(y)+0.5)*dy
		for x := 0; x < shape.NX; x++ {
			px := bbox.Min.X + (float64(x)+0.5)*dx
			crossings := crossingsAlongZ(mesh, px, py)
			sort.Float64s(crossings)
			for z := 0; z < shape.NZ; z++ {
				pz := bbox.Min.Z + (float64(z)+0.5)*dz
				count := 0
				for _, c := range crossings {
					if c < pz {
						count++
					}
				}
				if count%2 == 1 {
					mask.Solid[mask.index(x, y, z)] = true
				}
			}
		}
	}
	return mask
}

// crossingsAlongZ returns the z coordinates where the vertical ray at
// (px, py) pierces mesh's triangles.
func crossingsAlongZ(mesh *Mesh, px, py float64) []float64 {
	var zs []float64
	for _, tri := range mesh.Triangles {
		if z, ok := rayTriangleZ(tri, px, py); ok {
			zs = append(zs, z)
		}
	}
	return zs
}

// rayTriangleZ intersects the vertical line x=px, y=py against tri using
// a 2D barycentric test in the xy-plane, then interpolates z.
func rayTriangleZ(tri Triangle, px, py float64) (float64, bool) {
	ax, ay := tri.A.X, tri.A.Y
	bx, by := tri.B.X, tri.B.Y
	cx, cy := tri.C.X, tri.C.Y

	d := (by-cy)*(ax-cx) + (cx-bx)*(ay-cy)
	if math.Abs(d) < 1e-15 {
		return 0, false
	}
	l1 := ((by-cy)*(px-cx) + (cx-bx)*(py-cy)) / d
	l2 := ((cy-ay)*(px-cx) + (ax-cx)*(py-cy)) / d
	l3 := 1 - l1 - l2
	if l1 < 0 || l2 < 0 || l3 < 0 {
		return 0, false
	}
	z := l1*tri.A.Z + l2*tri.B.Z + l3*tri.C.Z
	return z, true
}

// BoundaryElements turns solid/fluid face adjacency into a list of
// boundary elements for the fluid cell immediately outside a solid
// neighbour, tagged with the orientation facing that neighbour — one
// element per exposed face, consumable by boundary.BounceBack or
// boundary.GuoVelocity.
func BoundaryElements[T lattice.Real](mask *VoxelMask) []boundary.Element[T] {
	s := mask.Shape
	var elems []boundary.Element[T]
	dirs := []struct {
		dx, dy, dz int
		orient     boundary.Orientation
	}{
		{-1, 0, 0, boundary.Left},
		{1, 0, 0, boundary.Right},
		{0, -1, 0, boundary.Front},
		{0, 1, 0, boundary.Back},
		{0, 0, -1, boundary.Bottom},
		{0, 0, 1, boundary.Top},
	}
	for z := 0; z < s.NZ; z++ {
		for y := 0; y < s.NY; y++ {
			for x := 0; x < s.NX; x++ {
				if mask.At(x, y, z) {
					continue
				}
				for _, d := range dirs {
					nx, ny, nz := x+d.dx, y+d.dy, z+d.dz
					if nx < 0 || ny < 0 || nz < 0 || nx >= s.NX || ny >= s.NY || nz >= s.NZ {
						continue
					}
					if mask.At(nx, ny, nz) {
						elems = append(elems, boundary.Element[T]{X: x, Y: y, Z: z, Orient: d.orient})
					}
				}
			}
		}
	}
	return elems
}
