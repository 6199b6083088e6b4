// Package population owns the single aligned population buffer and the
// A-A (read-write-swap) addressing scheme that lets it serve as both
// source and destination of streaming.
package population

import "github.com/cpmech/lbt/lattice"

// Shape describes a Cartesian grid of NX*NY*NZ cells, each holding NP
// side-by-side populations (NP is typically 1; >1 for multi-component
// fluids).
type Shape struct {
	NX, NY, NZ int
	NP         int
}

// Cells returns the total number of cells in the grid.
func (s Shape) Cells() int64 {
	return int64(s.NX) * int64(s.NY) * int64(s.NZ)
}

// Len returns the total element count of a population buffer with this
// shape and the given lattice's ND.
func (s Shape) Len(nd int) int64 {
	return s.Cells() * int64(s.NP) * int64(nd)
}

// Indexer computes the linear offset of a population component and its
// periodic neighbour arithmetic, per spec.md §4.2. It holds no mutable
// state and is safe to share across goroutines.
type Indexer struct {
	Shape Shape
	ND    int
}

// NewIndexer builds an Indexer for a grid shape and a lattice descriptor.
func NewIndexer[T lattice.Real](shape Shape, lat *lattice.Lattice[T]) Indexer {
	return Indexer{Shape: shape, ND: lat.ND}
}

// Linear computes (((z*NY+y)*NX+x)*NP+p)*ND + n*OFF + d using 64-bit
// arithmetic to avoid overflow on large grids.
func (ix Indexer) Linear(x, y, z, n, d, p, off int) int64 {
	s := ix.Shape
	return (((int64(z)*int64(s.NY)+int64(y))*int64(s.NX)+int64(x))*int64(s.NP)+int64(p))*int64(ix.ND) + int64(n)*int64(off) + int64(d)
}

// Mod performs the periodic wrap (N + x) % N for a possibly-negative x.
func Mod(x, n int) int {
	m := x % n
	if m < 0 {
		m += n
	}
	return m
}

// Neighbour returns the periodic neighbour coordinate of (x, y, z) offset
// by the integer-valued discrete velocity (vx, vy, vz).
func (ix Indexer) Neighbour(x, y, z, vx, vy, vz int) (nx, ny, nz int) {
	s := ix.Shape
	nx = Mod(x+vx, s.NX)
	ny = Mod(y+vy, s.NY)
	nz = Mod(z+vz, s.NZ)
	return
}
