package collision

import (
	"github.com/cpmech/lbt/continuum"
	"github.com/cpmech/lbt/lattice"
	"github.com/cpmech/lbt/population"
	"github.com/cpmech/lbt/solver"
)

// relaxFunc turns a cell's loaded populations and their equilibrium
// values into post-collision values, written into out. Each variant
// (BGK, Smagorinsky, TRT) supplies its own; the cell loop around it is
// shared (base.collideCell below).
type relaxFunc[T lattice.Real] func(lat *lattice.Lattice[T], f, feq []T, rho T, out []T)

// base holds everything every collision operator needs: the population
// it mutates, the lattice it mutates it under, the continuum it reports
// moments to on save steps, and the worker pool the block-parallel
// traversal runs on. Concrete operators embed base and supply relax.
type base[T lattice.Real] struct {
	Pop   *population.Population[T]
	Lat   *lattice.Lattice[T]
	Sink  continuum.Sink[T]
	Pool  *solver.Pool
	relax relaxFunc[T]
}

// Initialise implements the shared part of solver.Operator: fill the
// continuum with the uniform initial state, then for every cell and
// every population slot write the equilibrium value for (rho0,u0,v0,w0)
// at its index_read<TS> address — spec.md §4.6, using index_read (not
// index_write) because the first collide_stream after init reads these.
func (b *base[T]) Initialise(ts population.TimeStep, rho0, u0, v0, w0 T) {
	lat := b.Lat
	shape := b.Pop.Shape
	for z := 0; z < shape.NZ; z++ {
		for y := 0; y < shape.NY; y++ {
			for x := 0; x < shape.NX; x++ {
				if b.Sink != nil {
					b.Sink.SetP(x, y, z, rho0)
					b.Sink.SetU(x, y, z, u0, v0, w0)
				}
				for p := 0; p < shape.NP; p++ {
					for n := 0; n < 2; n++ {
						for d := 0; d < lat.Off; d++ {
							k := lat.Slot(n, d)
							feq := lat.Mask[k] * Equilibrium(lat, k, rho0, u0, v0, w0)
							v := population.Velocity{VX: int(lat.DX[k]), VY: int(lat.DY[k]), VZ: int(lat.DZ[k])}
							b.Pop.PokeRead(ts, x, y, z, n, d, p, v, feq)
						}
					}
				}
			}
		}
	}
}

// CollideStream runs one step of the kernel over the whole grid, block
// parallel, exactly as spec.md §4.7.
func (b *base[T]) CollideStream(ts population.TimeStep, isSave bool) {
	shape := b.Pop.Shape
	solver.ForEachBlock(b.Pool, shape.NX, shape.NY, shape.NZ, func(x, y, z int) {
		b.collideCell(ts, isSave, x, y, z)
	})
}

func (b *base[T]) collideCell(ts population.TimeStep, isSave bool, x, y, z int) {
	lat := b.Lat
	shape := b.Pop.Shape
	nb := b.Pop.Index.NewNeighbours(x, y, z)

	f := make([]T, lat.ND)
	feq := make([]T, lat.ND)
	out := make([]T, lat.ND)

	for p := 0; p < shape.NP; p++ {
		for n := 0; n < 2; n++ {
			for d := 0; d < lat.Off; d++ {
				k := lat.Slot(n, d)
				v := population.Velocity{VX: int(lat.DX[k]), VY: int(lat.DY[k]), VZ: int(lat.DZ[k])}
				f[k] = lat.Mask[k] * b.Pop.ReadN(ts, nb, n, d, p, v)
			}
		}

		var rho, u, vv, w T
		for k := 0; k < lat.ND; k++ {
			rho += f[k]
			u += f[k] * lat.DX[k]
			vv += f[k] * lat.DY[k]
			w += f[k] * lat.DZ[k]
		}
		if rho != 0 {
			u /= rho
			vv /= rho
			w /= rho
		}

		if isSave && b.Sink != nil {
			b.Sink.SetP(x, y, z, rho)
			b.Sink.SetU(x, y, z, u, vv, w)
		}

		for k := 0; k < lat.ND; k++ {
			feq[k] = Equilibrium(lat, k, rho, u, vv, w)
		}

		b.relax(lat, f, feq, rho, out)

		for n := 0; n < 2; n++ {
			for d := 0; d < lat.Off; d++ {
				k := lat.Slot(n, d)
				v := population.Velocity{VX: int(lat.DX[k]), VY: int(lat.DY[k]), VZ: int(lat.DZ[k])}
				b.Pop.WriteN(ts, nb, n, d, p, v, lat.Mask[k]*out[k])
			}
		}
	}
}
