package boundary

import (
	"github.com/cpmech/lbt/collision"
	"github.com/cpmech/lbt/lattice"
	"github.com/cpmech/lbt/population"
	"github.com/cpmech/lbt/solver"
)

// kind distinguishes the two Guo variants: velocity boundaries impose
// (u, v, w) and borrow rho from the interpolated neighbour; pressure
// boundaries impose rho and the interpolated tangential velocity.
type kind int

const (
	kindVelocity kind = iota
	kindPressure
	kindSlip
)

// guo is the shared implementation behind GuoVelocity and GuoPressure
// (spec.md §4.8): read the inward neighbour, split it into equilibrium
// and non-equilibrium parts, rebuild f_eq from the imposed macroscopic
// state and add back the neighbour's non-equilibrium part.
type guo[T lattice.Real] struct {
	Pop      *population.Population[T]
	Lat      *lattice.Lattice[T]
	Pool     *solver.Pool
	Elements []Element[T]
	kind     kind
}

// GuoVelocity is the Dirichlet velocity boundary condition.
type GuoVelocity[T lattice.Real] struct{ guo[T] }

// GuoPressure is the Dirichlet pressure boundary condition.
type GuoPressure[T lattice.Real] struct{ guo[T] }

// NewGuoVelocity builds a velocity boundary over the given elements.
func NewGuoVelocity[T lattice.Real](pop *population.Population[T], lat *lattice.Lattice[T], pool *solver.Pool, elems []Element[T]) *GuoVelocity[T] {
	return &GuoVelocity[T]{guo[T]{Pop: pop, Lat: lat, Pool: pool, Elements: elems, kind: kindVelocity}}
}

// NewGuoPressure builds a pressure boundary over the given elements.
func NewGuoPressure[T lattice.Real](pop *population.Population[T], lat *lattice.Lattice[T], pool *solver.Pool, elems []Element[T]) *GuoPressure[T] {
	return &GuoPressure[T]{guo[T]{Pop: pop, Lat: lat, Pool: pool, Elements: elems, kind: kindPressure}}
}

// AfterCollision is a no-op for Guo BCs; the imposition happens before
// the collide_stream call that will read the imposed values.
func (g *guo[T]) AfterCollision(ts population.TimeStep) {}

func (g *guo[T]) BeforeCollision(ts population.TimeStep) {
	lat := g.Lat
	jobs := make([]func(), len(g.Elements))
	for i, e := range g.Elements {
		e := e
		jobs[i] = func() {
			nx, ny, nz := e.Orient.Normal()
			nxp, nyp, nzp := g.Pop.Index.Neighbour(e.X, e.Y, e.Z, nx, ny, nz)

			f := make([]T, lat.ND)
			var rhoN, uN, vN, wN T
			for n := 0; n < 2; n++ {
				for d := 0; d < lat.Off; d++ {
					k, vx, vy, vz := velocityOf(lat, n, d)
					f[k] = lat.Mask[k] * g.Pop.Read(ts, nxp, nyp, nzp, n, d, 0, population.Velocity{VX: vx, VY: vy, VZ: vz})
				}
			}
			for k := 0; k < lat.ND; k++ {
				rhoN += f[k]
				uN += f[k] * lat.DX[k]
				vN += f[k] * lat.DY[k]
				wN += f[k] * lat.DZ[k]
			}
			if rhoN != 0 {
				uN, vN, wN = uN/rhoN, vN/rhoN, wN/rhoN
			}

			var rho, u, v, w T
			switch g.kind {
			case kindVelocity:
				rho, u, v, w = rhoN, e.U, e.V, e.W
			case kindPressure:
				rho = e.Rho
				u = velocityComponent(nx, e.U, uN)
				v = velocityComponent(ny, e.V, vN)
				w = velocityComponent(nz, e.W, wN)
			case kindSlip:
				rho = rhoN
				u = velocityComponent(nx, 0, uN)
				v = velocityComponent(ny, 0, vN)
				w = velocityComponent(nz, 0, wN)
			}

			for n := 0; n < 2; n++ {
				for d := 0; d < lat.Off; d++ {
					k, vx, vy, vz := velocityOf(lat, n, d)
					feqN := lat.Mask[k] * collision.Equilibrium(lat, k, rhoN, uN, vN, wN)
					fneqN := f[k] - feqN
					feqImposed := lat.Mask[k] * collision.Equilibrium(lat, k, rho, u, v, w)
					g.Pop.PokeRead(ts, e.X, e.Y, e.Z, n, d, 0, population.Velocity{VX: vx, VY: vy, VZ: vz}, feqImposed+fneqN)
				}
			}
		}
	}
	g.Pool.Do(jobs)
}
