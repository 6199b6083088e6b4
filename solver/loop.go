package solver

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/lbt/lattice"
	"github.com/cpmech/lbt/population"
)

// Continuum is the narrow interface Sim needs on its save hook; package
// continuum's Field satisfies it.
type Continuum interface {
	Save(timestamp int) error
}

// Sim orchestrates pairs of (even, odd) steps exactly as spec.md §4.9:
// BC.before → collide_stream → BC.after, twice per iteration, saving to
// the continuum on plot steps.
type Sim[T lattice.Real] struct {
	Op        Operator[T]
	BCs       []BC
	Continuum Continuum // nil is legal: no-op save

	Verbose bool
}

// NewSim builds a time-step loop driving op with the given boundary
// conditions, applied in registration order each half-step.
func NewSim[T lattice.Real](op Operator[T], bcs []BC, cont Continuum) *Sim[T] {
	return &Sim[T]{Op: op, BCs: bcs, Continuum: cont, Verbose: true}
}

// Run executes nt steps (nt must be even; steps are taken in (even,odd)
// pairs). When the odd step number step+1 of a pair is a multiple of
// ntPlot, that odd step deposits its moments and the continuum is saved
// at timestamp step+1 (spec.md §4.9). Since step+1 is always odd, an
// even ntPlot never triggers a save; ntPlot <= 0 disables saving.
func (s *Sim[T]) Run(nt, ntPlot int) error {
	for step := 0; step < nt; step += 2 {
		if s.Verbose && ntPlot > 0 && step%(10*ntPlot) == 0 {
			io.Pf(". . . step %d/%d\n", step, nt)
		}

		for _, bc := range s.BCs {
			bc.BeforeCollision(population.Even)
		}
		s.Op.CollideStream(population.Even, false)
		for _, bc := range s.BCs {
			bc.AfterCollision(population.Even)
		}

		isSave := ntPlot > 0 && (step+1)%ntPlot == 0

		for _, bc := range s.BCs {
			bc.BeforeCollision(population.Odd)
		}
		s.Op.CollideStream(population.Odd, isSave)
		for _, bc := range s.BCs {
			bc.AfterCollision(population.Odd)
		}

		if isSave && s.Continuum != nil {
			if err := s.Continuum.Save(step + 1); err != nil {
				return err
			}
		}
	}
	return nil
}
