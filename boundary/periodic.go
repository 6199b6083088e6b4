package boundary

import "github.com/cpmech/lbt/population"

// Periodic is the no-op boundary condition: periodicity is already
// handled by the indexer's modular neighbour arithmetic (spec.md §4.8).
// It exists so a settings file can name "periodic" explicitly alongside
// the other BC types without a special case in the construction layer.
type Periodic struct{}

func (Periodic) BeforeCollision(population.TimeStep) {}
func (Periodic) AfterCollision(population.TimeStep)  {}
