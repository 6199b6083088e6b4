package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cpmech/lbt/continuum"
	"github.com/cpmech/lbt/lattice"
	"github.com/cpmech/lbt/population"
	"github.com/cpmech/lbt/solver"
)

func TestRegistryHasAllThreeOperators(t *testing.T) {
	names := Names()
	require.Contains(t, names, "bgk")
	require.Contains(t, names, "bgk-smagorinsky")
	require.Contains(t, names, "trt")
}

func TestNewUnknownOperatorErrors(t *testing.T) {
	_, err := New("does-not-exist", Deps{})
	require.Error(t, err)
}

func TestNewBuildsRegisteredOperator(t *testing.T) {
	lat := lattice.NewD2Q9[float64]()
	shape := population.Shape{NX: 4, NY: 4, NZ: 1, NP: 1}
	pop := population.NewPopulation(shape, lat)
	pool, err := solver.NewPool(1)
	require.NoError(t, err)
	field := continuum.NewField[float64](4, 4, 1, t.TempDir(), "reg")

	op, err := New("trt", Deps{Pop: pop, Lat: lat, Sink: field, Pool: pool, Nu: 0.1, U: 0.01, L: 1})
	require.NoError(t, err)
	require.NotNil(t, op)

	op.Initialise(population.Even, 1.0, 0.01, 0.0, 0.0)
	op.CollideStream(population.Even, false)
}
