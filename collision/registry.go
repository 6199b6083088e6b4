package collision

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/lbt/continuum"
	"github.com/cpmech/lbt/lattice"
	"github.com/cpmech/lbt/population"
	"github.com/cpmech/lbt/solver"
)

// Generic is the type every registered operator produces. The registry
// is monomorphised to float64: a string-keyed runtime choice of
// operator and a compile-time generic element type pull in opposite
// directions, and spec.md's seed tests are all specified in double
// precision, so the pluggable path settles on float64 while BGK[T],
// Smagorinsky[T] and TRT[T] themselves stay generic for direct,
// non-registry use with float32 (see DESIGN.md).
type Generic = solver.Operator[float64]

// Deps bundles the construction-time dependencies every operator needs,
// grounded on gofem's eallocators/infogetters pattern where a map of
// constructors is populated by each variant's own init().
type Deps struct {
	Pop  *population.Population[float64]
	Lat  *lattice.Lattice[float64]
	Sink continuum.Sink[float64]
	Pool *solver.Pool
	Nu   float64
	U    float64
	L    float64
}

// AllocatorFunc builds a Generic operator from Deps.
type AllocatorFunc func(Deps) (Generic, error)

var allocators = map[string]AllocatorFunc{}

// Register installs a named operator constructor. Panics on a duplicate
// name — a transcription error caught at program start, matching the
// teacher's allocator-map init() convention.
func Register(name string, f AllocatorFunc) {
	if _, exists := allocators[name]; exists {
		chk.Panic("collision: operator %q already registered", name)
	}
	allocators[name] = f
}

// New looks up and constructs the named operator.
func New(name string, d Deps) (Generic, error) {
	f, ok := allocators[name]
	if !ok {
		return nil, chk.Err("collision: unknown operator %q", name)
	}
	return f(d)
}

// Names returns the registered operator names, in no particular order.
func Names() []string {
	out := make([]string, 0, len(allocators))
	for name := range allocators {
		out = append(out, name)
	}
	return out
}
