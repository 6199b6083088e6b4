package solver

import "github.com/cpmech/gosl/chk"

// Factory builds a Run-able loop from an already-constructed Sim. The
// indirection exists so alternative drivers (e.g. a future adaptive-dt
// loop) can be swapped in by name without touching Sim itself, mirroring
// gofem's solverallocators["imp"]-style package-level registry.
type Factory func(nt, ntPlot int, run func(nt, ntPlot int) error) error

var drivers = map[string]Factory{}

func init() {
	drivers["fixed"] = func(nt, ntPlot int, run func(nt, ntPlot int) error) error {
		return run(nt, ntPlot)
	}
}

// Register installs a named driver factory. Panics on duplicate names,
// matching gofem's allocator-map init() convention.
func Register(name string, f Factory) {
	if _, exists := drivers[name]; exists {
		chk.Panic("solver: driver %q already registered", name)
	}
	drivers[name] = f
}

// RunWith executes nt steps of sim using the named driver ("fixed" is
// always available).
func RunWith(name string, sim interface{ Run(nt, ntPlot int) error }, nt, ntPlot int) error {
	f, ok := drivers[name]
	if !ok {
		chk.Panic("solver: unknown driver %q", name)
	}
	return f(nt, ntPlot, sim.Run)
}
