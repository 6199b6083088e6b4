// Package lbt implements the command-line entry point: run one
// simulation from a settings file, or sweep a built-in benchmark.
// Exit codes: 0 success, 1 malformed input, 2 missing file (spec.md §6).
package lbt

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	gio "github.com/cpmech/gosl/io"
	"github.com/cpmech/lbt/boundary"
	"github.com/cpmech/lbt/collision"
	"github.com/cpmech/lbt/continuum"
	"github.com/cpmech/lbt/inp"
	"github.com/cpmech/lbt/lattice"
	"github.com/cpmech/lbt/population"
	"github.com/cpmech/lbt/solver"
)

// Version is stamped at release time; left as a literal here since the
// module has no build-time ldflags wiring in this tree.
const Version = "0.1.0"

const (
	ExitOK          = 0
	ExitMalformed   = 1
	ExitMissingFile = 2
)

// Main runs the CLI against args (os.Args[1:]) and returns a process
// exit code. Output goes to out so tests can capture it.
func Main(args []string, out io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(out, usage())
		return ExitMalformed
	}

	switch args[0] {
	case "--help", "-h":
		fmt.Fprintln(out, usage())
		return ExitOK
	case "--version":
		fmt.Fprintln(out, "lbt version", Version)
		return ExitOK
	case "--benchmark":
		return runBenchmark(out)
	}

	path := args[0]
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(out, "lbt: cannot find settings file %q\n", path)
		return ExitMissingFile
	}

	settings, err := inp.ReadSettings(path)
	if err != nil {
		fmt.Fprintf(out, "lbt: %v\n", err)
		return ExitMalformed
	}

	if err := runSettings(settings, out); err != nil {
		fmt.Fprintf(out, "lbt: %v\n", err)
		return ExitMalformed
	}
	return ExitOK
}

func usage() string {
	return "usage: lbt <settings.json> | --benchmark | --version | --help"
}

func buildLattice(name string) *lattice.Lattice[float64] {
	switch name {
	case "d2q9":
		return lattice.NewD2Q9[float64]()
	case "d3q15":
		return lattice.NewD3Q15[float64]()
	case "d3q19":
		return lattice.NewD3Q19[float64]()
	case "d3q27":
		return lattice.NewD3Q27[float64]()
	case "d3q27-padded":
		return lattice.NewD3Q27Padded[float64]()
	default:
		return lattice.NewD3Q19[float64]()
	}
}

func orientationFromString(s string) boundary.Orientation {
	switch s {
	case "left":
		return boundary.Left
	case "right":
		return boundary.Right
	case "front":
		return boundary.Front
	case "back":
		return boundary.Back
	case "bottom":
		return boundary.Bottom
	case "top":
		return boundary.Top
	default:
		return boundary.Left
	}
}

// faceElements lists every boundary cell on the grid face named by o.
func faceElements(shape population.Shape, o boundary.Orientation) []boundary.Element[float64] {
	var elems []boundary.Element[float64]
	add := func(x, y, z int) {
		elems = append(elems, boundary.Element[float64]{X: x, Y: y, Z: z, Orient: o})
	}
	switch o {
	case boundary.Left:
		for z := 0; z < shape.NZ; z++ {
			for y := 0; y < shape.NY; y++ {
				add(0, y, z)
			}
		}
	case boundary.Right:
		for z := 0; z < shape.NZ; z++ {
			for y := 0; y < shape.NY; y++ {
				add(shape.NX-1, y, z)
			}
		}
	case boundary.Front:
		for z := 0; z < shape.NZ; z++ {
			for x := 0; x < shape.NX; x++ {
				add(x, 0, z)
			}
		}
	case boundary.Back:
		for z := 0; z < shape.NZ; z++ {
			for x := 0; x < shape.NX; x++ {
				add(x, shape.NY-1, z)
			}
		}
	case boundary.Bottom:
		for y := 0; y < shape.NY; y++ {
			for x := 0; x < shape.NX; x++ {
				add(x, y, 0)
			}
		}
	case boundary.Top:
		for y := 0; y < shape.NY; y++ {
			for x := 0; x < shape.NX; x++ {
				add(x, y, shape.NZ-1)
			}
		}
	}
	return elems
}

func buildBCs(settings *inp.Settings, pop *population.Population[float64], lat *lattice.Lattice[float64], pool *solver.Pool) []solver.BC {
	shape := pop.Shape
	var bcs []solver.BC
	for _, spec := range settings.BoundaryConditions {
		o := orientationFromString(spec.Orientation)
		elems := faceElements(shape, o)
		for i := range elems {
			elems[i].Rho, elems[i].U, elems[i].V, elems[i].W = spec.Rho, spec.U, spec.V, spec.W
		}
		switch spec.Type {
		case "bounceback":
			bcs = append(bcs, boundary.NewBounceBack(pop, lat, pool, elems))
		case "guo-velocity":
			bcs = append(bcs, boundary.NewGuoVelocity(pop, lat, pool, elems))
		case "guo-pressure":
			bcs = append(bcs, boundary.NewGuoPressure(pop, lat, pool, elems))
		case "slip":
			bcs = append(bcs, boundary.NewSlipWall(pop, lat, pool, elems))
		case "periodic":
			bcs = append(bcs, boundary.Periodic{})
		}
	}
	return bcs
}

func runSettings(settings *inp.Settings, out io.Writer) error {
	d := settings.Discretisation
	lat := buildLattice(d.Lattice)
	shape := population.Shape{NX: d.NX, NY: d.NY, NZ: d.NZ, NP: d.NP}
	pop := population.NewPopulation(shape, lat)

	pool, err := solver.NewPool(settings.Threads)
	if err != nil {
		return err
	}

	field := continuum.NewField[float64](d.NX, d.NY, d.NZ, settings.Output.Folder, settings.Output.Prefix)

	deps := collision.Deps{Pop: pop, Lat: lat, Sink: field, Pool: pool, Nu: settings.Physics.Nu, U: settings.Collision.U, L: settings.Collision.L}
	op, err := collision.New(settings.Collision.Operator, deps)
	if err != nil {
		return err
	}

	bcs := buildBCs(settings, pop, lat, pool)
	sim := solver.NewSim[float64](op, bcs, field)

	op.Initialise(population.Even, settings.Physics.Rho, settings.Initial.U, settings.Initial.V, settings.Initial.W)

	gio.Pf("\nlbt: running %q: %dx%dx%d, %s, %s, %d steps\n", settings.Desc, d.NX, d.NY, d.NZ, d.Lattice, settings.Collision.Operator, settings.Time.Steps)
	return sim.Run(settings.Time.Steps, settings.Output.Interval)
}

// runBenchmark sweeps {D2Q9,D3Q19,D3Q27} x {bgk,bgk-smagorinsky} on a
// small grid and reports throughput in Mlups (million lattice updates
// per second), per spec.md §6.
func runBenchmark(out io.Writer) int {
	const nx, ny, nz, steps = 32, 32, 32, 20
	lattices := []struct {
		name string
		lat  *lattice.Lattice[float64]
	}{
		{"d2q9", lattice.NewD2Q9[float64]()},
		{"d3q19", lattice.NewD3Q19[float64]()},
		{"d3q27", lattice.NewD3Q27[float64]()},
	}
	operators := []string{"bgk", "bgk-smagorinsky"}

	pool, err := solver.NewPool(runtime.GOMAXPROCS(0))
	if err != nil {
		fmt.Fprintln(out, err)
		return ExitMalformed
	}

	fmt.Fprintln(out, "lattice,operator,mlups")
	for _, l := range lattices {
		nzUsed := nz
		if l.name == "d2q9" {
			nzUsed = 1
		}
		shape := population.Shape{NX: nx, NY: ny, NZ: nzUsed, NP: 1}
		for _, opName := range operators {
			pop := population.NewPopulation(shape, l.lat)
			field := continuum.NewField[float64](shape.NX, shape.NY, shape.NZ, os.TempDir(), "bench")
			op, err := collision.New(opName, collision.Deps{Pop: pop, Lat: l.lat, Sink: field, Pool: pool, Nu: 0.05, U: 0.05, L: float64(nx)})
			if err != nil {
				fmt.Fprintln(out, err)
				return ExitMalformed
			}
			op.Initialise(population.Even, 1.0, 0.01, 0.0, 0.0)

			start := time.Now()
			for step := 0; step < steps; step += 2 {
				op.CollideStream(population.Even, false)
				op.CollideStream(population.Odd, false)
			}
			elapsed := time.Since(start).Seconds()
			mlups := float64(shape.Cells()) * float64(steps) / elapsed / 1e6
			fmt.Fprintf(out, "%s,%s,%.2f\n", l.name, opName, mlups)
		}
	}
	return ExitOK
}
