// Package inp parses the JSON configuration consumed by the
// construction layer (spec.md §6): discretisation, physics, initial
// condition, boundary conditions, geometry, thread count and output
// settings. The kernel itself never reads JSON; this package only
// builds the plain-data Settings the cmd/lbt CLI hands to its solver
// wiring (runSettings in cmd/lbt/cli.go).
package inp

import (
	"encoding/json"
	"os"
	"runtime"

	"github.com/cpmech/gosl/chk"
)

// Discretisation is the grid shape block.
type Discretisation struct {
	Lattice string `json:"lattice"` // "d2q9", "d3q15", "d3q19", "d3q27", "d3q27-padded"
	NX      int    `json:"nx"`
	NY      int    `json:"ny"`
	NZ      int    `json:"nz"`
	NP      int    `json:"np"`
}

// Physics is the fluid property block.
type Physics struct {
	Rho float64 `json:"rho"`
	Nu  float64 `json:"nu"`
}

// Initial is the uniform initial condition block.
type Initial struct {
	U float64 `json:"u"`
	V float64 `json:"v"`
	W float64 `json:"w"`
}

// BCSpec describes one boundary condition: a type name, the elements it
// applies to (given as an axis-aligned box face) and the state it
// imposes.
type BCSpec struct {
	Type        string  `json:"type"` // "bounceback", "guo-velocity", "guo-pressure", "periodic", "slip"
	Orientation string  `json:"orientation"`
	Rho         float64 `json:"rho"`
	U           float64 `json:"u"`
	V           float64 `json:"v"`
	W           float64 `json:"w"`
}

// GeometrySpec points at an optional mesh to voxelise for internal
// solid obstacles.
type GeometrySpec struct {
	File string  `json:"file"` // .stl, .obj or .ply
	BBox BBoxSpec `json:"bbox"`
}

// BBoxSpec is a JSON-friendly axis-aligned box.
type BBoxSpec struct {
	Min [3]float64 `json:"min"`
	Max [3]float64 `json:"max"`
}

// Output controls where and how often the continuum is flushed to disk.
type Output struct {
	Folder   string `json:"folder"`
	Prefix   string `json:"prefix"`
	Interval int    `json:"interval"`
}

// Time is the run length in single steps; it must be even, since steps
// run in (even,odd) pairs.
type Time struct {
	Steps int `json:"steps"`
}

// Collision names the relaxation operator and, for BGK-Smagorinsky,
// its turbulence-relevant characteristic scales.
type Collision struct {
	Operator string  `json:"operator"` // "bgk", "bgk-smagorinsky", "trt"
	U        float64 `json:"u"`        // characteristic velocity
	L        float64 `json:"l"`        // characteristic length
}

// Settings is the top-level JSON configuration document, grounded on
// gofem's inp/sim.go Simulation struct (nested JSON blocks unmarshalled
// with encoding/json, fatal-on-malformed via chk.Panic).
type Settings struct {
	Desc            string          `json:"desc"`
	Discretisation  Discretisation  `json:"discretisation"`
	Physics         Physics         `json:"physics"`
	Initial         Initial         `json:"initial"`
	Collision       Collision       `json:"collision"`
	BoundaryConditions []BCSpec     `json:"boundaryconditions"`
	Geometry        *GeometrySpec   `json:"geometry"`
	Threads         int             `json:"threads"`
	Output          Output          `json:"output"`
	Time            Time            `json:"time"`
}

// ReadSettings reads and unmarshals a settings JSON file, applying
// defaults and validating the discretisation the way gofem's
// Data.PostProcess validates a .sim file after reading it. Returns an
// error on unreadable, malformed or invalid settings; the CLI turns it
// into a non-zero exit at startup (spec.md §7's "fatal at startup").
func ReadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, chk.Err("inp: malformed settings file %q: %v", path, err)
	}
	s.setDefaults()
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) setDefaults() {
	if s.Discretisation.NP == 0 {
		s.Discretisation.NP = 1
	}
	if s.Discretisation.Lattice == "" {
		s.Discretisation.Lattice = "d3q19"
	}
	if s.Collision.Operator == "" {
		s.Collision.Operator = "bgk"
	}
	if s.Output.Folder == "" {
		s.Output.Folder = "/tmp/lbt"
	}
	if s.Output.Prefix == "" {
		s.Output.Prefix = "out"
	}
	if s.Output.Interval == 0 {
		s.Output.Interval = s.Time.Steps
	}
	if s.Threads == 0 {
		s.Threads = runtime.GOMAXPROCS(0)
	}
}

func (s *Settings) validate() error {
	d := s.Discretisation
	if d.NX <= 0 || d.NY <= 0 || d.NZ <= 0 {
		return chk.Err("inp: discretisation NX,NY,NZ must be positive, got %d,%d,%d", d.NX, d.NY, d.NZ)
	}
	switch d.Lattice {
	case "d2q9":
		if d.NZ != 1 {
			return chk.Err("inp: d2q9 requires NZ=1, got %d", d.NZ)
		}
	case "d3q15", "d3q19", "d3q27", "d3q27-padded":
	default:
		return chk.Err("inp: unknown lattice %q", d.Lattice)
	}
	if s.Time.Steps <= 0 || s.Time.Steps%2 != 0 {
		return chk.Err("inp: time.steps must be a positive even number, got %d", s.Time.Steps)
	}
	return nil
}
