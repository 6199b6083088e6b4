// Package continuum holds the macroscopic fields (rho, u, v, w) that the
// collision operator deposits moments into on save steps, and knows how
// to flush them to disk. It is an external collaborator of the kernel:
// the kernel only ever calls its setters.
package continuum

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Sink is the interface the collision operator writes moments through.
// Kept narrow on purpose: the kernel never reads continuum state back.
type Sink[T Float] interface {
	SetP(x, y, z int, rho T)
	SetU(x, y, z int, u, v, w T)
}

// Float mirrors lattice.Real without importing the lattice package, so
// continuum stays usable independently of any one stencil.
type Float interface {
	~float32 | ~float64
}

// Field is the default Sink implementation: four flat NX*NY*NZ slices
// plus the output folder the periodic save writes legacy VTK files into.
type Field[T Float] struct {
	NX, NY, NZ int
	Dir        string
	Prefix     string

	P          []T
	U, V, W    []T
}

// NewField allocates a zero-initialised field container for a grid.
func NewField[T Float](nx, ny, nz int, dir, prefix string) *Field[T] {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		chk.Panic("continuum: invalid shape %d x %d x %d", nx, ny, nz)
	}
	n := nx * ny * nz
	return &Field[T]{
		NX: nx, NY: ny, NZ: nz, Dir: dir, Prefix: prefix,
		P: make([]T, n), U: make([]T, n), V: make([]T, n), W: make([]T, n),
	}
}

func (f *Field[T]) index(x, y, z int) int {
	return (z*f.NY+y)*f.NX + x
}

// SetP implements Sink.
func (f *Field[T]) SetP(x, y, z int, rho T) {
	f.P[f.index(x, y, z)] = rho
}

// SetU implements Sink.
func (f *Field[T]) SetU(x, y, z int, u, v, w T) {
	i := f.index(x, y, z)
	f.U[i], f.V[i], f.W[i] = u, v, w
}

// Sum returns the total mass in the field, used by mass-conservation tests.
func (f *Field[T]) Sum() T {
	var s T
	for _, p := range f.P {
		s += p
	}
	return s
}

// Save writes the field to a legacy-ASCII VTK STRUCTURED_POINTS file named
// "<prefix>_<timestamp>.vtk" inside Dir, with a scalar field "rho" and a
// vector field "velocity" — grounded on original_source's
// vtk_continuum.hpp, written with a bufio.Writer the way gofem's
// fem/output.go streams its own result files rather than via a dedicated
// VTK library (none of the retrieved examples import one).
func (f *Field[T]) Save(timestamp int) error {
	if err := os.MkdirAll(f.Dir, 0777); err != nil {
		return err
	}
	path := filepath.Join(f.Dir, fmt.Sprintf("%s_%010d.vtk", f.Prefix, timestamp))
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	n := f.NX * f.NY * f.NZ

	fmt.Fprintf(w, "# vtk DataFile Version 3.0\n")
	fmt.Fprintf(w, "lbt continuum export, step %d\n", timestamp)
	fmt.Fprintf(w, "ASCII\n")
	fmt.Fprintf(w, "DATASET STRUCTURED_POINTS\n")
	fmt.Fprintf(w, "DIMENSIONS %d %d %d\n", f.NX, f.NY, f.NZ)
	fmt.Fprintf(w, "ORIGIN 0 0 0\n")
	fmt.Fprintf(w, "SPACING 1 1 1\n")
	fmt.Fprintf(w, "POINT_DATA %d\n", n)

	fmt.Fprintf(w, "SCALARS rho double 1\n")
	fmt.Fprintf(w, "LOOKUP_TABLE default\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "%.10g\n", float64(f.P[i]))
	}

	fmt.Fprintf(w, "VECTORS velocity double\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "%.10g %.10g %.10g\n", float64(f.U[i]), float64(f.V[i]), float64(f.W[i]))
	}

	if err := w.Flush(); err != nil {
		return err
	}
	io.Pf(". . . saved <%s>\n", path)
	return nil
}
