package population

import (
	"unsafe"

	"github.com/cpmech/lbt/lattice"
)

// Population owns one aligned linear buffer of lattice-floats sized
// NX*NY*NZ*NP*ND (spec.md §3/§4.4). It is exclusively owned by one
// object for its lifetime; the driver and collision operators borrow
// it mutably for the duration of a step.
type Population[T lattice.Real] struct {
	Shape Shape
	Lat   *lattice.Lattice[T]
	Index Indexer

	raw   []T // over-allocated backing slice
	data  []T // aligned view into raw, length Shape.Len(Lat.ND)
}

// NewPopulation allocates and zero-initialises the aligned buffer for
// the given grid shape and lattice descriptor.
func NewPopulation[T lattice.Real](shape Shape, lat *lattice.Lattice[T]) *Population[T] {
	n := shape.Len(lat.ND)
	raw, data := AlignedAlloc[T](n, lattice.Alignment)
	return &Population[T]{
		Shape: shape,
		Lat:   lat,
		Index: NewIndexer(shape, lat),
		raw:   raw,
		data:  data,
	}
}

// AlignedAlloc returns a backing slice and an aligned sub-slice of
// length n whose data pointer is a multiple of align bytes. Go gives no
// portable posix_memalign, so we over-allocate by up to align/sizeof(T)
// extra lanes and slice from the first aligned element — the same idea
// as go-highway's AlignedSize/MaxLanes lane-rounding, generalised here
// to byte alignment since the population buffer is read directly by
// future SIMD kernels (spec.md §4.4, §6 "raw-pointer getter").
func AlignedAlloc[T lattice.Real](n int64, align int) (raw, data []T) {
	var zero T
	elemSize := int64(unsafe.Sizeof(zero))
	extraLanes := (int64(align) + elemSize - 1) / elemSize
	raw = make([]T, n+extraLanes)
	base := uintptr(unsafe.Pointer(&raw[0]))
	pad := int64(0)
	if rem := base % uintptr(align); rem != 0 {
		pad = (int64(align) - int64(rem)) / elemSize
	}
	data = raw[pad : pad+n]
	return
}

// Raw returns the aligned buffer (not the over-allocated backing slice)
// for SIMD kernels (spec.md §6).
func (p *Population[T]) Raw() []T {
	return p.data
}

// Len returns the number of elements in the buffer.
func (p *Population[T]) Len() int64 {
	return int64(len(p.data))
}

// Read loads the value at the pre-step address for slot (n, d) of cell
// (x, y, z), population index p, under the A-A rule for time-step ts.
func (pop *Population[T]) Read(ts TimeStep, x, y, z, n, d, pIdx int, v Velocity) T {
	a := pop.Index.ReadAddr(ts, x, y, z, n, d, v)
	return pop.data[pop.Index.Linear(a.X, a.Y, a.Z, a.N, a.D, pIdx, pop.Lat.Off)]
}

// Write stores value at the post-step address for slot (n, d) of cell
// (x, y, z), population index p, under the A-A rule for time-step ts.
func (pop *Population[T]) Write(ts TimeStep, x, y, z, n, d, pIdx int, v Velocity, value T) {
	a := pop.Index.WriteAddr(ts, x, y, z, n, d, v)
	pop.data[pop.Index.Linear(a.X, a.Y, a.Z, a.N, a.D, pIdx, pop.Lat.Off)] = value
}

// PokeRead overwrites the pre-collision (index_read<TS>) slot directly,
// bypassing the normal collide-stream write path. Boundary conditions
// use this in before_collision to impose a value that the upcoming
// collide_stream<TS> call will then read (spec.md §4.8 Guo hooks).
func (pop *Population[T]) PokeRead(ts TimeStep, x, y, z, n, d, pIdx int, v Velocity, value T) {
	a := pop.Index.ReadAddr(ts, x, y, z, n, d, v)
	pop.data[pop.Index.Linear(a.X, a.Y, a.Z, a.N, a.D, pIdx, pop.Lat.Off)] = value
}

// ReadN is Read using precomputed neighbour triples, for the
// collide-stream driver's hot loop (spec.md §6 array-based variant).
func (pop *Population[T]) ReadN(ts TimeStep, nb Neighbours, n, d, pIdx int, v Velocity) T {
	a := pop.Index.ReadAddrN(ts, nb, n, d, v)
	return pop.data[pop.Index.Linear(a.X, a.Y, a.Z, a.N, a.D, pIdx, pop.Lat.Off)]
}

// WriteN is Write using precomputed neighbour triples.
func (pop *Population[T]) WriteN(ts TimeStep, nb Neighbours, n, d, pIdx int, v Velocity, value T) {
	a := pop.Index.WriteAddrN(ts, nb, n, d, v)
	pop.data[pop.Index.Linear(a.X, a.Y, a.Z, a.N, a.D, pIdx, pop.Lat.Off)] = value
}

// Backup copies the population buffer into a plain slice, for
// checkpointing. Grounded on original_source's population_backup.hpp.
func (pop *Population[T]) Backup() []T {
	out := make([]T, len(pop.data))
	copy(out, pop.data)
	return out
}

// Restore overwrites the population buffer from a previously-taken
// Backup. Panics if the length does not match — a checkpoint can only
// ever be restored into a population of the same shape and lattice.
func (pop *Population[T]) Restore(backup []T) {
	if len(backup) != len(pop.data) {
		panic("population: Restore length mismatch")
	}
	copy(pop.data, backup)
}
