// Package lattice provides the compile-time-constant DdQq stencil
// descriptors used throughout the solver: discrete velocities, weights,
// the padding/activity mask and the lattice speed of sound.
package lattice

import "math"

// Real is the constraint for lattice-float element types.
type Real interface {
	~float32 | ~float64
}

// Alignment is the platform/SIMD alignment, in bytes, that population
// buffers are allocated to (population.AlignedAlloc). The descriptor
// arrays (DX, DY, DZ, W, Mask) are ordinary slices and carry no
// alignment guarantee.
const Alignment = 64

var csValue = 1.0 / math.Sqrt(3)

// Lattice holds the compile-time constants of one DdQq stencil for a
// given lattice-float type T.
type Lattice[T Real] struct {
	Name   string // e.g. "D3Q19"
	Dim    int    // spatial dimension
	Speeds int    // q, the DdQq velocity count
	HSpeed int    // (Speeds+1)/2
	Pad    int    // padding slots added for SIMD alignment
	ND     int    // Speeds + Pad, total per-cell vector length
	Off    int    // ND/2, the half-vector offset

	DX, DY, DZ []T // length ND, discrete velocity components
	W          []T // length ND, weights
	Mask       []T // length ND, 1 for a real slot, 0 for the padding slot

	CS T // lattice speed of sound, 1/sqrt(3)
}

// Opposite returns the opposite-direction slot of k = n*Off + d.
func (l *Lattice[T]) Opposite(k int) int {
	if k < l.Off {
		return k + l.Off
	}
	return k - l.Off
}

// Slot returns the linear slot index for addressing convention (n, d).
func (l *Lattice[T]) Slot(n, d int) int {
	return n*l.Off + d
}

// expand builds a full length-ND descriptor from a compact table of
// length `speeds`, laid out as [rest, positive dirs 1..hspeed-1, negative
// dirs mirroring 1..hspeed-1 in the same order]. Padding is placed
// symmetrically around Off, with a W[0]-echoing, mask-0 slot exactly at
// Off; any further padding slots follow each half and stay zero.
func expand[T Real](name string, dim, speeds, nd int, cdx, cdy, cdz, cw []T) *Lattice[T] {
	hspeed := (speeds + 1) / 2
	off := nd / 2

	l := &Lattice[T]{
		Name:   name,
		Dim:    dim,
		Speeds: speeds,
		HSpeed: hspeed,
		Pad:    nd - speeds,
		ND:     nd,
		Off:    off,
		DX:     make([]T, nd),
		DY:     make([]T, nd),
		DZ:     make([]T, nd),
		W:      make([]T, nd),
		Mask:   make([]T, nd),
		CS:     T(csValue),
	}

	// positive half (including rest at index 0)
	for i := 0; i < hspeed; i++ {
		l.DX[i], l.DY[i], l.DZ[i], l.W[i], l.Mask[i] = cdx[i], cdy[i], cdz[i], cw[i], 1
	}
	// padding slot at Off echoes the rest weight (spec: "resting weight
	// counted twice because of the padding-symmetric layout") but carries
	// no velocity and is masked out.
	l.W[off] = cw[0]

	// negative half, mirroring compact[hspeed..speeds-1] at off+1..off+hspeed-1
	for i := 1; i < hspeed; i++ {
		l.DX[off+i], l.DY[off+i], l.DZ[off+i], l.W[off+i], l.Mask[off+i] = cdx[hspeed-1+i], cdy[hspeed-1+i], cdz[hspeed-1+i], cw[hspeed-1+i], 1
	}

	l.assertInvariants()
	return l
}

// assertInvariants checks spec.md §8 properties 1-3 for this descriptor.
func (l *Lattice[T]) assertInvariants() {
	eps := T(1e-10)
	var zero T
	if sizeOf(zero) == 4 {
		eps = T(1e-5) // single precision cannot resolve the weight sum to 1e-10
	}
	abs := func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	}
	for d := 1; d < l.HSpeed; d++ {
		if abs(l.DX[d]+l.DX[l.Off+d]) > eps {
			panic("lattice " + l.Name + ": DX symmetry violated at d=" + itoa(d))
		}
		if abs(l.DY[d]+l.DY[l.Off+d]) > eps {
			panic("lattice " + l.Name + ": DY symmetry violated at d=" + itoa(d))
		}
		if abs(l.DZ[d]+l.DZ[l.Off+d]) > eps {
			panic("lattice " + l.Name + ": DZ symmetry violated at d=" + itoa(d))
		}
		if abs(l.W[d]-l.W[l.Off+d]) > eps {
			panic("lattice " + l.Name + ": W symmetry violated at d=" + itoa(d))
		}
	}
	var sx, sy, sz, sw T
	for k := 0; k < l.ND; k++ {
		sx += l.DX[k]
		sy += l.DY[k]
		sz += l.DZ[k]
		sw += l.W[k]
	}
	if abs(sx) > eps || abs(sy) > eps || abs(sz) > eps {
		panic("lattice " + l.Name + ": zero-momentum invariant violated")
	}
	if abs(sw-(1+l.W[0])) > eps {
		panic("lattice " + l.Name + ": weight normalisation violated")
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
