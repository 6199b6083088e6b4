package lattice

// NewD3Q19 returns the 3D, 19-speed lattice descriptor (6 face + 12
// edge neighbours plus rest) — the workhorse stencil for most LBM runs.
func NewD3Q19[T Real]() *Lattice[T] {
	const w0, w1, w2 = 1.0 / 3.0, 1.0 / 18.0, 1.0 / 36.0
	// compact: rest, 3 face dirs, 6 edge dirs (positive x, or x=0 with +y), mirrors
	cdx := []T{0, 1, 0, 0, 1, 1, 1, 1, 0, 0,
		-1, 0, 0, -1, -1, -1, -1, 0, 0}
	cdy := []T{0, 0, 1, 0, 1, -1, 0, 0, 1, 1,
		0, -1, 0, -1, 1, 0, 0, -1, -1}
	cdz := []T{0, 0, 0, 1, 0, 0, 1, -1, 1, -1,
		0, 0, -1, 0, 0, -1, 1, -1, 1}
	cw := []T{w0, w1, w1, w1, w2, w2, w2, w2, w2, w2,
		w1, w1, w1, w2, w2, w2, w2, w2, w2}
	return expand[T]("D3Q19", 3, 19, 20, cdx, cdy, cdz, cw)
}
