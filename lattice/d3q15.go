package lattice

// NewD3Q15 returns the 3D, 15-speed lattice descriptor (6 face + 8
// corner neighbours plus rest).
func NewD3Q15[T Real]() *Lattice[T] {
	const w0, w1, w2 = 2.0 / 9.0, 1.0 / 9.0, 1.0 / 72.0
	// compact: rest, 3 face dirs, 4 corner dirs (x=+1), mirrors in order
	cdx := []T{0, 1, 0, 0, 1, 1, 1, 1, -1, 0, 0, -1, -1, -1, -1}
	cdy := []T{0, 0, 1, 0, 1, 1, -1, -1, 0, -1, 0, -1, -1, 1, 1}
	cdz := []T{0, 0, 0, 1, 1, -1, 1, -1, 0, 0, -1, -1, 1, -1, 1}
	cw := []T{w0, w1, w1, w1, w2, w2, w2, w2, w1, w1, w1, w2, w2, w2, w2}
	return expand[T]("D3Q15", 3, 15, 16, cdx, cdy, cdz, cw)
}
