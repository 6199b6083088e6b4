package lattice

// NewD2Q9 returns the standard 2D, 9-speed lattice descriptor.
// Compact layout: [rest, (1,0),(0,1),(1,1),(-1,1), mirrors of the last
// four in the same order].
func NewD2Q9[T Real]() *Lattice[T] {
	const w0, w1, w2 = 4.0 / 9.0, 1.0 / 9.0, 1.0 / 36.0
	cdx := []T{0, 1, 0, 1, -1, -1, 0, -1, 1}
	cdy := []T{0, 0, 1, 1, 1, 0, -1, -1, -1}
	cdz := []T{0, 0, 0, 0, 0, 0, 0, 0, 0}
	cw := []T{w0, w1, w1, w2, w2, w1, w1, w2, w2}
	return expand[T]("D2Q9", 2, 9, 10, cdx, cdy, cdz, cw)
}
