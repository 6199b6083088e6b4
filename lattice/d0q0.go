package lattice

// NewD0Q0 returns the degenerate single-speed descriptor (rest particle
// only). It exists to exercise the generic descriptor machinery at its
// smallest edge case, following original_source's own D0Q0 unit-test
// lattice.
func NewD0Q0[T Real]() *Lattice[T] {
	cdx := []T{0}
	cdy := []T{0}
	cdz := []T{0}
	cw := []T{1}
	return expand[T]("D0Q0", 0, 1, 2, cdx, cdy, cdz, cw)
}
