package lattice

// compactD3Q27 builds the 27-speed compact tables shared by the
// standard and cache-line-padded descriptors.
func compactD3Q27[T Real]() (cdx, cdy, cdz, cw []T) {
	const w0, w1, w2, w3 = 8.0 / 27.0, 2.0 / 27.0, 1.0 / 54.0, 1.0 / 216.0
	// rest, 3 face, 6 edge, 4 corner (positive-x representatives), then mirrors
	cdx = []T{0, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1,
		-1, 0, 0, -1, -1, -1, -1, 0, 0, -1, -1, -1, -1}
	cdy = []T{0, 0, 1, 0, 1, -1, 0, 0, 1, 1, 1, 1, -1, -1,
		0, -1, 0, -1, 1, 0, 0, -1, -1, -1, -1, 1, 1}
	cdz = []T{0, 0, 0, 1, 0, 0, 1, -1, 1, -1, 1, -1, 1, -1,
		0, 0, -1, 0, 0, -1, 1, -1, 1, -1, 1, -1, 1}
	cw = []T{w0, w1, w1, w1, w2, w2, w2, w2, w2, w2, w3, w3, w3, w3,
		w1, w1, w1, w2, w2, w2, w2, w2, w2, w3, w3, w3, w3}
	return
}

// NewD3Q27 returns the 3D, 27-speed lattice descriptor (6 face + 12
// edge + 8 corner neighbours plus rest), minimally padded.
func NewD3Q27[T Real]() *Lattice[T] {
	cdx, cdy, cdz, cw := compactD3Q27[T]()
	return expand[T]("D3Q27", 3, 27, 28, cdx, cdy, cdz, cw)
}

// NewD3Q27Padded returns the same stencil with ND rounded up to the
// SIMD/cache-line alignment (Alignment bytes) for sizeof(T)-byte lanes,
// so the per-cell vector's byte length is a multiple of Alignment.
func NewD3Q27Padded[T Real]() *Lattice[T] {
	cdx, cdy, cdz, cw := compactD3Q27[T]()
	var zero T
	elemSize := sizeOf(zero)
	lanesPerLine := Alignment / elemSize
	nd := 28
	for nd%lanesPerLine != 0 {
		nd++
	}
	// nd/2 must stay the offset where positive/negative halves split; the
	// padding added above and below that split must be symmetric (see
	// lattice.expand), which only holds if nd stays even.
	if nd%2 != 0 {
		nd++
	}
	return expand[T]("D3Q27Padded", 3, 27, nd, cdx, cdy, cdz, cw)
}

func sizeOf[T Real](v T) int {
	switch any(v).(type) {
	case float32:
		return 4
	case float64:
		return 8
	default:
		return 8
	}
}
