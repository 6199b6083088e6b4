package population

// Neighbours precomputes the three periodic coordinates [x-1, x, x+1]
// (and analogously for y, z) around one cell, so the collide-stream
// driver's inner loop can index into them instead of paying a modulo
// per population slot per cell (spec.md §4.7 step 4a, §6 "array-based
// variant").
type Neighbours struct {
	X, Y, Z [3]int
}

// NewNeighbours builds the periodic neighbour triples for cell (x,y,z).
func (ix Indexer) NewNeighbours(x, y, z int) Neighbours {
	s := ix.Shape
	return Neighbours{
		X: [3]int{Mod(x-1, s.NX), x, Mod(x+1, s.NX)},
		Y: [3]int{Mod(y-1, s.NY), y, Mod(y+1, s.NY)},
		Z: [3]int{Mod(z-1, s.NZ), z, Mod(z+1, s.NZ)},
	}
}

// sel picks index 0, 1 or 2 of a triple for a velocity component in
// {-1, 0, 1}.
func sel(triple [3]int, v int) int {
	return triple[v+1]
}

// ReadAddrN is ReadAddr but using precomputed neighbour triples instead
// of recomputing the modulo for the Odd-step neighbour lookup.
func (ix Indexer) ReadAddrN(ts TimeStep, nb Neighbours, n, d int, v Velocity) Addr {
	if ts == Even {
		return local(nb.X[1], nb.Y[1], nb.Z[1], n, d)
	}
	return Addr{sel(nb.X, v.VX), sel(nb.Y, v.VY), sel(nb.Z, v.VZ), n, d}
}

// WriteAddrN is WriteAddr but using precomputed neighbour triples.
func (ix Indexer) WriteAddrN(ts TimeStep, nb Neighbours, n, d int, v Velocity) Addr {
	if ts == Even {
		return Addr{sel(nb.X, v.VX), sel(nb.Y, v.VY), sel(nb.Z, v.VZ), n, d}
	}
	return local(nb.X[1], nb.Y[1], nb.Z[1], n, d)
}
