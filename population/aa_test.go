package population

import (
	"testing"

	"github.com/cpmech/lbt/lattice"
)

// seed test 4: for D3Q19, NX=7,NY=9,NZ=11, NP=1, iterate all (x,y,z,n,d)
// and assert WriteAddr<TS> == ReadAddr<!TS> for both parities.
func TestAARoundTrip(t *testing.T) {
	lat := lattice.NewD3Q19[float64]()
	shape := Shape{NX: 7, NY: 9, NZ: 11, NP: 1}
	ix := NewIndexer(shape, lat)

	velOf := func(n, d int) Velocity {
		k := lat.Slot(n, d)
		return Velocity{int(lat.DX[k]), int(lat.DY[k]), int(lat.DZ[k])}
	}

	for x := 0; x < shape.NX; x++ {
		for y := 0; y < shape.NY; y++ {
			for z := 0; z < shape.NZ; z++ {
				for n := 0; n < 2; n++ {
					for d := 0; d < lat.Off; d++ {
						v := velOf(n, d)
						for _, ts := range []TimeStep{Even, Odd} {
							w := ix.WriteAddr(ts, x, y, z, n, d, v)
							r := ix.ReadAddr(ts.Flip(), x, y, z, n, d, v)
							if w != r {
								t.Fatalf("AA invariant broken at (%d,%d,%d,n=%d,d=%d,ts=%v): write=%v read(flip)=%v", x, y, z, n, d, ts, w, r)
							}
						}
					}
				}
			}
		}
	}
}

func TestModWrapsNegative(t *testing.T) {
	if Mod(-1, 5) != 4 {
		t.Fatalf("Mod(-1,5) = %d, want 4", Mod(-1, 5))
	}
	if Mod(5, 5) != 0 {
		t.Fatalf("Mod(5,5) = %d, want 0", Mod(5, 5))
	}
}

func TestNeighbourTripleMatchesScalarMod(t *testing.T) {
	shape := Shape{NX: 4, NY: 4, NZ: 4, NP: 1}
	lat := lattice.NewD2Q9[float64]()
	ix := NewIndexer(shape, lat)
	nb := ix.NewNeighbours(0, 3, 0)
	if nb.X != [3]int{3, 0, 1} {
		t.Fatalf("unexpected X triple: %v", nb.X)
	}
	if nb.Y != [3]int{2, 3, 0} {
		t.Fatalf("unexpected Y triple: %v", nb.Y)
	}
}
