package lattice

import (
	"math"
	"testing"
)

// seed test 5: for each DdQq variant, assert weight sum equals 1+W[0],
// velocity arrays sum to zero and CS equals 1/sqrt(3), all within 1e-15.
func TestDescriptorInvariants(t *testing.T) {
	const eps = 1e-15
	cases := []struct {
		name string
		lat  *Lattice[float64]
	}{
		{"D0Q0", NewD0Q0[float64]()},
		{"D2Q9", NewD2Q9[float64]()},
		{"D3Q15", NewD3Q15[float64]()},
		{"D3Q19", NewD3Q19[float64]()},
		{"D3Q27", NewD3Q27[float64]()},
		{"D3Q27Padded", NewD3Q27Padded[float64]()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := c.lat
			var sx, sy, sz, sw float64
			for k := 0; k < l.ND; k++ {
				sx += l.DX[k]
				sy += l.DY[k]
				sz += l.DZ[k]
				sw += l.W[k]
			}
			if math.Abs(sx) > eps || math.Abs(sy) > eps || math.Abs(sz) > eps {
				t.Fatalf("%s: velocity sums not zero: %v %v %v", c.name, sx, sy, sz)
			}
			want := 1 + l.W[0]
			if math.Abs(sw-want) > eps {
				t.Fatalf("%s: weight sum = %v, want %v", c.name, sw, want)
			}
			wantCS := 1 / math.Sqrt(3)
			if math.Abs(l.CS-wantCS) > eps {
				t.Fatalf("%s: CS = %v, want %v", c.name, l.CS, wantCS)
			}
		})
	}
}

func TestDescriptorSymmetry(t *testing.T) {
	l := NewD3Q19[float64]()
	for d := 1; d < l.HSpeed; d++ {
		if l.DX[d] != -l.DX[l.Off+d] || l.DY[d] != -l.DY[l.Off+d] || l.DZ[d] != -l.DZ[l.Off+d] {
			t.Fatalf("velocity symmetry broken at d=%d", d)
		}
		if l.W[d] != l.W[l.Off+d] {
			t.Fatalf("weight symmetry broken at d=%d", d)
		}
	}
}

func TestPaddingSlotIsMasked(t *testing.T) {
	l := NewD3Q19[float64]()
	if l.Mask[l.Off] != 0 {
		t.Fatalf("padding slot at Off must be masked out")
	}
	if l.DX[l.Off] != 0 || l.DY[l.Off] != 0 || l.DZ[l.Off] != 0 {
		t.Fatalf("padding slot must carry zero velocity")
	}
}

func TestD3Q27PaddedAlignsToCacheLine(t *testing.T) {
	l := NewD3Q27Padded[float64]()
	byteLen := l.ND * 8
	if byteLen%Alignment != 0 {
		t.Fatalf("D3Q27Padded byte length %d not a multiple of %d", byteLen, Alignment)
	}
	if l.ND <= 28 {
		t.Fatalf("D3Q27Padded should add padding beyond the minimal 28 slots, got %d", l.ND)
	}
}

func TestFloat32Lattice(t *testing.T) {
	l := NewD2Q9[float32]()
	if l.ND != 10 || l.Off != 5 {
		t.Fatalf("unexpected D2Q9 shape: ND=%d Off=%d", l.ND, l.Off)
	}
}
