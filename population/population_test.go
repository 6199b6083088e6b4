package population

import (
	"testing"
	"unsafe"

	"github.com/cpmech/lbt/lattice"
)

func TestAlignedAllocIsAligned(t *testing.T) {
	raw, data := AlignedAlloc[float64](1000, lattice.Alignment)
	if len(data) != 1000 {
		t.Fatalf("len(data) = %d, want 1000", len(data))
	}
	if len(raw) < len(data) {
		t.Fatalf("raw shorter than data")
	}
	addr := uintptr(unsafe.Pointer(&data[0]))
	if addr%lattice.Alignment != 0 {
		t.Fatalf("data base address %#x not aligned to %d bytes", addr, lattice.Alignment)
	}
}

func TestNewPopulationShapeAndBackupRestore(t *testing.T) {
	lat := lattice.NewD3Q19[float64]()
	shape := Shape{NX: 3, NY: 4, NZ: 5, NP: 1}
	pop := NewPopulation(shape, lat)

	want := shape.Len(lat.ND)
	if pop.Len() != want {
		t.Fatalf("Len() = %d, want %d", pop.Len(), want)
	}

	v := Velocity{}
	pop.PokeRead(Even, 1, 2, 3, 0, 0, 0, v, 42.0)
	backup := pop.Backup()

	pop.PokeRead(Even, 1, 2, 3, 0, 0, 0, v, 7.0)
	if got := pop.Read(Even, 1, 2, 3, 0, 0, 0, v); got != 7.0 {
		t.Fatalf("after overwrite, Read = %v, want 7.0", got)
	}

	pop.Restore(backup)
	if got := pop.Read(Even, 1, 2, 3, 0, 0, 0, v); got != 42.0 {
		t.Fatalf("after restore, Read = %v, want 42.0", got)
	}
}

func TestRestorePanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	lat := lattice.NewD2Q9[float64]()
	pop := NewPopulation(Shape{NX: 2, NY: 2, NZ: 1, NP: 1}, lat)
	pop.Restore(make([]float64, 3))
}
