package solver

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNewPoolRejectsOutOfRange(t *testing.T) {
	if _, err := NewPool(0); err == nil {
		t.Fatal("expected error for zero thread count")
	}
	if _, err := NewPool(-1); err == nil {
		t.Fatal("expected error for negative thread count")
	}
	if _, err := NewPool(runtime.GOMAXPROCS(0) + 1); err == nil {
		t.Fatal("expected error for above-hardware thread count")
	}
}

func TestNewPoolAcceptsHardwareConcurrency(t *testing.T) {
	max := runtime.GOMAXPROCS(0)
	p, err := NewPool(max)
	if err != nil {
		t.Fatal(err)
	}
	if p.N() != max {
		t.Fatalf("N() = %d, want %d", p.N(), max)
	}
}

func TestPoolDoRunsEveryJob(t *testing.T) {
	p, err := NewPool(4)
	if err != nil {
		t.Fatal(err)
	}
	var count int64
	jobs := make([]func(), 100)
	for i := range jobs {
		jobs[i] = func() { atomic.AddInt64(&count, 1) }
	}
	p.Do(jobs)
	if count != 100 {
		t.Fatalf("count = %d, want 100", count)
	}
}
