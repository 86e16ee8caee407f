package ast

import "testing"

func TestArenaIndicesAreOneBased(t *testing.T) {
	a := NewArena[int](0)
	first := a.Allocate(10)
	second := a.Allocate(20)
	if first != 1 || second != 2 {
		t.Fatalf("Allocate returned %d, %d; want 1, 2", first, second)
	}
	if got := *a.Get(first); got != 10 {
		t.Errorf("Get(%d) = %d, want 10", first, got)
	}
	if got := *a.Get(second); got != 20 {
		t.Errorf("Get(%d) = %d, want 20", second, got)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
}

func TestArenaGetZeroIsNil(t *testing.T) {
	a := NewArena[string](4)
	if a.Get(0) != nil {
		t.Error("Get(0) should be nil")
	}
	a.Allocate("x")
	if a.Get(0) != nil {
		t.Error("Get(0) should stay nil after Allocate")
	}
}
