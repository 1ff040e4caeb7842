package entity

import (
	"testing"

	"go-space-arcade/internal/types"
)

func TestStoreOrderAndRemoveIf(t *testing.T) {
	s := NewStore[int]()
	for i := 1; i <= 6; i++ {
		s.Add(types.EntityID(i), i*10)
	}

	removed := s.RemoveIf(func(_ types.EntityID, v int) bool { return v%20 == 0 })
	if removed != 3 {
		t.Fatalf("expected 3 removed, got %d", removed)
	}

	var ids []types.EntityID
	s.Each(func(id types.EntityID, _ int) bool {
		ids = append(ids, id)
		return true
	})
	want := []types.EntityID{1, 3, 5}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("position %d: expected %d, got %d", i, want[i], ids[i])
		}
	}

	if s.Has(2) {
		t.Error("removed id must not resolve")
	}
	if v, ok := s.Get(5); !ok || v != 50 {
		t.Errorf("Get(5): expected 50, got %d ok=%v", v, ok)
	}
}

func TestStoreRemoveAdjacent(t *testing.T) {
	s := NewStore[string]()
	s.Add(1, "a")
	s.Add(2, "b")
	s.Add(3, "c")

	// соседние элементы не должны пропускаться
	if n := s.RemoveIf(func(types.EntityID, string) bool { return true }); n != 3 {
		t.Errorf("expected all 3 removed, got %d", n)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d", s.Len())
	}
}

func TestStoreEachSkipsAddedDuringIteration(t *testing.T) {
	s := NewStore[int]()
	s.Add(1, 1)
	s.Add(2, 2)

	visited := 0
	s.Each(func(id types.EntityID, _ int) bool {
		visited++
		s.Add(id+10, 0)
		return true
	})
	if visited != 2 {
		t.Errorf("expected 2 visits, got %d", visited)
	}
	if s.Len() != 4 {
		t.Errorf("expected 4 entries, got %d", s.Len())
	}
}

func TestIDAllocatorNeverReuses(t *testing.T) {
	w := NewDefenseWorld()
	a := w.NewEntity()
	w.Reset()
	b := w.NewEntity()
	if b <= a {
		t.Errorf("expected id after reset to grow, got %d then %d", a, b)
	}
	if a == types.None {
		t.Error("allocator must never hand out None")
	}
}
