package engine

import (
	"testing"

	"github.com/lixenwraith/transporters/core"
)

func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[int]()
	s.Set(1, 10)
	s.Set(2, 20)
	s.Set(3, 30)
	s.Set(2, 21) // update keeps position

	if v, ok := s.Get(2); !ok || v != 21 {
		t.Errorf("Get(2) = %d, %v", v, ok)
	}
	if s.Count() != 3 {
		t.Errorf("Count() = %d, want 3", s.Count())
	}

	s.Remove(1)
	s.Remove(99) // no-op
	if s.Has(1) {
		t.Error("entity 1 still present")
	}

	all := s.All()
	if len(all) != 2 || all[0] != 2 || all[1] != 3 {
		t.Errorf("All() = %v, want [2 3]", all)
	}
}

func TestStoreRemoveBatch(t *testing.T) {
	s := NewStore[string]()
	for i := core.Entity(1); i <= 5; i++ {
		s.Set(i, "x")
	}

	s.RemoveBatch([]core.Entity{2, 4, 42})

	all := s.All()
	want := []core.Entity{1, 3, 5}
	if len(all) != len(want) {
		t.Fatalf("All() = %v, want %v", all, want)
	}
	for i := range want {
		if all[i] != want[i] {
			t.Fatalf("All() = %v, want %v", all, want)
		}
	}
}

func TestStoreAllIsCopy(t *testing.T) {
	s := NewStore[int]()
	s.Set(1, 1)
	all := s.All()
	all[0] = 99
	if s.All()[0] != 1 {
		t.Error("All() exposed internal slice")
	}
}
