package set

import (
	"testing"

	"github.com/kntjspr/automata-new/symbol"
)

func TestAddContainsLen(t *testing.T) {
	s := New()
	if !s.Empty() {
		t.Error("new set should be empty")
	}
	s.Add(3)
	s.Add(5)
	s.Add(3)
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Contains(3) || !s.Contains(5) {
		t.Error("expected 3 and 5 to be members")
	}
	if s.Contains(7) {
		t.Error("7 should not be a member")
	}
}

func TestSortedIsAscending(t *testing.T) {
	s := FromSlice([]symbol.StateID{5, 1, 3})
	sorted := s.Sorted()
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1] >= sorted[i] {
			t.Errorf("Sorted() = %v, not strictly ascending", sorted)
		}
	}
	if len(sorted) != 3 || sorted[0] != 1 || sorted[1] != 3 || sorted[2] != 5 {
		t.Errorf("Sorted() = %v, want [1 3 5]", sorted)
	}
}

func TestKeyIsStableAcrossInsertionOrder(t *testing.T) {
	a := New()
	a.Add(1)
	a.Add(2)
	a.Add(10)

	b := New()
	b.Add(10)
	b.Add(1)
	b.Add(2)

	if a.Key() != b.Key() {
		t.Errorf("Key() differs for equal sets: %q vs %q", a.Key(), b.Key())
	}
}

func TestKeyDiffersForDifferentSets(t *testing.T) {
	a := New()
	a.Add(1)
	b := New()
	b.Add(2)
	if a.Key() == b.Key() {
		t.Error("different sets should not share a key")
	}
}

func TestIntersects(t *testing.T) {
	a := New()
	a.Add(1)
	a.Add(2)
	b := New()
	b.Add(2)
	b.Add(3)
	c := New()
	c.Add(4)

	if !a.Intersects(b) {
		t.Error("a and b share element 2")
	}
	if a.Intersects(c) {
		t.Error("a and c share nothing")
	}
}
