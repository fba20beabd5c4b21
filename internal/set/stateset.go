// Package set provides a sparse set of StateIDs with O(1) insertion and
// membership testing, used by epsilon-closure, move, and subset
// construction. It is grounded on the sparse-set idiom used elsewhere in
// the example corpus for NFA state tracking, generalized here to expose a
// stable sorted dense view (needed for subset-construction's set-hash
// dedup) in addition to O(1) membership.
package set

import (
	"sort"

	"github.com/kntjspr/automata-new/symbol"
)

// StateSet is a set of symbol.StateID values that supports O(1) insertion
// and membership testing. It is backed by a map only; Sorted builds the
// ordered list for iteration on each call.
type StateSet struct {
	members map[symbol.StateID]struct{}
}

// New creates an empty StateSet.
func New() *StateSet {
	return &StateSet{members: make(map[symbol.StateID]struct{})}
}

// FromSlice creates a StateSet containing exactly the given ids.
func FromSlice(ids []symbol.StateID) *StateSet {
	s := New()
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id into the set. No-op if already present.
func (s *StateSet) Add(id symbol.StateID) {
	s.members[id] = struct{}{}
}

// Contains reports whether id is in the set.
func (s *StateSet) Contains(id symbol.StateID) bool {
	_, ok := s.members[id]
	return ok
}

// Len returns the number of elements.
func (s *StateSet) Len() int { return len(s.members) }

// Empty reports whether the set has no elements.
func (s *StateSet) Empty() bool { return len(s.members) == 0 }

// Sorted returns the elements of the set in ascending order. The result is
// a new slice; mutating it does not affect the set.
func (s *StateSet) Sorted() []symbol.StateID {
	out := make([]symbol.StateID, 0, len(s.members))
	for id := range s.members {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Intersects reports whether s and other share at least one element.
func (s *StateSet) Intersects(other *StateSet) bool {
	small, big := s, other
	if len(big.members) < len(small.members) {
		small, big = big, small
	}
	for id := range small.members {
		if big.Contains(id) {
			return true
		}
	}
	return false
}

// Key returns a canonical string key for the set, suitable for use as a map
// key when deduplicating sets-of-states during subset construction or
// partition refinement. Equal sets (by contents) always produce equal keys.
func (s *StateSet) Key() string {
	sorted := s.Sorted()
	buf := make([]byte, 0, len(sorted)*5)
	for i, id := range sorted {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendUint(buf, uint64(id))
	}
	return string(buf)
}

func appendUint(buf []byte, v uint64) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}
