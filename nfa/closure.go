package nfa

import (
	"github.com/kntjspr/automata-new/internal/set"
	"github.com/kntjspr/automata-new/symbol"
)

// EpsilonClosure returns the smallest superset of ids closed under epsilon
// transitions, computed by worklist (spec.md §4.3).
func (n NFA) EpsilonClosure(ids *set.StateSet) *set.StateSet {
	closure := set.New()
	var worklist []symbol.StateID
	for _, id := range ids.Sorted() {
		closure.Add(id)
		worklist = append(worklist, id)
	}
	for len(worklist) > 0 {
		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, t := range n.transitions {
			if t.Eps && t.From == id && !closure.Contains(t.To) {
				closure.Add(t.To)
				worklist = append(worklist, t.To)
			}
		}
	}
	return closure
}

// Move returns the set of targets of non-epsilon transitions from any state
// in ids on symbol sym (spec.md §4.3).
func (n NFA) Move(ids *set.StateSet, sym symbol.Symbol) *set.StateSet {
	out := set.New()
	for _, t := range n.transitions {
		if !t.Eps && t.Symbol == sym && ids.Contains(t.From) {
			out.Add(t.To)
		}
	}
	return out
}

// ExtendedDelta computes epsilonClosure({start}), then for each input
// symbol applies epsilonClosure(move(...)) (spec.md §4.3).
func (n NFA) ExtendedDelta(start *set.StateSet, w []byte) *set.StateSet {
	cur := n.EpsilonClosure(start)
	for _, c := range w {
		moved := n.Move(cur, c)
		cur = n.EpsilonClosure(moved)
	}
	return cur
}

// Accepts reports whether w is accepted: extendedDelta({start}, w)
// intersects the accepting set.
func (n NFA) Accepts(w string) bool {
	startSet := set.FromSlice([]symbol.StateID{n.start})
	final := n.ExtendedDelta(startSet, []byte(w))
	accepting := set.FromSlice(n.AcceptingStates())
	return final.Intersects(accepting)
}

// ExecutionStep records one step of TraceExecution: either an epsilon
// expansion (IsEpsilonMove true, ConsumedSymbol meaningless) or a consuming
// move on ConsumedSymbol.
type ExecutionStep struct {
	CurrentStates []symbol.StateID
	ConsumedSymbol symbol.Symbol
	NextStates    []symbol.StateID
	IsEpsilonMove bool
}

// TraceExecution records, as a sequence of steps, each epsilon-closure
// expansion and each consuming move performed while matching w (spec.md
// §4.3).
func (n NFA) TraceExecution(w string) []ExecutionStep {
	var steps []ExecutionStep

	cur := set.FromSlice([]symbol.StateID{n.start})
	closed := n.EpsilonClosure(cur)
	if closed.Len() != cur.Len() || !sameSet(cur, closed) {
		steps = append(steps, ExecutionStep{
			CurrentStates: cur.Sorted(),
			IsEpsilonMove: true,
			NextStates:    closed.Sorted(),
		})
	}
	cur = closed

	for _, c := range []byte(w) {
		moved := n.Move(cur, c)
		steps = append(steps, ExecutionStep{
			CurrentStates:  cur.Sorted(),
			ConsumedSymbol: c,
			NextStates:     moved.Sorted(),
		})
		closed = n.EpsilonClosure(moved)
		if !sameSet(moved, closed) {
			steps = append(steps, ExecutionStep{
				CurrentStates: moved.Sorted(),
				IsEpsilonMove: true,
				NextStates:    closed.Sorted(),
			})
		}
		cur = closed
	}
	return steps
}

func sameSet(a, b *set.StateSet) bool {
	return a.Key() == b.Key()
}
