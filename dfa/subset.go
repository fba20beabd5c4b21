package dfa

import (
	"github.com/kntjspr/automata-new/internal/set"
	"github.com/kntjspr/automata-new/nfa"
	"github.com/kntjspr/automata-new/symbol"
)

// FromNFA builds a DFA from n by subset construction (spec.md §4.4): the
// DFA start is epsilonClosure({nfa.start}); for each newly discovered
// subset S and each symbol c in the NFA's alphabet, T =
// epsilonClosure(move(S, c)) is computed, skipped if empty, and otherwise
// given a DFA state (created if new) with a transition S -c-> T. T is
// accepting iff it intersects the NFA's accepting set. Subset equality is
// by set contents, via the worklist-plus-set-hash idiom shared with
// package nfa's closure computations.
func FromNFA(n nfa.NFA) (*DFA, error) {
	d := New()
	acceptingNFA := set.FromSlice(n.AcceptingStates())
	alphabet := n.Alphabet()

	subsetToState := make(map[string]symbol.StateID)
	var worklist []*set.StateSet

	ensureState := func(subset *set.StateSet) (symbol.StateID, bool) {
		key := subset.Key()
		if id, ok := subsetToState[key]; ok {
			return id, false
		}
		id := d.AddState("", subset.Intersects(acceptingNFA))
		subsetToState[key] = id
		return id, true
	}

	startSubset := n.EpsilonClosure(set.FromSlice([]symbol.StateID{n.Start()}))
	startID, _ := ensureState(startSubset)
	if err := d.SetStart(startID); err != nil {
		return nil, err
	}
	worklist = append(worklist, startSubset)

	for len(worklist) > 0 {
		subset := worklist[0]
		worklist = worklist[1:]
		fromID := subsetToState[subset.Key()]

		for _, c := range alphabet {
			moved := n.Move(subset, c)
			if moved.Empty() {
				continue
			}
			target := n.EpsilonClosure(moved)
			toID, isNew := ensureState(target)
			if isNew {
				worklist = append(worklist, target)
			}
			if err := d.AddTransition(fromID, toID, c); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}
