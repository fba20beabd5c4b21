package dfa

import (
	"github.com/kntjspr/automata-new/symbol"
)

type pairKey struct {
	a symbol.StateID
	b symbol.StateID
}

// Intersect builds the product DFA accepting L(a) ∩ L(b) (spec.md §4.5):
// states are pairs (p, q), a pair is accepting iff both components are
// accepting, and a transition exists from (p, q) on c only when both a and
// b have a transition on c (no transition in either factor means no
// transition in the product, so the product naturally rejects anything
// one side cannot consume).
func Intersect(a, b *DFA) (*DFA, error) {
	out := New()
	pairState := make(map[pairKey]symbol.StateID)
	alphabet := unionAlphabet(a, b)

	ensure := func(p, q symbol.StateID) symbol.StateID {
		key := pairKey{p, q}
		if id, ok := pairState[key]; ok {
			return id
		}
		accepting := a.states[p].Accepting && b.states[q].Accepting
		id := out.AddState("", accepting)
		pairState[key] = id
		return id
	}

	startID := ensure(a.start, b.start)
	if err := out.SetStart(startID); err != nil {
		return nil, err
	}

	type pair struct{ p, q symbol.StateID }
	worklist := []pair{{a.start, b.start}}
	visited := map[pairKey]bool{{a.start, b.start}: true}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		fromID := pairState[pairKey{cur.p, cur.q}]

		for _, c := range alphabet {
			pNext, pOK := a.NextState(cur.p, c)
			qNext, qOK := b.NextState(cur.q, c)
			if !pOK || !qOK {
				continue
			}
			key := pairKey{pNext, qNext}
			toID := ensure(pNext, qNext)
			if !visited[key] {
				visited[key] = true
				worklist = append(worklist, pair{pNext, qNext})
			}
			if err := out.AddTransition(fromID, toID, c); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Union builds the product DFA accepting L(a) ∪ L(b) (spec.md §4.5). When
// only one factor has a transition on c, the product follows that factor
// and pairs it with the reserved sink component (symbol.InvalidStateID,
// treated as permanently non-accepting and dead) instead of rejecting, so
// the union correctly keeps accepting on whichever side still matches. The
// sink state, once entered on a given side, never produces a transition
// back into a real state on that side for any symbol.
func Union(a, b *DFA) (*DFA, error) {
	out := New()
	pairState := make(map[pairKey]symbol.StateID)
	alphabet := unionAlphabet(a, b)

	isAccepting := func(side *DFA, id symbol.StateID) bool {
		return id != symbol.InvalidStateID && side.states[id].Accepting
	}

	ensure := func(p, q symbol.StateID) symbol.StateID {
		key := pairKey{p, q}
		if id, ok := pairState[key]; ok {
			return id
		}
		accepting := isAccepting(a, p) || isAccepting(b, q)
		id := out.AddState("", accepting)
		pairState[key] = id
		return id
	}

	startID := ensure(a.start, b.start)
	if err := out.SetStart(startID); err != nil {
		return nil, err
	}

	type pair struct{ p, q symbol.StateID }
	worklist := []pair{{a.start, b.start}}
	visited := map[pairKey]bool{{a.start, b.start}: true}

	nextOrSink := func(side *DFA, id symbol.StateID, c symbol.Symbol) symbol.StateID {
		if id == symbol.InvalidStateID {
			return symbol.InvalidStateID
		}
		to, ok := side.NextState(id, c)
		if !ok {
			return symbol.InvalidStateID
		}
		return to
	}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		fromID := pairState[pairKey{cur.p, cur.q}]

		for _, c := range alphabet {
			pNext := nextOrSink(a, cur.p, c)
			qNext := nextOrSink(b, cur.q, c)
			if pNext == symbol.InvalidStateID && qNext == symbol.InvalidStateID {
				continue
			}
			key := pairKey{pNext, qNext}
			toID := ensure(pNext, qNext)
			if !visited[key] {
				visited[key] = true
				worklist = append(worklist, pair{pNext, qNext})
			}
			if err := out.AddTransition(fromID, toID, c); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Complement builds a DFA accepting the complement of L(a) by flipping
// every state's accepting flag, without first completing a (adding an
// explicit sink state for missing transitions). This is deliberate (spec.md
// §9): on any input where a has no transition at all, the complement also
// has none, so both a and its complement reject that input rather than the
// complement accepting it. Callers who need a total complement must
// complete a first.
func Complement(a *DFA) *DFA {
	out := New()
	for _, s := range a.states {
		out.AddState(s.Label, !s.Accepting)
	}
	if a.hasStart {
		_ = out.SetStart(a.start)
	}
	for _, t := range a.transitions {
		_ = out.AddTransition(t.From, t.To, t.Symbol)
	}
	return out
}

func unionAlphabet(a, b *DFA) []symbol.Symbol {
	seen := make(map[symbol.Symbol]bool)
	for _, c := range a.Alphabet() {
		seen[c] = true
	}
	for _, c := range b.Alphabet() {
		seen[c] = true
	}
	out := make([]symbol.Symbol, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
