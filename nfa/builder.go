package nfa

import (
	"github.com/kntjspr/automata-new/coreerr"
	"github.com/kntjspr/automata-new/symbol"
)

// Clone returns an independent copy of n whose states and transitions do
// not alias n's. Used by Plus's desugaring (spec.md §4.3, §9): "the AST
// holds a shared child; the NFA builder must duplicate that subtree during
// compilation so state ids remain disjoint." Clone is the duplication
// primitive that guarantees that; a builder that forgets to clone before
// reusing an NFA produces malformed automata (the bug spec.md §9 calls
// out).
func Clone(n NFA) NFA {
	out := newNFA()
	out.states = append([]symbol.State(nil), n.states...)
	out.transitions = append([]Transition(nil), n.transitions...)
	out.start = n.start
	out.hasStart = n.hasStart
	return out
}

// importInto copies src's states and transitions into dst, offsetting
// every state id by the number of states already in dst. The imported
// states are copied with Accepting cleared (callers decide which mapped
// states to re-mark accepting) and Start cleared (dst.start is set by the
// caller). It returns the id map old->new and the mapped start id.
func importInto(dst *NFA, src NFA) (idMap map[symbol.StateID]symbol.StateID, mappedStart symbol.StateID) {
	offset := symbol.StateID(len(dst.states))
	idMap = make(map[symbol.StateID]symbol.StateID, len(src.states))
	for _, s := range src.states {
		newID := s.ID + offset
		idMap[s.ID] = newID
		dst.states = append(dst.states, symbol.State{
			ID:    newID,
			Label: symbol.DefaultLabel(newID),
		})
	}
	for _, t := range src.transitions {
		dst.transitions = append(dst.transitions, Transition{
			From:   idMap[t.From],
			To:     idMap[t.To],
			Symbol: t.Symbol,
			Eps:    t.Eps,
		})
	}
	return idMap, idMap[src.start]
}

func mapIDs(idMap map[symbol.StateID]symbol.StateID, ids []symbol.StateID) []symbol.StateID {
	out := make([]symbol.StateID, len(ids))
	for i, id := range ids {
		out[i] = idMap[id]
	}
	return out
}

// Empty builds the two-state NFA start -eps-> accept, accepting only the
// empty string.
func Empty() NFA {
	n := newNFA()
	start := n.AddState("", false)
	accept := n.AddState("", true)
	_ = n.SetStart(start)
	_ = n.AddEpsilonTransition(start, accept)
	return n
}

// Single builds the two-state NFA start -c-> accept, accepting the single
// symbol c.
func Single(c symbol.Symbol) NFA {
	n := newNFA()
	start := n.AddState("", false)
	accept := n.AddState("", true)
	_ = n.SetStart(start)
	_ = n.AddTransition(start, accept, c)
	return n
}

// Union builds a | b: a new start epsilon-branches to both operands'
// starts; both operands' old accept states epsilon-join a new accept
// state; the operands' own accept flags are cleared (spec.md §4.3).
// Union consumes a and b.
func Union(a, b NFA) (NFA, error) {
	if err := a.checkLive(); err != nil {
		return NFA{}, err
	}
	if err := b.checkLive(); err != nil {
		return NFA{}, err
	}
	aAccepts := a.AcceptingStates()
	bAccepts := b.AcceptingStates()
	a.markConsumed()
	b.markConsumed()

	out := newNFA()
	newStart := out.AddState("", false)
	idMapA, aStart := importInto(&out, a)
	idMapB, bStart := importInto(&out, b)
	newAccept := out.AddState("", true)

	_ = out.SetStart(newStart)
	_ = out.AddEpsilonTransition(newStart, aStart)
	_ = out.AddEpsilonTransition(newStart, bStart)
	for _, id := range mapIDs(idMapA, aAccepts) {
		_ = out.AddEpsilonTransition(id, newAccept)
	}
	for _, id := range mapIDs(idMapB, bAccepts) {
		_ = out.AddEpsilonTransition(id, newAccept)
	}
	return out, nil
}

// Concat builds ab: a's accept states epsilon-join b's start; a's old
// accept flags are cleared; b's accept states are the result's accepts
// (spec.md §4.3). Concat consumes a and b.
func Concat(a, b NFA) (NFA, error) {
	if err := a.checkLive(); err != nil {
		return NFA{}, err
	}
	if err := b.checkLive(); err != nil {
		return NFA{}, err
	}
	aAccepts := a.AcceptingStates()
	bAccepts := b.AcceptingStates()
	a.markConsumed()
	b.markConsumed()

	out := newNFA()
	idMapA, aStart := importInto(&out, a)
	idMapB, bStart := importInto(&out, b)

	_ = out.SetStart(aStart)
	for _, id := range mapIDs(idMapA, aAccepts) {
		_ = out.AddEpsilonTransition(id, bStart)
	}
	for _, id := range mapIDs(idMapB, bAccepts) {
		_ = out.SetAccepting(id, true)
	}
	return out, nil
}

// Star builds a*: a new start epsilon-branches to x's start and to a new
// accept; x's accept states epsilon-loop back to x's start and also
// epsilon-join the new accept (spec.md §4.3). Star consumes x.
func Star(x NFA) (NFA, error) {
	if err := x.checkLive(); err != nil {
		return NFA{}, err
	}
	xAccepts := x.AcceptingStates()
	x.markConsumed()

	out := newNFA()
	newStart := out.AddState("", false)
	idMapX, xStart := importInto(&out, x)
	newAccept := out.AddState("", true)

	_ = out.SetStart(newStart)
	_ = out.AddEpsilonTransition(newStart, xStart)
	_ = out.AddEpsilonTransition(newStart, newAccept)
	for _, id := range mapIDs(idMapX, xAccepts) {
		_ = out.AddEpsilonTransition(id, xStart)
		_ = out.AddEpsilonTransition(id, newAccept)
	}
	return out, nil
}

// Plus builds x+ by desugaring to concat(x, star(x')) where x' is a fresh
// clone of x, exactly as spec.md §4.3 specifies. Plus consumes x.
func Plus(x NFA) (NFA, error) {
	if err := x.checkLive(); err != nil {
		return NFA{}, err
	}
	xPrime := Clone(x)

	starred, err := Star(xPrime)
	if err != nil {
		return NFA{}, err
	}
	return Concat(x, starred)
}

// Optional builds x?: a new start epsilon-branches to x's start and to a
// new accept; x's accept states epsilon-join the new accept (spec.md
// §4.3). Optional consumes x.
func Optional(x NFA) (NFA, error) {
	if err := x.checkLive(); err != nil {
		return NFA{}, err
	}
	xAccepts := x.AcceptingStates()
	x.markConsumed()

	out := newNFA()
	newStart := out.AddState("", false)
	idMapX, xStart := importInto(&out, x)
	newAccept := out.AddState("", true)

	_ = out.SetStart(newStart)
	_ = out.AddEpsilonTransition(newStart, xStart)
	_ = out.AddEpsilonTransition(newStart, newAccept)
	for _, id := range mapIDs(idMapX, xAccepts) {
		_ = out.AddEpsilonTransition(id, newAccept)
	}
	return out, nil
}

// RepeatN builds the counted repetition x{min,max} (max == -1 for
// unbounded): min required clones concatenated, then either a star clone
// (unbounded) or (max-min) optional clones (spec.md §4.3). RepeatN
// consumes x; it clones x internally as many times as needed, following
// the same "clone before reuse" discipline Plus relies on.
func RepeatN(x NFA, min, max int) (NFA, error) {
	if err := x.checkLive(); err != nil {
		return NFA{}, err
	}
	if min < 0 || (max != -1 && max < min) {
		x.markConsumed()
		return NFA{}, coreerr.NewDomainError("invalid repeat bounds {%d,%d}", min, max)
	}

	clones := make([]NFA, 0, min)
	for i := 0; i < min; i++ {
		clones = append(clones, Clone(x))
	}

	var tail NFA
	var haveTail bool
	if max == -1 {
		tail = Clone(x)
		x.markConsumed()
		starred, err := Star(tail)
		if err != nil {
			return NFA{}, err
		}
		tail = starred
		haveTail = true
	} else {
		x.markConsumed()
		optCount := max - min
		for i := 0; i < optCount; i++ {
			opt, err := Optional(Clone(x))
			if err != nil {
				return NFA{}, err
			}
			if !haveTail {
				tail = opt
				haveTail = true
			} else {
				merged, err := Concat(tail, opt)
				if err != nil {
					return NFA{}, err
				}
				tail = merged
			}
		}
	}

	if len(clones) == 0 && !haveTail {
		return Empty(), nil
	}
	if len(clones) == 0 {
		return tail, nil
	}

	result := clones[0]
	for _, c := range clones[1:] {
		merged, err := Concat(result, c)
		if err != nil {
			return NFA{}, err
		}
		result = merged
	}
	if haveTail {
		merged, err := Concat(result, tail)
		if err != nil {
			return NFA{}, err
		}
		result = merged
	}
	return result, nil
}
