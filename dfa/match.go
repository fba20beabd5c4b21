package dfa

import "github.com/kntjspr/automata-new/symbol"

// Match is a half-open [Start, End) byte range within the scanned input.
type Match struct {
	Start int
	End   int
}

// Accepts reports whether d has a transition path from its start state
// consuming all of w that ends on an accepting state. No transition on some
// byte of w means reject, not error (spec.md §4.4).
func (d *DFA) Accepts(w string) bool {
	cur := d.start
	for _, c := range []byte(w) {
		next, ok := d.NextState(cur, c)
		if !ok {
			return false
		}
		cur = next
	}
	return d.states[cur].Accepting
}

// FindAllMatches scans every start offset of input and records every
// accepting end offset reachable from it, including the zero-length match
// at a start offset whose state is itself accepting before consuming
// anything. Results are ordered by ascending start, then ascending end,
// which falls out directly from the double loop below without an explicit
// sort.
func (d *DFA) FindAllMatches(input string) []Match {
	b := []byte(input)
	var matches []Match
	for start := 0; start <= len(b); start++ {
		cur := d.start
		if d.states[cur].Accepting {
			matches = append(matches, Match{Start: start, End: start})
		}
		for end := start; end < len(b); end++ {
			next, ok := d.NextState(cur, b[end])
			if !ok {
				break
			}
			cur = next
			if d.states[cur].Accepting {
				matches = append(matches, Match{Start: start, End: end + 1})
			}
		}
	}
	return matches
}

// TraceStep records one consuming transition during TraceExecution.
type TraceStep struct {
	From   symbol.StateID
	To     symbol.StateID
	Symbol symbol.Symbol
	Ok     bool
}

// TraceExecution runs w against d from the start state and records every
// step, stopping at the first symbol with no transition (Ok false on that
// final recorded step; no further steps follow it).
func (d *DFA) TraceExecution(w string) []TraceStep {
	var steps []TraceStep
	cur := d.start
	for _, c := range []byte(w) {
		next, ok := d.NextState(cur, c)
		steps = append(steps, TraceStep{From: cur, To: next, Symbol: c, Ok: ok})
		if !ok {
			break
		}
		cur = next
	}
	return steps
}
