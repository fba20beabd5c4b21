// Package dfa implements the deterministic finite automaton of spec.md
// §4.4: an explicit transition table enforcing the determinism invariant,
// subset construction from an nfa.NFA, Hopcroft-style minimization, the
// three product operations, and matching.
//
// Grounded on the same Builder/error.go idiom as package nfa, generalized
// from the teacher's byte-range-tagged DFA states to the explicit
// (StateID, Symbol) -> StateID table spec.md §3/§4.4 requires.
package dfa

import (
	"fmt"

	"github.com/kntjspr/automata-new/coreerr"
	"github.com/kntjspr/automata-new/symbol"
)

// Transition is a (from, to, symbol) triple. DFA transitions never carry
// the epsilon symbol.
type Transition struct {
	From   symbol.StateID
	To     symbol.StateID
	Symbol symbol.Symbol
}

type tableKey struct {
	From symbol.StateID
	Sym  symbol.Symbol
}

// DFA is a deterministic finite automaton: at most one transition per
// (state, symbol) pair, enforced by AddTransition.
type DFA struct {
	states      []symbol.State
	transitions []Transition
	table       map[tableKey]symbol.StateID
	alphabet    map[symbol.Symbol]bool
	start       symbol.StateID
	hasStart    bool
}

// New creates an empty DFA.
func New() *DFA {
	return &DFA{table: make(map[tableKey]symbol.StateID), alphabet: make(map[symbol.Symbol]bool)}
}

// AddState appends a new state and returns its id.
func (d *DFA) AddState(label string, accepting bool) symbol.StateID {
	id := symbol.StateID(len(d.states))
	d.states = append(d.states, symbol.NewState(id, label, accepting, false))
	return id
}

// SetStart marks id as the unique start state.
func (d *DFA) SetStart(id symbol.StateID) error {
	if int(id) >= len(d.states) {
		return &coreerr.InvalidStateError{ID: id}
	}
	if d.hasStart {
		return coreerr.NewInvariantError("start state already set to %d", d.start)
	}
	d.states[id].Start = true
	d.start = id
	d.hasStart = true
	return nil
}

// SetAccepting sets or clears the accepting flag on id.
func (d *DFA) SetAccepting(id symbol.StateID, accepting bool) error {
	if int(id) >= len(d.states) {
		return &coreerr.InvalidStateError{ID: id}
	}
	d.states[id].Accepting = accepting
	return nil
}

// AddTransition adds from -sym-> to. Returns an InvariantError if a
// transition for (from, sym) already exists (the determinism invariant,
// spec.md §4.4).
func (d *DFA) AddTransition(from, to symbol.StateID, sym symbol.Symbol) error {
	if int(from) >= len(d.states) {
		return &coreerr.InvalidStateError{ID: from}
	}
	if int(to) >= len(d.states) {
		return &coreerr.InvalidStateError{ID: to}
	}
	key := tableKey{From: from, Sym: sym}
	if existing, ok := d.table[key]; ok {
		return coreerr.NewInvariantError("conflicting transition for state %d on symbol %q: already goes to %d, cannot also go to %d", from, sym, existing, to)
	}
	d.table[key] = to
	d.transitions = append(d.transitions, Transition{From: from, To: to, Symbol: sym})
	d.alphabet[sym] = true
	return nil
}

// NextState returns the state reached from 'from' on 'sym', and whether
// such a transition exists.
func (d *DFA) NextState(from symbol.StateID, sym symbol.Symbol) (symbol.StateID, bool) {
	to, ok := d.table[tableKey{From: from, Sym: sym}]
	return to, ok
}

// Start returns the start state id.
func (d *DFA) Start() symbol.StateID { return d.start }

// StateCount returns the number of states.
func (d *DFA) StateCount() int { return len(d.states) }

// States returns the states in insertion order.
func (d *DFA) States() []symbol.State { return d.states }

// Transitions returns all transitions in insertion order.
func (d *DFA) Transitions() []Transition { return d.transitions }

// AcceptingStates returns the accepting state ids in ascending order.
func (d *DFA) AcceptingStates() []symbol.StateID {
	var out []symbol.StateID
	for _, s := range d.states {
		if s.Accepting {
			out = append(out, s.ID)
		}
	}
	return out
}

// Alphabet returns the DFA's explicit alphabet set (spec.md §4.1: the DFA
// maintains this explicitly, kept in sync as transitions are added), in
// ascending order.
func (d *DFA) Alphabet() []symbol.Symbol {
	out := make([]symbol.Symbol, 0, len(d.alphabet))
	for s := range d.alphabet {
		out = append(out, s)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states=%d, transitions=%d, start=%d}", len(d.states), len(d.transitions), d.start)
}
