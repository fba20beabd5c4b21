// Package pda implements the pushdown automaton simulator of spec.md
// §4.5: an explicit state/transition store with stack operations,
// configuration BFS with visited-set cycle pruning and an iteration
// budget, two acceptance modes, and accepting-path reconstruction.
//
// Grounded on the same StateID/Builder idiom as packages nfa and dfa,
// generalized to carry the stack-operation fields (popSymbol,
// pushString) the original C++ PDATransition type exposes (original_source
// include/automata/pda.hpp), which none of the Go example engines needed.
package pda

import (
	"fmt"

	"github.com/kntjspr/automata-new/coreerr"
	"github.com/kntjspr/automata-new/symbol"
)

// Transition is a PDATransition (spec.md §3): from -> to, firing when the
// next input byte equals InputSymbol (or InputSymbol is epsilon) and the
// stack top equals PopSymbol (or PopSymbol is epsilon), popping PopSymbol
// (unless epsilon) and then pushing PushString bottom-to-top.
type Transition struct {
	From        symbol.StateID
	To          symbol.StateID
	InputSymbol symbol.Symbol
	InputEps    bool
	PopSymbol   symbol.Symbol
	PopEps      bool
	PushString  []symbol.Symbol
}

// PDA is a pushdown automaton.
type PDA struct {
	states             []symbol.State
	transitions        []Transition
	start              symbol.StateID
	hasStart           bool
	initialStackSymbol symbol.Symbol
}

// New creates an empty PDA whose initial stack symbol is
// symbol.StackBottom.
func New() *PDA {
	return &PDA{initialStackSymbol: symbol.StackBottom}
}

// AddState appends a new state and returns its id.
func (p *PDA) AddState(label string, accepting bool) symbol.StateID {
	id := symbol.StateID(len(p.states))
	p.states = append(p.states, symbol.NewState(id, label, accepting, false))
	return id
}

// SetStart marks id as the unique start state.
func (p *PDA) SetStart(id symbol.StateID) error {
	if int(id) >= len(p.states) {
		return &coreerr.InvalidStateError{ID: id}
	}
	if p.hasStart {
		return coreerr.NewInvariantError("start state already set to %d", p.start)
	}
	p.states[id].Start = true
	p.start = id
	p.hasStart = true
	return nil
}

// SetAccepting sets or clears the accepting flag on id.
func (p *PDA) SetAccepting(id symbol.StateID, accepting bool) error {
	if int(id) >= len(p.states) {
		return &coreerr.InvalidStateError{ID: id}
	}
	p.states[id].Accepting = accepting
	return nil
}

// SetInitialStackSymbol overrides the default initial stack symbol.
func (p *PDA) SetInitialStackSymbol(s symbol.Symbol) { p.initialStackSymbol = s }

// InitialStackSymbol returns the designated initial stack symbol.
func (p *PDA) InitialStackSymbol() symbol.Symbol { return p.initialStackSymbol }

// AddTransition adds a transition consuming inputSym (or epsilon) and
// popping popSym (or epsilon), pushing pushString bottom-to-top.
func (p *PDA) AddTransition(from, to symbol.StateID, inputSym symbol.Symbol, inputEps bool, popSym symbol.Symbol, popEps bool, pushString []symbol.Symbol) error {
	if int(from) >= len(p.states) {
		return &coreerr.InvalidStateError{ID: from}
	}
	if int(to) >= len(p.states) {
		return &coreerr.InvalidStateError{ID: to}
	}
	p.transitions = append(p.transitions, Transition{
		From: from, To: to,
		InputSymbol: inputSym, InputEps: inputEps,
		PopSymbol: popSym, PopEps: popEps,
		PushString: append([]symbol.Symbol(nil), pushString...),
	})
	return nil
}

// AddEpsilonTransition adds a transition that consumes no input and
// performs no stack operation beyond the push (common for CFG-to-PDA
// epsilon moves).
func (p *PDA) AddEpsilonTransition(from, to symbol.StateID, pushString []symbol.Symbol) error {
	return p.AddTransition(from, to, 0, true, 0, true, pushString)
}

// Start returns the start state id.
func (p *PDA) Start() symbol.StateID { return p.start }

// StateCount returns the number of states.
func (p *PDA) StateCount() int { return len(p.states) }

// States returns the states in insertion order.
func (p *PDA) States() []symbol.State { return p.states }

// Transitions returns all transitions in insertion order.
func (p *PDA) Transitions() []Transition { return p.transitions }

// AcceptingStates returns the accepting state ids in ascending order.
func (p *PDA) AcceptingStates() []symbol.StateID {
	var out []symbol.StateID
	for _, s := range p.states {
		if s.Accepting {
			out = append(out, s.ID)
		}
	}
	return out
}

func (p *PDA) isAccepting(id symbol.StateID) bool {
	return p.states[id].Accepting
}

func (p *PDA) String() string {
	return fmt.Sprintf("PDA{states=%d, transitions=%d, start=%d}", len(p.states), len(p.transitions), p.start)
}
