package dfa

import (
	"encoding/json"
	"fmt"

	"github.com/kntjspr/automata-new/symbol"
)

type jsonState struct {
	ID        symbol.StateID `json:"id"`
	Label     string         `json:"label"`
	Accepting bool           `json:"accepting"`
	Start     bool           `json:"start"`
}

type jsonTransition struct {
	From   symbol.StateID `json:"from"`
	To     symbol.StateID `json:"to"`
	Symbol string         `json:"symbol"`
}

type jsonDFA struct {
	StartState  symbol.StateID   `json:"startState"`
	States      []jsonState      `json:"states"`
	Transitions []jsonTransition `json:"transitions"`
}

// ToJSON renders d's canonical JSON representation (spec.md §4.7), using
// the same field order and epsilon-free symbol encoding as package nfa's
// ToJSON (DFA transitions never carry epsilon, so every symbol renders as
// its literal byte).
func (d *DFA) ToJSON() ([]byte, error) {
	jd := jsonDFA{StartState: d.start}
	for _, s := range d.states {
		jd.States = append(jd.States, jsonState{ID: s.ID, Label: s.Label, Accepting: s.Accepting, Start: s.Start})
	}
	for _, t := range d.transitions {
		jd.Transitions = append(jd.Transitions, jsonTransition{From: t.From, To: t.To, Symbol: string([]byte{t.Symbol})})
	}
	return json.Marshal(jd)
}

// FromJSON reconstructs a DFA from the output of ToJSON.
func FromJSON(data []byte) (*DFA, error) {
	var jd jsonDFA
	if err := json.Unmarshal(data, &jd); err != nil {
		return nil, fmt.Errorf("dfa: %w", err)
	}
	out := New()
	for _, s := range jd.States {
		id := out.AddState(s.Label, s.Accepting)
		if s.Start {
			if err := out.SetStart(id); err != nil {
				return nil, err
			}
		}
	}
	for _, t := range jd.Transitions {
		if len(t.Symbol) == 0 {
			return nil, fmt.Errorf("dfa: transition %d->%d has no symbol", t.From, t.To)
		}
		if err := out.AddTransition(t.From, t.To, t.Symbol[0]); err != nil {
			return nil, err
		}
	}
	return out, nil
}
