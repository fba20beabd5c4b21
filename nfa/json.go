package nfa

import (
	"encoding/json"
	"fmt"

	"github.com/kntjspr/automata-new/internal/jsonutil"
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

type jsonNFA struct {
	StartState  symbol.StateID   `json:"startState"`
	States      []jsonState      `json:"states"`
	Transitions []jsonTransition `json:"transitions"`
}

// ToJSON renders n's canonical JSON representation (spec.md §4.7).
func (n NFA) ToJSON() ([]byte, error) {
	jn := jsonNFA{StartState: n.start}
	for _, s := range n.states {
		jn.States = append(jn.States, jsonState{ID: s.ID, Label: s.Label, Accepting: s.Accepting, Start: s.Start})
	}
	for _, t := range n.transitions {
		jn.Transitions = append(jn.Transitions, jsonTransition{From: t.From, To: t.To, Symbol: jsonutil.EncodeSymbol(t.Symbol, t.Eps)})
	}
	return json.Marshal(jn)
}

// FromJSON reconstructs an NFA from the output of ToJSON.
func FromJSON(data []byte) (NFA, error) {
	var jn jsonNFA
	if err := json.Unmarshal(data, &jn); err != nil {
		return NFA{}, fmt.Errorf("nfa: %w", err)
	}
	out := newNFA()
	for _, s := range jn.States {
		id := out.AddState(s.Label, s.Accepting)
		if s.Start {
			if err := out.SetStart(id); err != nil {
				return NFA{}, err
			}
		}
	}
	for _, t := range jn.Transitions {
		sym, eps := jsonutil.DecodeSymbol(t.Symbol)
		if eps {
			if err := out.AddEpsilonTransition(t.From, t.To); err != nil {
				return NFA{}, err
			}
		} else {
			if err := out.AddTransition(t.From, t.To, sym); err != nil {
				return NFA{}, err
			}
		}
	}
	return out, nil
}
