package pda

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
	From        symbol.StateID `json:"from"`
	To          symbol.StateID `json:"to"`
	InputSymbol string         `json:"inputSymbol"`
	PopSymbol   string         `json:"popSymbol"`
	PushString  string         `json:"pushString"`
}

type jsonPDA struct {
	StartState         symbol.StateID   `json:"startState"`
	InitialStackSymbol string           `json:"initialStackSymbol"`
	States             []jsonState      `json:"states"`
	Transitions        []jsonTransition `json:"transitions"`
}

// ToJSON renders p's canonical JSON representation (spec.md §4.7).
func (p *PDA) ToJSON() ([]byte, error) {
	jp := jsonPDA{
		StartState:         p.start,
		InitialStackSymbol: jsonutil.EncodeSymbol(p.initialStackSymbol, false),
	}
	for _, s := range p.states {
		jp.States = append(jp.States, jsonState{ID: s.ID, Label: s.Label, Accepting: s.Accepting, Start: s.Start})
	}
	for _, t := range p.transitions {
		jp.Transitions = append(jp.Transitions, jsonTransition{
			From:        t.From,
			To:          t.To,
			InputSymbol: jsonutil.EncodeSymbol(t.InputSymbol, t.InputEps),
			PopSymbol:   jsonutil.EncodeSymbol(t.PopSymbol, t.PopEps),
			PushString:  string(t.PushString),
		})
	}
	return json.Marshal(jp)
}

// FromJSON reconstructs a PDA from the output of ToJSON.
func FromJSON(data []byte) (*PDA, error) {
	var jp jsonPDA
	if err := json.Unmarshal(data, &jp); err != nil {
		return nil, fmt.Errorf("pda: %w", err)
	}
	out := New()
	if sym, eps := jsonutil.DecodeSymbol(jp.InitialStackSymbol); !eps {
		out.SetInitialStackSymbol(sym)
	}
	for _, s := range jp.States {
		id := out.AddState(s.Label, s.Accepting)
		if s.Start {
			if err := out.SetStart(id); err != nil {
				return nil, err
			}
		}
	}
	for _, t := range jp.Transitions {
		inputSym, inputEps := jsonutil.DecodeSymbol(t.InputSymbol)
		popSym, popEps := jsonutil.DecodeSymbol(t.PopSymbol)
		if err := out.AddTransition(t.From, t.To, inputSym, inputEps, popSym, popEps, []symbol.Symbol(t.PushString)); err != nil {
			return nil, err
		}
	}
	return out, nil
}
