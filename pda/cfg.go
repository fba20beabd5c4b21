package pda

import (
	"github.com/kntjspr/automata-new/coreerr"
	"github.com/kntjspr/automata-new/symbol"
)

// Production is a single CFG rule lhs -> rhs, where rhs is a mix of
// terminal and non-terminal bytes (original_source
// include/automata/pda.hpp's CFG::Production).
type Production struct {
	LHS symbol.Symbol
	RHS []symbol.Symbol
}

// CFG is a context-free grammar over single-byte terminals and
// non-terminals. Supplemental to the regex/PDA core (spec.md §4.5's
// "CFG to PDA" conversion), grounded on original_source's CFG type, which
// the distilled spec.md names but does not give the type's own fields.
type CFG struct {
	StartSymbol  symbol.Symbol
	Terminals    map[symbol.Symbol]bool
	NonTerminals map[symbol.Symbol]bool
	Productions  []Production
}

// NewCFG creates an empty grammar with the given start symbol.
func NewCFG(start symbol.Symbol) *CFG {
	return &CFG{
		StartSymbol:  start,
		Terminals:    make(map[symbol.Symbol]bool),
		NonTerminals: make(map[symbol.Symbol]bool),
	}
}

// AddProduction records lhs -> rhs. lhs is added to the non-terminal set.
func (g *CFG) AddProduction(lhs symbol.Symbol, rhs []symbol.Symbol) {
	g.NonTerminals[lhs] = true
	g.Productions = append(g.Productions, Production{LHS: lhs, RHS: append([]symbol.Symbol(nil), rhs...)})
}

// AddTerminal records a terminal symbol.
func (g *CFG) AddTerminal(s symbol.Symbol) { g.Terminals[s] = true }

// AddNonTerminal records a non-terminal symbol.
func (g *CFG) AddNonTerminal(s symbol.Symbol) { g.NonTerminals[s] = true }

func reverseSymbols(s []symbol.Symbol) []symbol.Symbol {
	out := make([]symbol.Symbol, len(s))
	for i, c := range s {
		out[len(s)-1-i] = c
	}
	return out
}

// ToPDA builds the standard one-loop-state CFG-to-PDA construction of
// spec.md §4.5: from start, an epsilon transition pushes the grammar's
// start symbol; in the loop state, each production A -> w becomes an
// epsilon transition popping A and pushing reverse(w), and each terminal t
// becomes a transition popping t on input t; an epsilon transition popping
// the stack bottom moves to accept. Acceptance is by empty stack (also
// satisfied simultaneously by final state, since accept is reached only
// when the stack has emptied).
func (g *CFG) ToPDA() *PDA {
	p := New()
	start := p.AddState("start", false)
	loop := p.AddState("loop", false)
	accept := p.AddState("accept", true)
	_ = p.SetStart(start)

	_ = p.AddEpsilonTransition(start, loop, []symbol.Symbol{g.StartSymbol})

	for _, prod := range g.Productions {
		_ = p.AddTransition(loop, loop, 0, true, prod.LHS, false, reverseSymbols(prod.RHS))
	}
	for t := range g.Terminals {
		_ = p.AddTransition(loop, loop, t, false, t, false, nil)
	}
	_ = p.AddTransition(loop, accept, 0, true, p.initialStackSymbol, false, nil)
	return p
}

// ToChomskyNormalForm converts g to an equivalent grammar in Chomsky Normal
// Form, assuming g has no nullable non-terminals (epsilon productions are
// out of scope for this supplement; ParseCYK below requires CNF). The
// conversion applies, in order: UNIT (eliminate unit productions A -> B),
// TERM (isolate terminals that appear alongside other symbols into
// single-terminal productions), and BIN (break productions with RHS
// length > 2 into a chain of fresh binary productions).
func (g *CFG) ToChomskyNormalForm() *CFG {
	out := NewCFG(g.StartSymbol)
	for t := range g.Terminals {
		out.AddTerminal(t)
	}
	for nt := range g.NonTerminals {
		out.AddNonTerminal(nt)
	}

	expanded := eliminateUnitProductions(g.Productions, g.NonTerminals)

	freshCounter := 0
	freshNonTerminal := func() symbol.Symbol {
		// Fresh non-terminals use byte values above the printable ASCII
		// range the parser's own non-terminals occupy, avoiding collision
		// with any grammar the caller built from printable letters.
		id := symbol.Symbol(0x80 + freshCounter)
		freshCounter++
		out.AddNonTerminal(id)
		return id
	}
	terminalProxy := make(map[symbol.Symbol]symbol.Symbol)
	proxyFor := func(t symbol.Symbol) symbol.Symbol {
		if nt, ok := terminalProxy[t]; ok {
			return nt
		}
		nt := freshNonTerminal()
		terminalProxy[t] = nt
		out.AddProduction(nt, []symbol.Symbol{t})
		return nt
	}

	for _, prod := range expanded {
		rhs := prod.RHS
		if len(rhs) == 1 && g.Terminals[rhs[0]] {
			out.AddProduction(prod.LHS, rhs)
			continue
		}

		termed := make([]symbol.Symbol, len(rhs))
		for i, s := range rhs {
			if g.Terminals[s] && len(rhs) > 1 {
				termed[i] = proxyFor(s)
			} else {
				termed[i] = s
			}
		}

		for len(termed) > 2 {
			mid := freshNonTerminal()
			out.AddProduction(mid, termed[len(termed)-2:])
			termed = append(termed[:len(termed)-2], mid)
		}
		out.AddProduction(prod.LHS, termed)
	}
	return out
}

func eliminateUnitProductions(productions []Production, nonTerminals map[symbol.Symbol]bool) []Production {
	isUnit := func(p Production) (symbol.Symbol, bool) {
		if len(p.RHS) == 1 && nonTerminals[p.RHS[0]] {
			return p.RHS[0], true
		}
		return 0, false
	}

	byLHS := make(map[symbol.Symbol][]Production)
	for _, p := range productions {
		byLHS[p.LHS] = append(byLHS[p.LHS], p)
	}

	var resolve func(nt symbol.Symbol, seen map[symbol.Symbol]bool) []Production
	resolve = func(nt symbol.Symbol, seen map[symbol.Symbol]bool) []Production {
		if seen[nt] {
			return nil
		}
		seen[nt] = true
		var out []Production
		for _, p := range byLHS[nt] {
			if target, ok := isUnit(p); ok {
				for _, resolved := range resolve(target, seen) {
					out = append(out, Production{LHS: nt, RHS: resolved.RHS})
				}
				continue
			}
			out = append(out, Production{LHS: nt, RHS: p.RHS})
		}
		return out
	}

	var result []Production
	for nt := range nonTerminals {
		result = append(result, resolve(nt, map[symbol.Symbol]bool{})...)
	}
	return result
}

// ParseCYK reports whether input is derivable from g via the standard CYK
// dynamic-programming algorithm, which requires g to be in Chomsky Normal
// Form (every production is either A -> a for a terminal a, or A -> B C
// for non-terminals B, C). Call ToChomskyNormalForm first if g is not
// already in CNF.
func (g *CFG) ParseCYK(input string) (bool, error) {
	n := len(input)
	if n == 0 {
		return false, coreerr.NewDomainError("ParseCYK: empty input is not supported by this CYK table (no epsilon productions)")
	}
	w := []byte(input)

	unary := make(map[symbol.Symbol][]symbol.Symbol) // terminal -> lhs
	binary := make(map[[2]symbol.Symbol][]symbol.Symbol)
	for _, p := range g.Productions {
		switch len(p.RHS) {
		case 1:
			unary[p.RHS[0]] = append(unary[p.RHS[0]], p.LHS)
		case 2:
			key := [2]symbol.Symbol{p.RHS[0], p.RHS[1]}
			binary[key] = append(binary[key], p.LHS)
		default:
			return false, coreerr.NewDomainError("ParseCYK: production %c -> %q is not in Chomsky Normal Form", p.LHS, p.RHS)
		}
	}

	// table[span][start] holds the set of non-terminals deriving
	// w[start : start+span], for span in [1, n].
	table := make([][]map[symbol.Symbol]bool, n+1)
	for span := 1; span <= n; span++ {
		table[span] = make([]map[symbol.Symbol]bool, n-span+1)
		for start := range table[span] {
			table[span][start] = make(map[symbol.Symbol]bool)
		}
	}
	for i := 0; i < n; i++ {
		for _, lhs := range unary[w[i]] {
			table[1][i][lhs] = true
		}
	}

	for span := 2; span <= n; span++ {
		for start := 0; start+span <= n; start++ {
			cell := table[span][start]
			for split := 1; split < span; split++ {
				left := table[split][start]
				right := table[span-split][start+split]
				for b := range left {
					for c := range right {
						for _, lhs := range binary[[2]symbol.Symbol{b, c}] {
							cell[lhs] = true
						}
					}
				}
			}
		}
	}

	return table[n][0][g.StartSymbol], nil
}
