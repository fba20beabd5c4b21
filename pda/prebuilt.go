package pda

import "github.com/kntjspr/automata-new/symbol"

// Every construction below follows the same shape: a working state that
// pushes and pops freely, plus a dedicated accept state reached only by an
// epsilon transition that pops the initial stack symbol. That pop only
// fires when the stack has returned to exactly the bottom marker (no
// outstanding pushes), so reaching accept with empty remaining input
// certifies both final-state and empty-stack acceptance simultaneously,
// rather than letting a working state's accepting flag ignore the stack.

// BalancedParentheses builds the PDA accepting every balanced string of
// "(" and ")", including "" and sequences such as "()()".
func BalancedParentheses() *PDA {
	p := New()
	q := p.AddState("q", false)
	accept := p.AddState("accept", true)
	_ = p.SetStart(q)

	_ = p.AddTransition(q, q, '(', false, 0, true, []symbol.Symbol{'('})
	_ = p.AddTransition(q, q, ')', false, '(', false, nil)
	_ = p.AddTransition(q, accept, 0, true, p.initialStackSymbol, false, nil)
	return p
}

// AnBn builds the PDA accepting { a^n b^n : n ≥ 0 }: a push state reading
// a's, a move to a pop state on the first b (which consumes that b and
// pops one a), and acceptance once the stack returns to its initial symbol.
func AnBn() *PDA {
	p := New()
	push := p.AddState("push", false)
	pop := p.AddState("pop", false)
	accept := p.AddState("accept", true)
	_ = p.SetStart(push)

	_ = p.AddTransition(push, push, 'a', false, 0, true, []symbol.Symbol{'a'})
	_ = p.AddTransition(push, accept, 0, true, p.initialStackSymbol, false, nil)
	_ = p.AddTransition(push, pop, 'b', false, 'a', false, nil)
	_ = p.AddTransition(pop, pop, 'b', false, 'a', false, nil)
	_ = p.AddTransition(pop, accept, 0, true, p.initialStackSymbol, false, nil)
	return p
}

// PalindromeRecognizer builds a PDA accepting { w w^R : w ∈ {a,b}* }:
// nondeterministically guess the midpoint (an epsilon move from pushing to
// popping), push while in the first half, pop matching symbols while in
// the second half, accept once the stack is back at its initial symbol.
func PalindromeRecognizer() *PDA {
	p := New()
	push := p.AddState("push", false)
	pop := p.AddState("pop", false)
	accept := p.AddState("accept", true)
	_ = p.SetStart(push)

	_ = p.AddTransition(push, push, 'a', false, 0, true, []symbol.Symbol{'a'})
	_ = p.AddTransition(push, push, 'b', false, 0, true, []symbol.Symbol{'b'})
	_ = p.AddEpsilonTransition(push, pop, nil)
	_ = p.AddTransition(pop, pop, 'a', false, 'a', false, nil)
	_ = p.AddTransition(pop, pop, 'b', false, 'b', false, nil)
	_ = p.AddTransition(pop, accept, 0, true, p.initialStackSymbol, false, nil)
	return p
}

// RNAStemLoopRecognizer builds a PDA that validates Watson-Crick
// complementary base pairing of an RNA stem against a loop: the 5' arm
// (A, C, G, U) is pushed, any run of unpaired loop bases is skipped in a
// dedicated state, then the 3' arm must pop bases in complementary order
// (A/U, C/G) back to the initial stack symbol.
func RNAStemLoopRecognizer() *PDA {
	p := New()
	stem5 := p.AddState("stem5prime", false)
	loop := p.AddState("loop", false)
	stem3 := p.AddState("stem3prime", false)
	accept := p.AddState("accept", true)
	_ = p.SetStart(stem5)

	for _, base := range []symbol.Symbol{'A', 'C', 'G', 'U'} {
		_ = p.AddTransition(stem5, stem5, base, false, 0, true, []symbol.Symbol{base})
	}
	_ = p.AddEpsilonTransition(stem5, loop, nil)
	for _, base := range []symbol.Symbol{'A', 'C', 'G', 'U'} {
		_ = p.AddTransition(loop, loop, base, false, 0, true, nil)
	}
	_ = p.AddEpsilonTransition(loop, stem3, nil)

	complement := map[symbol.Symbol]symbol.Symbol{'A': 'U', 'U': 'A', 'C': 'G', 'G': 'C'}
	for base, pair := range complement {
		_ = p.AddTransition(stem3, stem3, pair, false, base, false, nil)
	}
	_ = p.AddTransition(stem3, accept, 0, true, p.initialStackSymbol, false, nil)
	return p
}

// XMLValidator builds a simplified single-tag-letter XML well-formedness
// checker: an open tag pushes its tag symbol, a close tag pops and
// requires it to equal the matching open tag; acceptance requires every
// open tag to have been closed. Closing tags are encoded by the caller as
// the uppercase letter of the tag they close (e.g. "a" opens, "A" closes),
// so the PDA's single-symbol input alphabet can express open/close without
// a two-symbol lookahead.
func XMLValidator() *PDA {
	p := New()
	q := p.AddState("q", false)
	accept := p.AddState("accept", true)
	_ = p.SetStart(q)

	for c := byte('a'); c <= 'z'; c++ {
		_ = p.AddTransition(q, q, c, false, 0, true, []symbol.Symbol{c})
	}
	for c := byte('A'); c <= 'Z'; c++ {
		open := c - 'A' + 'a'
		_ = p.AddTransition(q, q, c, false, open, false, nil)
	}
	_ = p.AddTransition(q, accept, 0, true, p.initialStackSymbol, false, nil)
	return p
}
