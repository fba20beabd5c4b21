// Package automata is the root of this module: a regex/automata-theoretic
// pattern-matching kernel built from parser, ast, nfa, dfa, pda, and
// levenshtein. It exposes the pipeline each of those packages only does one
// stage of — parse, compile to NFA, determinize, minimize, and the product
// and approximate-matching operations — as a single convenient Regex type,
// the way the teacher's root regex.go composes literal/nfa/dfa/meta behind
// a single Regex type.
//
// Regex itself is a thin composition: a Regex holds both the NFA Thompson
// construction produced and the minimized DFA derived from it, and prefers
// the DFA for matching since table lookups are cheaper than epsilon-closure
// walks. Nothing here changes the semantics any subpackage already defines;
// it only wires them together.
package automata

import (
	"github.com/kntjspr/automata-new/ast"
	"github.com/kntjspr/automata-new/dfa"
	"github.com/kntjspr/automata-new/dna"
	"github.com/kntjspr/automata-new/nfa"
	"github.com/kntjspr/automata-new/parser"
)

// Regex is a compiled pattern: its Thompson NFA and the minimized DFA
// derived from it.
type Regex struct {
	pattern string
	nfa     nfa.NFA
	dfa     *dfa.DFA
}

// Compile parses pattern, builds its Thompson NFA, determinizes it by
// subset construction, and minimizes the result.
func Compile(pattern string) (*Regex, error) {
	n, d, err := buildPipeline(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: pattern, nfa: n, dfa: d}, nil
}

// CompileDNA expands the IUPAC ambiguity shortcuts package dna defines
// (N, R, Y, W, S) before parsing, for the bio collaborator described in
// spec.md §6.
func CompileDNA(pattern string) (*Regex, error) {
	return Compile(dna.Expand(pattern))
}

// MustCompile is Compile, panicking on error. Useful for patterns known to
// be valid ahead of time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("automata: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

func buildPipeline(pattern string) (nfa.NFA, *dfa.DFA, error) {
	tree, err := parser.Parse(pattern)
	if err != nil {
		return nfa.NFA{}, nil, err
	}
	n, err := nfa.FromAST(tree)
	if err != nil {
		return nfa.NFA{}, nil, err
	}
	d, err := dfa.FromNFA(n)
	if err != nil {
		return nfa.NFA{}, nil, err
	}
	return n, d.Minimize(), nil
}

// Pattern returns the source pattern re was compiled from.
func (re *Regex) Pattern() string { return re.pattern }

// NFA returns the Thompson construction underlying re.
func (re *Regex) NFA() nfa.NFA { return re.nfa }

// DFA returns the minimized DFA underlying re.
func (re *Regex) DFA() *dfa.DFA { return re.dfa }

// Match reports whether w is accepted in full by re's DFA.
func (re *Regex) Match(w string) bool { return re.dfa.Accepts(w) }

// FindAllMatches returns every (start, endExclusive) substring of text that
// re accepts, ordered as spec.md §4.4 requires.
func (re *Regex) FindAllMatches(text string) []dfa.Match { return re.dfa.FindAllMatches(text) }

// TraceExecution replays w against re's NFA: one consuming ExecutionStep
// per input byte, plus an epsilon-expansion step wherever the closure adds
// states.
func (re *Regex) TraceExecution(w string) []nfa.ExecutionStep { return re.nfa.TraceExecution(w) }

// The functions below are the §6 EXTERNAL INTERFACES pipeline stages named
// individually, for callers that need one stage without the others (the
// HTTP/visualization collaborators that want to render an intermediate
// NFA, for instance).

// ParsePattern parses pattern into its AST.
func ParsePattern(pattern string) (ast.Node, error) { return parser.Parse(pattern) }

// ASTToNFA compiles an AST into its Thompson-construction NFA.
func ASTToNFA(tree ast.Node) (nfa.NFA, error) { return nfa.FromAST(tree) }

// NFAToDFA determinizes n by subset construction.
func NFAToDFA(n nfa.NFA) (*dfa.DFA, error) { return dfa.FromNFA(n) }

// DFAMinimize returns d's Hopcroft-minimized quotient automaton.
func DFAMinimize(d *dfa.DFA) *dfa.DFA { return d.Minimize() }

// DFAIntersect returns the product DFA accepting the intersection of a and
// b's languages.
func DFAIntersect(a, b *dfa.DFA) (*dfa.DFA, error) { return dfa.Intersect(a, b) }

// DFAUnion returns the product DFA accepting the union of a and b's
// languages.
func DFAUnion(a, b *dfa.DFA) (*dfa.DFA, error) { return dfa.Union(a, b) }

// DFAComplement flips a's accepting flags without completing it first
// (spec.md §9 — see DESIGN.md).
func DFAComplement(a *dfa.DFA) *dfa.DFA { return dfa.Complement(a) }

