package pda

import (
	"github.com/coregx/ahocorasick"
	"github.com/kntjspr/automata-new/coreerr"
	"github.com/kntjspr/automata-new/symbol"
)

// TokenDictionary maps multi-byte terminal tokens (codons, RNA motifs,
// multi-letter grammar terminals) to single-byte symbols a PDA can consume,
// and tokenizes raw text into a sequence of those symbols via an
// Aho-Corasick automaton. This exists because package pda's Transition
// carries single-byte InputSymbol fields (spec.md §3), but CFG terminals
// and biological motifs are naturally multi-character; the dictionary is
// the bridge between the two, grounded on the same
// builder.AddPattern/builder.Build/automaton.Find sequence the teacher
// uses for its own literal-alternation bypass (compile.go, find.go).
type TokenDictionary struct {
	tokens    []string
	symbolFor map[string]symbol.Symbol
	automaton *ahocorasick.Automaton
}

// NewTokenDictionary builds a dictionary assigning one byte symbol per
// distinct token, in the order given, starting at 0x80 so assigned symbols
// never collide with a PDA's own printable-ASCII terminal alphabet. At
// most 128 distinct tokens are supported for that reason.
func NewTokenDictionary(tokens []string) (*TokenDictionary, error) {
	if len(tokens) > 128 {
		return nil, coreerr.NewDomainError("token dictionary supports at most 128 distinct tokens, got %d", len(tokens))
	}
	d := &TokenDictionary{
		tokens:    append([]string(nil), tokens...),
		symbolFor: make(map[string]symbol.Symbol, len(tokens)),
	}
	builder := ahocorasick.NewBuilder()
	for i, tok := range tokens {
		if tok == "" {
			return nil, coreerr.NewDomainError("token dictionary entries must be non-empty")
		}
		d.symbolFor[tok] = symbol.Symbol(0x80 + i)
		builder.AddPattern([]byte(tok))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, coreerr.NewDomainError("building token dictionary automaton: %v", err)
	}
	d.automaton = auto
	return d, nil
}

// SymbolOf returns the byte symbol assigned to token, and whether token is
// in the dictionary.
func (d *TokenDictionary) SymbolOf(token string) (symbol.Symbol, bool) {
	s, ok := d.symbolFor[token]
	return s, ok
}

// Tokenize greedily scans text left to right, at each position taking the
// longest dictionary token matching there (ties broken by the
// Aho-Corasick automaton's own match, which is leftmost-longest per call),
// and returns the resulting symbol sequence. It fails with a DomainError
// at the first position where no dictionary token matches.
func (d *TokenDictionary) Tokenize(text string) ([]symbol.Symbol, error) {
	b := []byte(text)
	var out []symbol.Symbol
	pos := 0
	for pos < len(b) {
		m := d.automaton.Find(b, pos)
		if m == nil || m.Start != pos {
			return nil, coreerr.NewDomainError("no dictionary token matches at byte offset %d", pos)
		}
		tok := string(b[m.Start:m.End])
		out = append(out, d.symbolFor[tok])
		pos = m.End
	}
	return out, nil
}

// IsTokenizable reports whether text can be fully tokenized against the
// dictionary without consulting the resulting symbol sequence.
func (d *TokenDictionary) IsTokenizable(text string) bool {
	_, err := d.Tokenize(text)
	return err == nil
}
