// Package levenshtein builds the product-state NFA of spec.md §4.6 for
// approximate pattern matching, computes true edit distance by
// Wagner-Fischer dynamic programming, and enumerates approximate matches
// in a text.
//
// Grounded on the parametric-state idiom of the example corpus's own
// Levenshtein automaton (Khanh-21522203-GoSearch
// internal/automaton/levenshtein.go: state = pos*(maxDist+1) + editsUsed),
// generalized from that package's hand-picked "best single transition"
// approximation to the full product-state NFA original_source's
// ApproximateMatcher::buildNFA describes, where every edit operation gets
// its own transition and nondeterminism (not a greedy heuristic) decides
// which path is taken.
package levenshtein

import (
	"github.com/kntjspr/automata-new/coreerr"
	"github.com/kntjspr/automata-new/nfa"
	"github.com/kntjspr/automata-new/symbol"
)

// EditType is a bitmask selecting which edit operations the builder wires
// into the NFA (spec.md §4.6).
type EditType int

const (
	Substitution EditType = 1 << iota
	Insertion
	Deletion
	All = Substitution | Insertion | Deletion
)

// defaultAlphabet is the ASCII letter range the builder always extends the
// pattern's own alphabet with (spec.md §4.1: "the Levenshtein builder
// extends its alphabet to the ASCII letters in addition to the characters
// seen in the pattern, because substitution and insertion must be defined
// for every symbol the input might contain").
func defaultAlphabet(pattern string) []symbol.Symbol {
	seen := make(map[symbol.Symbol]bool)
	for c := byte('a'); c <= 'z'; c++ {
		seen[c] = true
	}
	for c := byte('A'); c <= 'Z'; c++ {
		seen[c] = true
	}
	for _, c := range []byte(pattern) {
		seen[c] = true
	}
	out := make([]symbol.Symbol, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// BuildNFA constructs the product-state NFA over (pos, edits) described in
// spec.md §4.6. State encoding is pos*(k+1)+e, matching the example
// corpus's own encoding.
func BuildNFA(pattern string, maxDistance int, editTypes EditType) (nfa.NFA, error) {
	if maxDistance < 0 {
		return nfa.NFA{}, coreerr.NewDomainError("levenshtein: maxDistance must be >= 0, got %d", maxDistance)
	}
	n := nfa.New()
	pat := []byte(pattern)
	length := len(pat)
	k := maxDistance
	alphabet := defaultAlphabet(pattern)

	encode := func(pos, e int) symbol.StateID { return symbol.StateID(pos*(k+1) + e) }
	for pos := 0; pos <= length; pos++ {
		for e := 0; e <= k; e++ {
			accepting := pos == length
			id := n.AddState("", accepting)
			if id != encode(pos, e) {
				return nfa.NFA{}, coreerr.NewInvariantError("levenshtein: state id %d does not match expected encoding %d", id, encode(pos, e))
			}
		}
	}
	if err := n.SetStart(encode(0, 0)); err != nil {
		return nfa.NFA{}, err
	}

	for pos := 0; pos < length; pos++ {
		for e := 0; e <= k; e++ {
			from := encode(pos, e)

			// Match: on pattern[pos], to (pos+1, e).
			if err := n.AddTransition(from, encode(pos+1, e), pat[pos]); err != nil {
				return nfa.NFA{}, err
			}

			if e >= k {
				continue
			}

			if editTypes&Substitution != 0 {
				for _, c := range alphabet {
					if c == pat[pos] {
						continue
					}
					if err := n.AddTransition(from, encode(pos+1, e+1), c); err != nil {
						return nfa.NFA{}, err
					}
				}
			}
			if editTypes&Insertion != 0 {
				for _, c := range alphabet {
					if err := n.AddTransition(from, encode(pos, e+1), c); err != nil {
						return nfa.NFA{}, err
					}
				}
			}
			if editTypes&Deletion != 0 {
				if err := n.AddEpsilonTransition(from, encode(pos+1, e+1)); err != nil {
					return nfa.NFA{}, err
				}
			}
		}
	}

	// Insertion is also defined at pos = length (consuming trailing input
	// past a fully-matched pattern still counts as an edit, per the
	// example corpus's own "pos >= len(target)" handling).
	if editTypes&Insertion != 0 {
		for e := 0; e < k; e++ {
			from := encode(length, e)
			for _, c := range alphabet {
				if err := n.AddTransition(from, encode(length, e+1), c); err != nil {
					return nfa.NFA{}, err
				}
			}
		}
	}

	return n, nil
}

// EditDistance computes the Levenshtein distance between s1 and s2 by
// standard Wagner-Fischer dynamic programming (spec.md §4.6), independent
// of the NFA above.
func EditDistance(s1, s2 string) int {
	a, b := []byte(s1), []byte(s2)
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1]
			} else {
				cost := prev[j-1] + 1
				if prev[j]+1 < cost {
					cost = prev[j] + 1
				}
				if cur[j-1]+1 < cost {
					cost = cur[j-1] + 1
				}
				cur[j] = cost
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// Match is one approximate match (spec.md §6's findAll entry point).
type Match struct {
	Start       int
	End         int
	Distance    int
	MatchedText string
}

// FindAll enumerates candidate windows of text up to length
// len(pattern)+maxDistance, keeps those the NFA accepts, and recomputes
// their true edit distance, matching spec.md §4.6 exactly: "findAll(text)
// enumerates candidate windows up to length n+k, accepts by NFA, recomputes
// true edit distance, and emits matches with that distance."
func FindAll(text, pattern string, maxDistance int) ([]Match, error) {
	if maxDistance < 0 {
		return nil, coreerr.NewDomainError("levenshtein: maxDistance must be >= 0, got %d", maxDistance)
	}
	n, err := BuildNFA(pattern, maxDistance, All)
	if err != nil {
		return nil, err
	}
	maxLen := len(pattern) + maxDistance

	var matches []Match
	b := []byte(text)
	for start := 0; start < len(b); start++ {
		for length := 1; length <= maxLen && start+length <= len(b); length++ {
			window := string(b[start : start+length])
			if !n.Accepts(window) {
				continue
			}
			dist := EditDistance(pattern, window)
			if dist > maxDistance {
				continue
			}
			matches = append(matches, Match{Start: start, End: start + length, Distance: dist, MatchedText: window})
		}
	}
	return matches, nil
}
