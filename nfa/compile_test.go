package nfa

import (
	"testing"

	"github.com/kntjspr/automata-new/parser"
)

func mustParse(t *testing.T, pattern string) NFA {
	t.Helper()
	node, err := parser.Parse(pattern)
	if err != nil {
		t.Fatalf("parse(%q) failed: %v", pattern, err)
	}
	n, err := FromAST(node)
	if err != nil {
		t.Fatalf("FromAST(%q) failed: %v", pattern, err)
	}
	return n
}

func TestFromASTScenarioS1(t *testing.T) {
	n := mustParse(t, "a(b|c)*d")
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"abcbd", true}, {"ad", true}, {"ab", false}, {"", false},
	} {
		if got := n.Accepts(tc.in); got != tc.want {
			t.Errorf("Accepts(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFromASTScenarioS2(t *testing.T) {
	n := mustParse(t, "a{2,3}")
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"a", false}, {"aa", true}, {"aaa", true}, {"aaaa", false},
	} {
		if got := n.Accepts(tc.in); got != tc.want {
			t.Errorf("Accepts(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFromASTAnyIsPrintableASCII(t *testing.T) {
	n := mustParse(t, ".")
	if !n.Accepts("a") || !n.Accepts(" ") || !n.Accepts("~") {
		t.Fatalf("expected '.' to accept printable ASCII")
	}
	if n.Accepts("\x01") {
		t.Fatalf("'.' should not accept control characters (finite printable alphabet, spec.md §9)")
	}
}

func TestFromASTCharClass(t *testing.T) {
	n := mustParse(t, "[a-c]")
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"a", true}, {"b", true}, {"c", true}, {"d", false},
	} {
		if got := n.Accepts(tc.in); got != tc.want {
			t.Errorf("Accepts(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFromASTNegatedCharClass(t *testing.T) {
	n := mustParse(t, "[^a]")
	if n.Accepts("a") {
		t.Fatalf("[^a] should not accept 'a'")
	}
	if !n.Accepts("b") {
		t.Fatalf("[^a] should accept 'b'")
	}
}
