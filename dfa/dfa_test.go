package dfa

import (
	"testing"

	"github.com/kntjspr/automata-new/nfa"
	"github.com/kntjspr/automata-new/parser"
)

func mustDFA(t *testing.T, pattern string) *DFA {
	t.Helper()
	node, err := parser.Parse(pattern)
	if err != nil {
		t.Fatalf("parse(%q): %v", pattern, err)
	}
	n, err := nfa.FromAST(node)
	if err != nil {
		t.Fatalf("FromAST(%q): %v", pattern, err)
	}
	d, err := FromNFA(n)
	if err != nil {
		t.Fatalf("FromNFA(%q): %v", pattern, err)
	}
	return d
}

// TestSubsetAgreesWithNFA is testable property 1 (spec.md §8): nfa, dfa and
// minimized dfa must all agree on acceptance.
func TestSubsetAgreesWithNFA(t *testing.T) {
	pattern := "a(b|c)*d"
	node, err := parser.Parse(pattern)
	if err != nil {
		t.Fatal(err)
	}
	n, err := nfa.FromAST(node)
	if err != nil {
		t.Fatal(err)
	}
	d, err := FromNFA(n)
	if err != nil {
		t.Fatal(err)
	}
	min := d.Minimize()

	for _, w := range []string{"abcbd", "ad", "ab", "", "accccd"} {
		nfaWant := n.Accepts(w)
		if got := d.Accepts(w); got != nfaWant {
			t.Errorf("dfa.Accepts(%q) = %v, want %v (nfa)", w, got, nfaWant)
		}
		if got := min.Accepts(w); got != nfaWant {
			t.Errorf("minimized.Accepts(%q) = %v, want %v (nfa)", w, got, nfaWant)
		}
	}
}

// TestScenarioS3 is spec.md's S3 end-to-end scenario.
func TestScenarioS3(t *testing.T) {
	d := mustDFA(t, "(a|b)*abb")
	min := d.Minimize()
	if min.StateCount() != 4 {
		t.Fatalf("minimized state count = %d, want 4", min.StateCount())
	}
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"abb", true}, {"aabb", true}, {"babb", true}, {"ab", false}, {"", false},
	} {
		if got := min.Accepts(tc.in); got != tc.want {
			t.Errorf("Accepts(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// TestMinimizeDoesNotIncreaseStates is testable property 2.
func TestMinimizeDoesNotIncreaseStates(t *testing.T) {
	d := mustDFA(t, "(a|b)*abb")
	min := d.Minimize()
	if min.StateCount() > d.StateCount() {
		t.Fatalf("minimize increased state count: %d -> %d", d.StateCount(), min.StateCount())
	}
	againMin := min.Minimize()
	if againMin.StateCount() != min.StateCount() {
		t.Fatalf("minimize is not idempotent: %d -> %d", min.StateCount(), againMin.StateCount())
	}
}

// TestScenarioS6 is spec.md's S6 end-to-end scenario.
func TestScenarioS6(t *testing.T) {
	a := mustDFA(t, "a*b")
	b := mustDFA(t, "ab*")
	prod, err := Intersect(a, b)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"ab", true}, {"a", false}, {"abb", false},
	} {
		if got := prod.Accepts(tc.in); got != tc.want {
			t.Errorf("Intersect.Accepts(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestUnionCoversEitherAlphabet(t *testing.T) {
	a := mustDFA(t, "a+")
	b := mustDFA(t, "b+")
	u, err := Union(a, b)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"aaa", true}, {"bbb", true}, {"", false}, {"ab", false},
	} {
		if got := u.Accepts(tc.in); got != tc.want {
			t.Errorf("Union.Accepts(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestComplementDoesNotCompleteFirst(t *testing.T) {
	a := mustDFA(t, "a")
	comp := Complement(a)
	// "a" is accepted by a, rejected by its complement.
	if comp.Accepts("a") {
		t.Fatalf("complement should reject %q", "a")
	}
	// "b" has no transition in a at all, so it has none in the complement
	// either; both reject it (spec.md §9's documented undefined-transition
	// behavior).
	if comp.Accepts("b") {
		t.Fatalf("complement should also reject inputs undefined in the source DFA")
	}
}

func TestFindAllMatchesOrdering(t *testing.T) {
	d := mustDFA(t, "a+")
	matches := d.FindAllMatches("aaa")
	want := []Match{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	if len(matches) != len(want) {
		t.Fatalf("got %d matches, want %d: %v", len(matches), len(want), matches)
	}
	for i, m := range matches {
		if m != want[i] {
			t.Errorf("match[%d] = %v, want %v", i, m, want[i])
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := mustDFA(t, "a(b|c)*d")
	data1, err := d.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromJSON(data1)
	if err != nil {
		t.Fatal(err)
	}
	data2, err := back.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data1) != string(data2) {
		t.Fatalf("round trip not byte-identical:\n%s\nvs\n%s", data1, data2)
	}
}

func TestDeterminismInvariant(t *testing.T) {
	d := New()
	s0 := d.AddState("", false)
	s1 := d.AddState("", true)
	s2 := d.AddState("", true)
	if err := d.AddTransition(s0, s1, 'a'); err != nil {
		t.Fatal(err)
	}
	if err := d.AddTransition(s0, s2, 'a'); err == nil {
		t.Fatalf("expected InvariantError for conflicting transition")
	}
}
