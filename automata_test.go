package automata

import "testing"

// TestProperty1NFADFAMinimizeAgree is testable property 1 (spec.md §8).
func TestProperty1NFADFAMinimizeAgree(t *testing.T) {
	pattern := "(a|b)*abb"
	tree, err := ParsePattern(pattern)
	if err != nil {
		t.Fatal(err)
	}
	n, err := ASTToNFA(tree)
	if err != nil {
		t.Fatal(err)
	}
	d, err := NFAToDFA(n)
	if err != nil {
		t.Fatal(err)
	}
	m := DFAMinimize(d)

	for _, w := range []string{"abb", "aabb", "babb", "ab", "abba", ""} {
		got := n.Accepts(w)
		if d.Accepts(w) != got {
			t.Errorf("dfa.Accepts(%q) = %v, nfa.Accepts(%q) = %v", w, d.Accepts(w), w, got)
		}
		if m.Accepts(w) != got {
			t.Errorf("minimized.Accepts(%q) = %v, nfa.Accepts(%q) = %v", w, m.Accepts(w), w, got)
		}
	}
}

func TestCompileAndMatch(t *testing.T) {
	re, err := Compile("(a|b)*abb")
	if err != nil {
		t.Fatal(err)
	}
	if !re.Match("aabb") {
		t.Error("expected aabb to match")
	}
	if re.Match("ab") {
		t.Error("expected ab not to match")
	}
	matches := re.FindAllMatches("xaabby")
	found := false
	for _, m := range matches {
		if m.Start == 1 && m.End == 5 {
			found = true
		}
	}
	if !found {
		t.Errorf("FindAllMatches(%q) = %+v, expected a match at (1,5)", "xaabby", matches)
	}
}

func TestCompileDNAExpandsShortcuts(t *testing.T) {
	re, err := CompileDNA("ATN")
	if err != nil {
		t.Fatal(err)
	}
	if !re.Match("ATG") {
		t.Error("expected ATN (expanded to AT[ACGT]) to match ATG")
	}
	if re.Match("ATX") {
		t.Error("expected ATN not to match ATX")
	}
}

func TestMustCompilePanicsOnInvalidPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustCompile to panic on malformed pattern")
		}
	}()
	MustCompile("(a")
}

func TestDFAProductWiring(t *testing.T) {
	a, err := Compile("a*b")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compile("ab*")
	if err != nil {
		t.Fatal(err)
	}
	inter, err := DFAIntersect(a.DFA(), b.DFA())
	if err != nil {
		t.Fatal(err)
	}
	if !inter.Accepts("ab") {
		t.Error("expected intersection of a*b and ab* to accept ab")
	}
	if inter.Accepts("aab") {
		t.Error("expected intersection to reject aab (not in ab*)")
	}

	union, err := DFAUnion(a.DFA(), b.DFA())
	if err != nil {
		t.Fatal(err)
	}
	if !union.Accepts("aab") || !union.Accepts("abb") {
		t.Error("expected union of a*b and ab* to accept aab and abb")
	}

	comp := DFAComplement(a.DFA())
	if comp.Accepts("ab") {
		t.Error("expected complement of a*b to reject ab")
	}
}
