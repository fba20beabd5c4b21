package pda

import "testing"

// TestScenarioS4 is spec.md's S4 end-to-end scenario.
func TestScenarioS4(t *testing.T) {
	p := BalancedParentheses()
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"", true}, {"()", true}, {"(())", true}, {"()()", true},
		{"(", false}, {")(", false}, {"(()", false},
	} {
		if got := p.AcceptsByFinalState(tc.in); got != tc.want {
			t.Errorf("AcceptsByFinalState(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestBalancedParenthesesByEmptyStack(t *testing.T) {
	p := BalancedParentheses()
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"", true}, {"()", true}, {"(())", true}, {"(", false},
	} {
		if got := p.AcceptsByEmptyStack(tc.in); got != tc.want {
			t.Errorf("AcceptsByEmptyStack(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAnBn(t *testing.T) {
	p := AnBn()
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"", true}, {"ab", true}, {"aabb", true},
		{"a", false}, {"aab", false}, {"abb", false}, {"ba", false},
	} {
		if got := p.AcceptsByFinalState(tc.in); got != tc.want {
			t.Errorf("AcceptsByFinalState(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPalindromeRecognizer(t *testing.T) {
	p := PalindromeRecognizer()
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"", true}, {"aa", true}, {"abba", true}, {"aabbaa", true},
		{"a", false}, {"ab", false}, {"aba", false},
	} {
		if got := p.AcceptsByFinalState(tc.in); got != tc.want {
			t.Errorf("AcceptsByFinalState(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestXMLValidator(t *testing.T) {
	p := XMLValidator()
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"aA", true}, {"abBA", true}, {"", true},
		{"a", false}, {"aB", false}, {"A", false},
	} {
		if got := p.AcceptsByFinalState(tc.in); got != tc.want {
			t.Errorf("AcceptsByFinalState(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFindAcceptingPathReconstructsSteps(t *testing.T) {
	p := BalancedParentheses()
	steps, err := p.FindAcceptingPath("()")
	if err != nil {
		t.Fatal(err)
	}
	if len(steps) == 0 {
		t.Fatalf("expected a non-empty accepting path for %q", "()")
	}
	if steps[0].Before.State != p.Start() {
		t.Fatalf("first step should start from the PDA's start state")
	}
	last := steps[len(steps)-1]
	if len(last.After.RemainingInput) != 0 {
		t.Fatalf("accepting path should end with no remaining input")
	}
}

// TestIterationBudgetMonotone is testable property 6 (spec.md §8): PDA
// acceptsByFinalState must never flip from true to false as the iteration
// budget grows.
func TestIterationBudgetMonotone(t *testing.T) {
	p := AnBn()
	input := "aaaaabbbbb"
	low := p.AcceptsByFinalStateWithLimit(input, 1)
	high := p.AcceptsByFinalStateWithLimit(input, DefaultIterationLimit)
	if low && !high {
		t.Fatalf("acceptance flipped from true (budget 1) to false (budget %d)", DefaultIterationLimit)
	}
}

func TestIterationLimitReportedOnTraceEntryPoint(t *testing.T) {
	p := AnBn()
	_, err := p.FindAcceptingPathWithLimit("aaaaaaaaaabbbbbbbbbb", 1)
	if err == nil {
		t.Fatalf("expected an IterationLimitError with a budget of 1 dequeue")
	}
}

func TestPDAJSONRoundTrip(t *testing.T) {
	p := BalancedParentheses()
	data1, err := p.ToJSON()
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
