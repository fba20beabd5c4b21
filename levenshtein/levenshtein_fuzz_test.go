package levenshtein

import "testing"

// FuzzBuildNFA is the native fuzz test SPEC_FULL.md's ambient stack commits
// to for the Levenshtein builder, grounded on coregx-coregex's seeded
// f.Fuzz convention. Pattern length is clamped after generation, and a
// maxDistance outside [0, 4] is skipped, the same way the corpus's own
// fuzz tests skip inputs that would make a run unbounded instead of
// reporting every oversized input as a failure.
func FuzzBuildNFA(f *testing.F) {
	for _, p := range []string{"", "a", "abc", "ATG", "hello"} {
		for _, k := range []int{0, 1, 2} {
			f.Add(p, k)
		}
	}

	f.Fuzz(func(t *testing.T, pattern string, maxDistance int) {
		if len(pattern) > 16 {
			pattern = pattern[:16]
		}
		if maxDistance < 0 || maxDistance > 4 {
			t.Skip()
		}

		n, err := BuildNFA(pattern, maxDistance, All)
		if err != nil {
			t.Fatalf("BuildNFA(%q, %d, All): %v", pattern, maxDistance, err)
		}

		// The pattern itself is always within distance 0 of itself, so the
		// built NFA must always accept it regardless of maxDistance.
		if !n.Accepts(pattern) {
			t.Errorf("BuildNFA(%q, %d, All) does not accept %q itself", pattern, maxDistance, pattern)
		}
	})
}
