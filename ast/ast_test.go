package ast

import (
	"bytes"
	"testing"
)

func nodesEqual(a, b Node) bool {
	if a.Kind != b.Kind || a.Char != b.Char || a.Min != b.Min || a.Max != b.Max {
		return false
	}
	if len(a.Class) != len(b.Class) {
		return false
	}
	for c := range a.Class {
		if !b.Class[c] {
			return false
		}
	}
	switch a.Kind {
	case KindUnion, KindConcat:
		return nodesEqual(*a.Left, *b.Left) && nodesEqual(*a.Right, *b.Right)
	case KindStar, KindPlus, KindOptional, KindGroup, KindRepeatN:
		return nodesEqual(*a.Left, *b.Left)
	default:
		return true
	}
}

// TestJSONRoundTrip is testable property 7 (spec.md §8) applied to the AST.
func TestJSONRoundTrip(t *testing.T) {
	trees := []Node{
		Epsilon(),
		Char('a'),
		Any(),
		CharClass(map[byte]bool{'a': true, 'b': true, 'c': true}),
		Union(Char('a'), Char('b')),
		Concat(Char('a'), Char('b')),
		Star(Char('a')),
		Plus(Char('a')),
		Optional(Char('a')),
		Group(Union(Char('a'), Char('b'))),
		StartAnchor(),
		EndAnchor(),
		RepeatN(Char('a'), 2, 4),
		RepeatN(Char('a'), 2, -1),
		Concat(Star(Union(Char('a'), Char('b'))), Concat(Char('a'), Concat(Char('b'), Char('b')))),
	}
	for _, n := range trees {
		data, err := ToJSON(n)
		if err != nil {
			t.Fatalf("ToJSON(%+v): %v", n, err)
		}
		back, err := FromJSON(data)
		if err != nil {
			t.Fatalf("FromJSON(%s): %v", data, err)
		}
		if !nodesEqual(n, back) {
			t.Errorf("round trip mismatch: original %+v, got %+v (json: %s)", n, back, data)
		}
		data2, err := ToJSON(back)
		if err != nil {
			t.Fatalf("ToJSON(back): %v", err)
		}
		if !bytes.Equal(data, data2) {
			t.Errorf("re-encoding is not byte-identical: %s != %s", data, data2)
		}
	}
}

func TestKindString(t *testing.T) {
	if Char('a').Kind.String() != "Char" {
		t.Errorf("Kind.String() = %q, want %q", Char('a').Kind.String(), "Char")
	}
	if Kind(999).String() != "Unknown" {
		t.Errorf("unknown kind should stringify to %q", "Unknown")
	}
}
