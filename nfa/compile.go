package nfa

import (
	"github.com/kntjspr/automata-new/ast"
	"github.com/kntjspr/automata-new/coreerr"
)

const printableLo, printableHi = 0x20, 0x7E

// FromAST compiles an AST node into an NFA via Thompson's construction
// (spec.md §4.3, §6 astToNfa). Any (the '.' metacharacter) compiles as the
// union of the printable-ASCII range [0x20,0x7E] (spec.md §9's open issue:
// this module keeps that finite-alphabet behavior rather than matching
// arbitrary bytes). Anchors compile to epsilon with no anchoring semantics
// enforced here (spec.md §9, carried forward unchanged).
func FromAST(n ast.Node) (NFA, error) {
	switch n.Kind {
	case ast.KindEpsilon:
		return Empty(), nil

	case ast.KindChar:
		return Single(n.Char), nil

	case ast.KindAny:
		return charSetNFA(fullPrintableRange()), nil

	case ast.KindCharClass:
		members := make([]byte, 0, len(n.Class))
		for c := range n.Class {
			members = append(members, c)
		}
		if len(members) == 0 {
			return NFA{}, coreerr.NewDomainError("empty character class")
		}
		return charSetNFA(members), nil

	case ast.KindStartAnchor, ast.KindEndAnchor:
		return Empty(), nil

	case ast.KindGroup:
		return FromAST(*n.Left)

	case ast.KindUnion:
		left, err := FromAST(*n.Left)
		if err != nil {
			return NFA{}, err
		}
		right, err := FromAST(*n.Right)
		if err != nil {
			return NFA{}, err
		}
		return Union(left, right)

	case ast.KindConcat:
		left, err := FromAST(*n.Left)
		if err != nil {
			return NFA{}, err
		}
		right, err := FromAST(*n.Right)
		if err != nil {
			return NFA{}, err
		}
		return Concat(left, right)

	case ast.KindStar:
		inner, err := FromAST(*n.Left)
		if err != nil {
			return NFA{}, err
		}
		return Star(inner)

	case ast.KindPlus:
		inner, err := FromAST(*n.Left)
		if err != nil {
			return NFA{}, err
		}
		return Plus(inner)

	case ast.KindOptional:
		inner, err := FromAST(*n.Left)
		if err != nil {
			return NFA{}, err
		}
		return Optional(inner)

	case ast.KindRepeatN:
		inner, err := FromAST(*n.Left)
		if err != nil {
			return NFA{}, err
		}
		return RepeatN(inner, n.Min, n.Max)

	default:
		return NFA{}, coreerr.NewDomainError("unknown AST node kind %v", n.Kind)
	}
}

func fullPrintableRange() []byte {
	out := make([]byte, 0, printableHi-printableLo+1)
	for c := printableLo; c <= printableHi; c++ {
		out = append(out, byte(c))
	}
	return out
}

// charSetNFA builds the union of Single(c) for every c in members.
func charSetNFA(members []byte) NFA {
	result := Single(members[0])
	for _, c := range members[1:] {
		next := Single(c)
		merged, _ := Union(result, next) // Union never errors on fresh NFAs
		result = merged
	}
	return result
}
