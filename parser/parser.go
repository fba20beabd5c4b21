// Package parser implements the recursive-descent regex parser of
// spec.md §4.2: grammar
//
//	regex    := union
//	union    := concat ( '|' concat )*
//	concat   := repeat+          (empty concat => Epsilon)
//	repeat   := atom ( '*' | '+' | '?' | '{' bounds '}' )*
//	atom     := '(' regex ')' | '[' charclass ']' | '.' | '^' | '$'
//	          | '\' any | literal
//	bounds   := digits | digits ',' | digits ',' digits
//	charclass:= '^'? ( char | char '-' char )+
//
// It is grounded on the recursive-descent shape shared by the example
// corpus's hand-rolled regex parsers (see grep-style parser.go/ast.go in
// the example pack): a cursor over the pattern bytes, one method per
// grammar production, no precedence climbing.
package parser

import (
	"github.com/kntjspr/automata-new/ast"
	"github.com/kntjspr/automata-new/coreerr"
)

const printableLo, printableHi = 0x20, 0x7E

type parser struct {
	pattern []byte
	pos     int
}

// Parse parses pattern and returns its AST, or a *coreerr.ParseError.
func Parse(pattern string) (ast.Node, error) {
	p := &parser{pattern: []byte(pattern)}
	n, err := p.parseUnion()
	if err != nil {
		return ast.Node{}, err
	}
	if p.pos != len(p.pattern) {
		return ast.Node{}, coreerr.NewParseError(p.pos, "unexpected input %q after fully consumed parse", string(p.pattern[p.pos:]))
	}
	return n, nil
}

func (p *parser) atEnd() bool { return p.pos >= len(p.pattern) }

func (p *parser) peek() byte {
	if p.atEnd() {
		return 0
	}
	return p.pattern[p.pos]
}

func (p *parser) advance() byte {
	c := p.pattern[p.pos]
	p.pos++
	return c
}

func (p *parser) parseUnion() (ast.Node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return ast.Node{}, err
	}
	for !p.atEnd() && p.peek() == '|' {
		p.advance()
		right, err := p.parseConcat()
		if err != nil {
			return ast.Node{}, err
		}
		left = ast.Union(left, right)
	}
	return left, nil
}

func (p *parser) parseConcat() (ast.Node, error) {
	var parts []ast.Node
	for !p.atEnd() && p.peek() != '|' && p.peek() != ')' {
		n, err := p.parseRepeat()
		if err != nil {
			return ast.Node{}, err
		}
		parts = append(parts, n)
	}
	if len(parts) == 0 {
		return ast.Epsilon(), nil
	}
	result := parts[0]
	for _, n := range parts[1:] {
		result = ast.Concat(result, n)
	}
	return result, nil
}

func (p *parser) parseRepeat() (ast.Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return ast.Node{}, err
	}
	for !p.atEnd() {
		switch p.peek() {
		case '*':
			p.advance()
			atom = ast.Star(atom)
		case '+':
			p.advance()
			atom = ast.Plus(atom)
		case '?':
			p.advance()
			atom = ast.Optional(atom)
		case '{':
			n, consumed, err := p.tryParseBounds(atom)
			if err != nil {
				return ast.Node{}, err
			}
			if !consumed {
				// Malformed {...}: per spec.md §9 open issue, treat the '{'
				// as a literal and resume parsing.
				return atom, nil
			}
			atom = n
		default:
			return atom, nil
		}
	}
	return atom, nil
}

// tryParseBounds attempts to parse '{' bounds '}' starting at the current
// '{'. If the contents are malformed it rewinds and reports consumed=false
// so the caller treats '{' as a literal character instead.
func (p *parser) tryParseBounds(atom ast.Node) (ast.Node, bool, error) {
	start := p.pos
	p.advance() // consume '{'

	min, ok := p.parseDigits()
	if !ok {
		p.pos = start
		return ast.Node{}, false, nil
	}
	max := min
	if !p.atEnd() && p.peek() == ',' {
		p.advance()
		if !p.atEnd() && p.peek() != '}' {
			m, ok := p.parseDigits()
			if !ok {
				p.pos = start
				return ast.Node{}, false, nil
			}
			max = m
		} else {
			max = -1
		}
	}
	if p.atEnd() || p.peek() != '}' {
		p.pos = start
		return ast.Node{}, false, nil
	}
	p.advance() // consume '}'

	if max != -1 && max < min {
		return ast.Node{}, false, coreerr.NewParseError(start, "repeat count {%d,%d} has max < min", min, max)
	}
	return ast.RepeatN(atom, min, max), true, nil
}

func (p *parser) parseDigits() (int, bool) {
	start := p.pos
	for !p.atEnd() && p.peek() >= '0' && p.peek() <= '9' {
		p.advance()
	}
	if p.pos == start {
		return 0, false
	}
	n := 0
	for _, c := range p.pattern[start:p.pos] {
		n = n*10 + int(c-'0')
	}
	return n, true
}

func isMeta(c byte) bool {
	switch c {
	case '*', '+', '?', '|', ')', '(', '[', '.', '^', '$':
		return true
	default:
		return false
	}
}

func (p *parser) parseAtom() (ast.Node, error) {
	if p.atEnd() {
		return ast.Node{}, coreerr.NewParseError(p.pos, "unexpected end of pattern")
	}
	c := p.peek()
	switch c {
	case '(':
		p.advance()
		inner, err := p.parseUnion()
		if err != nil {
			return ast.Node{}, err
		}
		if p.atEnd() || p.peek() != ')' {
			return ast.Node{}, coreerr.NewParseError(p.pos, "unmatched '('")
		}
		p.advance()
		return ast.Group(inner), nil
	case ')':
		return ast.Node{}, coreerr.NewParseError(p.pos, "unmatched ')'")
	case '[':
		p.advance()
		class, err := p.parseCharClass()
		if err != nil {
			return ast.Node{}, err
		}
		return ast.CharClass(class), nil
	case '.':
		p.advance()
		return ast.Any(), nil
	case '^':
		p.advance()
		return ast.StartAnchor(), nil
	case '$':
		p.advance()
		return ast.EndAnchor(), nil
	case '\\':
		p.advance()
		if p.atEnd() {
			return ast.Node{}, coreerr.NewParseError(p.pos, "trailing escape")
		}
		return ast.Char(p.advance()), nil
	case '*', '+', '?':
		return ast.Node{}, coreerr.NewParseError(p.pos, "metacharacter %q used as atom", c)
	default:
		if isMeta(c) {
			return ast.Node{}, coreerr.NewParseError(p.pos, "metacharacter %q used as atom", c)
		}
		p.advance()
		return ast.Char(c), nil
	}
}

// parseCharClass parses the contents of '[' ... ']', with the closing ']'
// already expected next; it consumes through the closing ']'.
//
// Semantics (spec.md §4.2): a leading '^' negates against the printable
// ASCII range [0x20,0x7E]; 'a-c' enumerates {a,b,c}; a trailing '-' (the
// final character before ']') is a literal dash; escapes are accepted
// verbatim (i.e. '\' does not start a nested escape sequence here — the
// backslash itself becomes a class member, matching "Escapes inside the
// class are accepted verbatim").
func (p *parser) parseCharClass() (map[byte]bool, error) {
	negate := false
	if !p.atEnd() && p.peek() == '^' {
		negate = true
		p.advance()
	}

	members := make(map[byte]bool)
	for {
		if p.atEnd() {
			return nil, coreerr.NewParseError(p.pos, "unmatched '['")
		}
		if p.peek() == ']' {
			break
		}
		lo := p.advance()
		if !p.atEnd() && p.peek() == '-' && p.pos+1 < len(p.pattern) && p.pattern[p.pos+1] != ']' {
			p.advance() // consume '-'
			hi := p.advance()
			if hi < lo {
				return nil, coreerr.NewParseError(p.pos, "invalid range %q-%q", lo, hi)
			}
			for c := int(lo); c <= int(hi); c++ {
				members[byte(c)] = true
			}
		} else {
			members[lo] = true
		}
	}
	p.advance() // consume ']'

	if negate {
		negated := make(map[byte]bool)
		for c := printableLo; c <= printableHi; c++ {
			if !members[byte(c)] {
				negated[byte(c)] = true
			}
		}
		return negated, nil
	}
	return members, nil
}
