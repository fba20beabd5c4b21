package pda

import "github.com/kntjspr/automata-new/symbol"

// Configuration is an instantaneous description (spec.md §3): the current
// state, the unconsumed suffix of the input, and the stack with the bottom
// at index 0 and the top at the last index.
type Configuration struct {
	State          symbol.StateID
	RemainingInput []byte
	Stack          []symbol.Symbol
}

func (c Configuration) stackTop() (symbol.Symbol, bool) {
	if len(c.Stack) == 0 {
		return 0, false
	}
	return c.Stack[len(c.Stack)-1], true
}

// enabled reports whether t fires in configuration c (spec.md §4.5): the
// next input symbol matches (or the transition is input-epsilon) and the
// stack top matches (or the transition is pop-epsilon).
func (t Transition) enabled(c Configuration) bool {
	if !t.InputEps {
		if len(c.RemainingInput) == 0 || c.RemainingInput[0] != t.InputSymbol {
			return false
		}
	}
	if !t.PopEps {
		top, ok := c.stackTop()
		if !ok || top != t.PopSymbol {
			return false
		}
	}
	return true
}

// fire produces the configuration reached by applying t to c. The caller
// must have already confirmed t.enabled(c).
func (t Transition) fire(c Configuration) Configuration {
	next := Configuration{State: t.To}
	if t.InputEps {
		next.RemainingInput = c.RemainingInput
	} else {
		next.RemainingInput = c.RemainingInput[1:]
	}
	stack := c.Stack
	if !t.PopEps {
		stack = stack[:len(stack)-1]
	}
	next.Stack = append(append([]symbol.Symbol(nil), stack...), t.PushString...)
	return next
}

// Step returns every configuration reachable from c in one transition.
func (p *PDA) Step(c Configuration) []Configuration {
	var out []Configuration
	for _, t := range p.transitions {
		if t.From != c.State {
			continue
		}
		if t.enabled(c) {
			out = append(out, t.fire(c))
		}
	}
	return out
}

func (c Configuration) key() string {
	buf := make([]byte, 0, len(c.RemainingInput)+len(c.Stack)+16)
	buf = appendUint(buf, uint64(c.State))
	buf = append(buf, '|')
	buf = append(buf, c.RemainingInput...)
	buf = append(buf, '|')
	buf = append(buf, c.Stack...)
	return string(buf)
}

func appendUint(buf []byte, v uint64) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}
