package pda

import (
	"github.com/kntjspr/automata-new/coreerr"
	"github.com/kntjspr/automata-new/symbol"
)

// DefaultIterationLimit is the BFS dequeue budget used when a caller does
// not supply one (spec.md §4.5 "recommended default 10,000 dequeues").
const DefaultIterationLimit = 10000

// Step is one recorded move of an accepting path: the configuration before
// firing, the transition fired (never nil), and the configuration after.
// An already-accepting start configuration yields a path with no steps.
type Step struct {
	Before     Configuration
	Transition *Transition
	After      Configuration
}

type bfsNode struct {
	config Configuration
	parent int
	via    *Transition
}

func (p *PDA) initialConfiguration(input string) Configuration {
	return Configuration{
		State:          p.start,
		RemainingInput: []byte(input),
		Stack:          []symbol.Symbol{p.initialStackSymbol},
	}
}

// acceptsByFinalState reports acceptance: remaining input is empty and the
// state is accepting.
func acceptsByFinalState(p *PDA, c Configuration) bool {
	return len(c.RemainingInput) == 0 && p.isAccepting(c.State)
}

// acceptsByEmptyStack reports acceptance: remaining input is empty and the
// stack is empty.
func acceptsByEmptyStack(c Configuration) bool {
	return len(c.RemainingInput) == 0 && len(c.Stack) == 0
}

// search performs the BFS of spec.md §4.5: a visited set of configuration
// keys prunes cycles, and the search stops after limit dequeues even if no
// accepting configuration has been found. Returns the node index of the
// first accepting configuration found, or -1 if the queue drained or the
// limit was hit first.
func search(p *PDA, input string, limit int, accept func(Configuration) bool) (nodes []bfsNode, acceptedIdx int, exhausted bool) {
	start := p.initialConfiguration(input)
	nodes = []bfsNode{{config: start, parent: -1}}
	visited := map[string]bool{start.key(): true}
	queue := []int{0}

	if accept(start) {
		return nodes, 0, false
	}

	dequeues := 0
	for len(queue) > 0 {
		if dequeues >= limit {
			return nodes, -1, true
		}
		idx := queue[0]
		queue = queue[1:]
		dequeues++

		cur := nodes[idx].config
		for i := range p.transitions {
			t := p.transitions[i]
			if t.From != cur.State || !t.enabled(cur) {
				continue
			}
			next := t.fire(cur)
			key := next.key()
			if visited[key] {
				continue
			}
			visited[key] = true
			nodes = append(nodes, bfsNode{config: next, parent: idx, via: &t})
			newIdx := len(nodes) - 1
			if accept(next) {
				return nodes, newIdx, false
			}
			queue = append(queue, newIdx)
		}
	}
	return nodes, -1, false
}

func reconstructPath(nodes []bfsNode, idx int) []Step {
	var reversed []Step
	for idx > 0 {
		n := nodes[idx]
		reversed = append(reversed, Step{Before: nodes[n.parent].config, Transition: n.via, After: n.config})
		idx = n.parent
	}
	steps := make([]Step, len(reversed))
	for i := range reversed {
		steps[i] = reversed[len(reversed)-1-i]
	}
	return steps
}

// AcceptsByFinalState reports whether input is accepted by reaching an
// accepting state with empty remaining input, searching with
// DefaultIterationLimit. A budget too small to find an accepting path
// reports false, not an error (spec.md §7: boolean entry points never
// surface IterationLimitExceeded).
func (p *PDA) AcceptsByFinalState(input string) bool {
	return p.AcceptsByFinalStateWithLimit(input, DefaultIterationLimit)
}

// AcceptsByFinalStateWithLimit is AcceptsByFinalState with an explicit BFS
// dequeue budget (spec.md §9: "make the bound a parameter with a sane
// default; caller chooses between latency and completeness").
func (p *PDA) AcceptsByFinalStateWithLimit(input string, limit int) bool {
	_, idx, _ := search(p, input, limit, func(c Configuration) bool { return acceptsByFinalState(p, c) })
	return idx >= 0
}

// AcceptsByEmptyStack reports whether input is accepted by exhausting the
// stack with empty remaining input, searching with DefaultIterationLimit.
func (p *PDA) AcceptsByEmptyStack(input string) bool {
	return p.AcceptsByEmptyStackWithLimit(input, DefaultIterationLimit)
}

// AcceptsByEmptyStackWithLimit is AcceptsByEmptyStack with an explicit BFS
// dequeue budget.
func (p *PDA) AcceptsByEmptyStackWithLimit(input string, limit int) bool {
	_, idx, _ := search(p, input, limit, acceptsByEmptyStack)
	return idx >= 0
}

// FindAcceptingPath searches for an accepting-by-final-state path and, if
// found, returns its ordered steps. If the BFS budget is exhausted before
// any accepting configuration is found, it returns an
// IterationLimitError (spec.md §7: trace-returning entry points do report
// this kind, unlike the boolean ones).
func (p *PDA) FindAcceptingPath(input string) ([]Step, error) {
	return p.FindAcceptingPathWithLimit(input, DefaultIterationLimit)
}

// FindAcceptingPathWithLimit is FindAcceptingPath with an explicit budget.
func (p *PDA) FindAcceptingPathWithLimit(input string, limit int) ([]Step, error) {
	nodes, idx, exhausted := search(p, input, limit, func(c Configuration) bool { return acceptsByFinalState(p, c) })
	if idx < 0 {
		if exhausted {
			return nil, &coreerr.IterationLimitError{Limit: limit}
		}
		return nil, nil
	}
	return reconstructPath(nodes, idx), nil
}

// TraceAllPaths explores every configuration reachable within limit
// dequeues and returns the ordered step sequence to every accepting
// configuration discovered (there may be several, since the PDA is
// nondeterministic), each as an independent path from the initial
// configuration. Grounded on the original implementation's
// traceAllPaths(input, maxDepth) (original_source include/automata/pda.hpp).
func (p *PDA) TraceAllPaths(input string, limit int) [][]Step {
	start := p.initialConfiguration(input)
	nodes := []bfsNode{{config: start, parent: -1}}
	visited := map[string]bool{start.key(): true}
	queue := []int{0}

	var paths [][]Step
	if acceptsByFinalState(p, start) {
		paths = append(paths, nil)
	}

	dequeues := 0
	for len(queue) > 0 && dequeues < limit {
		idx := queue[0]
		queue = queue[1:]
		dequeues++

		cur := nodes[idx].config
		for i := range p.transitions {
			t := p.transitions[i]
			if t.From != cur.State || !t.enabled(cur) {
				continue
			}
			next := t.fire(cur)
			key := next.key()
			if visited[key] {
				continue
			}
			visited[key] = true
			nodes = append(nodes, bfsNode{config: next, parent: idx, via: &t})
			newIdx := len(nodes) - 1
			if acceptsByFinalState(p, next) {
				paths = append(paths, reconstructPath(nodes, newIdx))
			}
			queue = append(queue, newIdx)
		}
	}
	return paths
}
