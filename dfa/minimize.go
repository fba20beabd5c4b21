package dfa

import (
	"sort"

	"github.com/kntjspr/automata-new/internal/set"
	"github.com/kntjspr/automata-new/symbol"
)

// MinimizeOptions configures Hopcroft-style minimization, following the
// zero-value-safe config struct convention the teacher's CompilerConfig
// uses. It is deliberately empty: the algorithm spec.md §4.4 describes has
// no tunable behavior today (no alternate starting partition, no
// transition-canonicalization strategy to pick between), so every call
// currently minimizes the same way regardless of which MinimizeOptions
// value is passed. The type exists so a future tunable doesn't require
// changing Minimize's signature.
type MinimizeOptions struct{}

// DefaultMinimizeOptions returns the zero-value MinimizeOptions.
func DefaultMinimizeOptions() MinimizeOptions { return MinimizeOptions{} }

// Minimize reduces d to its minimal equivalent DFA using
// DefaultMinimizeOptions.
func (d *DFA) Minimize() *DFA {
	return d.MinimizeWithOptions(DefaultMinimizeOptions())
}

// MinimizeWithOptions reduces d to its minimal equivalent DFA by
// Hopcroft-style partition refinement (spec.md §4.4).
//
// Refinement snapshots the partition before scanning each symbol, so a
// split discovered partway through a symbol's scan never feeds back into
// that same scan — this is the "mutate the partition while iterating over
// it" bug spec.md §9 warns the naive version of the algorithm falls into.
// The two-list worklist invariant (replace Y with both parts if Y was
// queued, else queue only the smaller part) is applied per split.
func (d *DFA) MinimizeWithOptions(_ MinimizeOptions) *DFA {
	accepting := set.New()
	nonAccepting := set.New()
	for _, s := range d.states {
		if s.Accepting {
			accepting.Add(s.ID)
		} else {
			nonAccepting.Add(s.ID)
		}
	}

	var partition []*set.StateSet
	inQueue := make(map[*set.StateSet]bool)
	var queue []*set.StateSet

	enqueue := func(c *set.StateSet) {
		queue = append(queue, c)
		inQueue[c] = true
	}
	if !accepting.Empty() {
		partition = append(partition, accepting)
		enqueue(accepting)
	}
	if !nonAccepting.Empty() {
		partition = append(partition, nonAccepting)
		enqueue(nonAccepting)
	}

	alphabet := d.Alphabet()

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		delete(inQueue, a)

		for _, c := range alphabet {
			x := set.New()
			for _, st := range d.states {
				if to, ok := d.NextState(st.ID, c); ok && a.Contains(to) {
					x.Add(st.ID)
				}
			}
			if x.Empty() {
				continue
			}

			snapshot := partition
			var newPartition []*set.StateSet
			for _, y := range snapshot {
				inter, diff := splitBy(y, x)
				if inter == nil || diff == nil {
					newPartition = append(newPartition, y)
					continue
				}
				newPartition = append(newPartition, inter, diff)
				if inQueue[y] {
					delete(inQueue, y)
					enqueue(inter)
					enqueue(diff)
				} else if inter.Len() <= diff.Len() {
					enqueue(inter)
				} else {
					enqueue(diff)
				}
			}
			partition = newPartition
		}
	}

	return buildQuotient(d, partition)
}

// splitBy partitions y into (y ∩ x, y \ x). If either half would be empty,
// returns (nil, nil) to signal "no split".
func splitBy(y, x *set.StateSet) (inter, diff *set.StateSet) {
	i, df := set.New(), set.New()
	for _, id := range y.Sorted() {
		if x.Contains(id) {
			i.Add(id)
		} else {
			df.Add(id)
		}
	}
	if i.Empty() || df.Empty() {
		return nil, nil
	}
	return i, df
}

func buildQuotient(d *DFA, partition []*set.StateSet) *DFA {
	out := New()

	classOf := make(map[symbol.StateID]int)
	representative := make([]symbol.StateID, len(partition))
	for i, class := range partition {
		sorted := class.Sorted()
		representative[i] = sorted[0]
		for _, id := range sorted {
			classOf[id] = i
		}
	}

	classStateID := make([]symbol.StateID, len(partition))
	order := make([]int, len(partition))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return representative[order[i]] < representative[order[j]] })

	for _, classIdx := range order {
		rep := representative[classIdx]
		classStateID[classIdx] = out.AddState("", d.states[rep].Accepting)
	}

	startClass := classOf[d.start]
	// SetStart must be called with the already-created id, regardless of
	// creation order above.
	_ = out.SetStart(classStateID[startClass])

	seen := make(map[tableKey]bool)
	for _, classIdx := range order {
		rep := representative[classIdx]
		fromID := classStateID[classIdx]
		for _, c := range d.Alphabet() {
			to, ok := d.NextState(rep, c)
			if !ok {
				continue
			}
			toClass := classOf[to]
			toID := classStateID[toClass]
			key := tableKey{From: fromID, Sym: c}
			if seen[key] {
				continue // deduplicate transitions emerging from lifting (spec.md §4.4)
			}
			seen[key] = true
			_ = out.AddTransition(fromID, toID, c)
		}
	}
	return out
}
