package table

import (
	"fmt"
	"strings"

	"github.com/dekarrin/lr1kit/internal/lr1/grammar"
)

// ConflictKind classifies a Conflict.
type ConflictKind int

const (
	// ShiftReduce marks a state/symbol pair where both a shift and one or
	// more reduces were candidates.
	ShiftReduce ConflictKind = iota

	// ReduceReduce marks a state/symbol pair where two or more distinct
	// reduces were candidates and no shift was.
	ReduceReduce
)

func (k ConflictKind) String() string {
	if k == ShiftReduce {
		return "shift/reduce"
	}
	return "reduce/reduce"
}

// Conflict records every candidate ACTION-table entry that competed for a
// single (state, terminal) cell, and which one was chosen by resolve.
// A Table with conflicts is still fully usable: Action always returns the
// Chosen entry.
type Conflict struct {
	Kind       ConflictKind
	State      int
	Symbol     grammar.Symbol
	Candidates []Action
	Chosen     Action
}

func (c Conflict) String() string {
	cands := make([]string, len(c.Candidates))
	for i, a := range c.Candidates {
		cands[i] = a.String()
	}
	return fmt.Sprintf("state %d, %q: %s conflict among [%s]; chose %s",
		c.State, c.Symbol, c.Kind, strings.Join(cands, ", "), c.Chosen)
}

// resolve picks the winning action among candidates using lr1kit's
// deterministic tie-break policy: prefer Accept, then Shift, then the
// Reduce with the smallest production index. It returns the winner and,
// if there was more than one distinct candidate, a *Conflict describing
// the contention.
func resolve(state int, sym grammar.Symbol, candidates []Action) (Action, *Conflict) {
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if preferred(c, best) {
			best = c
		}
	}

	distinct := map[string]bool{}
	for _, c := range candidates {
		distinct[c.String()] = true
	}
	if len(distinct) <= 1 {
		return best, nil
	}

	kind := ReduceReduce
	for _, c := range candidates {
		if c.Type == Shift {
			kind = ShiftReduce
			break
		}
	}

	cp := make([]Action, len(candidates))
	copy(cp, candidates)

	return best, &Conflict{Kind: kind, State: state, Symbol: sym, Candidates: cp, Chosen: best}
}

// preferred reports whether candidate should replace incumbent as the
// current best action under the tie-break policy.
func preferred(candidate, incumbent Action) bool {
	rank := func(a Action) int {
		switch a.Type {
		case Accept:
			return 0
		case Shift:
			return 1
		default:
			return 2
		}
	}

	cr, ir := rank(candidate), rank(incumbent)
	if cr != ir {
		return cr < ir
	}
	if candidate.Type == Reduce && incumbent.Type == Reduce {
		return candidate.Prod.Index < incumbent.Prod.Index
	}
	return false
}
