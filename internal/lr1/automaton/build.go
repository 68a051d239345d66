package automaton

import (
	"fmt"

	"github.com/dekarrin/lr1kit/internal/lr1/diag"
	"github.com/dekarrin/lr1kit/internal/lr1/grammar"
	"github.com/dekarrin/lr1kit/internal/lr1/item"
)

// DefaultMaxStates is the MAX_STATES bound Build enforces when Config.MaxStates
// is zero.
const DefaultMaxStates = 10000

// Config controls automaton construction bounds.
type Config struct {
	// MaxStates caps the number of states the canonical collection may
	// grow to before Build fails with a ResourceExhaustion diagnostic
	// wrapping diag.ErrStateExplosion. Zero means DefaultMaxStates.
	MaxStates int
}

// Build constructs the canonical LR(1) collection for g (Purple Dragon
// Algorithm 4.56's item-set construction half): it augments g with a new
// start rule S' -> S, seeds state 0 with the closure of [S' -> . S, $],
// then repeatedly computes GOTO for every symbol out of every
// newly-discovered state until no state produces a transition to a set
// not already seen.
//
// States are discovered in a deterministic order: the worklist is a FIFO
// queue (states are expanded in the order they were first reached), and
// within a state, symbols are tried terminals-then-non-terminals,
// alphabetically within each group (Grammar.Symbols' order). This makes
// the resulting state indices reproducible for a given grammar across
// runs.
func Build(g *grammar.Grammar, cfg Config) (*Automaton, error) {
	maxStates := cfg.MaxStates
	if maxStates <= 0 {
		maxStates = DefaultMaxStates
	}

	augmented, err := g.Augmented()
	if err != nil {
		return nil, err
	}

	start := augmented.StartSymbol()
	startRule, ok := augmented.Rule(start)
	if !ok || len(startRule.Productions) != 1 {
		return nil, diag.New(diag.InternalInvariantViolation, "augmented grammar's start rule is missing or malformed")
	}

	seed := item.NewSetOf(item.Item{
		NonTerminal: start,
		Left:        grammar.Production{},
		Right:       startRule.Productions[0].Copy(),
		Lookahead:   grammar.EndOfInput,
	})
	startState := item.Closure(augmented, seed)

	a := &Automaton{}
	keyToIndex := map[string]int{startState.Key(): a.addState(startState)}
	a.StartState = 0

	symbols := augmented.Symbols()

	worklist := []int{0}
	for len(worklist) > 0 {
		idx := worklist[0]
		worklist = worklist[1:]
		state := a.States[idx]

		for _, sym := range symbols {
			next := item.Goto(augmented, state.Items, sym)
			if next.Len() == 0 {
				continue
			}

			key := next.Key()
			toIdx, exists := keyToIndex[key]
			if !exists {
				if len(a.States) >= maxStates {
					return nil, diag.New(diag.ResourceExhaustion,
						fmt.Sprintf("canonical LR(1) collection exceeded %d states", maxStates),
						diag.ErrStateExplosion)
				}
				toIdx = a.addState(next)
				keyToIndex[key] = toIdx
				worklist = append(worklist, toIdx)
			}
			a.addTransition(idx, sym, toIdx)
		}
	}

	return a, nil
}
