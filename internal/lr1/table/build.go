// Package table assembles the ACTION/GOTO parsing table from a canonical
// LR(1) collection (Purple Dragon Algorithm 4.56). Unlike a construction
// that aborts on the first conflicting entry, Build records every
// conflict it finds, resolves it with a deterministic tie-break, and
// still returns a fully usable Table -- a conflict is a diagnostic
// attached to the table, not a fatal construction error.
package table

import (
	"sort"

	"github.com/dekarrin/lr1kit/internal/lr1/automaton"
	"github.com/dekarrin/lr1kit/internal/lr1/grammar"
	"github.com/dekarrin/lr1kit/internal/lr1/item"
)

// Table is the assembled ACTION/GOTO parsing table for a canonical LR(1)
// automaton, plus every conflict encountered while building it.
type Table struct {
	Automaton   *automaton.Automaton
	Productions []Production

	action    map[int]map[grammar.Symbol]Action
	gotoTable map[int]map[grammar.Symbol]int
	Conflicts []Conflict
}

// Action returns the ACTION-table entry for (state, sym) and whether one
// exists. If it does not exist, the parse driver must reject.
func (t *Table) Action(state int, sym grammar.Symbol) (Action, bool) {
	bySym, ok := t.action[state]
	if !ok {
		return Action{}, false
	}
	a, ok := bySym[sym]
	return a, ok
}

// ActionsFor returns every terminal that has an ACTION-table entry in
// state, sorted alphabetically -- used to build "expected one of ..."
// rejection explanations.
func (t *Table) ActionsFor(state int) []grammar.Symbol {
	bySym, ok := t.action[state]
	if !ok {
		return nil
	}
	out := make([]grammar.Symbol, 0, len(bySym))
	for s := range bySym {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Goto returns the GOTO-table entry for (state, nonTerminal) and whether
// one exists.
func (t *Table) Goto(state int, nonTerminal grammar.Symbol) (int, bool) {
	bySym, ok := t.gotoTable[state]
	if !ok {
		return 0, false
	}
	s, ok := bySym[nonTerminal]
	return s, ok
}

// Build assembles the ACTION/GOTO table for the canonical LR(1) collection
// a, built over the augmented form of g. g must be the same grammar a was
// built from (Build re-derives the augmented grammar and its production
// numbering; passing a mismatched g produces an unusable table).
func Build(g *grammar.Grammar, a *automaton.Automaton) (*Table, error) {
	augmented, err := g.Augmented()
	if err != nil {
		return nil, err
	}

	prods := enumerateProductions(augmented)
	prodByKey := map[string]Production{}
	for _, p := range prods {
		prodByKey[prodKey(p.NonTerminal, p.Body)] = p
	}

	t := &Table{
		Automaton:   a,
		Productions: prods,
		action:      map[int]map[grammar.Symbol]Action{},
		gotoTable:   map[int]map[grammar.Symbol]int{},
	}

	startSym := augmented.StartSymbol()

	candidates := map[int]map[grammar.Symbol][]Action{}
	addCandidate := func(state int, sym grammar.Symbol, act Action) {
		if candidates[state] == nil {
			candidates[state] = map[grammar.Symbol][]Action{}
		}
		candidates[state][sym] = append(candidates[state][sym], act)
	}

	for _, state := range a.States {
		for _, it := range state.Items.Items() {
			if it.IsComplete() {
				if it.NonTerminal == startSym && it.Lookahead == grammar.EndOfInput {
					addCandidate(state.Index, grammar.EndOfInput, Action{Type: Accept})
					continue
				}
				body := it.Left
				prod, ok := prodByKey[prodKey(it.NonTerminal, body)]
				if !ok {
					continue
				}
				addCandidate(state.Index, it.Lookahead, Action{Type: Reduce, Prod: prod})
				continue
			}

			nextSym, _ := it.NextSymbol()
			if !augmented.IsTerminal(nextSym) {
				continue
			}
			toState, ok := a.Goto(state.Index, nextSym)
			if !ok {
				continue
			}
			addCandidate(state.Index, nextSym, Action{Type: Shift, State: toState})
		}

		for _, nt := range augmented.NonTerminals() {
			toState, ok := a.Goto(state.Index, nt)
			if ok {
				if t.gotoTable[state.Index] == nil {
					t.gotoTable[state.Index] = map[grammar.Symbol]int{}
				}
				t.gotoTable[state.Index][nt] = toState
			}
		}
	}

	stateIndices := make([]int, 0, len(candidates))
	for s := range candidates {
		stateIndices = append(stateIndices, s)
	}
	sort.Ints(stateIndices)

	for _, s := range stateIndices {
		bySym := candidates[s]
		syms := make([]grammar.Symbol, 0, len(bySym))
		for sym := range bySym {
			syms = append(syms, sym)
		}
		sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

		for _, sym := range syms {
			winner, conflict := resolve(s, sym, bySym[sym])
			if t.action[s] == nil {
				t.action[s] = map[grammar.Symbol]Action{}
			}
			t.action[s][sym] = winner
			if conflict != nil {
				t.Conflicts = append(t.Conflicts, *conflict)
			}
		}
	}

	return t, nil
}

// enumerateProductions assigns each production of g a stable index. The
// augmented start production S' -> S is always index 0, so that its
// reduction -- which only ever happens once per successful parse, at
// Accept -- is recognizable by index alone; g's own rules follow in
// Grammar.Rules() order, alternatives in the order they were added.
func enumerateProductions(g *grammar.Grammar) []Production {
	var augmented *grammar.Rule
	var rest []grammar.Rule
	for _, r := range g.Rules() {
		r := r
		if r.NonTerminal == grammar.AugmentedStart {
			augmented = &r
			continue
		}
		rest = append(rest, r)
	}

	var out []Production
	idx := 0
	if augmented != nil {
		for _, p := range augmented.Productions {
			out = append(out, Production{Index: idx, NonTerminal: augmented.NonTerminal, Body: p})
			idx++
		}
	}
	for _, r := range rest {
		for _, p := range r.Productions {
			out = append(out, Production{Index: idx, NonTerminal: r.NonTerminal, Body: p})
			idx++
		}
	}
	return out
}

func prodKey(nt grammar.Symbol, body grammar.Production) string {
	return string(nt) + "\x00" + body.String()
}

// Item is an alias of item.Item, the LR(1) item type held by the states
// of the automaton a Table is built over.
type Item = item.Item
