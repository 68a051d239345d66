package table

import (
	"fmt"
	"sort"

	"github.com/dekarrin/lr1kit/internal/lr1/grammar"
	"github.com/dekarrin/rosed"
)

// String renders t as an ASCII ACTION/GOTO grid, one row per state,
// terminal columns followed by non-terminal columns, in the same style
// as the teacher's canonical-LR(1) table dump.
func (t *Table) String() string {
	if len(t.Automaton.States) == 0 {
		return ""
	}

	seenT := map[grammar.Symbol]bool{}
	seenN := map[grammar.Symbol]bool{}
	for s := range t.action {
		for sym := range t.action[s] {
			seenT[sym] = true
		}
	}
	for s := range t.gotoTable {
		for sym := range t.gotoTable[s] {
			seenN[sym] = true
		}
	}
	terms := sortedSymbols(seenT)
	nonterms := sortedSymbols(seenN)

	headers := []string{"state", "|"}
	for _, term := range terms {
		headers = append(headers, fmt.Sprintf("A:%s", term))
	}
	headers = append(headers, "|")
	for _, nt := range nonterms {
		headers = append(headers, fmt.Sprintf("G:%s", nt))
	}

	data := [][]string{headers}
	for _, state := range t.Automaton.States {
		row := []string{fmt.Sprintf("%d", state.Index), "|"}
		for _, term := range terms {
			cell := ""
			if a, ok := t.Action(state.Index, term); ok {
				switch a.Type {
				case Accept:
					cell = "acc"
				case Shift:
					cell = fmt.Sprintf("s%d", a.State)
				case Reduce:
					cell = fmt.Sprintf("r%s", a.Prod)
				}
			}
			row = append(row, cell)
		}
		row = append(row, "|")
		for _, nt := range nonterms {
			cell := ""
			if s, ok := t.Goto(state.Index, nt); ok {
				cell = fmt.Sprintf("%d", s)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

// RenderConflicts renders t.Conflicts as an ASCII grid: one row per
// conflict, the contending state/symbol, its kind, and which action won.
func (t *Table) RenderConflicts() string {
	if len(t.Conflicts) == 0 {
		return "no conflicts"
	}

	data := [][]string{{"state", "symbol", "kind", "chosen"}}
	for _, c := range t.Conflicts {
		data = append(data, []string{
			fmt.Sprintf("%d", c.State),
			string(c.Symbol),
			c.Kind.String(),
			c.Chosen.String(),
		})
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func sortedSymbols(set map[grammar.Symbol]bool) []grammar.Symbol {
	out := make([]grammar.Symbol, 0, len(set))
	for sym := range set {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
