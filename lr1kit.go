// Package lr1kit is the public entry point for building canonical LR(1)
// parsers and driving step-recorded parses over them. It wraps the
// internal grammar, automaton, table, and parser packages behind a
// read-only facade so a caller -- a CLI, a test, or an external HTTP
// server -- never needs to import lr1kit/internal directly.
package lr1kit

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dekarrin/lr1kit/internal/lr1/automaton"
	"github.com/dekarrin/lr1kit/internal/lr1/grammar"
	"github.com/dekarrin/lr1kit/internal/lr1/parser"
	"github.com/dekarrin/lr1kit/internal/lr1/table"
)

// Grammar is a parsed context-free grammar. BuildGrammar validates it and
// returns its diagnostics alongside it; a Grammar may still carry fatal
// diagnostics (see Diagnostics).
type Grammar struct {
	g *grammar.Grammar
}

// Automaton is the canonical LR(1) collection built from a Grammar.
type Automaton struct {
	a *automaton.Automaton
}

// Table is the ACTION/GOTO parsing table assembled from an Automaton.
type Table struct {
	t *table.Table
}

// Trace is the full step-by-step record of one parse, identified by a
// unique RunID so callers that log or correlate multiple traces can tell
// them apart.
type Trace struct {
	RunID    uuid.UUID
	Steps    []parser.Step
	Accepted bool
	treeStr  string
}

// BuildGrammar parses grammar text in lr1kit's line-oriented surface
// syntax (see grammar.ParseText) into a Grammar and runs structural
// validation. It returns the Grammar and its diagnostics together: a
// Grammar with only non-fatal diagnostics (UnusedSymbol,
// UnreachableFromStart) is still usable by BuildAutomaton, so the caller
// decides whether to proceed.
func BuildGrammar(text string) (*Grammar, []grammar.Diagnostic, error) {
	g, err := grammar.ParseText(text)
	if err != nil {
		return nil, nil, err
	}
	problems := g.Validate()
	return &Grammar{g: g}, problems, nil
}

// Diagnostics re-runs Validate on g and returns its current diagnostics.
func (g *Grammar) Diagnostics() []grammar.Diagnostic {
	return g.g.Validate()
}

// String renders the grammar, one rule per line.
func (g *Grammar) String() string {
	return g.g.String()
}

// BuildAutomaton constructs the canonical LR(1) collection for g, capping
// the number of states at maxStates (0 means automaton.DefaultMaxStates).
func BuildAutomaton(g *Grammar, maxStates int) (*Automaton, error) {
	a, err := automaton.Build(g.g, automaton.Config{MaxStates: maxStates})
	if err != nil {
		return nil, err
	}
	return &Automaton{a: a}, nil
}

// StateCount returns the number of states in the automaton.
func (a *Automaton) StateCount() int {
	return len(a.a.States)
}

// SnapshotState returns the printed items of the automaton state at
// index, one per line, each in the "A → α · β , a" form.
func (a *Automaton) SnapshotState(index int) ([]string, error) {
	if index < 0 || index >= len(a.a.States) {
		return nil, indexError("automaton state", index, len(a.a.States))
	}
	items := a.a.States[index].Items.Items()
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.String()
	}
	return out, nil
}

// RenderDOT renders a as a Graphviz "dot" digraph, one node per state and
// one edge per GOTO transition.
func (a *Automaton) RenderDOT() string {
	return a.a.DOT()
}

// BuildTable assembles the ACTION/GOTO table from g and a.
func BuildTable(g *Grammar, a *Automaton) (*Table, error) {
	t, err := table.Build(g.g, a.a)
	if err != nil {
		return nil, err
	}
	return &Table{t: t}, nil
}

// Conflicts returns every shift/reduce or reduce/reduce conflict recorded
// while building t, in (state, symbol) order.
func (t *Table) Conflicts() []table.Conflict {
	return t.t.Conflicts
}

// SnapshotTable renders t as an ASCII ACTION/GOTO grid.
func (t *Table) SnapshotTable() string {
	return t.t.String()
}

// RenderConflicts renders t's conflicts as an ASCII grid.
func (t *Table) RenderConflicts() string {
	return t.t.RenderConflicts()
}

// EncodeBinary renders t as REZI-encoded bytes: the byte-level form a
// catalog or cache would persist, as opposed to SnapshotTable's
// human-readable grid.
func (t *Table) EncodeBinary() []byte {
	return t.t.EncodeBinary()
}

// DecodeTableBinary rebuilds a Table from bytes previously produced by
// EncodeBinary, over the given Automaton (which must be the same one the
// Table was originally built from).
func DecodeTableBinary(data []byte, a *Automaton) (*Table, error) {
	t, err := table.DecodeBinary(data, a.a)
	if err != nil {
		return nil, err
	}
	return &Table{t: t}, nil
}

// Parse tokenizes input against g's terminal set and drives t over the
// resulting tokens, recording every step, up to maxSteps (0 means
// parser.DefaultMaxSteps). The returned Trace is populated even when the
// parse rejects, so a caller can inspect the steps taken before
// rejection.
func Parse(g *Grammar, t *Table, input string, maxSteps int) (*Trace, error) {
	tokens, err := g.g.Tokenize(input)
	if err != nil {
		return nil, err
	}

	result, err := parser.Parse(t.t, tokens, parser.Config{MaxSteps: maxSteps})
	trace := &Trace{RunID: uuid.New(), Steps: nil, Accepted: false}
	if result != nil {
		trace.Steps = result.Steps
		trace.Accepted = result.Accepted
		if result.Accepted {
			trace.treeStr = result.Tree.String()
		}
	}
	if err != nil {
		return trace, err
	}
	return trace, nil
}

// Tree returns the parse tree rendered as ASCII tree art, or "" if the
// parse that produced this Trace did not accept.
func (tr *Trace) Tree() string {
	return tr.treeStr
}

func indexError(what string, got, n int) error {
	return fmt.Errorf("%s index %d out of range (have %d)", what, got, n)
}
