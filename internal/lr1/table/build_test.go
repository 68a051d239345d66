package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/lr1kit/internal/lr1/automaton"
	"github.com/dekarrin/lr1kit/internal/lr1/grammar"
)

func exprGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g, err := grammar.ParseText(`
E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`)
	require.NoError(t, err)
	return g
}

func buildExprTable(t *testing.T) *Table {
	t.Helper()
	g := exprGrammar(t)
	a, err := automaton.Build(g, automaton.Config{})
	require.NoError(t, err)
	tbl, err := Build(g, a)
	require.NoError(t, err)
	return tbl
}

func Test_Build_unambiguousGrammarHasNoConflicts(t *testing.T) {
	tbl := buildExprTable(t)
	assert.Empty(t, tbl.Conflicts)
}

func Test_Build_startStateShiftsOnOpenParenAndId(t *testing.T) {
	tbl := buildExprTable(t)

	act, ok := tbl.Action(tbl.Automaton.StartState, "id")
	require.True(t, ok)
	assert.Equal(t, Shift, act.Type)

	act, ok = tbl.Action(tbl.Automaton.StartState, "(")
	require.True(t, ok)
	assert.Equal(t, Shift, act.Type)
}

func Test_Build_noActionForUnreachableSymbol(t *testing.T) {
	tbl := buildExprTable(t)
	_, ok := tbl.Action(tbl.Automaton.StartState, "*")
	assert.False(t, ok)
}

func Test_Build_productionsAreStablyNumbered(t *testing.T) {
	tbl := buildExprTable(t)
	require.NotEmpty(t, tbl.Productions)
	for i, p := range tbl.Productions {
		assert.Equal(t, i, p.Index)
	}
	// augmented start production is always index 0.
	first := tbl.Productions[0]
	assert.Equal(t, grammar.AugmentedStart, first.NonTerminal)
	assert.Equal(t, 0, first.Index)
}

func Test_resolve_singleCandidateNoConflict(t *testing.T) {
	act, conflict := resolve(0, "x", []Action{{Type: Shift, State: 4}})
	assert.Nil(t, conflict)
	assert.Equal(t, Shift, act.Type)
	assert.Equal(t, 4, act.State)
}

func Test_resolve_shiftReduceConflictPrefersShift(t *testing.T) {
	shift := Action{Type: Shift, State: 7}
	reduce := Action{Type: Reduce, Prod: Production{Index: 2, NonTerminal: "E"}}

	winner, conflict := resolve(1, "+", []Action{reduce, shift})
	require.NotNil(t, conflict)
	assert.Equal(t, ShiftReduce, conflict.Kind)
	assert.Equal(t, Shift, winner.Type)
	assert.Equal(t, 7, winner.State)
}

func Test_resolve_reduceReduceConflictPrefersSmallestIndex(t *testing.T) {
	r1 := Action{Type: Reduce, Prod: Production{Index: 5, NonTerminal: "A"}}
	r2 := Action{Type: Reduce, Prod: Production{Index: 1, NonTerminal: "B"}}

	winner, conflict := resolve(1, "x", []Action{r1, r2})
	require.NotNil(t, conflict)
	assert.Equal(t, ReduceReduce, conflict.Kind)
	assert.Equal(t, 1, winner.Prod.Index)
}

func Test_resolve_acceptAlwaysWins(t *testing.T) {
	accept := Action{Type: Accept}
	shift := Action{Type: Shift, State: 3}

	winner, conflict := resolve(1, "$", []Action{shift, accept})
	require.NotNil(t, conflict)
	assert.Equal(t, Accept, winner.Type)
}

func Test_resolve_identicalCandidatesAreNotAConflict(t *testing.T) {
	a := Action{Type: Shift, State: 2}
	b := Action{Type: Shift, State: 2}

	winner, conflict := resolve(1, "x", []Action{a, b})
	assert.Nil(t, conflict)
	assert.Equal(t, 2, winner.State)
}

func Test_RenderConflicts_noConflicts(t *testing.T) {
	tbl := buildExprTable(t)
	assert.Equal(t, "no conflicts", tbl.RenderConflicts())
}

func Test_RenderConflicts_listsEachConflict(t *testing.T) {
	g, err := grammar.ParseText(`
S -> A a | B a
A -> x
B -> x
`)
	require.NoError(t, err)
	a, err := automaton.Build(g, automaton.Config{})
	require.NoError(t, err)
	tbl, err := Build(g, a)
	require.NoError(t, err)

	out := tbl.RenderConflicts()
	assert.Contains(t, out, "reduce/reduce")
}

func Test_Snapshot_binaryRoundTrip(t *testing.T) {
	tbl := buildExprTable(t)
	data := tbl.EncodeBinary()
	require.NotEmpty(t, data)

	restored, err := DecodeBinary(data, tbl.Automaton)
	require.NoError(t, err)
	assert.Equal(t, len(tbl.Productions), len(restored.Productions))

	act, ok := restored.Action(tbl.Automaton.StartState, "id")
	require.True(t, ok)
	assert.Equal(t, Shift, act.Type)
}

func Test_Action_Equal(t *testing.T) {
	a := Action{Type: Reduce, Prod: Production{Index: 3}}
	b := Action{Type: Reduce, Prod: Production{Index: 3}}
	c := Action{Type: Reduce, Prod: Production{Index: 4}}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
