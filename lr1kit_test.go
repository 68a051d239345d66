package lr1kit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario A: classic expression grammar, successful parse.
func Test_Scenario_classicExpressionGrammar(t *testing.T) {
	g, problems, err := BuildGrammar(`
S -> E
E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`)
	require.NoError(t, err)
	assert.Empty(t, problems)

	a, err := BuildAutomaton(g, 0)
	require.NoError(t, err)

	tbl, err := BuildTable(g, a)
	require.NoError(t, err)
	assert.Empty(t, tbl.Conflicts())

	trace, err := Parse(g, tbl, "id + id * id", 0)
	require.NoError(t, err)
	assert.True(t, trace.Accepted)
	// initial configuration + 5 shifts + 9 reduces + accept.
	assert.Len(t, trace.Steps, 16)

	assert.Contains(t, trace.Tree(), "S")
}

// Scenario B: dangling-else grammar produces exactly one ShiftReduce
// conflict, tie-broken toward Shift.
func Test_Scenario_danglingElseProducesShiftReduceConflict(t *testing.T) {
	g, _, err := BuildGrammar(`
S -> I
I -> if E then I | if E then I else I | other
E -> x
`)
	require.NoError(t, err)

	a, err := BuildAutomaton(g, 0)
	require.NoError(t, err)
	tbl, err := BuildTable(g, a)
	require.NoError(t, err)

	conflicts := tbl.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, "shift/reduce", conflicts[0].Kind.String())
	assert.Equal(t, "shift", conflicts[0].Chosen.Type.String())
}

// Scenario C: reduce/reduce conflict on terminal "a".
func Test_Scenario_reduceReduceConflict(t *testing.T) {
	g, _, err := BuildGrammar(`
S -> A a | B a
A -> x
B -> x
`)
	require.NoError(t, err)

	a, err := BuildAutomaton(g, 0)
	require.NoError(t, err)
	tbl, err := BuildTable(g, a)
	require.NoError(t, err)

	conflicts := tbl.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, "reduce/reduce", conflicts[0].Kind.String())
	assert.Equal(t, "a", string(conflicts[0].Symbol))
}

// Scenario D: a grammar with an epsilon production accepts empty input in
// four steps:
// initial configuration, reduce L -> epsilon, reduce S -> L, accept.
func Test_Scenario_epsilonAcceptsEmptyInput(t *testing.T) {
	g, _, err := BuildGrammar(`
S -> L
L -> L x | ε
`)
	require.NoError(t, err)

	a, err := BuildAutomaton(g, 0)
	require.NoError(t, err)
	tbl, err := BuildTable(g, a)
	require.NoError(t, err)

	trace, err := Parse(g, tbl, "", 0)
	require.NoError(t, err)
	assert.True(t, trace.Accepted)
	assert.Len(t, trace.Steps, 4)
}

// Scenario E: rejection at the first unexpected token.
func Test_Scenario_rejectsAtFirstUnexpectedToken(t *testing.T) {
	g, _, err := BuildGrammar(`
S -> E
E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`)
	require.NoError(t, err)

	a, err := BuildAutomaton(g, 0)
	require.NoError(t, err)
	tbl, err := BuildTable(g, a)
	require.NoError(t, err)

	trace, err := Parse(g, tbl, "id +", 0)
	require.Error(t, err)
	require.NotNil(t, trace)
	assert.False(t, trace.Accepted)

	last := trace.Steps[len(trace.Steps)-1]
	assert.Equal(t, "$", string(last.Lookahead))
	assert.Contains(t, last.Explanation, "id")
}

// Scenario F: an input token outside the terminal alphabet is rejected
// before any parse step is taken.
func Test_Scenario_unknownTokenRejectedBeforeAnyStep(t *testing.T) {
	g, _, err := BuildGrammar(`
S -> E
E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`)
	require.NoError(t, err)

	a, err := BuildAutomaton(g, 0)
	require.NoError(t, err)
	tbl, err := BuildTable(g, a)
	require.NoError(t, err)

	trace, err := Parse(g, tbl, "id ? id", 0)
	require.Error(t, err)
	assert.Nil(t, trace)
}

func Test_SnapshotState_outOfRangeReturnsError(t *testing.T) {
	g, _, err := BuildGrammar(`
S -> a
`)
	require.NoError(t, err)
	a, err := BuildAutomaton(g, 0)
	require.NoError(t, err)

	_, err = a.SnapshotState(-1)
	assert.Error(t, err)
	_, err = a.SnapshotState(a.StateCount())
	assert.Error(t, err)
}

func Test_Table_BinaryRoundTrip(t *testing.T) {
	g, _, err := BuildGrammar(`
S -> E
E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`)
	require.NoError(t, err)
	a, err := BuildAutomaton(g, 0)
	require.NoError(t, err)
	tbl, err := BuildTable(g, a)
	require.NoError(t, err)

	data := tbl.EncodeBinary()
	require.NotEmpty(t, data)

	restored, err := DecodeTableBinary(data, a)
	require.NoError(t, err)

	trace, err := Parse(g, restored, "id + id * id", 0)
	require.NoError(t, err)
	assert.True(t, trace.Accepted)
}

func Test_BuildGrammar_reportsNonFatalDiagnostics(t *testing.T) {
	_, problems, err := BuildGrammar(`
S -> a
Dead -> b
`)
	require.NoError(t, err)
	assert.NotEmpty(t, problems)
}
