package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/lr1kit/internal/lr1/grammar"
)

func Test_Item_NextSymbolAndComplete(t *testing.T) {
	it := Item{
		NonTerminal: "E",
		Left:        grammar.Production{"E", "+"},
		Right:       grammar.Production{"T"},
		Lookahead:   grammar.EndOfInput,
	}
	sym, ok := it.NextSymbol()
	require.True(t, ok)
	assert.Equal(t, grammar.Symbol("T"), sym)
	assert.False(t, it.IsComplete())

	advanced := it.Advance()
	assert.True(t, advanced.IsComplete())
	_, ok = advanced.NextSymbol()
	assert.False(t, ok)
	assert.Equal(t, grammar.Production{"E", "+", "T"}, advanced.Left)
}

func Test_Item_String_usesArrowAndDot(t *testing.T) {
	it := Item{
		NonTerminal: "E",
		Left:        grammar.Production{"E", "+"},
		Right:       grammar.Production{"T"},
		Lookahead:   "$",
	}
	assert.Equal(t, "E → E + · T , $", it.String())
}

func Test_Item_String_dotAtStart(t *testing.T) {
	it := Item{
		NonTerminal: "E",
		Left:        grammar.Production{},
		Right:       grammar.Production{"T"},
		Lookahead:   "$",
	}
	assert.Equal(t, "E → · T , $", it.String())
}

func Test_Item_String_dotAtEnd(t *testing.T) {
	it := Item{
		NonTerminal: "E",
		Left:        grammar.Production{"T"},
		Right:       grammar.Production{},
		Lookahead:   "$",
	}
	assert.Equal(t, "E → T · , $", it.String())
}

func Test_Set_AddAndContains(t *testing.T) {
	s := NewSet()
	it := Item{NonTerminal: "E", Right: grammar.Production{"T"}, Lookahead: "$"}
	assert.True(t, s.Add(it))
	assert.False(t, s.Add(it))
	assert.True(t, s.Contains(it))
	assert.Equal(t, 1, s.Len())
}

func Test_Set_Key_isOrderIndependent(t *testing.T) {
	a := Item{NonTerminal: "E", Right: grammar.Production{"T"}, Lookahead: "$"}
	b := Item{NonTerminal: "T", Right: grammar.Production{"F"}, Lookahead: "+"}

	s1 := NewSetOf(a, b)
	s2 := NewSetOf(b, a)
	assert.Equal(t, s1.Key(), s2.Key())
	assert.True(t, s1.Equal(s2))
}

func Test_Set_Copy_isIndependent(t *testing.T) {
	a := Item{NonTerminal: "E", Right: grammar.Production{"T"}, Lookahead: "$"}
	s1 := NewSetOf(a)
	s2 := s1.Copy()

	b := Item{NonTerminal: "T", Right: grammar.Production{"F"}, Lookahead: "+"}
	s2.Add(b)

	assert.Equal(t, 1, s1.Len())
	assert.Equal(t, 2, s2.Len())
}

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

func Test_Closure_expandsNonTerminalAtDot(t *testing.T) {
	g := exprGrammar(t)
	aug, err := g.Augmented()
	require.NoError(t, err)

	seed := NewSetOf(Item{
		NonTerminal: grammar.AugmentedStart,
		Right:       grammar.Production{"E"},
		Lookahead:   grammar.EndOfInput,
	})
	closure := Closure(aug, seed)

	// closure must contain the seed item plus every E, T, F production
	// with dot at position 0, across the possible lookaheads.
	var hasEStart, hasTStart, hasFStart bool
	for _, it := range closure.Items() {
		if it.NonTerminal == "E" && len(it.Left) == 0 {
			hasEStart = true
		}
		if it.NonTerminal == "T" && len(it.Left) == 0 {
			hasTStart = true
		}
		if it.NonTerminal == "F" && len(it.Left) == 0 {
			hasFStart = true
		}
	}
	assert.True(t, hasEStart)
	assert.True(t, hasTStart)
	assert.True(t, hasFStart)
}

func Test_Goto_advancesDotAndRecloses(t *testing.T) {
	g := exprGrammar(t)
	aug, err := g.Augmented()
	require.NoError(t, err)

	seed := NewSetOf(Item{
		NonTerminal: grammar.AugmentedStart,
		Right:       grammar.Production{"E"},
		Lookahead:   grammar.EndOfInput,
	})
	state0 := Closure(aug, seed)

	onE := Goto(aug, state0, "E")
	require.Greater(t, onE.Len(), 0)

	var found bool
	for _, it := range onE.Items() {
		if it.NonTerminal == grammar.AugmentedStart && it.IsComplete() {
			found = true
		}
	}
	assert.True(t, found, "expected S' -> E . , $ after GOTO on E")
}

func Test_Goto_noTransitionReturnsEmptySet(t *testing.T) {
	g := exprGrammar(t)
	aug, err := g.Augmented()
	require.NoError(t, err)

	seed := NewSetOf(Item{
		NonTerminal: grammar.AugmentedStart,
		Right:       grammar.Production{"E"},
		Lookahead:   grammar.EndOfInput,
	})
	state0 := Closure(aug, seed)

	none := Goto(aug, state0, ")")
	assert.Equal(t, 0, none.Len())
}
