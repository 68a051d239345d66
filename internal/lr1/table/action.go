package table

import (
	"fmt"

	"github.com/dekarrin/lr1kit/internal/lr1/grammar"
)

// ActionType is the discriminant of an Action.
type ActionType int

const (
	// None is the zero value: no action was taken, such as in a step
	// record for the initial configuration or a rejected lookahead.
	None ActionType = iota

	// Shift consumes the lookahead terminal and pushes the target State.
	Shift

	// Reduce pops |Production.Body| symbols and states and pushes GOTO of
	// the resulting state on Production.NonTerminal.
	Reduce

	// Accept ends a successful parse.
	Accept
)

func (t ActionType) String() string {
	switch t {
	case None:
		return "none"
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	default:
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
}

// Production identifies a single production of the augmented grammar by a
// stable, deterministic index. Index 0 is always the augmented start
// production S' -> S: enumerateProductions prepends it ahead of the
// caller's own rules (which follow in Grammar.Rules() order, alternatives
// in the order they were added), so that production 0's reduction always
// coincides with Accept.
type Production struct {
	Index       int
	NonTerminal grammar.Symbol
	Body        grammar.Production
}

func (p Production) String() string {
	return fmt.Sprintf("%s -> %s", p.NonTerminal, p.Body)
}

// Action is a single ACTION-table entry: a discriminated union, not a
// type-plus-optional-fields pair, so a Shift action never carries a
// meaningless Production and a Reduce action never carries a meaningless
// State.
type Action struct {
	Type  ActionType
	State int        // valid iff Type == Shift
	Prod  Production // valid iff Type == Reduce
}

func (a Action) String() string {
	switch a.Type {
	case None:
		return "none"
	case Shift:
		return fmt.Sprintf("shift %d", a.State)
	case Reduce:
		return fmt.Sprintf("reduce %s", a.Prod)
	case Accept:
		return "accept"
	default:
		return "?"
	}
}

// Equal reports whether a and o are the same action.
func (a Action) Equal(o Action) bool {
	if a.Type != o.Type {
		return false
	}
	switch a.Type {
	case Shift:
		return a.State == o.State
	case Reduce:
		return a.Prod.Index == o.Prod.Index
	default:
		return true
	}
}
