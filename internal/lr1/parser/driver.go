// Package parser implements the step-recording canonical LR(1)
// shift-reduce parse driver (Purple Dragon Algorithm 4.44): given an
// assembled table.Table and a tokenized input, it drives the parse one
// symbol at a time, recording a full snapshot of every step, and builds
// the resulting arena-style parse tree.
package parser

import (
	"fmt"
	"strings"

	"github.com/dekarrin/lr1kit/internal/lr1/diag"
	"github.com/dekarrin/lr1kit/internal/lr1/grammar"
	"github.com/dekarrin/lr1kit/internal/lr1/table"
	"github.com/dekarrin/lr1kit/internal/lr1/tree"
)

// DefaultMaxSteps is the MAX_STEPS bound Parse enforces when
// Config.MaxSteps is zero.
const DefaultMaxSteps = 10000

// Config controls parse driver bounds.
type Config struct {
	// MaxSteps caps the number of steps the driver may take before it
	// fails with a ResourceExhaustion diagnostic wrapping
	// diag.ErrStepLimitExceeded. Zero means DefaultMaxSteps.
	MaxSteps int
}

// Step is a full snapshot of the driver immediately before it acts on one
// symbol: the state stack and remaining input as they stood, the
// lookahead, the action taken, a human-readable explanation of it, the
// ids of any parse-tree nodes the action created, and the resulting
// sentential form. The trace's first Step (Ordinal 1) is always the
// initial configuration, Action left as table.None, before any symbol has
// been shifted or reduced; Ordinal is 1-based throughout.
type Step struct {
	Ordinal        int
	StateStack     []int
	RemainingInput []grammar.Token
	Lookahead      grammar.Symbol
	Action         table.Action
	Explanation    string
	NewNodeIDs     []int
	SententialForm []grammar.Symbol
}

// Result is everything the driver produced over the course of a parse:
// its full step trace, the resulting tree (valid only if Accepted), and
// whether the parse accepted.
type Result struct {
	Steps    []Step
	Tree     *tree.Tree
	Accepted bool
}

// Parse drives t over tokens, starting from state 0, until it accepts,
// rejects, or exceeds cfg.MaxSteps. It always returns the Result
// containing every step taken so far, even on error, so a caller can
// inspect the trace up to and including the failing step.
func Parse(t *table.Table, tokens []grammar.Token, cfg Config) (*Result, error) {
	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	res := &Result{Tree: tree.New()}

	stateStack := []int{t.Automaton.StartState}
	nodeStack := []int{}
	pos := 0

	initialLookahead := grammar.EndOfInput
	if pos < len(tokens) {
		initialLookahead = tokens[pos].Terminal
	}
	res.Steps = append(res.Steps, Step{
		Ordinal:        1,
		StateStack:     cloneInts(stateStack),
		RemainingInput: tokens[pos:],
		Lookahead:      initialLookahead,
		Explanation:    "initial configuration",
		SententialForm: sententialForm(res.Tree, nodeStack, tokens[pos:]),
	})

	for {
		if len(res.Steps) >= maxSteps {
			return res, diag.New(diag.ResourceExhaustion,
				fmt.Sprintf("parse exceeded %d steps", maxSteps), diag.ErrStepLimitExceeded)
		}

		lookahead := grammar.EndOfInput
		if pos < len(tokens) {
			lookahead = tokens[pos].Terminal
		}
		state := stateStack[len(stateStack)-1]

		action, ok := t.Action(state, lookahead)
		if !ok {
			explanation := expectedExplanation(t, state, lookahead, pos)
			step := Step{
				Ordinal:        len(res.Steps) + 1,
				StateStack:     cloneInts(stateStack),
				RemainingInput: tokens[pos:],
				Lookahead:      lookahead,
				Explanation:    explanation,
				SententialForm: sententialForm(res.Tree, nodeStack, tokens[pos:]),
			}
			res.Steps = append(res.Steps, step)
			return res, diag.New(diag.ParseReject, explanation, diag.ErrNoAction)
		}

		step := Step{
			Ordinal:        len(res.Steps) + 1,
			StateStack:     cloneInts(stateStack),
			RemainingInput: tokens[pos:],
			Lookahead:      lookahead,
			Action:         action,
			SententialForm: sententialForm(res.Tree, nodeStack, tokens[pos:]),
		}

		switch action.Type {
		case table.Shift:
			tok := grammar.Token{Terminal: lookahead, Pos: pos}
			if pos < len(tokens) {
				tok = tokens[pos]
			}
			nodeID := res.Tree.AddLeaf(tok)
			stateStack = append(stateStack, action.State)
			nodeStack = append(nodeStack, nodeID)
			pos++

			step.Explanation = fmt.Sprintf("shift %q, go to state %d", tok.Text, action.State)
			step.NewNodeIDs = []int{nodeID}

		case table.Reduce:
			n := len(action.Prod.Body)
			if action.Prod.Body.IsEpsilon() {
				n = 0
			}
			var children []int
			if n > 0 {
				children = cloneInts(nodeStack[len(nodeStack)-n:])
				stateStack = stateStack[:len(stateStack)-n]
				nodeStack = nodeStack[:len(nodeStack)-n]
			}
			nodeID := res.Tree.AddInternal(action.Prod.NonTerminal, children)

			top := stateStack[len(stateStack)-1]
			gotoState, ok := t.Goto(top, action.Prod.NonTerminal)
			if !ok {
				return res, diag.Newf(diag.InternalInvariantViolation,
					"no GOTO entry for state %d on non-terminal %q after reducing by %s", top, action.Prod.NonTerminal, action.Prod)
			}
			stateStack = append(stateStack, gotoState)
			nodeStack = append(nodeStack, nodeID)

			step.Explanation = fmt.Sprintf("reduce by %s, go to state %d", action.Prod, gotoState)
			step.NewNodeIDs = []int{nodeID}

		case table.Accept:
			if len(nodeStack) != 1 {
				return res, diag.Newf(diag.InternalInvariantViolation,
					"accept reached with %d nodes remaining on the stack, expected 1", len(nodeStack))
			}
			res.Tree.SetRoot(nodeStack[0])
			res.Accepted = true
			step.Explanation = "accept"
			res.Steps = append(res.Steps, step)
			return res, nil
		}

		step.SententialForm = sententialForm(res.Tree, nodeStack, tokens[pos:])
		res.Steps = append(res.Steps, step)
	}
}

func cloneInts(s []int) []int {
	cp := make([]int, len(s))
	copy(cp, s)
	return cp
}

// sententialForm renders the current mix of reduced/shifted symbols on
// the stack followed by the unconsumed input as a single sequence of
// symbols.
func sententialForm(tr *tree.Tree, nodeStack []int, remaining []grammar.Token) []grammar.Symbol {
	out := make([]grammar.Symbol, 0, len(nodeStack)+len(remaining))
	for _, id := range nodeStack {
		if n, ok := tr.Node(id); ok {
			out = append(out, n.Symbol)
		}
	}
	for _, tok := range remaining {
		out = append(out, tok.Terminal)
	}
	return out
}

// expectedExplanation builds a human-readable rejection message
// enumerating the terminals that would have been accepted in state, in
// the style of "expected X, Y, or Z but found W".
func expectedExplanation(t *table.Table, state int, lookahead grammar.Symbol, pos int) string {
	expected := t.ActionsFor(state)
	names := make([]string, len(expected))
	for i, s := range expected {
		names[i] = string(s)
	}

	if len(names) == 0 {
		return fmt.Sprintf("position %d: unexpected %q, no action is possible in state %d", pos, lookahead, state)
	}

	return fmt.Sprintf("position %d: expected %s but found %q", pos, oxfordList(names), lookahead)
}

// oxfordList joins items with commas and an oxford comma before the final
// "or", in the style of the teacher's own text-list helper.
func oxfordList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	if len(items) == 1 {
		return items[0]
	}
	if len(items) == 2 {
		return items[0] + " or " + items[1]
	}
	cp := make([]string, len(items))
	copy(cp, items)
	cp[len(cp)-1] = "or " + cp[len(cp)-1]
	return strings.Join(cp, ", ")
}
