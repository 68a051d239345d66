package grammar

import (
	"fmt"
	"sort"
)

// ProblemKind classifies a single Diagnostic returned by Validate.
type ProblemKind int

const (
	// UndefinedNonTerminal marks a symbol that was explicitly declared a
	// terminal via DeclareTerminal but also appears as the left-hand side
	// of a rule, or -- once at least one terminal has been declared -- a
	// symbol referenced in some production that is neither declared a
	// terminal nor the left-hand side of any rule. In both cases the
	// author's intent for the symbol cannot be resolved from the grammar
	// alone.
	UndefinedNonTerminal ProblemKind = iota

	// UnreachableFromStart marks a non-terminal that is never derivable
	// from the start symbol: no sequence of productions beginning at the
	// start symbol can ever produce it.
	UnreachableFromStart

	// UnusedSymbol marks a terminal declared via DeclareTerminal that
	// never appears in any production of any rule -- the grammar has no
	// way to ever shift it.
	UnusedSymbol

	// DuplicateEmptyAlternatives marks a rule whose alternatives list the
	// empty production more than once.
	DuplicateEmptyAlternatives
)

func (k ProblemKind) String() string {
	switch k {
	case UndefinedNonTerminal:
		return "undefined non-terminal"
	case UnreachableFromStart:
		return "unreachable from start"
	case UnusedSymbol:
		return "unused symbol"
	case DuplicateEmptyAlternatives:
		return "duplicate empty alternatives"
	default:
		return fmt.Sprintf("ProblemKind(%d)", int(k))
	}
}

// Diagnostic is a single structural problem found by Validate. A Grammar
// with only UnusedSymbol or UnreachableFromStart diagnostics is still
// usable for automaton construction; UndefinedNonTerminal and
// DuplicateEmptyAlternatives indicate the grammar is malformed enough
// that construction should not proceed.
type Diagnostic struct {
	Kind    ProblemKind
	Symbol  Symbol
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// DeclareTerminal records that s is intended to be a terminal, purely for
// Validate's UndefinedNonTerminal check; it never affects IsTerminal,
// whose answer always follows the structural never-a-left-hand-side
// rule. Grammar text that carries a "%terminal" section (see ParseText)
// calls this for every name so typos -- a symbol the author meant as a
// terminal that accidentally also appears as a rule's left-hand side, or
// a symbol the author meant as a non-terminal but never wrote a rule for
// -- are caught instead of silently reclassified.
func (g *Grammar) DeclareTerminal(s Symbol) {
	if g.declaredTerminals == nil {
		g.declaredTerminals = map[Symbol]bool{}
	}
	g.declaredTerminals[s] = true
}

// Fatal reports whether the diagnostic list contains at least one problem
// serious enough that the grammar should not be used for automaton
// construction.
func Fatal(problems []Diagnostic) bool {
	for _, p := range problems {
		if p.Kind == UndefinedNonTerminal || p.Kind == DuplicateEmptyAlternatives {
			return true
		}
	}
	return false
}

// Validate checks g for the structural problems lr1kit knows how to
// detect and returns every one found, in a deterministic order grouped by
// check: undefined non-terminals (alphabetically), duplicate empty
// alternatives (in rule addition order), unreachable non-terminals
// (alphabetically), then unused declared terminals (alphabetically). An
// empty return means g is well-formed.
func (g *Grammar) Validate() []Diagnostic {
	var problems []Diagnostic

	referenced := map[Symbol]bool{}
	for _, r := range g.rules {
		for _, p := range r.Productions {
			for _, s := range p {
				if s == Epsilon {
					continue
				}
				referenced[s] = true
			}
		}
	}

	declared := make([]Symbol, 0, len(g.declaredTerminals))
	for s := range g.declaredTerminals {
		declared = append(declared, s)
	}
	sort.Slice(declared, func(i, j int) bool { return declared[i] < declared[j] })
	for _, s := range declared {
		if g.IsNonTerminal(s) {
			problems = append(problems, Diagnostic{
				Kind:    UndefinedNonTerminal,
				Symbol:  s,
				Message: fmt.Sprintf("%q was declared a terminal but also appears as the left-hand side of a rule", s),
			})
		}
	}
	// Only enforced once the grammar text opts in with at least one
	// %terminal declaration: in that mode the declarations are taken to
	// be exhaustive, so any other referenced, non-left-hand-side symbol
	// is a typo rather than an ordinary terminal. Without any
	// declarations, every non-left-hand-side symbol is simply a
	// terminal per the structural rule and carries no diagnostic.
	if len(g.declaredTerminals) > 0 {
		refs := make([]Symbol, 0, len(referenced))
		for s := range referenced {
			refs = append(refs, s)
		}
		sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })
		for _, s := range refs {
			if g.declaredTerminals[s] {
				continue
			}
			if !g.IsNonTerminal(s) {
				problems = append(problems, Diagnostic{
					Kind:    UndefinedNonTerminal,
					Symbol:  s,
					Message: fmt.Sprintf("%q is used in a production but has no rule of its own and was not declared a terminal", s),
				})
			}
		}
	}

	for _, r := range g.rules {
		emptyCount := 0
		for _, p := range r.Productions {
			if p.IsEpsilon() {
				emptyCount++
			}
		}
		if emptyCount > 1 {
			problems = append(problems, Diagnostic{
				Kind:    DuplicateEmptyAlternatives,
				Symbol:  r.NonTerminal,
				Message: fmt.Sprintf("rule for %q lists the empty production %d times", r.NonTerminal, emptyCount),
			})
		}
	}

	reachable := g.reachableFromStart()
	for _, nt := range g.NonTerminals() {
		if !reachable[nt] {
			problems = append(problems, Diagnostic{
				Kind:    UnreachableFromStart,
				Symbol:  nt,
				Message: fmt.Sprintf("%q can never be derived from the start symbol %q", nt, g.StartSymbol()),
			})
		}
	}

	// g.Terminals() only enumerates symbols actually seen in some
	// right-hand side, so by construction none of them can ever be
	// "unused" -- the check that matters is over explicitly declared
	// terminals that never made it into any production at all.
	for _, s := range declared {
		if !referenced[s] {
			problems = append(problems, Diagnostic{
				Kind:    UnusedSymbol,
				Symbol:  s,
				Message: fmt.Sprintf("%q never appears in any production", s),
			})
		}
	}

	return problems
}

// reachableFromStart returns the set of non-terminals derivable, directly
// or transitively, from the start symbol.
func (g *Grammar) reachableFromStart() map[Symbol]bool {
	reachable := map[Symbol]bool{}
	start := g.StartSymbol()
	if start == "" {
		return reachable
	}

	worklist := []Symbol{start}
	reachable[start] = true
	for len(worklist) > 0 {
		nt := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		r, ok := g.Rule(nt)
		if !ok {
			continue
		}
		for _, p := range r.Productions {
			for _, s := range p {
				if s == Epsilon || !g.IsNonTerminal(s) {
					continue
				}
				if !reachable[s] {
					reachable[s] = true
					worklist = append(worklist, s)
				}
			}
		}
	}
	return reachable
}
