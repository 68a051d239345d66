// Package grammar holds the context-free grammar representation used
// throughout lr1kit: Symbol, Production, Rule, and the Grammar type
// itself, along with grammar-text parsing, FIRST/FOLLOW computation, and
// structural validation.
//
// A Grammar classifies every symbol it has seen purely structurally: a
// symbol is a non-terminal iff it is the left-hand side of at least one
// rule added via AddRule, and a terminal otherwise. There is no
// lexical convention, such as case, that marks a symbol one way or the
// other.
package grammar

import (
	"sort"

	"github.com/dekarrin/lr1kit/internal/lr1/diag"
)

// Grammar is a context-free grammar built up by successive calls to
// AddRule. The zero value is not usable; create one with New.
type Grammar struct {
	start             Symbol
	rulesByName       map[Symbol]int
	rules             []Rule
	declaredTerminals map[Symbol]bool
}

// New creates a new, empty Grammar.
func New() *Grammar {
	return &Grammar{rulesByName: map[Symbol]int{}}
}

// SetStart sets the grammar's start symbol explicitly. If it is never
// called, StartSymbol returns the non-terminal of the first rule added.
func (g *Grammar) SetStart(s Symbol) {
	g.start = s
}

// StartSymbol returns the grammar's start symbol: the one set by
// SetStart, or if none was set, the non-terminal of the first rule added
// by AddRule. Returns "" if the grammar has no rules and no start symbol
// was explicitly set.
func (g *Grammar) StartSymbol() Symbol {
	if g.start != "" {
		return g.start
	}
	if len(g.rules) > 0 {
		return g.rules[0].NonTerminal
	}
	return ""
}

// AddRule adds production p as an alternative for non-terminal nt,
// creating the rule for nt if this is its first production. AddRule does
// not check for duplicates: adding the same production twice stores it
// twice. Validate's DuplicateEmptyAlternatives check reports a repeated
// empty production; other repeated productions are not reported.
func (g *Grammar) AddRule(nt Symbol, p Production) {
	if idx, ok := g.rulesByName[nt]; ok {
		g.rules[idx].Productions = append(g.rules[idx].Productions, p.Copy())
		return
	}
	g.rulesByName[nt] = len(g.rules)
	g.rules = append(g.rules, Rule{NonTerminal: nt, Productions: []Production{p.Copy()}})
}

// Rule returns the rule for non-terminal nt and whether it was found.
func (g *Grammar) Rule(nt Symbol) (Rule, bool) {
	idx, ok := g.rulesByName[nt]
	if !ok {
		return Rule{}, false
	}
	return g.rules[idx], true
}

// Rules returns every rule in the grammar, in the order their
// non-terminal was first added.
func (g *Grammar) Rules() []Rule {
	out := make([]Rule, len(g.rules))
	copy(out, g.rules)
	return out
}

// IsNonTerminal reports whether s is the left-hand side of at least one
// rule.
func (g *Grammar) IsNonTerminal(s Symbol) bool {
	_, ok := g.rulesByName[s]
	return ok
}

// IsTerminal reports whether s is a terminal: any symbol that is not
// Epsilon and is not the left-hand side of any rule.
func (g *Grammar) IsTerminal(s Symbol) bool {
	if s == Epsilon {
		return false
	}
	return !g.IsNonTerminal(s)
}

// NonTerminals returns every non-terminal of the grammar, sorted
// alphabetically.
func (g *Grammar) NonTerminals() []Symbol {
	out := make([]Symbol, 0, len(g.rules))
	for _, r := range g.rules {
		out = append(out, r.NonTerminal)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Terminals returns every terminal that appears anywhere in the
// right-hand side of any production, sorted alphabetically. EndOfInput is
// never included; it is a lookahead marker, not a grammar symbol.
func (g *Grammar) Terminals() []Symbol {
	seen := map[Symbol]bool{}
	for _, r := range g.rules {
		for _, p := range r.Productions {
			for _, s := range p {
				if s == Epsilon {
					continue
				}
				if g.IsTerminal(s) {
					seen[s] = true
				}
			}
		}
	}
	out := make([]Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Symbols returns every symbol used anywhere in the grammar (terminals
// and non-terminals), sorted with all terminals first, alphabetically,
// then all non-terminals, alphabetically. This ordering is relied upon
// by automaton construction for deterministic GOTO iteration.
func (g *Grammar) Symbols() []Symbol {
	terms := g.Terminals()
	nonterms := g.NonTerminals()
	out := make([]Symbol, 0, len(terms)+len(nonterms))
	out = append(out, terms...)
	out = append(out, nonterms...)
	return out
}

// String renders the grammar as one rule per line.
func (g *Grammar) String() string {
	s := ""
	for i, r := range g.rules {
		if i > 0 {
			s += "\n"
		}
		s += r.String()
	}
	return s
}

// Copy returns a deep copy of g.
func (g *Grammar) Copy() *Grammar {
	cp := &Grammar{
		start:       g.start,
		rulesByName: make(map[Symbol]int, len(g.rulesByName)),
		rules:       make([]Rule, len(g.rules)),
	}
	for k, v := range g.rulesByName {
		cp.rulesByName[k] = v
	}
	for i, r := range g.rules {
		cp.rules[i] = r.Copy()
	}
	if g.declaredTerminals != nil {
		cp.declaredTerminals = make(map[Symbol]bool, len(g.declaredTerminals))
		for k, v := range g.declaredTerminals {
			cp.declaredTerminals[k] = v
		}
	}
	return cp
}

// Augmented returns a copy of g with a new start rule S' -> S added,
// where S is g's current start symbol, per the standard construction used
// to seed the canonical LR(1) collection (Purple Dragon Algorithm 4.53).
// AugmentedStart is used as the name of S' unless that name is already in
// use by g, in which case an internal invariant error is returned.
func (g *Grammar) Augmented() (*Grammar, error) {
	inUse := g.IsNonTerminal(AugmentedStart)
	for _, t := range g.Terminals() {
		if t == AugmentedStart {
			inUse = true
		}
	}
	if inUse {
		return nil, diag.Newf(diag.InternalInvariantViolation,
			"reserved augmented start symbol %q is already in use by the grammar", AugmentedStart)
	}
	start := g.StartSymbol()
	if start == "" {
		return nil, diag.New(diag.GrammarSemantic, "grammar has no rules, cannot determine a start symbol")
	}

	aug := g.Copy()
	aug.AddRule(AugmentedStart, Production{start})
	aug.SetStart(AugmentedStart)
	return aug, nil
}
