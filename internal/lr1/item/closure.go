package item

import (
	"github.com/dekarrin/lr1kit/internal/lr1/grammar"
)

// Closure computes CLOSURE(items) with respect to g (Purple Dragon
// Algorithm 4.54): repeatedly, for every item [A -> α . B β, a] in the
// set where B is a non-terminal, add [B -> . γ, b] for every production
// B -> γ and every terminal b in FIRST(βa), until no more items can be
// added.
func Closure(g *grammar.Grammar, seed *Set) *Set {
	closure := seed.Copy()

	worklist := closure.Items()
	for len(worklist) > 0 {
		it := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		nextSym, ok := it.NextSymbol()
		if !ok || !g.IsNonTerminal(nextSym) {
			continue
		}

		beta := it.Right[1:]
		lookaheads := lookaheadsFor(g, beta, it.Lookahead)

		rule, ok := g.Rule(nextSym)
		if !ok {
			continue
		}
		for _, prod := range rule.Productions {
			right := prod
			if prod.IsEpsilon() {
				right = grammar.Production{}
			}
			for la := range lookaheads {
				newItem := Item{
					NonTerminal: nextSym,
					Left:        grammar.Production{},
					Right:       right.Copy(),
					Lookahead:   la,
				}
				if closure.Add(newItem) {
					worklist = append(worklist, newItem)
				}
			}
		}
	}

	return closure
}

// lookaheadsFor computes FIRST(beta a) where beta is the remainder of the
// production after the symbol being closed over and a is the enclosing
// item's own lookahead -- the set of terminals that can follow the
// closed-over non-terminal in this context.
func lookaheadsFor(g *grammar.Grammar, beta grammar.Production, a grammar.Symbol) map[grammar.Symbol]bool {
	seq := make([]grammar.Symbol, len(beta)+1)
	copy(seq, beta)
	seq[len(beta)] = a

	first := g.FirstOfSequence(seq)
	delete(first, grammar.Epsilon)
	return first
}

// Goto computes GOTO(items, sym) with respect to g (Purple Dragon
// Algorithm 4.55 adapted for LR(1) items): the closure of every item
// whose dot can move across sym.
func Goto(g *grammar.Grammar, s *Set, sym grammar.Symbol) *Set {
	moved := NewSet()
	for _, it := range s.Items() {
		next, ok := it.NextSymbol()
		if !ok || next != sym {
			continue
		}
		moved.Add(it.Advance())
	}
	if moved.Len() == 0 {
		return moved
	}
	return Closure(g, moved)
}
