package grammar

// firstSets and followSets are recomputed from the grammar's rules on every
// call; nothing is cached on the Grammar.

// FIRST returns FIRST(s): the set of terminals (and possibly Epsilon) that
// can begin a string derived from s. If s is a terminal, FIRST(s) = {s}.
func (g *Grammar) FIRST(s Symbol) map[Symbol]bool {
	all := g.firstSets()
	out := map[Symbol]bool{}
	for k := range all[s] {
		out[k] = true
	}
	return out
}

// FOLLOW returns FOLLOW(nt): the set of terminals (and possibly
// EndOfInput) that can immediately follow non-terminal nt in some
// sentential form derivable from the start symbol.
func (g *Grammar) FOLLOW(nt Symbol) map[Symbol]bool {
	all := g.followSets()
	out := map[Symbol]bool{}
	for k := range all[nt] {
		out[k] = true
	}
	return out
}

// firstSets computes FIRST for every symbol of the grammar via worklist
// fixpoint iteration: repeatedly apply the standard FIRST-propagation
// rules to every rule's productions until no set changes in a full pass.
func (g *Grammar) firstSets() map[Symbol]map[Symbol]bool {
	first := map[Symbol]map[Symbol]bool{}

	for _, t := range g.Terminals() {
		first[t] = map[Symbol]bool{t: true}
	}
	first[EndOfInput] = map[Symbol]bool{EndOfInput: true}
	for _, nt := range g.NonTerminals() {
		first[nt] = map[Symbol]bool{}
	}

	changed := true
	for changed {
		changed = false
		for _, r := range g.rules {
			for _, p := range r.Productions {
				if p.IsEpsilon() {
					if !first[r.NonTerminal][Epsilon] {
						first[r.NonTerminal][Epsilon] = true
						changed = true
					}
					continue
				}

				allNullableSoFar := true
				for _, sym := range p {
					symFirst := first[sym]
					for t := range symFirst {
						if t == Epsilon {
							continue
						}
						if !first[r.NonTerminal][t] {
							first[r.NonTerminal][t] = true
							changed = true
						}
					}
					if !symFirst[Epsilon] {
						allNullableSoFar = false
						break
					}
				}
				if allNullableSoFar {
					if !first[r.NonTerminal][Epsilon] {
						first[r.NonTerminal][Epsilon] = true
						changed = true
					}
				}
			}
		}
	}

	return first
}

// firstOfSequence returns FIRST of a sequence of symbols, used while
// computing FOLLOW sets and while closing LR(1) items.
func (g *Grammar) firstOfSequence(seq []Symbol, first map[Symbol]map[Symbol]bool) map[Symbol]bool {
	out := map[Symbol]bool{}
	nullable := true
	for _, sym := range seq {
		symFirst := first[sym]
		for t := range symFirst {
			if t != Epsilon {
				out[t] = true
			}
		}
		if !symFirst[Epsilon] {
			nullable = false
			break
		}
	}
	if nullable {
		out[Epsilon] = true
	}
	return out
}

// FirstOfSequence is the exported form of firstOfSequence, used by the
// item package to compute item-closure lookaheads. Each call recomputes
// every FIRST set of the grammar before evaluating seq.
func (g *Grammar) FirstOfSequence(seq []Symbol) map[Symbol]bool {
	return g.firstOfSequence(seq, g.firstSets())
}

// followSets computes FOLLOW for every non-terminal of the grammar via
// worklist fixpoint iteration (Purple Dragon Algorithm 4.1, rewritten as
// an explicit repeat-until-no-change loop rather than the recursive
// memoized form).
func (g *Grammar) followSets() map[Symbol]map[Symbol]bool {
	first := g.firstSets()
	follow := map[Symbol]map[Symbol]bool{}
	for _, nt := range g.NonTerminals() {
		follow[nt] = map[Symbol]bool{}
	}

	start := g.StartSymbol()
	if start != "" {
		follow[start] = map[Symbol]bool{EndOfInput: true}
	}

	changed := true
	for changed {
		changed = false
		for _, r := range g.rules {
			for _, p := range r.Productions {
				for i, sym := range p {
					if !g.IsNonTerminal(sym) {
						continue
					}
					rest := p[i+1:]
					restFirst := g.firstOfSequence(rest, first)
					for t := range restFirst {
						if t == Epsilon {
							continue
						}
						if !follow[sym][t] {
							follow[sym][t] = true
							changed = true
						}
					}
					if restFirst[Epsilon] {
						for t := range follow[r.NonTerminal] {
							if !follow[sym][t] {
								follow[sym][t] = true
								changed = true
							}
						}
					}
				}
			}
		}
	}

	return follow
}
