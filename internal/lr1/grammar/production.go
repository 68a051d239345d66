package grammar

import "strings"

// Production is the right-hand side of a rule: an ordered sequence of
// symbols. A Production with zero elements is the empty production, which
// is how ParseText stores a blank or explicitly-written epsilon
// alternative; one with a single Epsilon element is also treated as empty.
type Production []Symbol

// IsEpsilon reports whether p is the empty production.
func (p Production) IsEpsilon() bool {
	return len(p) == 0 || (len(p) == 1 && p[0] == Epsilon)
}

// Copy returns a deep copy of p.
func (p Production) Copy() Production {
	cp := make(Production, len(p))
	copy(cp, p)
	return cp
}

// Equal reports whether p and o contain the same symbols in the same
// order. Two different representations of the empty production (nil vs.
// []Symbol{Epsilon}) compare equal.
func (p Production) Equal(o Production) bool {
	if p.IsEpsilon() && o.IsEpsilon() {
		return true
	}
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// String returns a human-readable rendering of p, using "ε" for the empty
// production and a single space between symbols otherwise.
func (p Production) String() string {
	if p.IsEpsilon() {
		return "ε"
	}
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = string(s)
	}
	return strings.Join(parts, " ")
}
