package grammar

// Symbol is the name of a terminal or non-terminal appearing in a Grammar.
// Symbols are plain strings; whether a given Symbol is a terminal or a
// non-terminal is determined structurally by the Grammar it appears in --
// a symbol is a non-terminal iff it is the left-hand side of at least one
// production rule, and a terminal otherwise. There is no lexical
// convention (such as case) that marks a symbol one way or the other.
type Symbol string

// Epsilon is the reserved symbol denoting the empty production. It never
// appears as an element of a Production slice; Production.IsEpsilon
// reports whether a production is the empty one.
const Epsilon Symbol = ""

// EndOfInput is the reserved lookahead symbol marking the end of the
// input stream. It is used as the lookahead of the augmented grammar's
// seed item and appears in FOLLOW(start) and in completed item
// lookahead sets; it is never itself a grammar symbol added via AddRule.
const EndOfInput Symbol = "$"

// AugmentedStart is the reserved non-terminal name of the augmented grammar's new
// start symbol, S' -> S. It is added internally by automaton
// construction and never appears in a user-authored grammar.
const AugmentedStart Symbol = "S'"
