package grammar

import (
	"fmt"
	"strings"

	"github.com/dekarrin/lr1kit/internal/lr1/diag"
)

// Token is one element of a tokenized input stream: a terminal symbol of
// the grammar it was matched against, the literal text that produced it,
// and its zero-based position in the input's token sequence.
type Token struct {
	Terminal Symbol
	Text     string
	Pos      int
}

// Tokenize splits input on whitespace and classifies each resulting word
// against g's terminal set: a word is a valid token iff it is exactly the
// name of one of g's terminals. This is the simple whitespace-delimited
// surface format lr1kit's driver consumes; grammars whose terminals are
// not single whitespace-free words are out of reach of this tokenizer and
// must be tokenized by the caller into a []Token directly.
//
// If a word does not match any terminal, Tokenize returns a *diag.Error
// of kind ParseReject wrapping diag.ErrUnknownToken, identifying the
// offending word and its position, rather than silently dropping or
// guessing at it.
func (g *Grammar) Tokenize(input string) ([]Token, error) {
	words := strings.Fields(input)
	terms := map[Symbol]bool{}
	for _, t := range g.Terminals() {
		terms[t] = true
	}

	tokens := make([]Token, 0, len(words))
	for i, w := range words {
		sym := Symbol(w)
		if !terms[sym] {
			msg := fmt.Sprintf("position %d: %q is not a terminal of this grammar", i, w)
			return nil, diag.New(diag.ParseReject, msg, diag.ErrUnknownToken)
		}
		tokens = append(tokens, Token{Terminal: sym, Text: w, Pos: i})
	}
	return tokens, nil
}
