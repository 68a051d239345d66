// Package item holds the LR(1) item and item-set representation used by
// automaton construction: Item (a production with a dot position and a
// single lookahead terminal) and Set (an order-independent collection of
// items), along with the CLOSURE and GOTO operations (Purple Dragon
// Algorithms 4.54 and 4.55/4.56) that build the canonical LR(1)
// collection one state at a time.
package item

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/lr1kit/internal/lr1/grammar"
)

// Item is a single LR(1) item: a production of NonTerminal with a dot
// between Left and Right, and a single lookahead terminal that must
// follow before the item's production may be reduced.
type Item struct {
	NonTerminal grammar.Symbol
	Left        grammar.Production
	Right       grammar.Production
	Lookahead   grammar.Symbol
}

// NextSymbol returns the symbol immediately after the dot and true, or
// the zero Symbol and false if the dot is at the end of the production
// (the item is complete).
func (it Item) NextSymbol() (grammar.Symbol, bool) {
	if len(it.Right) == 0 {
		return "", false
	}
	return it.Right[0], true
}

// IsComplete reports whether the dot is at the end of the production,
// i.e. the item is a candidate for reduction.
func (it Item) IsComplete() bool {
	return len(it.Right) == 0
}

// Advance returns the item produced by moving the dot one symbol to the
// right. It must only be called when IsComplete is false.
func (it Item) Advance() Item {
	next := Item{
		NonTerminal: it.NonTerminal,
		Left:        make(grammar.Production, len(it.Left)+1),
		Right:       it.Right[1:].Copy(),
		Lookahead:   it.Lookahead,
	}
	copy(next.Left, it.Left)
	next.Left[len(it.Left)] = it.Right[0]
	return next
}

// Equal reports whether it and o are the same item: same core (production
// and dot position) and same lookahead.
func (it Item) Equal(o Item) bool {
	return it.NonTerminal == o.NonTerminal &&
		it.Left.Equal(o.Left) &&
		it.Right.Equal(o.Right) &&
		it.Lookahead == o.Lookahead
}

// CoreKey returns a string identifying it.NonTerminal, it.Left, and
// it.Right but not it.Lookahead -- the "core" of the item, used when
// comparing item sets for LALR-style core-merging (not used by the
// canonical LR(1) construction itself, but kept for callers that want to
// measure how much a canonical collection would shrink under merging).
func (it Item) CoreKey() string {
	return string(it.NonTerminal) + " -> " + it.Left.String() + " . " + it.Right.String()
}

// String renders it in the conventional "A -> α . β , a" form.
func (it Item) String() string {
	left := it.Left.String()
	if it.Left.IsEpsilon() {
		left = ""
	}
	right := it.Right.String()
	if it.Right.IsEpsilon() {
		right = ""
	}

	parts := make([]string, 0, 2)
	if left != "" {
		parts = append(parts, left)
	}
	parts = append(parts, "·")
	if right != "" {
		parts = append(parts, right)
	}

	return fmt.Sprintf("%s → %s , %s", it.NonTerminal, strings.Join(parts, " "), it.Lookahead)
}

// Set is an order-independent collection of LR(1) items: a canonical LR(1)
// automaton state before it is assigned an integer index. Two Sets with
// the same items, added in any order, produce the same Key.
type Set struct {
	items map[string]Item
}

// NewSet creates an empty item Set.
func NewSet() *Set {
	return &Set{items: map[string]Item{}}
}

// NewSetOf creates a Set containing exactly the given items.
func NewSetOf(items ...Item) *Set {
	s := NewSet()
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts it into s, returning true if it was not already present.
func (s *Set) Add(it Item) bool {
	key := it.String()
	if _, ok := s.items[key]; ok {
		return false
	}
	s.items[key] = it
	return true
}

// Contains reports whether s already has an item equal to it.
func (s *Set) Contains(it Item) bool {
	_, ok := s.items[it.String()]
	return ok
}

// Len returns the number of items in s.
func (s *Set) Len() int {
	return len(s.items)
}

// Items returns every item in s, sorted deterministically by String().
func (s *Set) Items() []Item {
	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Key returns a canonical string identifying the contents of s,
// independent of the order items were added in. Two Sets with Key() ==
// Key() have identical item contents.
func (s *Set) Key() string {
	items := s.Items()
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return strings.Join(parts, "\n")
}

// Equal reports whether s and o contain exactly the same items.
func (s *Set) Equal(o *Set) bool {
	return s.Key() == o.Key()
}

// Copy returns a shallow copy of s (items themselves are immutable value
// types, so this is also a deep copy in practice).
func (s *Set) Copy() *Set {
	cp := NewSet()
	for k, v := range s.items {
		cp.items[k] = v
	}
	return cp
}
