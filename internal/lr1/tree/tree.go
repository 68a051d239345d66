// Package tree holds the arena-style parse tree built by the parse
// driver: every node lives in a flat, integer-id-keyed map with no parent
// pointers, so a tree can never contain a cycle and a caller can walk it
// purely by id lookup.
package tree

import (
	"fmt"
	"strings"

	"github.com/dekarrin/lr1kit/internal/lr1/grammar"
)

// Node is one parse-tree node. Terminal nodes (IsTerminal true) carry the
// grammar.Token that produced them and have no Children; non-terminal
// nodes carry the ids of their children, left to right, and no Token.
type Node struct {
	ID         int
	Symbol     grammar.Symbol
	IsTerminal bool
	Token      grammar.Token
	Children   []int
}

// Tree is the arena: a set of Nodes addressed by id, plus the id of the
// root (valid only once the parse that built it has accepted).
type Tree struct {
	nodes  map[int]Node
	nextID int
	root   int
	hasRoot bool
}

// New creates an empty Tree.
func New() *Tree {
	return &Tree{nodes: map[int]Node{}}
}

// AddLeaf creates a new terminal node for tok and returns its id.
func (t *Tree) AddLeaf(tok grammar.Token) int {
	id := t.nextID
	t.nextID++
	t.nodes[id] = Node{ID: id, Symbol: tok.Terminal, IsTerminal: true, Token: tok}
	return id
}

// AddInternal creates a new non-terminal node for sym with the given
// child node ids, left to right, and returns its id.
func (t *Tree) AddInternal(sym grammar.Symbol, children []int) int {
	id := t.nextID
	t.nextID++
	cp := make([]int, len(children))
	copy(cp, children)
	t.nodes[id] = Node{ID: id, Symbol: sym, Children: cp}
	return id
}

// SetRoot marks id as the tree's root.
func (t *Tree) SetRoot(id int) {
	t.root = id
	t.hasRoot = true
}

// Root returns the root node id and whether one has been set.
func (t *Tree) Root() (int, bool) {
	return t.root, t.hasRoot
}

// Node returns the node with the given id and whether it was found.
func (t *Tree) Node(id int) (Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// String renders the tree as ASCII tree art rooted at Root, in the style
// of a classical parse-tree pretty-printer: one line per node, children
// indented under their parent.
func (t *Tree) String() string {
	root, ok := t.Root()
	if !ok {
		return "(no root)"
	}
	var b strings.Builder
	t.writeNode(&b, root, "", true)
	return strings.TrimRight(b.String(), "\n")
}

func (t *Tree) writeNode(b *strings.Builder, id int, prefix string, last bool) {
	n, ok := t.nodes[id]
	if !ok {
		fmt.Fprintf(b, "%s(missing node %d)\n", prefix, id)
		return
	}

	connector := "├─ "
	childPrefix := prefix + "│  "
	if last {
		connector = "└─ "
		childPrefix = prefix + "   "
	}

	if n.IsTerminal {
		fmt.Fprintf(b, "%s%s%s (%q)\n", prefix, connector, n.Symbol, n.Token.Text)
	} else {
		fmt.Fprintf(b, "%s%s%s\n", prefix, connector, n.Symbol)
	}

	for i, c := range n.Children {
		t.writeNode(b, c, childPrefix, i == len(n.Children)-1)
	}
}
