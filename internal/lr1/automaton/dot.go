package automaton

import (
	"fmt"
	"strings"
)

// DOT renders a as a Graphviz "dot" digraph: one node per state, one edge
// per transition. No example repo in the corpus pulls in a Graphviz
// binding, so this is plain string assembly rather than a dependency --
// the output format itself is just text, and graphviz's own "dot" tool
// does the actual rendering externally.
func (a *Automaton) DOT() string {
	var b strings.Builder
	b.WriteString("digraph lr1 {\n")
	b.WriteString("\trankdir=LR;\n")
	b.WriteString("\tnode [shape=box];\n")

	for _, s := range a.States {
		label := fmt.Sprintf("state %d\\n%d items", s.Index, s.Items.Len())
		fmt.Fprintf(&b, "\t%d [label=\"%s\"];\n", s.Index, label)
	}
	for _, t := range a.Transitions {
		fmt.Fprintf(&b, "\t%d -> %d [label=%q];\n", t.From, t.To, string(t.Symbol))
	}

	b.WriteString("}\n")
	return b.String()
}
