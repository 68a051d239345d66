package grammar

import (
	"bufio"
	"strings"

	"github.com/dekarrin/lr1kit/internal/lr1/diag"
	"golang.org/x/text/cases"
)

// ParseText parses the line-oriented grammar surface syntax into a
// Grammar:
//
//	# comments start with a hash and run to end of line
//	%terminal NAME NAME ...   (zero or more; declares intended terminals)
//	%start NAME               (optional; defaults to the first rule's LHS)
//	NonTerm -> A B | C | ε
//	Empty ->
//
// Alternatives within a rule are separated by "|". A production's
// right-hand side is a whitespace-separated list of symbol names; a
// blank right-hand side, or one consisting solely of "ε" or "epsilon"
// (case-insensitive), denotes the empty production. The arrow may be
// written as "->" or "→". Blank lines are ignored. A rule for the same
// non-terminal may be split across multiple lines; each contributes its
// alternatives to the same Rule.
//
// On a syntax problem (a line that is not a comment, a directive, or a
// rule) ParseText returns a *diag.Error of kind GrammarSyntax.
func ParseText(src string) (*Grammar, error) {
	g := New()

	scanner := bufio.NewScanner(strings.NewReader(src))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "%terminal") {
			rest := strings.TrimSpace(strings.TrimPrefix(line, "%terminal"))
			for _, name := range strings.Fields(rest) {
				g.DeclareTerminal(Symbol(name))
			}
			continue
		}
		if strings.HasPrefix(line, "%start") {
			rest := strings.TrimSpace(strings.TrimPrefix(line, "%start"))
			if rest == "" {
				return nil, diag.Newf(diag.GrammarSyntax, "line %d: %%start directive requires a symbol name", lineNo)
			}
			g.SetStart(Symbol(rest))
			continue
		}

		nt, prods, err := parseRuleLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		for _, p := range prods {
			g.AddRule(nt, p)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, diag.New(diag.GrammarSyntax, "reading grammar text", err)
	}

	return g, nil
}

// parseRuleLine parses a single "NonTerm -> alt1 | alt2 | ..." line into
// its non-terminal name and the list of productions it contributes.
func parseRuleLine(line string, lineNo int) (Symbol, []Production, error) {
	arrow := "->"
	idx := strings.Index(line, arrow)
	if idx < 0 {
		arrow = "→"
		idx = strings.Index(line, arrow)
	}
	if idx < 0 {
		return "", nil, diag.Newf(diag.GrammarSyntax, "line %d: expected \"->\" or \"→\" in rule %q", lineNo, line)
	}

	lhs := strings.TrimSpace(line[:idx])
	if lhs == "" {
		return "", nil, diag.Newf(diag.GrammarSyntax, "line %d: rule has no left-hand side", lineNo)
	}
	if strings.Fields(lhs) == nil || len(strings.Fields(lhs)) != 1 {
		return "", nil, diag.Newf(diag.GrammarSyntax, "line %d: left-hand side %q must be a single symbol", lineNo, lhs)
	}

	rhs := line[idx+len(arrow):]
	alts := strings.Split(rhs, "|")
	prods := make([]Production, 0, len(alts))
	for _, alt := range alts {
		alt = strings.TrimSpace(alt)
		if alt == "" || isEpsilonKeyword(alt) {
			prods = append(prods, Production{})
			continue
		}
		fields := strings.Fields(alt)
		p := make(Production, len(fields))
		for i, f := range fields {
			p[i] = Symbol(f)
		}
		prods = append(prods, p)
	}

	return Symbol(lhs), prods, nil
}

var foldCase = cases.Fold()

// isEpsilonKeyword reports whether alt is a spelling of the empty
// production keyword ("ε" or "epsilon"), compared with Unicode case
// folding rather than strings.ToLower so that non-ASCII case variants are
// handled correctly.
func isEpsilonKeyword(s string) bool {
	folded := foldCase.String(s)
	return folded == "ε" || folded == "epsilon"
}
