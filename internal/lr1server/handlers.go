package lr1server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dekarrin/lr1kit"
)

// GrammarModel is the JSON shape returned by GET /grammar.
type GrammarModel struct {
	Text        string   `json:"text"`
	Diagnostics []string `json:"diagnostics"`
}

func (s *Server) getGrammar(r *http.Request) result {
	diags := s.g.Diagnostics()
	dstrs := make([]string, len(diags))
	for i, d := range diags {
		dstrs[i] = d.String()
	}
	return ok(GrammarModel{Text: s.g.String(), Diagnostics: dstrs})
}

// TableModel is the JSON shape returned by GET /table.
type TableModel struct {
	StateCount int      `json:"state_count"`
	Grid       string   `json:"grid"`
	Conflicts  []string `json:"conflicts"`
}

func (s *Server) getTable(r *http.Request) result {
	conflicts := s.t.Conflicts()
	cstrs := make([]string, len(conflicts))
	for i, c := range conflicts {
		cstrs[i] = c.String()
	}
	return ok(TableModel{
		StateCount: s.a.StateCount(),
		Grid:       s.t.SnapshotTable(),
		Conflicts:  cstrs,
	})
}

// AutomatonStateModel is the JSON shape returned by GET
// /automaton/states/{index}.
type AutomatonStateModel struct {
	Index int      `json:"index"`
	Items []string `json:"items"`
}

func (s *Server) getAutomatonState(r *http.Request) result {
	idxStr := chi.URLParam(r, "index")
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		return errResult(http.StatusBadRequest, "index must be an integer")
	}

	items, err := s.a.SnapshotState(idx)
	if err != nil {
		return errResult(http.StatusNotFound, err.Error())
	}
	return ok(AutomatonStateModel{Index: idx, Items: items})
}

// ConflictsModel is the JSON shape returned by GET /conflicts.
type ConflictsModel struct {
	Conflicts []string `json:"conflicts"`
}

func (s *Server) getConflicts(r *http.Request) result {
	conflicts := s.t.Conflicts()
	cstrs := make([]string, len(conflicts))
	for i, c := range conflicts {
		cstrs[i] = c.String()
	}
	return ok(ConflictsModel{Conflicts: cstrs})
}

// TraceModel is the JSON shape returned by GET /parse.
type TraceModel struct {
	RunID    string   `json:"run_id"`
	Accepted bool     `json:"accepted"`
	Steps    []string `json:"steps"`
	Tree     string   `json:"tree,omitempty"`
}

func (s *Server) getParse(r *http.Request) result {
	input := r.URL.Query().Get("input")

	trace, err := lr1kit.Parse(s.g, s.t, input, 0)
	if trace == nil {
		return errResult(http.StatusBadRequest, err.Error())
	}

	steps := make([]string, len(trace.Steps))
	for i, step := range trace.Steps {
		steps[i] = step.Explanation
	}

	model := TraceModel{
		RunID:    trace.RunID.String(),
		Accepted: trace.Accepted,
		Steps:    steps,
	}
	if trace.Accepted {
		model.Tree = trace.Tree()
	}

	status := http.StatusOK
	if err != nil {
		status = http.StatusUnprocessableEntity
	}
	return result{status: status, body: model}
}
