// Package lr1server is a read-only HTTP facade over lr1kit: given a
// compiled Grammar, Automaton, and Table, it exposes GET endpoints that
// mirror the C7 facade's snapshot methods as JSON. It holds no session
// state and performs no writes, so unlike the teacher's server package it
// needs no auth middleware, no token layer, and no database -- a compiled
// parser is immutable once built, and interactive parse playback remains
// out of scope here too (this package serves snapshots, not a stepping
// API).
package lr1server

import (
	"encoding/json"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"

	"github.com/dekarrin/lr1kit"
)

// Server is a read-only HTTP facade wrapping one compiled grammar/table.
type Server struct {
	g   *lr1kit.Grammar
	a   *lr1kit.Automaton
	t   *lr1kit.Table
	mux chi.Router
}

// New builds a Server over an already-compiled grammar, automaton, and
// table, and wires its routes.
func New(g *lr1kit.Grammar, a *lr1kit.Automaton, t *lr1kit.Table) *Server {
	s := &Server{g: g, a: a, t: t, mux: chi.NewRouter()}
	s.routes()
	return s
}

// ServeHTTP lets Server be used directly as an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.mux.Get("/grammar", endpoint(s.getGrammar))
	s.mux.Get("/table", endpoint(s.getTable))
	s.mux.Get("/automaton/states/{index}", endpoint(s.getAutomatonState))
	s.mux.Get("/conflicts", endpoint(s.getConflicts))
	s.mux.Get("/parse", endpoint(s.getParse))
}

// endpointFunc is the shape of a handler before it is wrapped with
// panic recovery and JSON writing.
type endpointFunc func(r *http.Request) result

// result is an endpoint's outcome before it is written to the response:
// a status code and either a JSON body or an error message.
type result struct {
	status int
	body   interface{}
	errMsg string
}

func ok(body interface{}) result {
	return result{status: http.StatusOK, body: body}
}

func errResult(status int, msg string) result {
	return result{status: status, errMsg: msg}
}

func endpoint(ep endpointFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer panicTo500(w)

		res := ep(r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(res.status)

		if res.errMsg != "" {
			json.NewEncoder(w).Encode(map[string]string{"error": res.errMsg})
			return
		}
		json.NewEncoder(w).Encode(res.body)
	}
}

func panicTo500(w http.ResponseWriter) {
	if panicErr := recover(); panicErr != nil {
		log.Printf("panic: %v\n%s", panicErr, string(debug.Stack()))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
	}
}
