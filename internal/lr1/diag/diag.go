// Package diag holds the error and diagnostic types shared across the
// lr1kit core packages. Every failure the grammar, automaton, table, and
// parse driver stages can produce is reported through the Error type in
// this package rather than raw fmt.Errorf or panics, so callers can
// distinguish recoverable diagnostics (grammar problems, table conflicts,
// parse rejection) from resource exhaustion and internal bugs by Kind
// alone.
package diag

import "fmt"

// Kind classifies the failure a lr1kit operation reports.
type Kind int

const (
	// GrammarSyntax marks a problem found while parsing grammar text: bad
	// tokens, malformed rules, unterminated productions.
	GrammarSyntax Kind = iota

	// GrammarSemantic marks a problem found after a grammar parses
	// successfully but fails validation: undefined non-terminals,
	// unreachable non-terminals, unused symbols, duplicate empty
	// alternatives.
	GrammarSemantic

	// TableConflict marks a shift/reduce or reduce/reduce conflict found
	// while building the ACTION table. Unlike the other kinds, an error
	// of this kind does not mean the table is unusable -- it is attached
	// to a Table alongside its (tie-broken) ACTION/GOTO entries so a
	// lenient caller can proceed.
	TableConflict

	// ParseReject marks a rejection by the parse driver: an ACTION table
	// lookup that found no entry for the current state and lookahead, or
	// an unknown token encountered in the input stream.
	ParseReject

	// ResourceExhaustion marks a configured bound being exceeded:
	// MAX_STATES during automaton construction, or MAX_STEPS during a
	// parse.
	ResourceExhaustion

	// InternalInvariantViolation marks a bug: an invariant the
	// construction algorithms assume always holds turned out false. This
	// should never be returned by a correct build; it exists so internal
	// assertion failures surface as a diag.Error instead of a panic
	// reaching the caller.
	InternalInvariantViolation
)

func (k Kind) String() string {
	switch k {
	case GrammarSyntax:
		return "grammar syntax"
	case GrammarSemantic:
		return "grammar semantic"
	case TableConflict:
		return "table conflict"
	case ParseReject:
		return "parse reject"
	case ResourceExhaustion:
		return "resource exhaustion"
	case InternalInvariantViolation:
		return "internal invariant violation"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the error type returned by every lr1kit core operation that can
// fail. It carries a Kind for programmatic dispatch, a technical message,
// and zero or more wrapped causes.
//
// Error should not be constructed directly; use New or Newf.
type Error struct {
	kind  Kind
	msg   string
	cause []error
}

// New creates a new Error of the given kind with the given message,
// optionally wrapping one or more causes.
func New(kind Kind, msg string, causes ...error) *Error {
	e := &Error{kind: kind, msg: msg}
	if len(causes) > 0 {
		e.cause = make([]error, len(causes))
		copy(e.cause, causes)
	}
	return e
}

// Newf is like New but builds msg from a format string and arguments.
func Newf(kind Kind, format string, a ...interface{}) *Error {
	return New(kind, fmt.Sprintf(format, a...))
}

// Kind returns the classification of this error.
func (e *Error) Kind() Kind {
	return e.kind
}

// Error returns the technical message for e, with the first cause's
// message appended if one is present.
func (e *Error) Error() string {
	if e.msg == "" && len(e.cause) > 0 {
		return e.cause[0].Error()
	}
	if len(e.cause) > 0 {
		return e.msg + ": " + e.cause[0].Error()
	}
	return e.msg
}

// Unwrap returns the causes of e, for use with errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if len(e.cause) > 0 {
		return e.cause
	}
	return nil
}

// Is reports whether target is one of e's direct causes, or -- failing
// that -- shares e's kind and message. The cause check runs first so that
// a sentinel *Error cause (whose own message differs from the wrapping
// Error's) is still recognized by identity instead of being shadowed by
// the kind/message comparison below.
func (e *Error) Is(target error) bool {
	for _, c := range e.cause {
		if c == target {
			return true
		}
	}
	if other, ok := target.(*Error); ok {
		return other.kind == e.kind && other.msg == e.msg
	}
	return false
}

// sentinel errors usable with errors.Is regardless of the wrapping Error's
// message, mirroring the teacher's package-level sentinel-var convention.
var (
	// ErrStateExplosion is wrapped by automaton construction when the
	// number of states would exceed the configured MAX_STATES bound.
	ErrStateExplosion = New(ResourceExhaustion, "state explosion")

	// ErrStepLimitExceeded is wrapped by the parse driver when the number
	// of steps would exceed the configured MAX_STEPS bound.
	ErrStepLimitExceeded = New(ResourceExhaustion, "step limit exceeded")

	// ErrUnknownToken is wrapped when an input token does not match any
	// terminal of the grammar being parsed against.
	ErrUnknownToken = New(ParseReject, "unknown token")

	// ErrNoAction is wrapped when the parse driver finds no ACTION entry
	// for the current state and lookahead.
	ErrNoAction = New(ParseReject, "no action")
)
