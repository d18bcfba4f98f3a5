package location

import "errors"

// The resolver surfaces a distinct error per failure class so the UI can
// present differentiated messaging. None of these are retried internally.
var (
	// ErrInvalidInput means malformed coordinates or arguments; fatal to
	// the specific call.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidQuery means the query cannot be sent upstream as given.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrNotFound means the upstream returned zero results.
	ErrNotFound = errors.New("no matching location")
	// ErrAuth means the gazetteer rejected our credentials. Never silently
	// retried; it would mask a quota or billing problem.
	ErrAuth = errors.New("gazetteer authentication failed")
	// ErrRateLimited means the gazetteer throttled us. Surfaced verbatim.
	ErrRateLimited = errors.New("gazetteer rate limited")
	// ErrNetwork means the gazetteer was unreachable; the caller may retry.
	ErrNetwork = errors.New("gazetteer unreachable")
	// ErrSuperseded means a newer call for the same input replaced this one.
	// Not a user-visible failure; the caller drops the call silently.
	ErrSuperseded = errors.New("superseded by a newer request")
)
