package catalog

import "errors"

var (
	// ErrNoResults indicates a search, discover or fallback sequence
	// exhausted every variant and source without finding a match.
	ErrNoResults = errors.New("no results found")

	// ErrNoActorsFound indicates random-actor sampling exhausted its
	// retry budget without finding a movie with a non-empty cast.
	ErrNoActorsFound = errors.New("no actors found")
)
