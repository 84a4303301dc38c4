package depgraph

import "errors"

var (
	// ErrCyclic indicates a directed cycle was found where the graph is
	// required to be acyclic.
	ErrCyclic = errors.New("depgraph: graph contains a cycle")
)
