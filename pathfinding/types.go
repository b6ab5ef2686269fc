package pathfinding

import "errors"

// Sentinel errors for pathfinding operations.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("pathfinding: graph is nil")

	// ErrEmptySource is returned when a source or target node ID is empty.
	ErrEmptySource = errors.New("pathfinding: node ID is empty")

	// ErrNoPath is returned by StrongestPath when no route connects the
	// endpoints, including when either endpoint is absent from the graph.
	ErrNoPath = errors.New("pathfinding: no path between nodes")

	// ErrBadMinBelief indicates a MinBelief floor outside [0, 1).
	ErrBadMinBelief = errors.New("pathfinding: MinBelief must be within [0, 1)")
)

// EdgeKey identifies a directed node pair. Parallel edges collapse onto one
// key for allow-listing purposes.
type EdgeKey struct {
	// From is the source node ID.
	From string

	// To is the target node ID.
	To string
}

// EdgeSet is an allow-list of directed node pairs. A nil EdgeSet means
// unrestricted.
type EdgeSet map[EdgeKey]struct{}

// NewEdgeSet builds an EdgeSet from explicit keys.
func NewEdgeSet(keys ...EdgeKey) EdgeSet {
	s := make(EdgeSet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}

	return s
}

// Add inserts the pair from→to into the set.
func (s EdgeSet) Add(from, to string) {
	s[EdgeKey{From: from, To: to}] = struct{}{}
}

// Has reports whether the pair from→to is allowed.
func (s EdgeSet) Has(from, to string) bool {
	_, ok := s[EdgeKey{From: from, To: to}]

	return ok
}
