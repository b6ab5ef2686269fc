// Named edge filters and filtered subgraph extraction.
//
// The registry is process-wide configuration, like database/sql driver
// registration: filters are registered once (usually from init functions)
// and looked up by name at extraction time. Graphs are never part of that
// shared state; every filter invocation receives the graph it is filtering.

package pathfinding

import (
	"sync"

	"go.uber.org/zap"

	"github.com/elda27/indra/causal"
	"github.com/elda27/indra/metrics"
)

// FilterInternalEdges names the built-in filter keeping edges supported by
// at least one internal evidence record.
const FilterInternalEdges = "internal_edges"

// unregisteredLabel aggregates unknown filter names on the extraction
// counter, keeping label cardinality bounded.
const unregisteredLabel = "unregistered"

// EdgeFilter decides whether the edge identified by key (its Edge.ID),
// going u→v in g, belongs in an extracted subgraph.
//
// Filters are evaluated on a catalog snapshot outside the graph's locks and
// may therefore call any of g's query methods. They must not mutate g.
type EdgeFilter func(g *causal.Graph, u, v, key string) bool

var (
	filterMu sync.RWMutex
	filters  = map[string]EdgeFilter{}
)

func init() {
	RegisterEdgeFilter(FilterInternalEdges, InternalEdges)
}

// RegisterEdgeFilter makes an edge filter available to Subgraph under the
// given name. Intended for init-time use; a later registration under the
// same name replaces the earlier one. An empty name or nil filter is a
// programming error and panics.
func RegisterEdgeFilter(name string, fn EdgeFilter) {
	if name == "" {
		panic("pathfinding: RegisterEdgeFilter called with empty name")
	}
	if fn == nil {
		panic("pathfinding: RegisterEdgeFilter called with nil filter")
	}
	filterMu.Lock()
	defer filterMu.Unlock()
	filters[name] = fn
}

// lookupEdgeFilter fetches a registered filter by name.
func lookupEdgeFilter(name string) (EdgeFilter, bool) {
	filterMu.RLock()
	defer filterMu.RUnlock()
	fn, ok := filters[name]

	return fn, ok
}

// Subgraph returns an independent copy of g containing every node and only
// the edges accepted by the named filter. The source graph is never mutated
// and the copy shares no adjacency state with it, so both sides remain free
// to serve concurrent work afterwards.
//
// An unregistered filter name keeps no edges: the copy carries all nodes and
// an empty edge catalog, and a warning is logged. A missing predicate
// degrades to an empty extraction rather than an error; only a nil graph is
// rejected, with ErrNilGraph.
//
// Complexity: O(V + E) plus the filter's own cost per edge.
func Subgraph(g *causal.Graph, filterName string) (*causal.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	fn, ok := lookupEdgeFilter(filterName)
	if !ok {
		logger().Warn("unknown edge filter; keeping no edges",
			zap.String("filter", filterName))
		metrics.SubgraphExtractions.WithLabelValues(unregisteredLabel).Inc()

		return g.FilterCopy(func(*causal.Edge) bool { return false }), nil
	}

	// Evaluate the filter on a catalog snapshot, outside g's locks, so
	// predicates are free to query the graph while deciding.
	keep := make(map[string]struct{})
	for _, e := range g.Edges() {
		if fn(g, e.From, e.To, e.ID) {
			keep[e.ID] = struct{}{}
		}
	}

	metrics.SubgraphExtractions.WithLabelValues(filterName).Inc()

	return g.FilterCopy(func(e *causal.Edge) bool {
		_, kept := keep[e.ID]

		return kept
	}), nil
}

// InternalEdges is the built-in filter behind FilterInternalEdges: keep the
// edge when at least one of its evidence records is marked internal.
func InternalEdges(g *causal.Graph, u, v, key string) bool {
	e, err := g.GetEdge(key)
	if err != nil {
		return false
	}

	return e.Internal()
}
