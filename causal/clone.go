// Cloning and filtered copies.
//
// CloneEmpty/Clone/FilterCopy carry over nextEdgeID so textual edge IDs stay
// monotonic on the copy and future AddEdge calls never collide with IDs the
// source already handed out. None of these mutate the receiver.

package causal

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and nodes,
// but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	// Copy configuration via options
	var opts []GraphOption
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	// Preserve the textual edge ID sequence to avoid collisions on future AddEdge.
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	// Copy nodes; Refs maps are shared, matching metadata-sharing semantics
	// of shallow clones.
	for id, n := range g.nodes {
		clone.nodes[id] = &Node{ID: n.ID, Refs: n.Refs}
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
		clone.reverseList[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, nodes, edges, and
// both adjacency indexes. Edge structs are duplicated and their Evidence
// slices copied; the Evidence records themselves are shared.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid, e := range g.edges {
		cloneEdgeInto(clone, eid, e)
	}

	return clone
}

// FilterCopy returns an independent copy keeping every node and only the
// edges for which pred returns true. The receiver is never mutated and the
// returned graph shares no index state with it, so both sides can be read
// and extended concurrently afterwards.
//
// pred must be pure: no mutation of the graph, no retention of the *Edge.
//
// Complexity: O(V + E).
func (g *Graph) FilterCopy(pred func(*Edge) bool) *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid, e := range g.edges {
		if pred(e) {
			cloneEdgeInto(clone, eid, e)
		}
	}

	return clone
}

// cloneEdgeInto duplicates e under the same ID and links both indexes on the
// clone. The clone is still private to the caller, so no locks are taken.
func cloneEdgeInto(clone *Graph, eid string, e *Edge) {
	ne := &Edge{ID: eid, From: e.From, To: e.To, Sign: e.Sign, Belief: e.Belief}
	if len(e.Evidence) > 0 {
		ne.Evidence = make([]Evidence, len(e.Evidence))
		copy(ne.Evidence, e.Evidence)
	}
	clone.edges[eid] = ne
	ensureBucket(clone.adjacencyList, e.From, e.To)
	clone.adjacencyList[e.From][e.To][eid] = struct{}{}
	ensureBucket(clone.reverseList, e.To, e.From)
	clone.reverseList[e.To][e.From][eid] = struct{}{}
}

// Clear resets the graph to an empty state while preserving configuration.
//
// Reinitializes all catalogs and resets nextEdgeID to 0, so textual edge IDs
// resume from "e1".
// Complexity: O(1) for map reallocation.
func (g *Graph) Clear() {
	g.muNode.Lock()
	g.muEdgeAdj.Lock()
	// reset maps
	g.nodes = make(map[string]*Node)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	g.reverseList = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muNode.Unlock()
}
