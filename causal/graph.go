// High-performance Graph method implementations.
//
// This file provides thread-safe, O(1) (amortized) operations for node and
// edge management on the Graph type defined in types.go. Separate RWMutex
// locks for nodes (muNode) and edges+adjacency (muEdgeAdj) minimize
// contention. Adjacency is stored as a nested map
// adjacencyList[from][to][edgeID] = struct{}{}, with a mirrored reverseList
// keyed to→from, allowing constant-time existence, insertion, and deletion
// in both directions.

package causal

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Byte form is intentional to allow append to a []byte buffer without fmt.
const edgeIDPrefix = 'e'

// AddNode inserts a node with the given ID into the Graph.
// Returns ErrEmptyNodeID if id is empty.
// If the node already exists, this is a no-op (idempotent) and any opts are ignored.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, opts ...NodeOption) error {
	// Validate input: empty IDs are not allowed
	if id == "" {
		return ErrEmptyNodeID
	}
	// Acquire write lock on nodes only
	g.muNode.Lock()
	defer g.muNode.Unlock()

	// Check if node already present
	if _, exists := g.nodes[id]; exists {
		return nil // no-op for existing node
	}

	n := &Node{ID: id}
	for _, opt := range opts {
		opt(n)
	}
	if n.Refs == nil {
		n.Refs = make(map[string]string)
	}
	g.nodes[id] = n

	// Bootstrap adjacency rows so edge methods can rely on them.
	g.muEdgeAdj.Lock()
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	if g.reverseList[id] == nil {
		g.reverseList[id] = make(map[string]map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, exists := g.nodes[id]

	return exists
}

// GetNode returns the node record for id, or ErrNodeNotFound.
// The returned *Node is read-only by convention.
// Complexity: O(1).
func (g *Graph) GetNode(id string) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// RemoveNode deletes the node and all incident edges from the graph.
// Returns ErrEmptyNodeID if id is empty, ErrNodeNotFound if it does not exist.
// Complexity: O(E) catalog scan.
func (g *Graph) RemoveNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	// Lock order is muNode -> muEdgeAdj, same as every other method.
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// Verify node presence
	if _, exists := g.nodes[id]; !exists {
		return ErrNodeNotFound
	}

	// Remove all incident edges
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}

	// Remove the node itself and its adjacency rows
	delete(g.nodes, id)
	delete(g.adjacencyList, id)
	delete(g.reverseList, id)

	return nil
}

// Nodes returns all entity IDs in lexicographic ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the current number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// AddEdge creates a new signed edge from→to with the given belief and
// returns its unique Edge.ID. Endpoints are auto-created.
//
// Validation is strict: a sign outside the two polarities returns ErrBadSign,
// a belief outside [0,1] or NaN returns ErrBadBelief, and a self-loop on a
// graph built without WithLoops returns ErrLoopNotAllowed. Bad statements
// must be rejected at the boundary, never coerced into the catalog.
//
// Steps:
//  1. Validate IDs, sign, belief, loops.
//  2. Ensure endpoints via AddNode.
//  3. Lock muEdgeAdj; generate eid atomically.
//  4. Build Edge struct, apply opts.
//  5. Store in g.edges; link adjacencyList[from][to] and reverseList[to][from].
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, sign Sign, belief float64, opts ...EdgeOption) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyNodeID
	}
	if !sign.Valid() { // polarity constraint
		return "", ErrBadSign
	}
	if math.IsNaN(belief) || belief < 0 || belief > 1 { // belief constraint
		return "", ErrBadBelief
	}
	if from == to && !g.allowLoops { // loop constraint
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure both endpoints exist (idempotent)
	if err := g.AddNode(from); err != nil {
		return "", err
	}
	if err := g.AddNode(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 4) Generate a new unique textual edge ID in O(1) without fmt allocations.
	eid := nextEdgeID(g)

	e := &Edge{ID: eid, From: from, To: to, Sign: sign, Belief: belief}
	for _, opt := range opts {
		opt(e)
	}

	// 5) Store and link both directions of the index
	g.edges[eid] = e
	ensureBucket(g.adjacencyList, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}
	ensureBucket(g.reverseList, to, from)
	g.reverseList[to][from][eid] = struct{}{}

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID from the catalog and both
// adjacency indexes. Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	// Lock edges+adjacency
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	// Fetch edge
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid) // delete from the catalog
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns a pointer to the Edge with the given edgeID if it exists,
// or ErrEdgeNotFound if no such edge is present.
//
// The returned *Edge must be treated as read-only by callers.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID asc (stable, deterministic order).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// OutEdges returns the edges leaving node id, sorted by Edge.ID ascending.
// Unknown nodes yield an empty slice: an absent entity has no influences,
// which is an answer rather than an error.
// Complexity: O(d log d) where d is the out-degree.
func (g *Graph) OutEdges(id string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return collectEdges(g, g.adjacencyList[id])
}

// InEdges returns the edges entering node id, sorted by Edge.ID ascending.
// Unknown nodes yield an empty slice.
// Complexity: O(d log d) where d is the in-degree.
func (g *Graph) InEdges(id string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return collectEdges(g, g.reverseList[id])
}

// EdgesBetween returns every parallel edge from→to, sorted by Edge.ID
// ascending. Empty when the pair is not connected.
// Complexity: O(p log p) where p is the number of parallel edges.
func (g *Graph) EdgesBetween(from, to string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	set := g.adjacencyList[from][to]
	out := make([]*Edge, 0, len(set))
	for eid := range set {
		if e := g.edges[eid]; !e.IsNil() {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Successors returns the unique targets of edges leaving id, sorted lex asc.
// Complexity: O(k log k) where k is the number of distinct successors.
func (g *Graph) Successors(id string) []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return rowKeys(g.adjacencyList[id])
}

// Predecessors returns the unique sources of edges entering id, sorted lex asc.
// Complexity: O(k log k) where k is the number of distinct predecessors.
func (g *Graph) Predecessors(id string) []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return rowKeys(g.reverseList[id])
}

// PairBelief returns the strongest belief among the parallel edges from→to,
// or 0 when the pair is not connected. The weight of a pair is its
// best-supported statement.
// Complexity: O(p) where p is the number of parallel edges.
func (g *Graph) PairBelief(from, to string) float64 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var best float64
	for eid := range g.adjacencyList[from][to] {
		if e := g.edges[eid]; !e.IsNil() && e.Belief > best {
			best = e.Belief
		}
	}

	return best
}

// Internal helpers:
////////////////////

// collectEdges flattens one adjacency row into a slice sorted by Edge.ID.
// Must be called under a muEdgeAdj read lock.
func collectEdges(g *Graph, row map[string]map[string]struct{}) []*Edge {
	out := make([]*Edge, 0, len(row))
	for _, edgeSet := range row {
		for eid := range edgeSet {
			if e := g.edges[eid]; !e.IsNil() {
				out = append(out, e)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// rowKeys returns the non-empty keys of one adjacency row, sorted lex asc.
// Must be called under a muEdgeAdj read lock.
func rowKeys(row map[string]map[string]struct{}) []string {
	ids := make([]string, 0, len(row))
	for id, set := range row {
		if len(set) > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

// ensureBucket initializes the nested map path m[from][to] when absent.
// Must be called under the muEdgeAdj write lock, or on a graph still
// private to its creator.
func ensureBucket(m map[string]map[string]map[string]struct{}, from, to string) {
	if m[from] == nil {
		m[from] = make(map[string]map[string]struct{})
	}
	if m[from][to] == nil {
		m[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e from both adjacency indexes, pruning buckets
// that become empty. Must be called under the muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if m := g.reverseList[e.To][e.From]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.reverseList[e.To], e.From)
		}
	}
}

// nextEdgeID returns a new unique textual edge ID.
//
// Uses a monotonic uint64 counter (g.nextEdgeID) incremented atomically and
// produces "e" + decimal digits; no fmt allocations on this hot path.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1) // atomically reserve the next sequence number
	buf := make([]byte, 0, 1+20)            // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
