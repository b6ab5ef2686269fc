// This file declares Node, Edge, Evidence, Graph, the option types,
// sentinel errors, and the NewGraph constructor.
package causal

import (
	"errors"
	"sync"
)

// Sentinel errors for causal graph operations.
var (
	// ErrEmptyNodeID indicates an operation received an empty node identifier.
	ErrEmptyNodeID = errors.New("causal: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("causal: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("causal: edge not found")

	// ErrBadSign indicates a sign outside the {Positive, Negative} domain.
	ErrBadSign = errors.New("causal: invalid edge sign")

	// ErrBadBelief indicates a belief score outside [0, 1] or NaN.
	ErrBadBelief = errors.New("causal: belief out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("causal: self-loop not allowed")
)

// Evidence is one piece of support behind a causal edge.
type Evidence struct {
	// SourceAPI names the reader or database the evidence came from.
	SourceAPI string

	// PMID is the PubMed identifier of the supporting publication, if any.
	PMID string

	// Text is the sentence the relation was extracted from, if any.
	Text string

	// Internal marks evidence that originated inside the assembling corpus
	// rather than being imported from an external database. The built-in
	// internal-edges filter keys on it.
	Internal bool

	// Annotations stores free-form source metadata. Shared on clone.
	Annotations map[string]string
}

// Node is a biological entity in the graph.
type Node struct {
	// ID is the canonical entity name, unique within its Graph.
	ID string

	// Refs holds grounding cross-references (HGNC, UP, CHEBI style).
	// It is shared, not deep-copied, by Clone.
	Refs map[string]string
}

// Edge is one signed causal influence between two entities.
//
// Each Edge has a unique ID, endpoints From→To, a polarity, a belief score,
// and the evidence supporting it.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source entity ID.
	From string

	// To is the target entity ID.
	To string

	// Sign is the edge polarity: Positive activates, Negative inhibits.
	Sign Sign

	// Belief is the assembler's confidence in the underlying statement, in [0, 1].
	Belief float64

	// Evidence lists the extraction records supporting the edge.
	Evidence []Evidence
}

// IsNil reports whether the receiver should be treated as nil when stored
// inside interfaces. Reflect-free typed-nil detection.
func (e *Edge) IsNil() bool { return e == nil }

// Internal reports whether at least one evidence record marks the edge as
// originating inside the assembling corpus.
func (e *Edge) Internal() bool {
	for i := range e.Evidence {
		if e.Evidence[i].Internal {
			return true
		}
	}

	return false
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-regulating edges (from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// NodeOption configures properties of individual nodes when added.
type NodeOption func(*Node)

// WithRefs attaches grounding cross-references to the node.
func WithRefs(refs map[string]string) NodeOption {
	return func(n *Node) { n.Refs = refs }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEvidence appends evidence records to the edge.
func WithEvidence(ev ...Evidence) EdgeOption {
	return func(e *Edge) { e.Evidence = append(e.Evidence, ev...) }
}

// Graph is the in-memory signed causal multigraph.
//
// Edges are always directed and parallel edges are always permitted;
// self-loops require WithLoops. muNode protects the node catalog;
// muEdgeAdj protects the edge catalog and both adjacency indexes.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muNode    sync.RWMutex // guards nodes
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	allowLoops bool // allow self-regulation

	// Storage
	nextEdgeID uint64           // atomic edge ID generator
	nodes      map[string]*Node // node ID → Node
	edges      map[string]*Edge // edge ID → Edge

	// adjacencyList[(from)Node.ID][(to)Node.ID][Edge.ID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}

	// reverseList[(to)Node.ID][(from)Node.ID][Edge.ID] = struct{}{}
	// Mirror of adjacencyList so predecessor queries cost O(in-degree)
	// instead of an O(E) catalog scan.
	reverseList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:         make(map[string]*Node),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
		reverseList:   make(map[string]map[string]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether the graph accepts self-regulating edges.
func (g *Graph) Looped() bool { return g.allowLoops }
