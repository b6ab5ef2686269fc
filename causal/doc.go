// Package causal provides the signed causal multigraph underlying the
// pathfinding and model-checking packages.
//
// The Graph G = (V,E) is a directed multigraph of causal influences: each
// edge carries a polarity (Positive activation or Negative inhibition), a
// belief score in [0,1], and the evidence records supporting it. Parallel
// edges between the same entities are expected, not exceptional: independent
// statements about the same pair stay independent edges, each with its own
// sign and support.
//
// Capabilities:
//
//   - Always directed (causation has orientation), always multigraph
//   - Self-loops gated by WithLoops (self-regulation exists but is opt-in)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - A mirrored reverse index so predecessor queries cost O(in-degree)
//   - Collision-free atomic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for nodes (muNode) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention under concurrency
//   - Deterministic iteration: Nodes(), Edges(), Successors(),
//     Predecessors(), OutEdges(), InEdges() all return sorted results
//   - Clone support: CloneEmpty (nodes+flags), Clone (deep copy),
//     FilterCopy (independent copy keeping a subset of edges)
//
// Sign values travel through external exports as ints, floats, or strings;
// ParseSign is the single lenient boundary that coerces them. Inside the
// package the domain is strict: AddEdge rejects anything but the two
// defined polarities.
//
// Errors:
//
//	ErrEmptyNodeID    - node ID is the empty string
//	ErrNodeNotFound   - requested node does not exist
//	ErrEdgeNotFound   - requested edge does not exist
//	ErrBadSign        - sign outside the {Positive, Negative} domain
//	ErrBadBelief      - belief outside [0,1] or NaN
//	ErrLoopNotAllowed - self-loop when loops are disabled
package causal
