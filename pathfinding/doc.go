// Package pathfinding provides the signed-node plumbing shared by path
// searches over causal graphs: the codec between signed edges and signed
// node pairs, belief-ordered neighbor enumeration, a registry of named edge
// filters for extracting independent subgraph copies, and a belief-weighted
// strongest-path search.
//
// Sign bookkeeping uses the parity convention (+ == 0, - == 1): a path is
// positive when it crosses an even number of inhibiting edges. The codec
// materialises only pairs with a positive source node,
//
//	positive edge -> (a+, b+)
//	negative edge -> (a+, b-)
//
// because search always starts from the source in its reference state; the
// source-negative combinations are consistent but never needed.
//
// Functions here never mutate the graphs they are given. Subgraph returns an
// independent filtered copy, and edge filters receive the graph as an
// explicit per-call parameter, so concurrent extractions over different
// graphs cannot interfere.
//
// Malformed inputs follow one rule throughout: decoding failures (an
// unparseable sign, an unregistered filter name) are logged through the
// package's zap logger and degrade to an empty result, while structurally
// impossible calls (nil graph, empty source ID) return sentinel errors.
//
// Errors:
//
//	ErrNilGraph     - graph pointer is nil
//	ErrEmptySource  - source or target node ID is the empty string
//	ErrNoPath       - no route between the endpoints (or an endpoint is absent)
//	ErrBadMinBelief - MinBelief outside [0, 1)
package pathfinding
