// Package matrix exports signed causal graphs into dense numeric form for
// linear-algebra workflows, plus summary statistics over edge beliefs.
//
// What
//
//   - Signed builds a node-indexed *mat.Dense where entry (i, j) is the net
//     signed weight of the strongest supports between two entities:
//     max positive pair belief minus max negative pair belief.
//   - Adjacency.At looks a pair up by entity ID instead of row index.
//   - BeliefSummary aggregates every edge belief in a graph into
//     count/mean/std/min/max.
//
// Why
//
//   - Signed influence matrices feed perturbation-propagation and spectral
//     analyses that operate on gonum matrices rather than graph structures.
//   - Belief summaries give a quick corpus-quality readout before running
//     heavier searches.
//
// Determinism
//
//	Adjacency.Index is the graph's node set in ascending lexicographic
//	order, so the same graph always yields the same matrix layout.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Signed: O(V² + E) time, O(V²) memory. Dense export is meant for the
//     small networks that reach numeric analysis, not whole corpora.
//   - BeliefSummary: O(E) time, O(E) memory.
//
// Errors
//
//   - ErrGraphNil     if the graph pointer is nil.
//   - ErrNodeNotFound if At is asked about an entity outside the index.
package matrix
