package pathfinding

import (
	"sort"

	"github.com/elda27/indra/causal"
)

// SortedNeighbors returns the neighbors of node ordered by descending pair
// belief, with ascending node ID breaking ties so equally supported
// neighbors enumerate deterministically. reverse selects predecessors
// (upstream search) instead of successors. A non-nil allowed set restricts
// the enumeration to pairs it contains.
//
// Missing nodes, and nil graphs, have no neighbors: the result is empty,
// never an error. The graph is only read; pair belief is the strongest
// support among parallel edges, 0 when none carries a belief.
//
// Complexity: O(k·p + k log k) where k is the neighbor count and p the
// parallel-edge fan per pair.
func SortedNeighbors(g *causal.Graph, node string, reverse bool, allowed EdgeSet) []string {
	if g == nil {
		return nil
	}

	var candidates []string
	if reverse {
		candidates = g.Predecessors(node)
	} else {
		candidates = g.Successors(node)
	}

	neighbors := make([]string, 0, len(candidates))
	belief := make(map[string]float64, len(candidates))
	for _, n := range candidates {
		from, to := node, n
		if reverse {
			from, to = n, node
		}
		if allowed != nil && !allowed.Has(from, to) {
			continue
		}
		neighbors = append(neighbors, n)
		belief[n] = g.PairBelief(from, to)
	}

	sort.Slice(neighbors, func(i, j int) bool {
		bi, bj := belief[neighbors[i]], belief[neighbors[j]]
		if bi != bj {
			return bi > bj
		}

		return neighbors[i] < neighbors[j]
	})

	return neighbors
}
