// Belief-weighted strongest path.
//
// The most reliable route between two entities maximises the product of pair
// beliefs along it. Maximising Π b is the same as minimising Σ -log b, and
// beliefs never exceed 1, so every -log b is non-negative and the problem
// reduces to Dijkstra. The heap uses the lazy-decrease-key strategy: shorter
// costs push duplicates, and stale entries are skipped when popped.

package pathfinding

import (
	"container/heap"
	"math"

	"github.com/elda27/indra/causal"
)

// BeliefPath is the outcome of a StrongestPath query.
type BeliefPath struct {
	// Nodes is the route, source first, target last.
	Nodes []string

	// Score is the product of pair beliefs along the route, in (0, 1].
	Score float64
}

// StrongestOptions configures StrongestPath.
type StrongestOptions struct {
	// MinBelief is a traversal floor: pairs supported below it are
	// impassable. Must be within [0, 1). Zero (the default) floors nothing;
	// unsupported pairs (belief 0) are always impassable.
	MinBelief float64
}

// StrongestOption is a functional option for StrongestPath.
type StrongestOption func(*StrongestOptions)

// WithMinBelief treats node pairs supported below the floor as impassable.
// Must pass a value within [0, 1); anything else panics with ErrBadMinBelief
// to signal invalid configuration early.
func WithMinBelief(b float64) StrongestOption {
	return func(o *StrongestOptions) {
		if math.IsNaN(b) || b < 0 || b >= 1 {
			panic(ErrBadMinBelief.Error())
		}
		o.MinBelief = b
	}
}

// StrongestPath returns the maximum-reliability route from source to target:
// the path whose product of pair beliefs is highest. Pair belief is the best
// support among parallel edges regardless of polarity; use the model-check
// search when the overall path sign matters.
//
// Validation order: empty IDs (ErrEmptySource), nil graph (ErrNilGraph).
// Absent endpoints and disconnected pairs both return ErrNoPath: a query
// about entities the graph does not relate has an empty answer, and the
// caller cannot usually tell (or care) which of the two it was.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func StrongestPath(g *causal.Graph, source, target string, opts ...StrongestOption) (*BeliefPath, error) {
	// 1) Build options
	var cfg StrongestOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if source == "" || target == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) || !g.HasNode(target) {
		return nil, ErrNoPath
	}

	// 3) Run the search
	r := &strongestRunner{
		g:       g,
		options: cfg,
		dist:    map[string]float64{source: 0},
		prev:    make(map[string]string),
		visited: make(map[string]bool),
	}
	r.run(source, target)

	if !r.visited[target] {
		return nil, ErrNoPath
	}

	return r.buildPath(source, target), nil
}

// strongestRunner holds the mutable state for one StrongestPath execution.
type strongestRunner struct {
	g       *causal.Graph
	options StrongestOptions
	dist    map[string]float64 // node → accumulated -log(belief) cost
	prev    map[string]string  // node → predecessor on the best route
	visited map[string]bool    // node → cost finalized
	pq      reliabilityPQ
}

func (r *strongestRunner) run(source, target string) {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &reliabilityItem{id: source, cost: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*reliabilityItem)
		u := item.id
		if r.visited[u] {
			continue // stale lazy-decrease-key entry
		}
		r.visited[u] = true
		if u == target {
			return // target cost is final; the rest need not settle
		}
		r.relax(u)
	}
}

// relax attempts to improve the cost of every successor of u.
// Assumes r.dist[u] is finalized.
func (r *strongestRunner) relax(u string) {
	for _, v := range r.g.Successors(u) {
		b := r.g.PairBelief(u, v)
		if b <= 0 || b < r.options.MinBelief {
			continue // unsupported or floored pairs are impassable
		}
		newDist := r.dist[u] - math.Log(b)
		if cur, seen := r.dist[v]; seen && newDist >= cur {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &reliabilityItem{id: v, cost: newDist})
	}
}

// buildPath reconstructs source→target from the predecessor map and scores
// it by multiplying the actual pair beliefs, which is cheaper and more
// precise than exponentiating the accumulated log cost.
func (r *strongestRunner) buildPath(source, target string) *BeliefPath {
	nodes := []string{target}
	for cur := target; cur != source; {
		cur = r.prev[cur]
		nodes = append(nodes, cur)
	}
	// reverse in place to get source → target
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	score := 1.0
	for i := 0; i+1 < len(nodes); i++ {
		score *= r.g.PairBelief(nodes[i], nodes[i+1])
	}

	return &BeliefPath{Nodes: nodes, Score: score}
}

// reliabilityItem is one heap entry: a node and its accumulated cost.
type reliabilityItem struct {
	id   string  // node ID
	cost float64 // Σ -log(belief) from the source
}

// reliabilityPQ is a min-heap of *reliabilityItem ordered by cost ascending
// (lowest cost = highest reliability product). Lazy decrease-key: outdated
// entries stay in the heap and are discarded via the visited check on pop.
type reliabilityPQ []*reliabilityItem

// Len returns the number of items in the heap.
func (pq reliabilityPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq reliabilityPQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq reliabilityPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *reliabilityItem.
func (pq *reliabilityPQ) Push(x interface{}) { *pq = append(*pq, x.(*reliabilityItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *reliabilityPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
