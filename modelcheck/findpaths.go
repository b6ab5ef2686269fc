package modelcheck

import (
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/elda27/indra/causal"
	"github.com/elda27/indra/metrics"
	"github.com/elda27/indra/pathfinding"
)

// searchItem pairs a signed node with its depth in edges from the seed.
type searchItem struct {
	node  pathfinding.SignedNode
	depth int
}

// searcher encapsulates mutable state for one FindPaths execution.
type searcher struct {
	g       *causal.Graph
	opts    Options
	goal    pathfinding.SignedNode
	queue   []searchItem
	visited map[pathfinding.SignedNode]bool
	parent  map[pathfinding.SignedNode]pathfinding.SignedNode
	paths   []Path

	explored     int
	deadline     time.Time // zero when no Timeout is configured
	lengthPruned bool
	nodesStopped bool
	timedOut     bool
}

// FindPaths searches g for causal paths from source to target whose
// accumulated polarity equals desired, applying any number of functional
// Options.
//
// Absent source or target entities yield Result{Code: NoPathsFound} with a
// nil error: a reachability question about entities the graph does not know
// has an empty answer. Errors are reserved for structural misuse
// (ErrGraphNil, ErrBadSign, ErrOptionViolation, ErrMalformedEdge) and for
// external context cancellation, which aborts with ctx.Err() instead of a
// Result.
func FindPaths(g *causal.Graph, source, target string, desired causal.Sign, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Forward search expands successors from the source; reverse expands
	// predecessors from the target. Either way the seed/goal pair is the
	// signed-node translation of the desired influence: the seed in its
	// reference state, the goal carrying the accumulated sign. A sign
	// outside the defined polarities fails the translation.
	seedID, goalID := source, target
	if o.Reverse {
		seedID, goalID = target, source
	}
	seed, goal, ok := pathfinding.PathSignToSignedNodes(seedID, goalID, desired)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBadSign, desired)
	}

	start := time.Now()
	if !g.HasNode(source) || !g.HasNode(target) {
		logger().Debug("source or target not in graph",
			zap.String("source", source),
			zap.String("target", target))
		res := &Result{Code: NoPathsFound, Elapsed: time.Since(start)}
		record(res)

		return res, nil
	}

	s := &searcher{
		g:       g,
		opts:    o,
		goal:    goal,
		visited: make(map[pathfinding.SignedNode]bool),
		parent:  make(map[pathfinding.SignedNode]pathfinding.SignedNode),
	}
	if o.Timeout > 0 {
		s.deadline = start.Add(o.Timeout)
	}

	if err := s.run(seed); err != nil {
		return nil, err
	}

	res := s.result()
	res.Elapsed = time.Since(start)
	logger().Debug("path search finished",
		zap.String("source", source),
		zap.String("target", target),
		zap.Stringer("desired", desired),
		zap.Stringer("outcome", res.Code),
		zap.Int("paths", len(res.Paths)),
		zap.Int("nodes_explored", res.NodesExplored),
		zap.Duration("elapsed", res.Elapsed))
	record(res)

	return res, nil
}

// record publishes a finished search to the package collectors.
func record(res *Result) {
	metrics.SearchesTotal.WithLabelValues(res.Code.String()).Inc()
	metrics.SearchNodesExplored.Observe(float64(res.NodesExplored))
}

// run seeds the queue and processes it until the frontier empties, a bound
// stops the search, MaxPaths is met, or the context is cancelled.
func (s *searcher) run(seed pathfinding.SignedNode) error {
	s.visited[seed] = true
	s.queue = append(s.queue, searchItem{node: seed})

	for len(s.queue) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-s.opts.Ctx.Done():
			return s.opts.Ctx.Err()
		default:
		}
		// stop-bounds fire only while work remains, so they genuinely cut
		// the search short rather than relabeling a finished one
		if !s.deadline.IsZero() && time.Now().After(s.deadline) {
			s.timedOut = true

			return nil
		}
		if s.opts.MaxNodes > 0 && s.explored >= s.opts.MaxNodes {
			s.nodesStopped = true

			return nil
		}

		item := s.queue[0]
		s.queue = s.queue[1:]
		s.explored++
		done, err := s.expand(item)
		if err != nil || done {
			return err
		}
	}

	return nil
}

// expand enumerates item's neighbors in descending belief order and feeds
// one candidate per edge sign present on each pair. Returns done=true once
// MaxPaths is met.
func (s *searcher) expand(item searchItem) (bool, error) {
	depth := item.depth + 1
	for _, n := range pathfinding.SortedNeighbors(s.g, item.node.ID, s.opts.Reverse, s.opts.AllowedEdges) {
		from, to := item.node.ID, n
		if s.opts.Reverse {
			from, to = n, item.node.ID
		}
		pos, neg, err := s.pairSigns(from, to)
		if err != nil {
			return false, err
		}
		if pos && s.candidate(item.node, n, causal.Positive, depth) {
			return true, nil
		}
		if neg && s.candidate(item.node, n, causal.Negative, depth) {
			return true, nil
		}
	}

	return false, nil
}

// pairSigns reports which polarities are present among the parallel edges
// from→to, validating edge state on the way. Edge state that could not have
// passed causal.AddEdge is a fatal structural fault, not a skippable input.
func (s *searcher) pairSigns(from, to string) (pos, neg bool, err error) {
	for _, e := range s.g.EdgesBetween(from, to) {
		if !e.Sign.Valid() || math.IsNaN(e.Belief) || e.Belief < 0 || e.Belief > 1 {
			return false, false, fmt.Errorf("%w: edge %s", ErrMalformedEdge, e.ID)
		}
		if e.Sign == causal.Positive {
			pos = true
		} else {
			neg = true
		}
	}

	return pos, neg, nil
}

// candidate processes one signed-node candidate reached from parent over an
// edge of sign edgeSign at the given depth. Goal hits are recorded per
// candidate, never gated by the visited set, so parent-distinct paths to the
// goal all surface; non-goal candidates are enqueued at most once. Returns
// true once MaxPaths is met.
func (s *searcher) candidate(parent pathfinding.SignedNode, entity string, edgeSign causal.Sign, depth int) bool {
	if s.opts.MaxPathLength > 0 && depth > s.opts.MaxPathLength {
		s.lengthPruned = true

		return false
	}

	cand := pathfinding.SignedNode{ID: entity, Sign: parent.Sign.Combine(edgeSign)}
	if cand == s.goal {
		s.paths = append(s.paths, s.buildPath(parent, cand))

		return s.opts.MaxPaths > 0 && len(s.paths) >= s.opts.MaxPaths
	}

	if !s.visited[cand] {
		s.visited[cand] = true
		s.parent[cand] = parent
		s.queue = append(s.queue, searchItem{node: cand, depth: depth})
	}

	return false
}

// buildPath materializes the route ending at the goal candidate whose
// expansion parent is parent.
//
// The traversal chain runs candidate→seed; forward searches flip it so the
// chain reads source→target in graph orientation (reverse searches already
// do, since their seed is the target). Chain signs are seed-anchored, so the
// hop sign between adjacent states is their XOR regardless of search
// direction, and source-anchored node signs are recomputed from Positive.
func (s *searcher) buildPath(parent, cand pathfinding.SignedNode) Path {
	chain := []pathfinding.SignedNode{cand, parent}
	for {
		p, ok := s.parent[chain[len(chain)-1]]
		if !ok {
			break
		}
		chain = append(chain, p)
	}
	if !s.opts.Reverse {
		for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
			chain[i], chain[j] = chain[j], chain[i]
		}
	}

	nodes := make([]pathfinding.SignedNode, len(chain))
	nodes[0] = pathfinding.SignedNode{ID: chain[0].ID, Sign: causal.Positive}
	score := 1.0
	for i := 0; i+1 < len(chain); i++ {
		hop := chain[i].Sign.Combine(chain[i+1].Sign)
		nodes[i+1] = pathfinding.SignedNode{ID: chain[i+1].ID, Sign: nodes[i].Sign.Combine(hop)}
		score *= s.hopBelief(chain[i].ID, chain[i+1].ID, hop)
	}

	return Path{
		Nodes:  nodes,
		Sign:   nodes[len(nodes)-1].Sign,
		Length: len(nodes) - 1,
		Score:  score,
	}
}

// hopBelief returns the strongest belief among parallel edges from→to that
// carry the traversed sign.
func (s *searcher) hopBelief(from, to string, sign causal.Sign) float64 {
	best := 0.0
	for _, e := range s.g.EdgesBetween(from, to) {
		if e.Sign == sign && e.Belief > best {
			best = e.Belief
		}
	}

	return best
}

// result classifies the finished search. Paths win over everything; a
// stop-bound (nodes, time) that cut the search short wins over a mere
// length prune; a clean frontier exhaustion is NoPathsFound.
func (s *searcher) result() *Result {
	res := &Result{Paths: s.paths, NodesExplored: s.explored}
	switch {
	case len(s.paths) > 0:
		res.Code = PathsFound
		sortPaths(res.Paths)
	case s.timedOut:
		res.Code = SearchTimeout
	case s.nodesStopped:
		res.Code = MaxNodesExceeded
	case s.lengthPruned:
		res.Code = MaxPathLengthExceeded
	default:
		res.Code = NoPathsFound
	}

	return res
}

// sortPaths orders paths by Score descending, Length ascending, then node
// sequence, making multi-path results deterministic.
func sortPaths(paths []Path) {
	sort.Slice(paths, func(i, j int) bool {
		if paths[i].Score != paths[j].Score {
			return paths[i].Score > paths[j].Score
		}
		if paths[i].Length != paths[j].Length {
			return paths[i].Length < paths[j].Length
		}

		return lessNodeSeq(paths[i].Nodes, paths[j].Nodes)
	})
}

// lessNodeSeq compares signed-node sequences element-wise, ID before sign.
func lessNodeSeq(a, b []pathfinding.SignedNode) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].ID != b[i].ID {
			return a[i].ID < b[i].ID
		}
		if a[i].Sign != b[i].Sign {
			return a[i].Sign < b[i].Sign
		}
	}

	return len(a) < len(b)
}
