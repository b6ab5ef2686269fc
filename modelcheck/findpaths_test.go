package modelcheck_test

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elda27/indra/causal"
	"github.com/elda27/indra/modelcheck"
	"github.com/elda27/indra/pathfinding"
)

func TestMain(m *testing.M) {
	modelcheck.SetLogger(zap.NewNop())
	pathfinding.SetLogger(zap.NewNop())
	os.Exit(m.Run())
}

// mustEdge adds an edge and fails the test on error.
func mustEdge(t *testing.T, g *causal.Graph, from, to string, sign causal.Sign, belief float64) string {
	t.Helper()
	id, err := g.AddEdge(from, to, sign, belief)
	require.NoError(t, err)

	return id
}

// diamond builds A→B→D (strong) and A→C→D (weak), all activating.
func diamond(t *testing.T) *causal.Graph {
	t.Helper()
	g := causal.NewGraph()
	mustEdge(t, g, "A", "B", causal.Positive, 0.9)
	mustEdge(t, g, "B", "D", causal.Positive, 0.9)
	mustEdge(t, g, "A", "C", causal.Positive, 0.5)
	mustEdge(t, g, "C", "D", causal.Positive, 0.5)

	return g
}

// chain builds N0→N1→…→Nn, activating, belief 0.9 per hop.
func chain(t *testing.T, n int) *causal.Graph {
	t.Helper()
	g := causal.NewGraph()
	for i := 0; i < n; i++ {
		mustEdge(t, g, "N"+strconv.Itoa(i), "N"+strconv.Itoa(i+1), causal.Positive, 0.9)
	}

	return g
}

func TestFindPaths_SignedReachability(t *testing.T) {
	// BRAF activates MAP2K1, DUSP6-style MAP2K1 inhibits MAPK1: the chain
	// explains a net inhibition of MAPK1, not a net activation.
	g := causal.NewGraph()
	mustEdge(t, g, "A", "B", causal.Positive, 0.9)
	mustEdge(t, g, "B", "C", causal.Negative, 0.8)

	res, err := modelcheck.FindPaths(g, "A", "C", causal.Negative)
	require.NoError(t, err)
	assert.True(t, res.Found())
	require.Len(t, res.Paths, 1)
	assert.Equal(t, "A+ -> B+ -> C-", res.Paths[0].String())
	assert.Equal(t, causal.Negative, res.Paths[0].Sign)
	assert.Equal(t, 2, res.Paths[0].Length)
	assert.InDelta(t, 0.72, res.Paths[0].Score, 1e-9)

	res, err = modelcheck.FindPaths(g, "A", "C", causal.Positive)
	require.NoError(t, err)
	assert.Equal(t, modelcheck.NoPathsFound, res.Code)
	assert.Empty(t, res.Paths)
}

func TestFindPaths_DoubleInhibitionActivates(t *testing.T) {
	g := causal.NewGraph()
	mustEdge(t, g, "A", "B", causal.Negative, 0.9)
	mustEdge(t, g, "B", "C", causal.Negative, 0.9)

	res, err := modelcheck.FindPaths(g, "A", "C", causal.Positive)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, "A+ -> B- -> C+", res.Paths[0].String())
	assert.Equal(t, causal.Positive, res.Paths[0].Sign)
}

func TestFindPaths_DefaultMaxPathsOne(t *testing.T) {
	g := diamond(t)

	res, err := modelcheck.FindPaths(g, "A", "D", causal.Positive)
	require.NoError(t, err)
	require.True(t, res.Found())
	require.Len(t, res.Paths, 1)
	// Belief-ordered expansion reaches D through the strong branch first.
	assert.Equal(t, "A+ -> B+ -> D+", res.Paths[0].String())
	assert.InDelta(t, 0.81, res.Paths[0].Score, 1e-9)
	// Expanded (A,+) and (B,+); the goal hit ended the search.
	assert.Equal(t, 2, res.NodesExplored)
}

func TestFindPaths_MultiplePathsSorted(t *testing.T) {
	g := diamond(t)

	res, err := modelcheck.FindPaths(g, "A", "D", causal.Positive, modelcheck.WithMaxPaths(0))
	require.NoError(t, err)
	require.True(t, res.Found())
	require.Len(t, res.Paths, 2)
	assert.Equal(t, "A+ -> B+ -> D+", res.Paths[0].String())
	assert.InDelta(t, 0.81, res.Paths[0].Score, 1e-9)
	assert.Equal(t, "A+ -> C+ -> D+", res.Paths[1].String())
	assert.InDelta(t, 0.25, res.Paths[1].Score, 1e-9)
}

func TestFindPaths_ParallelSignsScoredPerSign(t *testing.T) {
	// Conflicting literature about the same pair: an activation at 0.6 and
	// an inhibition at 0.9. Each polarity traverses its own edges.
	g := causal.NewGraph()
	mustEdge(t, g, "A", "B", causal.Positive, 0.6)
	mustEdge(t, g, "A", "B", causal.Negative, 0.9)

	res, err := modelcheck.FindPaths(g, "A", "B", causal.Positive)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, "A+ -> B+", res.Paths[0].String())
	assert.InDelta(t, 0.6, res.Paths[0].Score, 1e-9)

	res, err = modelcheck.FindPaths(g, "A", "B", causal.Negative)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, "A+ -> B-", res.Paths[0].String())
	assert.InDelta(t, 0.9, res.Paths[0].Score, 1e-9)
}

func TestFindPaths_NegativeFeedbackLoop(t *testing.T) {
	// A drives B, B represses A: querying (A, A, Negative) surfaces the
	// feedback cycle. The trivial zero-edge path is never an answer.
	g := causal.NewGraph()
	mustEdge(t, g, "A", "B", causal.Positive, 0.9)
	mustEdge(t, g, "B", "A", causal.Negative, 0.8)

	res, err := modelcheck.FindPaths(g, "A", "A", causal.Negative)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, "A+ -> B+ -> A-", res.Paths[0].String())
	assert.Equal(t, 2, res.Paths[0].Length)
	assert.InDelta(t, 0.72, res.Paths[0].Score, 1e-9)
}

func TestFindPaths_NoTrivialSelfPath(t *testing.T) {
	g := causal.NewGraph()
	mustEdge(t, g, "A", "B", causal.Positive, 0.9)

	// Without a cycle, (A, A, Positive) has no explaining chain; the empty
	// path does not count.
	res, err := modelcheck.FindPaths(g, "A", "A", causal.Positive)
	require.NoError(t, err)
	assert.Equal(t, modelcheck.NoPathsFound, res.Code)
}

func TestFindPaths_EntityVisitedOncePerPolarity(t *testing.T) {
	// B is reachable as B- (directly) and as B+ (through C); both survive
	// the visited set and only the B- branch explains (D, Negative).
	g := causal.NewGraph()
	mustEdge(t, g, "A", "B", causal.Negative, 0.9)
	mustEdge(t, g, "A", "C", causal.Positive, 0.8)
	mustEdge(t, g, "C", "B", causal.Positive, 0.7)
	mustEdge(t, g, "B", "D", causal.Positive, 0.6)

	res, err := modelcheck.FindPaths(g, "A", "D", causal.Negative, modelcheck.WithMaxPaths(0))
	require.NoError(t, err)
	require.True(t, res.Found())
	require.Len(t, res.Paths, 1)
	assert.Equal(t, "A+ -> B- -> D-", res.Paths[0].String())
	assert.InDelta(t, 0.54, res.Paths[0].Score, 1e-9)
	// Five signed nodes expanded: (A,+), (B,-), (C,+), (B,+), (D,+).
	assert.Equal(t, 5, res.NodesExplored)
}

func TestFindPaths_MaxPathLengthExceeded(t *testing.T) {
	g := chain(t, 7)

	// Seven hops needed, default bound is five: the prune is reported.
	res, err := modelcheck.FindPaths(g, "N0", "N7", causal.Positive)
	require.NoError(t, err)
	assert.Equal(t, modelcheck.MaxPathLengthExceeded, res.Code)
	assert.False(t, res.Found())
	assert.Empty(t, res.Paths)

	// Raising the bound finds the chain.
	res, err = modelcheck.FindPaths(g, "N0", "N7", causal.Positive, modelcheck.WithMaxPathLength(7))
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, 7, res.Paths[0].Length)

	// Zero disables the bound entirely.
	res, err = modelcheck.FindPaths(g, "N0", "N7", causal.Positive, modelcheck.WithMaxPathLength(0))
	require.NoError(t, err)
	assert.True(t, res.Found())
}

func TestFindPaths_CleanExhaustionIsNoPathsFound(t *testing.T) {
	// The target is disconnected and the frontier dies well inside every
	// bound: this is NoPathsFound, not a bound code.
	g := causal.NewGraph()
	mustEdge(t, g, "A", "B", causal.Positive, 0.9)
	require.NoError(t, g.AddNode("Z"))

	res, err := modelcheck.FindPaths(g, "A", "Z", causal.Positive)
	require.NoError(t, err)
	assert.Equal(t, modelcheck.NoPathsFound, res.Code)
}

func TestFindPaths_MaxNodesStopsSearch(t *testing.T) {
	g := chain(t, 4)

	// Two expansions allowed, work still queued: the budget cut it short.
	res, err := modelcheck.FindPaths(g, "N0", "N4", causal.Positive, modelcheck.WithMaxNodes(2))
	require.NoError(t, err)
	assert.Equal(t, modelcheck.MaxNodesExceeded, res.Code)
	assert.Equal(t, 2, res.NodesExplored)
}

func TestFindPaths_MaxNodesMetAtExhaustionIsClean(t *testing.T) {
	// The frontier dies exactly as the budget is reached; nothing was cut
	// short, so the outcome stays NoPathsFound.
	g := causal.NewGraph()
	mustEdge(t, g, "A", "B", causal.Positive, 0.9)
	require.NoError(t, g.AddNode("Z"))

	res, err := modelcheck.FindPaths(g, "A", "Z", causal.Positive, modelcheck.WithMaxNodes(2))
	require.NoError(t, err)
	assert.Equal(t, modelcheck.NoPathsFound, res.Code)
	assert.Equal(t, 2, res.NodesExplored)
}

func TestFindPaths_TimeoutStopsSearch(t *testing.T) {
	g := causal.NewGraph()
	mustEdge(t, g, "A", "B", causal.Positive, 0.9)

	// A deadline already in the past stops the search before any expansion,
	// even though the target is one hop away.
	res, err := modelcheck.FindPaths(g, "A", "B", causal.Positive, modelcheck.WithTimeout(time.Nanosecond))
	require.NoError(t, err)
	assert.Equal(t, modelcheck.SearchTimeout, res.Code)
	assert.Zero(t, res.NodesExplored)
}

func TestFindPaths_FoundWinsOverBounds(t *testing.T) {
	// One short route to the target plus a long branch the length bound
	// prunes: a found path beats any bound code.
	g := causal.NewGraph()
	mustEdge(t, g, "A", "Z", causal.Positive, 0.5)
	prev := "A"
	for i := 1; i <= 7; i++ {
		next := "B" + strconv.Itoa(i)
		mustEdge(t, g, prev, next, causal.Positive, 0.9)
		prev = next
	}

	res, err := modelcheck.FindPaths(g, "A", "Z", causal.Positive, modelcheck.WithMaxPaths(0))
	require.NoError(t, err)
	assert.Equal(t, modelcheck.PathsFound, res.Code)
	require.Len(t, res.Paths, 1)
	assert.Equal(t, "A+ -> Z+", res.Paths[0].String())
}

func TestFindPaths_ReverseMatchesForward(t *testing.T) {
	g := diamond(t)

	forward, err := modelcheck.FindPaths(g, "A", "D", causal.Positive, modelcheck.WithMaxPaths(0))
	require.NoError(t, err)
	reverse, err := modelcheck.FindPaths(g, "A", "D", causal.Positive,
		modelcheck.WithMaxPaths(0), modelcheck.WithReverse())
	require.NoError(t, err)

	require.True(t, reverse.Found())
	assert.Equal(t, forward.Paths, reverse.Paths)
}

func TestFindPaths_ReverseMixedSigns(t *testing.T) {
	g := causal.NewGraph()
	mustEdge(t, g, "A", "B", causal.Negative, 0.9)
	mustEdge(t, g, "B", "C", causal.Negative, 0.8)

	// Expanding from the target side must still report source-anchored
	// signs and source→target orientation.
	res, err := modelcheck.FindPaths(g, "A", "C", causal.Positive, modelcheck.WithReverse())
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, "A+ -> B- -> C+", res.Paths[0].String())
	assert.InDelta(t, 0.72, res.Paths[0].Score, 1e-9)
}

func TestFindPaths_EndpointsMatchSignTranslation(t *testing.T) {
	g := causal.NewGraph()
	mustEdge(t, g, "A", "B", causal.Positive, 0.9)
	mustEdge(t, g, "B", "C", causal.Negative, 0.8)
	mustEdge(t, g, "A", "D", causal.Negative, 0.6)
	mustEdge(t, g, "D", "C", causal.Negative, 0.5)

	cases := []struct {
		name    string
		desired causal.Sign
	}{
		{"positive", causal.Positive},
		{"negative", causal.Negative},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src, dst, ok := pathfinding.PathSignToSignedNodes("A", "C", tc.desired)
			require.True(t, ok)

			forward, err := modelcheck.FindPaths(g, "A", "C", tc.desired,
				modelcheck.WithMaxPaths(0))
			require.NoError(t, err)
			reverse, err := modelcheck.FindPaths(g, "A", "C", tc.desired,
				modelcheck.WithMaxPaths(0), modelcheck.WithReverse())
			require.NoError(t, err)

			// Whatever the search direction, paths run between the signed
			// endpoints the edge-to-signed-nodes translation pins down.
			for _, res := range []*modelcheck.Result{forward, reverse} {
				require.Equal(t, modelcheck.PathsFound, res.Code)
				for _, p := range res.Paths {
					assert.Equal(t, src, p.Nodes[0])
					assert.Equal(t, dst, p.Nodes[len(p.Nodes)-1])
				}
			}
		})
	}
}

func TestFindPaths_AllowedEdgesRestricts(t *testing.T) {
	g := diamond(t)

	allowed := pathfinding.NewEdgeSet(
		pathfinding.EdgeKey{From: "A", To: "C"},
		pathfinding.EdgeKey{From: "C", To: "D"},
	)
	res, err := modelcheck.FindPaths(g, "A", "D", causal.Positive,
		modelcheck.WithMaxPaths(0), modelcheck.WithAllowedEdges(allowed))
	require.NoError(t, err)
	require.True(t, res.Found())
	require.Len(t, res.Paths, 1)
	assert.Equal(t, "A+ -> C+ -> D+", res.Paths[0].String())
}

func TestFindPaths_AbsentEndpoints(t *testing.T) {
	g := causal.NewGraph()
	mustEdge(t, g, "A", "B", causal.Positive, 0.9)

	res, err := modelcheck.FindPaths(g, "GHOST", "B", causal.Positive)
	require.NoError(t, err)
	assert.Equal(t, modelcheck.NoPathsFound, res.Code)

	res, err = modelcheck.FindPaths(g, "A", "GHOST", causal.Positive)
	require.NoError(t, err)
	assert.Equal(t, modelcheck.NoPathsFound, res.Code)
}

func TestFindPaths_Errors(t *testing.T) {
	g := causal.NewGraph()
	mustEdge(t, g, "A", "B", causal.Positive, 0.9)

	_, err := modelcheck.FindPaths(nil, "A", "B", causal.Positive)
	assert.ErrorIs(t, err, modelcheck.ErrGraphNil)

	_, err = modelcheck.FindPaths(g, "A", "B", causal.Sign(3))
	assert.ErrorIs(t, err, modelcheck.ErrBadSign)

	_, err = modelcheck.FindPaths(g, "A", "B", causal.Positive, modelcheck.WithMaxPathLength(-1))
	assert.ErrorIs(t, err, modelcheck.ErrOptionViolation)
	_, err = modelcheck.FindPaths(g, "A", "B", causal.Positive, modelcheck.WithMaxPaths(-1))
	assert.ErrorIs(t, err, modelcheck.ErrOptionViolation)
	_, err = modelcheck.FindPaths(g, "A", "B", causal.Positive, modelcheck.WithMaxNodes(-1))
	assert.ErrorIs(t, err, modelcheck.ErrOptionViolation)
	_, err = modelcheck.FindPaths(g, "A", "B", causal.Positive, modelcheck.WithTimeout(-time.Second))
	assert.ErrorIs(t, err, modelcheck.ErrOptionViolation)
}

func TestFindPaths_ContextCancellation(t *testing.T) {
	g := chain(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := modelcheck.FindPaths(g, "N0", "N9", causal.Positive,
		modelcheck.WithContext(ctx), modelcheck.WithMaxPathLength(0))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFindPaths_MalformedEdge(t *testing.T) {
	g := causal.NewGraph()
	id := mustEdge(t, g, "A", "B", causal.Positive, 0.9)

	// Corrupt the catalog the way a graph assembled outside AddEdge could.
	e, err := g.GetEdge(id)
	require.NoError(t, err)
	e.Belief = 42

	res, err := modelcheck.FindPaths(g, "A", "B", causal.Positive)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, modelcheck.ErrMalformedEdge)
	assert.ErrorContains(t, err, id)
}
