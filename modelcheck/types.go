// Package modelcheck answers signed reachability queries over a causal graph:
// is there a mechanistic chain from a source entity to a target entity whose
// accumulated polarity matches a desired sign?
//
// The search is breadth-first over signed nodes (entity, accumulated sign),
// seeded at the source in its reference state. Every signed node is expanded
// at most once, so each entity is visited at most twice (once per polarity);
// neighbor expansion follows descending pair belief via
// pathfinding.SortedNeighbors, and each edge sign present between a node pair
// contributes its own candidate. Reaching the goal signed node is detected
// per candidate, so several parent-distinct paths can be collected in one
// sweep.
//
// Complexity:
//
//	– Time:  O(V·k log k + E) with V = |signed nodes| ≤ 2·|entities|,
//	  k the out-degree bound (each expansion sorts its neighbor set).
//	– Space: O(V + P·L) for the visited/parent maps plus P collected paths
//	  of length ≤ L.
//
// Options (invalid values surface as ErrOptionViolation when the search
// runs):
//
//	– WithMaxPathLength: prune candidates beyond this many edges (default 5,
//	  0 = unlimited).
//	– WithMaxPaths:      stop after collecting this many paths (default 1,
//	  0 = unlimited).
//	– WithMaxNodes:      stop after expanding this many signed nodes
//	  (default unlimited).
//	– WithTimeout:       stop after this much wall time (default none).
//	– WithContext:       external cancellation; aborts with ctx.Err() rather
//	  than a Result code.
//	– WithAllowedEdges:  restrict traversal to an explicit node-pair set.
//	– WithReverse:       expand predecessors from the target side; returned
//	  paths still read source→target.
//
// Errors (sentinel):
//
//	– ErrGraphNil        if the provided graph pointer is nil.
//	– ErrOptionViolation if an invalid Option was supplied.
//	– ErrBadSign         if the desired sign is not a defined polarity.
//	– ErrMalformedEdge   if traversal meets edge state that could not have
//	  passed causal.AddEdge validation.
//
// Absent source or target entities are not errors: the search reports
// NoPathsFound, the same as an exhausted frontier.
package modelcheck

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/elda27/indra/causal"
	"github.com/elda27/indra/pathfinding"
)

// Sentinel errors for path search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("modelcheck: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("modelcheck: invalid option supplied")

	// ErrBadSign is returned when the desired sign is not Positive or
	// Negative.
	ErrBadSign = errors.New("modelcheck: desired sign is invalid")

	// ErrMalformedEdge is returned when traversal meets an edge whose sign
	// or belief could not have passed causal.AddEdge validation. It carries
	// the offending edge ID.
	ErrMalformedEdge = errors.New("modelcheck: malformed edge state")
)

// Search bound defaults, matching the checker this engine descends from.
const (
	// DefaultMaxPathLength is the default path-length prune bound, in edges.
	DefaultMaxPathLength = 5

	// DefaultMaxPaths is the default number of paths to collect.
	DefaultMaxPaths = 1
)

// Option configures path search behavior via functional arguments.
// An invalid Option (e.g. a negative bound) is recorded internally and
// surfaced as ErrOptionViolation when FindPaths is invoked.
type Option func(*Options)

// Options holds the parameters of one path search.
type Options struct {
	// Ctx allows external cancellation and deadlines.
	Ctx context.Context

	// MaxPathLength prunes candidate paths longer than this many edges.
	// 0 disables the bound.
	MaxPathLength int

	// MaxPaths stops the search once this many paths are collected.
	// 0 collects every path the traversal can reach.
	MaxPaths int

	// MaxNodes stops the search after expanding this many signed nodes.
	// 0 disables the bound.
	MaxNodes int

	// Timeout stops the search after this much wall time. 0 disables it.
	Timeout time.Duration

	// AllowedEdges restricts traversal to the given node pairs when non-nil.
	AllowedEdges pathfinding.EdgeSet

	// Reverse expands predecessors from the target side instead of
	// successors from the source side.
	Reverse bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with the engine defaults:
//   - context.Background()
//   - MaxPathLength = 5, MaxPaths = 1
//   - no node, time, or edge-set restriction
//   - forward expansion.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxPathLength: DefaultMaxPathLength,
		MaxPaths:      DefaultMaxPaths,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPathLength bounds path length in edges.
//
//	n > 0: prune candidates beyond n edges
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPathLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPathLength cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxPathLength = n
	}
}

// WithMaxPaths bounds how many paths are collected.
//
//	n > 0: stop after n paths
//	n == 0: collect every reachable path
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxPaths = n
	}
}

// WithMaxNodes bounds how many signed nodes the search may expand.
//
//	n > 0: stop after expanding n signed nodes
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxNodes cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxNodes = n
	}
}

// WithTimeout bounds the search's wall time. The check is cooperative, once
// per expansion. A zero duration disables the bound; negative durations are
// an ErrOptionViolation.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: Timeout cannot be negative (%v)", ErrOptionViolation, d)

			return
		}
		o.Timeout = d
	}
}

// WithAllowedEdges restricts traversal to the node pairs in the set.
// A nil set means unrestricted.
func WithAllowedEdges(set pathfinding.EdgeSet) Option {
	return func(o *Options) {
		o.AllowedEdges = set
	}
}

// WithReverse expands predecessors from the target side. Useful when the
// target's in-degree is much smaller than the source's out-degree; returned
// paths still read source→target.
func WithReverse() Option {
	return func(o *Options) {
		o.Reverse = true
	}
}

// ResultCode classifies how a path search concluded.
type ResultCode int

const (
	// NoPathsFound means the frontier was exhausted without reaching the
	// goal and no configured bound interfered.
	NoPathsFound ResultCode = iota

	// PathsFound means at least one path was collected.
	PathsFound

	// MaxPathLengthExceeded means no path was found and the length bound
	// pruned at least one candidate.
	MaxPathLengthExceeded

	// MaxNodesExceeded means the node budget stopped the search before the
	// frontier was exhausted.
	MaxNodesExceeded

	// SearchTimeout means the time budget stopped the search before the
	// frontier was exhausted.
	SearchTimeout

	// StatementNotHandled means the checked statement type carries no
	// polarity, so no search was attempted.
	StatementNotHandled
)

// String renders the code as a lowercase label, usable directly as a metric
// label value.
func (c ResultCode) String() string {
	switch c {
	case NoPathsFound:
		return "no_paths_found"
	case PathsFound:
		return "paths_found"
	case MaxPathLengthExceeded:
		return "max_path_length_exceeded"
	case MaxNodesExceeded:
		return "max_nodes_exceeded"
	case SearchTimeout:
		return "search_timeout"
	case StatementNotHandled:
		return "statement_not_handled"
	default:
		return "unknown"
	}
}

// Path is one signed route from source to target.
type Path struct {
	// Nodes is the signed node sequence, source first. Node signs are the
	// polarity accumulated from the source up to that node.
	Nodes []pathfinding.SignedNode

	// Sign is the overall path polarity (the last node's accumulated sign).
	Sign causal.Sign

	// Length is the number of edges.
	Length int

	// Score is the product of per-hop beliefs; each hop contributes the
	// strongest belief among parallel edges carrying the traversed sign.
	Score float64
}

// String renders the path in "BRAF+ -> MAP2K1+ -> MAPK1-" notation.
func (p Path) String() string {
	parts := make([]string, len(p.Nodes))
	for i, n := range p.Nodes {
		parts[i] = n.String()
	}

	return strings.Join(parts, " -> ")
}

// Result holds the outcome of one path search.
type Result struct {
	// Code classifies the outcome.
	Code ResultCode

	// Paths are the collected routes, sorted by Score descending, then
	// Length ascending, then node sequence. Empty unless Code is PathsFound.
	Paths []Path

	// NodesExplored counts the signed nodes the search expanded.
	NodesExplored int

	// Elapsed is the wall time the search took.
	Elapsed time.Duration
}

// Found reports whether the search collected at least one path.
func (r *Result) Found() bool { return r.Code == PathsFound }
