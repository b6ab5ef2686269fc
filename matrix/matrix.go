package matrix

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/elda27/indra/causal"
)

var (
	// ErrGraphNil is returned when a nil *causal.Graph is passed in.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNodeNotFound is returned by At for entity IDs outside the index.
	ErrNodeNotFound = errors.New("matrix: node not in index")
)

// Adjacency is a dense signed influence matrix over a fixed entity index.
type Adjacency struct {
	// Index maps row and column positions to entity IDs, lexicographic
	// ascending.
	Index []string

	// M holds the signed weights; M.At(i, j) weighs Index[i] → Index[j].
	M *mat.Dense

	pos map[string]int
}

// Signed exports g as a dense signed matrix. Each entry is the strongest
// positive support minus the strongest negative support between the pair, so
// parallel edges fold into one net weight per direction. Pairs without edges
// stay zero.
//
// An empty graph yields an empty Adjacency with a nil matrix.
// Complexity: O(V² + E).
func Signed(g *causal.Graph) (*Adjacency, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	index := g.Nodes()
	n := len(index)
	if n == 0 {
		return &Adjacency{}, nil
	}

	pos := make(map[string]int, n)
	for i, id := range index {
		pos[id] = i
	}

	// Fold parallel edges into the strongest support per polarity.
	type pair struct{ from, to int }
	maxPos := make(map[pair]float64)
	maxNeg := make(map[pair]float64)
	for _, e := range g.Edges() {
		k := pair{pos[e.From], pos[e.To]}
		switch e.Sign {
		case causal.Positive:
			if e.Belief > maxPos[k] {
				maxPos[k] = e.Belief
			}
		case causal.Negative:
			if e.Belief > maxNeg[k] {
				maxNeg[k] = e.Belief
			}
		}
	}

	m := mat.NewDense(n, n, nil)
	for k, b := range maxPos {
		m.Set(k.from, k.to, b)
	}
	for k, b := range maxNeg {
		m.Set(k.from, k.to, m.At(k.from, k.to)-b)
	}

	return &Adjacency{Index: index, M: m, pos: pos}, nil
}

// At returns the signed weight of u → v by entity ID.
func (a *Adjacency) At(u, v string) (float64, error) {
	i, ok := a.pos[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, u)
	}
	j, ok := a.pos[v]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, v)
	}

	return a.M.At(i, j), nil
}

// Summary aggregates the edge beliefs of one graph.
type Summary struct {
	// Count is the number of edges observed.
	Count int

	// Mean is the arithmetic mean belief.
	Mean float64

	// Std is the sample standard deviation; zero for fewer than two edges.
	Std float64

	// Min and Max are the extreme beliefs.
	Min float64
	Max float64
}

// BeliefSummary computes summary statistics over every edge belief in g.
// An edgeless graph yields the zero Summary. Complexity: O(E).
func BeliefSummary(g *causal.Graph) (Summary, error) {
	if g == nil {
		return Summary{}, ErrGraphNil
	}

	edges := g.Edges()
	if len(edges) == 0 {
		return Summary{}, nil
	}

	beliefs := make([]float64, len(edges))
	for i, e := range edges {
		beliefs[i] = e.Belief
	}

	s := Summary{
		Count: len(beliefs),
		Mean:  stat.Mean(beliefs, nil),
		Min:   floats.Min(beliefs),
		Max:   floats.Max(beliefs),
	}
	if len(beliefs) > 1 {
		s.Std = stat.StdDev(beliefs, nil)
	}

	return s, nil
}
