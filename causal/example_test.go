package causal_test

import (
	"fmt"

	"github.com/elda27/indra/causal"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a signed causal graph:
	g := causal.NewGraph()

	// 2) Add signed edges (auto-adds the entities):
	g.AddEdge("BRAF", "MAP2K1", causal.Positive, 0.98)
	g.AddEdge("MAP2K1", "MAPK1", causal.Positive, 0.97)
	g.AddEdge("DUSP6", "MAPK1", causal.Negative, 0.81)

	// 3) Inspect the neighborhood:
	fmt.Println("Entities:", g.Nodes())
	fmt.Println("Upstream of MAPK1:", g.Predecessors("MAPK1"))
	fmt.Println("BRAF activates MAP2K1?", g.HasEdge("BRAF", "MAP2K1"))

	// 4) Remove an entity and its influences:
	g.RemoveNode("MAP2K1")
	fmt.Println("Upstream of MAPK1 now:", g.Predecessors("MAPK1"))

	// Output:
	// Entities: [BRAF DUSP6 MAP2K1 MAPK1]
	// Upstream of MAPK1: [DUSP6 MAP2K1]
	// BRAF activates MAP2K1? true
	// Upstream of MAPK1 now: [DUSP6]
}

// ExampleGraph_parallelEdges shows how independent statements about the same
// pair stay independent edges.
func ExampleGraph_parallelEdges() {
	g := causal.NewGraph()

	// One activating and one inhibiting reading of the same interaction.
	g.AddEdge("EGF", "EGFR", causal.Positive, 0.9)
	g.AddEdge("EGF", "EGFR", causal.Negative, 0.3)

	for _, e := range g.EdgesBetween("EGF", "EGFR") {
		fmt.Printf("%s %s%s%s belief=%.1f\n", e.ID, e.From, e.Sign, e.To, e.Belief)
	}
	fmt.Printf("pair belief: %.1f\n", g.PairBelief("EGF", "EGFR"))

	// Output:
	// e1 EGF+EGFR belief=0.9
	// e2 EGF-EGFR belief=0.3
	// pair belief: 0.9
}

// ExampleGraph_FilterCopy extracts an independent high-confidence slice.
func ExampleGraph_FilterCopy() {
	g := causal.NewGraph()
	g.AddEdge("A", "B", causal.Positive, 0.95)
	g.AddEdge("B", "C", causal.Negative, 0.40)

	strong := g.FilterCopy(func(e *causal.Edge) bool { return e.Belief >= 0.5 })

	fmt.Println("source edges:", g.EdgeCount())
	fmt.Println("copy edges:", strong.EdgeCount())
	fmt.Println("copy keeps all entities:", strong.NodeCount())

	// Output:
	// source edges: 2
	// copy edges: 1
	// copy keeps all entities: 3
}
