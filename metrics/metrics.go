// Package metrics exposes Prometheus collectors for path searches, subgraph
// extractions, and statement assembly.
//
// Collectors are registered on the default registry via promauto; embedding
// processes expose them by mounting promhttp wherever they serve HTTP. This
// library itself has no network surface.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SearchesTotal counts path searches by outcome
	// (paths_found, no_paths_found, max_path_length_exceeded, ...).
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indra_path_searches_total",
			Help: "Total number of signed path searches by outcome",
		},
		[]string{"outcome"},
	)

	// SearchNodesExplored measures how many signed nodes a search expanded
	// before terminating. Buckets span trivial lookups to bounded sweeps of
	// large assembled networks.
	SearchNodesExplored = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "indra_path_search_nodes_explored",
			Help:    "Signed nodes explored per path search",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		},
	)

	// SubgraphExtractions counts filtered subgraph copies by filter name.
	// Unregistered lookups are aggregated under the "unregistered" label to
	// keep cardinality bounded.
	SubgraphExtractions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indra_subgraph_extractions_total",
			Help: "Total number of filtered subgraph extractions by filter",
		},
		[]string{"filter"},
	)

	// StatementsSkipped counts statements dropped during graph assembly
	// (unhandled type, empty endpoints, belief out of range).
	StatementsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "indra_statements_skipped_total",
			Help: "Total number of statements skipped during assembly",
		},
	)
)
