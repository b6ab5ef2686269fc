// Package indra is an in-memory toolkit for signed causal networks —
// assembling typed biomedical statements into belief-weighted graphs and
// explaining claims through sign-propagating path searches.
//
// 🚀 What is indra?
//
//	A thread-safe library that brings together:
//		• Core primitives: signed multigraph with beliefs, evidence & safe mutation under locks
//		• Statement layer: typed causal assertions (Activation, Inhibition, …) assembled into graphs
//		• Signed search: bounded BFS over (entity, sign) states with a closed outcome taxonomy
//		• Reliability routing: strongest-path search maximizing the product of edge beliefs
//		• Curation: named edge filters and provenance-based subgraph extraction
//		• Numeric export: signed adjacency matrices & belief statistics on gonum
//
// ✨ Why choose indra?
//
//   - Polarity done right – signs compose by parity, double inhibition activates
//   - Honest outcomes – searches report how they ended, bounds never masquerade as absence
//   - Multigraph native – parallel and conflicting reports stay side by side
//   - Observable – zap logging and Prometheus counters built in
//
// Under the hood, everything is organized under six subpackages:
//
//	causal/      — Graph, Edge, Sign, Evidence: the signed multigraph core
//	statements/  — typed assertions + graph assembly
//	pathfinding/ — signed-node codec, neighbor ordering, filters, strongest path
//	modelcheck/  — bounded signed searches & statement checking
//	matrix/      — dense signed adjacency export + belief summaries (gonum)
//	metrics/     — Prometheus collectors shared by the packages above
//
// Quick ASCII example:
//
//	    BRAF ──+──► MAP2K1 ──+──► MAPK1 ◄──-── DUSP6
//
//	two activations compose to an activation; the phosphatase edge
//	explains suppression instead.
//
// Dive into examples/ for runnable scenarios and each package's doc for
// the full contract.
//
//	go get github.com/elda27/indra
package indra
