// Package deliveryroute finds the shortest delivery route from a restaurant to
// a customer on a small road map.
//
// What is inside:
//
//	matrix/   — undirected weighted AdjacencyMatrix with presence flags
//	dijkstra/ — array-scan Dijkstra, predecessor tables, path reconstruction
//	builder/  — deterministic Path/Cycle/Complete/RandomSparse fixtures
//	network/  — named locations, built-in city maps, routes with ETA
//	session/  — the interactive "enter your roads" dialogue
//	cmd/      — deliveryroute (interactive) and citymap (built-in maps)
//
// Quick ASCII example:
//
//	    0 ──1── 1
//	    │       │
//	    4       2
//	    │       │
//	    └────── 2 ──1── 3
//
// The route 0 → 3 costs 4 via 0 → 1 → 2 → 3; the direct 0–2 road is longer.
//
//	go install github.com/katalvlaran/deliveryroute/cmd/deliveryroute@latest
package deliveryroute
