// Package hoplite is a compact toolkit for hop-count analysis on
// integer-keyed graphs: dense node identities, adjacency storage, and
// re-runnable breadth-first traversals.
//
// 🚀 What is hoplite?
//
//	A small, pure-Go library that brings together:
//		• Node identities: address vertices by ints or small integer tuples,
//		  mapped to dense zero-based ids
//		• Core primitives: fixed-capacity adjacency storage for directed and
//		  undirected weighted edges
//		• Traversal: breadth-first search with unweighted shortest-path
//		  distances, reachability, and a run/clear lifecycle
//		• Grids: 2D lattices as graphs, with per-cell distance fields
//
// ✨ Why choose hoplite?
//
//   - Minimal API – three key constructors, one traversal object, clear naming
//   - Deterministic – insertion-ordered adjacency, reproducible visit order
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – traversal hooks (OnVisit, OnEnqueue…) for custom logic
//
// Everything is organized under three subpackages:
//
//	core/ — NodeKey, IdentityMap, and the fixed-capacity Graph
//	bfs/  — the re-runnable breadth-first Traversal
//	grid/ — 2D integer grids as undirected unit-weight graphs
//
// Quick ASCII example:
//
//	    (0,0)──(0,1)
//	      │      │
//	    (1,0)──(1,1)
//
//	a 2×2 lattice: four Pair-keyed vertices, four unit edges, and a
//	breadth-first distance of 2 between opposite corners.
//
//	go get github.com/arvessen/hoplite
package hoplite
