// Package core provides the fundamental types of hoplite: NodeKey,
// IdentityMap, and the fixed-capacity Graph.
//
// What
//
//   - NodeKey: a caller-facing vertex identifier — a single integer or a
//     2- or 3-integer tuple, built via Int, Pair, and Triple. Keys are
//     immutable values compared by arity and coordinates, so Int(5) and
//     Pair(5, 0) name two different vertices.
//   - IdentityMap: assigns each distinct NodeKey a dense, zero-based
//     integer id in first-sight order. Lookups are memoized; ids are
//     never reused or reassigned.
//   - Graph: adjacency storage indexed by dense id. Declared capacity at
//     construction, directed or undirected edge semantics, integer edge
//     weights, insertion-ordered adjacency sequences.
//
// Why
//
//   - Dense ids let traversal state live in flat slices instead of maps.
//   - Tuple keys make lattice and coordinate graphs natural to express
//     without manual id bookkeeping.
//
// Determinism
//
//	Arcs returns each vertex's neighbors in edge-insertion order, so any
//	traversal that walks adjacency front to back is fully reproducible.
//
// Concurrency
//
//	Graph and IdentityMap are single-owner structures: no internal
//	locking. Callers that share one across goroutines must serialize
//	access externally.
//
// Errors
//
//   - ErrInvalidNodeKey    if a zero-value NodeKey reaches resolution.
//   - ErrBadCapacity       if NewGraph is given a non-positive capacity.
//   - ErrCapacityExceeded  if an operation would allocate an id beyond
//     the declared capacity.
//   - ErrIDOutOfRange      if an adjacency read names an id outside
//     [0, capacity).
package core
