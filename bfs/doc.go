// Package bfs provides a re-runnable breadth-first traversal over a
// core.Graph, computing unweighted shortest-path distances and
// reachability from a single source.
//
// What
//
//   - Traversal binds to a Graph and explores vertices in non-decreasing
//     hop count from a source key.
//   - MinDist reports the minimum number of edges from the source to any
//     key (-1 when unreached); Visited is the boolean view of the same.
//   - Order reports the visit sequence of the last completed run.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a vertex is first reached)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows pruning of individual arcs via WithFilterNeighbor and
//     bounding exploration via WithMaxDepth.
//
// Lifecycle
//
//	A Traversal is a two-state machine: Idle and Populated.
//
//	  Idle ──Run──▶ Populated ──Clear──▶ Idle
//
//	Run is valid only from Idle; running again without Clear fails with
//	ErrAlreadyPopulated so stale distances can never be silently
//	overwritten. Clear is valid from any state and resets every distance
//	to Unvisited without touching the bound Graph. After a hook aborts a
//	run, the Traversal auto-clears back to Idle: results are
//	all-or-nothing.
//
// Weights
//
//	Edge weights stored on arcs are deliberately ignored: distance is
//	measured in edge count only. This is a documented simplification,
//	not an accident.
//
// Queries on unknown keys
//
//	MinDist and Visited use non-allocating lookup: probing a key the
//	Graph has never seen reports -1/false and does not grow the identity
//	space.
//
// Determinism
//
//	core.Graph returns arcs in insertion order and the queue is FIFO, so
//	the visit sequence is fully reproducible.
//
// Complexity (V = resolved vertices, E = arcs reachable from source)
//
//   - Time:   O(V + E)
//   - Memory: O(capacity) for the distance table, O(V) for the queue
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrAlreadyPopulated    if Run is called twice without Clear.
//   - ErrOptionViolation     if an invalid Option is supplied.
//   - ErrNeighbors           if an adjacency read fails mid-run.
//   - core.ErrInvalidNodeKey / core.ErrCapacityExceeded surfaced from
//     source resolution.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
