// Package bfs provides tunable options and error definitions for the
// breadth-first Traversal over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/arvessen/hoplite/core"
)

// Unvisited is the sentinel distance for vertices the current run never
// reached (and for every vertex while the Traversal is Idle).
const Unvisited = -1

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to New.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrAlreadyPopulated is returned when Run is called on a Traversal
	// that already holds results; call Clear first.
	ErrAlreadyPopulated = errors.New("bfs: traversal already populated; call Clear first")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when an adjacency read fails mid-run.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// state encodes the Traversal lifecycle.
type state uint8

const (
	// stateIdle: no results held; Run is permitted.
	stateIdle state = iota
	// statePopulated: a completed run's distances are held.
	statePopulated
)

// Option configures a single Run via functional arguments. An invalid
// Option (e.g. negative depth) is recorded internally and surfaced as
// ErrOptionViolation when Run is invoked.
type Option func(*RunOptions)

// RunOptions holds parameters and callbacks customizing one Run.
type RunOptions struct {
	// OnEnqueue is called when a vertex is first reached, before visiting.
	// Receives the vertex key and its depth from the source.
	OnEnqueue func(k core.NodeKey, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(k core.NodeKey, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// the run aborts, the Traversal auto-clears, and the error propagates.
	OnVisit func(k core.NodeKey, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip arcs by returning false.
	// Called for each arc curr→next.
	FilterNeighbor func(curr, next core.NodeKey) bool

	// internal error recorded during option parsing
	err error
}

// DefaultRunOptions returns a RunOptions with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all arcs followed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultRunOptions() RunOptions {
	return RunOptions{
		OnEnqueue:      func(core.NodeKey, int) {},
		OnDequeue:      func(core.NodeKey, int) {},
		OnVisit:        func(core.NodeKey, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ core.NodeKey) bool { return true },
		err:            nil,
	}
}

// WithOnEnqueue registers a callback to run when a vertex is reached.
func WithOnEnqueue(fn func(k core.NodeKey, depth int)) Option {
	return func(o *RunOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(k core.NodeKey, depth int)) Option {
	return func(o *RunOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback aborts the run and clears the Traversal.
func WithOnVisit(fn func(k core.NodeKey, depth int) error) Option {
	return func(o *RunOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *RunOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips arcs for which fn returns false.
func WithFilterNeighbor(fn func(curr, next core.NodeKey) bool) Option {
	return func(o *RunOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
