// Package bfs implements the Traversal state machine and its queue loop.
package bfs

import (
	"fmt"

	"github.com/arvessen/hoplite/core"
)

// Traversal is a re-runnable breadth-first search bound to a single
// core.Graph. It holds a non-owning reference: the Graph is read during
// Run and never mutated, except that resolving an unseen source key
// allocates its id (capacity-checked by the Graph).
//
// Not safe for concurrent use; one logical owner at a time.
type Traversal struct {
	g     *core.Graph
	dist  []int // indexed by dense id; Unvisited when unreached
	order []int // ids of the last completed run, in visit sequence
	state state
	src   int // source id, meaningful only when Populated
}

// queueItem pairs a dense vertex id with its depth from the source.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates the mutable state of one Run.
type walker struct {
	t     *Traversal
	opts  RunOptions
	queue []queueItem
}

// New creates an Idle Traversal bound to g.
// Returns ErrGraphNil when g is nil.
// Complexity: O(capacity) for the distance table.
func New(g *core.Graph) (*Traversal, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	t := &Traversal{
		g:    g,
		dist: make([]int, g.Capacity()),
	}
	t.resetDistances()

	return t, nil
}

// Run performs one full breadth-first traversal from source, recording
// the minimum edge count to every reachable vertex. Valid only while
// Idle: a populated Traversal returns ErrAlreadyPopulated until Clear
// is called, so results can never be silently overwritten.
//
// The source key is resolved through the Graph's IdentityMap; a key the
// Graph has never seen is allocated an id (subject to capacity) and the
// run visits just that vertex at distance 0.
//
// On a hook error the Traversal auto-clears and returns the wrapped
// error: distances are all-or-nothing.
// Complexity: O(V + E) over the component reachable from source.
func (t *Traversal) Run(source core.NodeKey, opts ...Option) error {
	if t.state == statePopulated {
		return ErrAlreadyPopulated
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	srcID, err := t.g.Resolve(source)
	if err != nil {
		return fmt.Errorf("bfs: resolve source: %w", err)
	}

	w := &walker{t: t, opts: o, queue: make([]queueItem, 0, t.g.NodeCount())}
	w.enqueue(srcID, 0)
	if err = w.loop(); err != nil {
		t.Clear()
		return err
	}
	t.src = srcID
	t.state = statePopulated

	return nil
}

// MinDist returns the minimum number of edges from the current source
// to target, or Unvisited (-1) when target was not reached or no run
// has completed since the last Clear. Probing a key the Graph has never
// seen reports Unvisited without allocating an id.
// Returns core.ErrInvalidNodeKey for the zero-value key.
// Complexity: O(1).
func (t *Traversal) MinDist(target core.NodeKey) (int, error) {
	if !target.Valid() {
		return Unvisited, core.ErrInvalidNodeKey
	}
	id, ok := t.g.Lookup(target)
	if !ok {
		return Unvisited, nil
	}

	return t.dist[id], nil
}

// Visited reports whether target was reached by the last completed run.
// Equivalent to MinDist(target) != Unvisited.
// Complexity: O(1).
func (t *Traversal) Visited(target core.NodeKey) (bool, error) {
	d, err := t.MinDist(target)
	if err != nil {
		return false, err
	}

	return d != Unvisited, nil
}

// Clear discards all distance records and returns the Traversal to
// Idle. The bound Graph's identity map and adjacency are untouched.
// Valid from any state.
// Complexity: O(capacity).
func (t *Traversal) Clear() {
	t.resetDistances()
	t.order = nil
	t.state = stateIdle
}

// Populated reports whether the Traversal holds a completed run.
func (t *Traversal) Populated() bool {
	return t.state == statePopulated
}

// Source returns the key of the last completed run's source; the second
// result is false while Idle.
func (t *Traversal) Source() (core.NodeKey, bool) {
	if t.state != statePopulated {
		return core.NodeKey{}, false
	}
	k, _ := t.g.KeyOf(t.src)

	return k, true
}

// Order returns the keys visited by the last completed run in visit
// sequence, or nil while Idle.
// Complexity: O(V) per call.
func (t *Traversal) Order() []core.NodeKey {
	if t.state != statePopulated {
		return nil
	}
	out := make([]core.NodeKey, len(t.order))
	for i, id := range t.order {
		out[i], _ = t.g.KeyOf(id)
	}

	return out
}

// resetDistances marks every id slot Unvisited.
func (t *Traversal) resetDistances() {
	for i := range t.dist {
		t.dist[i] = Unvisited
	}
}

// enqueue marks id reached at depth d, fires OnEnqueue, and queues it.
func (w *walker) enqueue(id, d int) {
	w.t.dist[id] = d
	if k, ok := w.t.g.KeyOf(id); ok {
		w.opts.OnEnqueue(k, d)
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or a hook aborts.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.relaxNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, fires OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	if k, ok := w.t.g.KeyOf(item.id); ok {
		w.opts.OnDequeue(k, item.depth)
	}

	return item
}

// visit records the vertex in the visit order and fires OnVisit.
func (w *walker) visit(item queueItem) error {
	w.t.order = append(w.t.order, item.id)
	k, _ := w.t.g.KeyOf(item.id)
	if err := w.opts.OnVisit(k, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %s: %w", k, err)
	}

	return nil
}

// relaxNeighbors walks item's adjacency in insertion order, applying
// filtering and MaxDepth, and enqueues each unreached neighbor one hop
// further out. Weights on arcs are ignored.
func (w *walker) relaxNeighbors(item queueItem) error {
	arcs, err := w.t.g.Arcs(item.id)
	if err != nil {
		return fmt.Errorf("%w: arcs of id %d: %v", ErrNeighbors, item.id, err)
	}
	curr, _ := w.t.g.KeyOf(item.id)
	nextDepth := item.depth + 1
	for _, a := range arcs {
		if w.t.dist[a.To] != Unvisited {
			continue
		}
		if next, ok := w.t.g.KeyOf(a.To); ok && !w.opts.FilterNeighbor(curr, next) {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		w.enqueue(a.To, nextDepth)
	}

	return nil
}
