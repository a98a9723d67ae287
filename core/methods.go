// Package core: Graph method implementations.
//
// This file provides edge insertion, key resolution, and adjacency
// reads on the Graph type defined in types.go. All mutation funnels
// through AddEdge and Resolve so the capacity invariant is checked in
// exactly two places.
package core

import "fmt"

// Resolve maps k to its dense id, allocating a new id on first sight.
// Allocation is capacity-checked: once NodeCount() == Capacity(), an
// unseen key fails with ErrCapacityExceeded and no id is assigned.
// Returns ErrInvalidNodeKey for the zero-value key.
// Complexity: O(1) amortized.
func (g *Graph) Resolve(k NodeKey) (int, error) {
	if !k.Valid() {
		return 0, ErrInvalidNodeKey
	}
	if id, ok := g.ids.Lookup(k); ok {
		return id, nil
	}
	if g.ids.Len() >= g.capacity {
		return 0, fmt.Errorf("%w: cannot assign id to %s (capacity %d)", ErrCapacityExceeded, k, g.capacity)
	}

	return g.ids.Resolve(k)
}

// Lookup returns the id previously assigned to k without allocating.
// Complexity: O(1).
func (g *Graph) Lookup(k NodeKey) (int, bool) {
	return g.ids.Lookup(k)
}

// KeyOf returns the NodeKey that was assigned id, reversing Resolve.
// Complexity: O(1).
func (g *Graph) KeyOf(id int) (NodeKey, bool) {
	return g.ids.KeyOf(id)
}

// AddEdge records an edge from u to v with the given weight, resolving
// both keys through the owned IdentityMap. On an undirected graph the
// mirror arc v→u is recorded with the same weight. Parallel edges are
// permitted: calling AddEdge twice with identical arguments appends two
// arcs.
//
// The capacity check is all-or-nothing: if admitting the unseen
// endpoint(s) would exceed the declared capacity, AddEdge fails with
// ErrCapacityExceeded before any id is allocated or any arc stored.
// Returns ErrInvalidNodeKey when either key is the zero value.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v NodeKey, weight int64) error {
	if !u.Valid() || !v.Valid() {
		return ErrInvalidNodeKey
	}
	// Pre-count unseen endpoints so a rejected edge leaves no trace.
	unseen := 0
	if _, ok := g.ids.Lookup(u); !ok {
		unseen++
	}
	if _, ok := g.ids.Lookup(v); !ok && u != v {
		unseen++
	}
	if g.ids.Len()+unseen > g.capacity {
		return fmt.Errorf("%w: edge %s→%s needs %d new id(s), %d of %d in use",
			ErrCapacityExceeded, u, v, unseen, g.ids.Len(), g.capacity)
	}

	uid, err := g.ids.Resolve(u)
	if err != nil {
		return err
	}
	vid, err := g.ids.Resolve(v)
	if err != nil {
		return err
	}

	g.adj[uid] = append(g.adj[uid], Arc{To: vid, Weight: weight})
	if !g.directed {
		g.adj[vid] = append(g.adj[vid], Arc{To: uid, Weight: weight})
	}
	g.edgeCount++

	return nil
}

// Arcs returns the adjacency sequence of id in edge-insertion order.
// The returned slice is the live backing storage: callers must treat it
// as read-only. Returns ErrIDOutOfRange when id is outside [0, capacity).
// Complexity: O(1).
func (g *Graph) Arcs(id int) ([]Arc, error) {
	if id < 0 || id >= g.capacity {
		return nil, fmt.Errorf("%w: id %d, capacity %d", ErrIDOutOfRange, id, g.capacity)
	}

	return g.adj[id], nil
}

// HasArc reports whether at least one arc u→v exists. Neither key is
// allocated by the check.
// Complexity: O(d) where d is the out-degree of u.
func (g *Graph) HasArc(u, v NodeKey) bool {
	uid, ok := g.ids.Lookup(u)
	if !ok {
		return false
	}
	vid, ok := g.ids.Lookup(v)
	if !ok {
		return false
	}
	for _, a := range g.adj[uid] {
		if a.To == vid {
			return true
		}
	}

	return false
}

// NodeCount returns the number of distinct vertices resolved so far. O(1).
func (g *Graph) NodeCount() int {
	return g.ids.Len()
}

// Capacity returns the declared upper bound on distinct vertices. O(1).
func (g *Graph) Capacity() int {
	return g.capacity
}

// Directed reports whether edges are one-way. O(1).
func (g *Graph) Directed() bool {
	return g.directed
}

// EdgeCount returns the number of AddEdge calls that succeeded; an
// undirected edge counts once despite its mirror arc. O(1).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}
