package core

// IdentityMap assigns a stable, dense, zero-based integer id to each
// distinct NodeKey. The first resolution of a key allocates the next
// unused id; every later resolution of an equal key returns the same
// id. Ids are never reused, reassigned, or removed.
//
// IdentityMap enforces no capacity of its own; Graph layers the
// capacity contract on top.
type IdentityMap struct {
	ids  map[NodeKey]int // key → dense id
	keys []NodeKey       // keys[id] = key, allocation order
}

// NewIdentityMap creates an empty IdentityMap.
// Complexity: O(1).
func NewIdentityMap() *IdentityMap {
	return &IdentityMap{ids: make(map[NodeKey]int)}
}

// Resolve returns the id for k, allocating the next sequential id on
// first sight. Returns ErrInvalidNodeKey for the zero-value key.
// Complexity: O(1) amortized.
func (m *IdentityMap) Resolve(k NodeKey) (int, error) {
	if !k.Valid() {
		return 0, ErrInvalidNodeKey
	}
	if id, ok := m.ids[k]; ok {
		return id, nil
	}
	id := len(m.keys)
	m.ids[k] = id
	m.keys = append(m.keys, k)

	return id, nil
}

// Lookup returns the id previously assigned to k without allocating.
// The second result is false when k is invalid or has never been seen.
// Complexity: O(1).
func (m *IdentityMap) Lookup(k NodeKey) (int, bool) {
	if !k.Valid() {
		return 0, false
	}
	id, ok := m.ids[k]

	return id, ok
}

// KeyOf returns the NodeKey that was assigned id, reversing Resolve.
// The second result is false when id has not been allocated.
// Complexity: O(1).
func (m *IdentityMap) KeyOf(id int) (NodeKey, bool) {
	if id < 0 || id >= len(m.keys) {
		return NodeKey{}, false
	}

	return m.keys[id], true
}

// Len returns the number of ids allocated so far.
// Complexity: O(1).
func (m *IdentityMap) Len() int {
	return len(m.keys)
}
