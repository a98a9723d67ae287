package core

import "fmt"

// NodeKey is the caller-facing identifier of a vertex: a single integer
// or a tuple of two or three integers. NodeKey is a comparable value
// type; two keys are equal only when both arity and every coordinate
// match, so Int(5), Pair(5, 0) and Triple(5, 0, 0) are three distinct
// vertices.
//
// The zero value of NodeKey is invalid and is rejected with
// ErrInvalidNodeKey wherever a key is resolved.
type NodeKey struct {
	arity   uint8
	x, y, z int64
}

// Int returns the NodeKey for a single integer.
func Int(x int64) NodeKey {
	return NodeKey{arity: 1, x: x}
}

// Pair returns the NodeKey for a 2-tuple (x, y).
func Pair(x, y int64) NodeKey {
	return NodeKey{arity: 2, x: x, y: y}
}

// Triple returns the NodeKey for a 3-tuple (x, y, z).
func Triple(x, y, z int64) NodeKey {
	return NodeKey{arity: 3, x: x, y: y, z: z}
}

// Valid reports whether k was built by one of the key constructors.
// Complexity: O(1).
func (k NodeKey) Valid() bool {
	return k.arity >= 1 && k.arity <= 3
}

// Arity returns 1, 2 or 3 for valid keys and 0 for the zero value.
func (k NodeKey) Arity() int {
	return int(k.arity)
}

// Coords returns the key's coordinates; coordinates beyond the key's
// arity are zero.
func (k NodeKey) Coords() (x, y, z int64) {
	return k.x, k.y, k.z
}

// String renders the key in caller notation: "5", "(5,10)", "(5,10,3)".
func (k NodeKey) String() string {
	switch k.arity {
	case 1:
		return fmt.Sprintf("%d", k.x)
	case 2:
		return fmt.Sprintf("(%d,%d)", k.x, k.y)
	case 3:
		return fmt.Sprintf("(%d,%d,%d)", k.x, k.y, k.z)
	default:
		return "<invalid>"
	}
}
