// Package grid treats a 2D grid of integer cell values as a graph over
// Pair-keyed vertices. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Conversion to an undirected, unit-weight *core.Graph where cell
//     (x, y) becomes the vertex core.Pair(x, y)
//   - Breadth-first distance fields: hop counts from one cell to every
//     cell of the grid
//
// The grid is immutable once built; input values are deep-copied.
package grid
