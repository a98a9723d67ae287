package grid

import (
	"fmt"

	"github.com/arvessen/hoplite/bfs"
	"github.com/arvessen/hoplite/core"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]int, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Grid{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// Key returns the NodeKey of cell (x,y): core.Pair(x, y).
func (g *Grid) Key(x, y int) core.NodeKey {
	return core.Pair(int64(x), int64(y))
}

// ToGraph converts the Grid into an undirected *core.Graph with
// capacity W×H. Each neighbor pair according to g.Conn is connected by
// one unit-weight edge; cell (x,y) becomes the vertex core.Pair(x, y).
// Complexity: O(W×H×d) time, where d is the connectivity degree.
func (g *Grid) ToGraph() (*core.Graph, error) {
	cg, err := core.NewGraph(g.Width*g.Height, core.WithDirected(false))
	if err != nil {
		return nil, err
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			for _, d := range g.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !g.InBounds(nx, ny) {
					continue
				}
				// Insert each undirected edge once, from its lexically
				// smaller endpoint.
				if ny < y || (ny == y && nx < x) {
					continue
				}
				if err = cg.AddEdge(g.Key(x, y), g.Key(nx, ny), 1); err != nil {
					return nil, err
				}
			}
		}
	}

	return cg, nil
}

// DistanceField runs a breadth-first traversal from cell (fromX, fromY)
// and returns a Height×Width matrix of hop counts; unreachable cells
// (none exist on a connected lattice, but single-cell grids have no
// edges) hold -1. Returns ErrCellOutOfRange when the source lies
// outside the grid.
// Complexity: O(W×H) time and memory.
func (g *Grid) DistanceField(fromX, fromY int) ([][]int, error) {
	if !g.InBounds(fromX, fromY) {
		return nil, fmt.Errorf("%w: (%d,%d) in %d×%d", ErrCellOutOfRange, fromX, fromY, g.Width, g.Height)
	}
	cg, err := g.ToGraph()
	if err != nil {
		return nil, err
	}
	tr, err := bfs.New(cg)
	if err != nil {
		return nil, err
	}
	if err = tr.Run(g.Key(fromX, fromY)); err != nil {
		return nil, err
	}

	field := make([][]int, g.Height)
	for y := 0; y < g.Height; y++ {
		field[y] = make([]int, g.Width)
		for x := 0; x < g.Width; x++ {
			field[y][x], err = tr.MinDist(g.Key(x, y))
			if err != nil {
				return nil, err
			}
		}
	}

	return field, nil
}
