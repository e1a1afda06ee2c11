// Package grid provides the cell lattice shared by every maze component:
//
//   - Row-major cell indexing for arena-backed structures
//   - Enumeration of all cells and all candidate walls
//   - Start/goal corners used by the solvers
package grid

import "fmt"

// NewTopology validates the dimensions and returns the lattice.
// Returns ErrInvalidSize if rows < 1 or cols < 1.
func NewTopology(rows, cols int) (*Topology, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidSize, rows, cols)
	}
	return &Topology{rows: rows, cols: cols}, nil
}

// Rows returns the number of rows.
func (t *Topology) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Topology) Cols() int { return t.cols }

// CellCount returns rows×cols.
func (t *Topology) CellCount() int { return t.rows * t.cols }

// EdgeCount returns the number of candidate walls: R×(C−1) + C×(R−1).
func (t *Topology) EdgeCount() int {
	return t.rows*(t.cols-1) + t.cols*(t.rows-1)
}

// Start is the top-left corner (0,0).
func (t *Topology) Start() Cell { return Cell{} }

// Goal is the bottom-right corner (cols−1, rows−1).
func (t *Topology) Goal() Cell { return Cell{Col: t.cols - 1, Row: t.rows - 1} }

// Contains reports whether c lies inside the lattice.
func (t *Topology) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < t.cols && c.Row >= 0 && c.Row < t.rows
}

// Index converts c to its row-major index. The result is only meaningful
// when Contains(c) holds.
func (t *Topology) Index(c Cell) int {
	return c.Row*t.cols + c.Col
}

// CellAt is the inverse of Index.
func (t *Topology) CellAt(i int) Cell {
	return Cell{Col: i % t.cols, Row: i / t.cols}
}

// Cells lists every cell in row-major order.
func (t *Topology) Cells() []Cell {
	cells := make([]Cell, 0, t.CellCount())
	for r := 0; r < t.rows; r++ {
		for c := 0; c < t.cols; c++ {
			cells = append(cells, Cell{Col: c, Row: r})
		}
	}
	return cells
}

// CandidateEdges lists every interior wall, none connected: first the
// horizontal walls of rows 0..rows−2, then the vertical walls of cols 0..cols−2,
// each group scanned row by row.
func (t *Topology) CandidateEdges() []Edge {
	edges := make([]Edge, 0, t.EdgeCount())
	for r := 0; r < t.rows-1; r++ {
		for c := 0; c < t.cols; c++ {
			edges = append(edges, Edge{Cell: Cell{Col: c, Row: r}, Orientation: Horizontal})
		}
	}
	for r := 0; r < t.rows; r++ {
		for c := 0; c < t.cols-1; c++ {
			edges = append(edges, Edge{Cell: Cell{Col: c, Row: r}, Orientation: Vertical})
		}
	}
	return edges
}

// Orthogonal reports whether a and b are distinct 4-neighbors inside the lattice.
func (t *Topology) Orthogonal(a, b Cell) bool {
	if !t.Contains(a) || !t.Contains(b) {
		return false
	}
	return abs(a.Col-b.Col)+abs(a.Row-b.Row) == 1
}

// Manhattan returns |Δcol| + |Δrow|.
func Manhattan(a, b Cell) int {
	return abs(a.Col-b.Col) + abs(a.Row-b.Row)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
