// Package grid defines core types and sentinel errors
// for the grid subpackage of github.com/katalvlaran/labyrinth.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates a grid with no rows or no columns.
	ErrInvalidSize = errors.New("grid: rows and cols must both be at least 1")
)

// Orientation selects which neighbor an Edge separates its cell from.
type Orientation int

const (
	// Horizontal walls lie below their cell: (c, r) | (c, r+1).
	Horizontal Orientation = iota
	// Vertical walls lie to the right of their cell: (c, r) | (c+1, r).
	Vertical
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Cell is a grid position. Col ranges over [0, cols), Row over [0, rows).
type Cell struct {
	Col, Row int
}

// String renders the cell as "(col,row)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Edge is a candidate wall anchored at Cell. Connected turns true once the wall
// has been removed by the spanning-tree builder and never changes back.
type Edge struct {
	Cell        Cell
	Orientation Orientation
	Connected   bool
}

// Primary returns the cell the edge is anchored at (above or left of the wall).
func (e Edge) Primary() Cell { return e.Cell }

// Other returns the neighbor on the far side of the wall.
func (e Edge) Other() Cell {
	if e.Orientation == Vertical {
		return Cell{Col: e.Cell.Col + 1, Row: e.Cell.Row}
	}
	return Cell{Col: e.Cell.Col, Row: e.Cell.Row + 1}
}

// Connect marks the wall as removed.
func (e *Edge) Connect() { e.Connected = true }

// String renders the edge as "(c,r)|(c',r')".
func (e Edge) String() string {
	return e.Primary().String() + "|" + e.Other().String()
}

// Topology is an immutable R×C lattice. Construct it with NewTopology.
type Topology struct {
	rows, cols int
}
