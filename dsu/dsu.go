package dsu

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// ErrUnknownCell indicates a cell that was never registered in the forest.
var ErrUnknownCell = errors.New("dsu: cell not registered")

// Forest is a union-find structure over the cells of one topology.
// It is not safe for concurrent use; a maze session owns it exclusively.
type Forest struct {
	topo   *grid.Topology
	parent []int
}

// New registers every cell of t as its own representative.
func New(t *grid.Topology) *Forest {
	n := t.CellCount()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &Forest{topo: t, parent: parent}
}

// Len returns the number of registered cells.
func (f *Forest) Len() int { return len(f.parent) }

// Find returns the representative of c, compressing the path it walked.
// Panics with an error wrapping ErrUnknownCell if c is outside the topology.
func (f *Forest) Find(c grid.Cell) grid.Cell {
	rep, err := f.Lookup(c)
	if err != nil {
		panic(err)
	}
	return rep
}

// Lookup is Find without the panic.
func (f *Forest) Lookup(c grid.Cell) (grid.Cell, error) {
	if !f.topo.Contains(c) {
		return grid.Cell{}, fmt.Errorf("%w: %v", ErrUnknownCell, c)
	}
	return f.topo.CellAt(f.root(f.topo.Index(c))), nil
}

// root finds the root of i in two passes: walk up, then point every
// visited slot straight at the root.
func (f *Forest) root(i int) int {
	r := i
	for f.parent[r] != r {
		r = f.parent[r]
	}
	for f.parent[i] != r {
		next := f.parent[i]
		f.parent[i] = r
		i = next
	}
	return r
}

// Union links the component of a under the component of b.
// Calling it on two cells that already share a root is a no-op.
func (f *Forest) Union(a, b grid.Cell) {
	repA := f.topo.Index(f.Find(a))
	repB := f.topo.Index(f.Find(b))
	f.parent[repA] = repB
}

// Connected reports whether a and b share a representative.
func (f *Forest) Connected(a, b grid.Cell) bool {
	return f.Find(a) == f.Find(b)
}

// Components counts the distinct roots.
func (f *Forest) Components() int {
	n := 0
	for i, p := range f.parent {
		if i == p {
			n++
		}
	}
	return n
}
