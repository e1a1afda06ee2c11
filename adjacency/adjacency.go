// Package adjacency holds the maze's passage graph: for every cell, the ordered
// list of neighbors it has been linked to by the spanning-tree builder.
//
// Neighbor order is insertion order, i.e. the order in which walls were
// accepted. Solvers depend on that order, so it is part of the contract.
//
// Storage is an arena of small neighbor slices indexed by the row-major id of a
// grid.Topology.
package adjacency

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors for adjacency operations.
var (
	// ErrUnknownCell indicates a cell outside the graph's topology.
	ErrUnknownCell = errors.New("adjacency: cell outside topology")
	// ErrNotNeighbors indicates an attempt to link cells that are not 4-neighbors.
	ErrNotNeighbors = errors.New("adjacency: cells are not orthogonal neighbors")
)

// Graph maps each cell to its linked neighbors. It is populated incrementally
// and treated as frozen once the builder reports completion.
type Graph struct {
	topo  *grid.Topology
	adj   [][]grid.Cell
	edges int
}

// New returns an empty graph with one (empty) neighbor list per cell.
func New(t *grid.Topology) *Graph {
	return &Graph{
		topo: t,
		adj:  make([][]grid.Cell, t.CellCount()),
	}
}

// Topology returns the lattice the graph is defined over.
func (g *Graph) Topology() *grid.Topology { return g.topo }

// Link appends b to a's neighbors and a to b's neighbors.
// Returns ErrUnknownCell or ErrNotNeighbors for malformed input.
func (g *Graph) Link(a, b grid.Cell) error {
	if !g.topo.Contains(a) || !g.topo.Contains(b) {
		return fmt.Errorf("%w: %v–%v", ErrUnknownCell, a, b)
	}
	if !g.topo.Orthogonal(a, b) {
		return fmt.Errorf("%w: %v–%v", ErrNotNeighbors, a, b)
	}
	ia, ib := g.topo.Index(a), g.topo.Index(b)
	g.adj[ia] = append(g.adj[ia], b)
	g.adj[ib] = append(g.adj[ib], a)
	g.edges++
	return nil
}

// Neighbors returns a copy of c's neighbor list in insertion order.
// Cells outside the topology have no neighbors.
func (g *Graph) Neighbors(c grid.Cell) []grid.Cell {
	if !g.topo.Contains(c) {
		return nil
	}
	src := g.adj[g.topo.Index(c)]
	out := make([]grid.Cell, len(src))
	copy(out, src)
	return out
}

// Degree returns the number of neighbors of c.
func (g *Graph) Degree(c grid.Cell) int {
	if !g.topo.Contains(c) {
		return 0
	}
	return len(g.adj[g.topo.Index(c)])
}

// Linked reports whether a and b share a passage.
func (g *Graph) Linked(a, b grid.Cell) bool {
	if !g.topo.Contains(a) {
		return false
	}
	for _, n := range g.adj[g.topo.Index(a)] {
		if n == b {
			return true
		}
	}
	return false
}

// EdgeCount returns the number of undirected links.
func (g *Graph) EdgeCount() int { return g.edges }

// Cells lists every cell of the graph in row-major order.
func (g *Graph) Cells() []grid.Cell { return g.topo.Cells() }
