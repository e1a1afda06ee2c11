package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/adjacency"
	"github.com/katalvlaran/labyrinth/grid"
)

func topology(t *testing.T, rows, cols int) *grid.Topology {
	t.Helper()
	topo, err := grid.NewTopology(rows, cols)
	require.NoError(t, err)
	return topo
}

// TestGraph_LinkOrder verifies symmetric links and insertion-ordered neighbors.
func TestGraph_LinkOrder(t *testing.T) {
	g := adjacency.New(topology(t, 2, 2))
	c00, c10, c01, c11 := grid.Cell{Col: 0, Row: 0}, grid.Cell{Col: 1, Row: 0}, grid.Cell{Col: 0, Row: 1}, grid.Cell{Col: 1, Row: 1}

	require.NoError(t, g.Link(c00, c01))
	require.NoError(t, g.Link(c10, c00))
	require.NoError(t, g.Link(c11, c10))

	assert.Equal(t, []grid.Cell{c01, c10}, g.Neighbors(c00))
	assert.Equal(t, []grid.Cell{c00, c11}, g.Neighbors(c10))
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 2, g.Degree(c10))
	assert.True(t, g.Linked(c01, c00))
	assert.False(t, g.Linked(c01, c11))
	assert.True(t, g.IsTree())
}

// TestGraph_NeighborsIsCopy ensures callers cannot mutate the graph through Neighbors.
func TestGraph_NeighborsIsCopy(t *testing.T) {
	g := adjacency.New(topology(t, 1, 2))
	require.NoError(t, g.Link(grid.Cell{Col: 0, Row: 0}, grid.Cell{Col: 1, Row: 0}))

	ns := g.Neighbors(grid.Cell{Col: 0, Row: 0})
	ns[0] = grid.Cell{Col: 9, Row: 9}
	assert.Equal(t, []grid.Cell{{Col: 1, Row: 0}}, g.Neighbors(grid.Cell{Col: 0, Row: 0}))
}

// TestGraph_LinkErrors covers malformed links.
func TestGraph_LinkErrors(t *testing.T) {
	g := adjacency.New(topology(t, 3, 3))
	assert.ErrorIs(t, g.Link(grid.Cell{Col: 0, Row: 0}, grid.Cell{Col: 3, Row: 0}), adjacency.ErrUnknownCell)
	assert.ErrorIs(t, g.Link(grid.Cell{Col: 0, Row: 0}, grid.Cell{Col: 1, Row: 1}), adjacency.ErrNotNeighbors)
	assert.ErrorIs(t, g.Link(grid.Cell{Col: 1, Row: 1}, grid.Cell{Col: 1, Row: 1}), adjacency.ErrNotNeighbors)
	assert.Zero(t, g.EdgeCount())
	assert.Nil(t, g.Neighbors(grid.Cell{Col: -1, Row: 0}))
}

// TestGraph_Components checks partitioning before and after the tree is complete.
//
//	(0,0)-(1,0)   (2,0)
//	                |
//	(0,1)   (1,1)-(2,1)
func TestGraph_Components(t *testing.T) {
	g := adjacency.New(topology(t, 2, 3))
	require.NoError(t, g.Link(grid.Cell{Col: 0, Row: 0}, grid.Cell{Col: 1, Row: 0}))
	require.NoError(t, g.Link(grid.Cell{Col: 2, Row: 0}, grid.Cell{Col: 2, Row: 1}))
	require.NoError(t, g.Link(grid.Cell{Col: 1, Row: 1}, grid.Cell{Col: 2, Row: 1}))

	comps := g.Components()
	require.Len(t, comps, 3)
	assert.Equal(t, []grid.Cell{{Col: 0, Row: 0}, {Col: 1, Row: 0}}, comps[0])
	assert.ElementsMatch(t, []grid.Cell{{Col: 2, Row: 0}, {Col: 2, Row: 1}, {Col: 1, Row: 1}}, comps[1])
	assert.Equal(t, []grid.Cell{{Col: 0, Row: 1}}, comps[2])
	assert.False(t, g.IsTree())

	require.NoError(t, g.Link(grid.Cell{Col: 0, Row: 0}, grid.Cell{Col: 0, Row: 1}))
	assert.False(t, g.IsTree(), "still two components")
	require.NoError(t, g.Link(grid.Cell{Col: 1, Row: 0}, grid.Cell{Col: 1, Row: 1}))
	assert.True(t, g.IsTree())
}
