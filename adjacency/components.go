package adjacency

import "github.com/katalvlaran/labyrinth/grid"

// Components partitions the cells into connected regions.
// Each component lists cells in BFS discovery order starting from its
// lowest row-major cell; components are ordered by that starting cell.
//
// Time:   O(V + E).
// Memory: O(V) for seen flags and output.
func (g *Graph) Components() [][]grid.Cell {
	total := g.topo.CellCount()
	seen := make([]bool, total)
	var comps [][]grid.Cell

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []grid.Cell

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, g.topo.CellAt(u))
			for _, n := range g.adj[u] {
				vi := g.topo.Index(n)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// IsTree reports whether the graph is a spanning tree of its topology:
// exactly V−1 links and a single connected component.
func (g *Graph) IsTree() bool {
	if g.edges != g.topo.CellCount()-1 {
		return false
	}
	return len(g.Components()) == 1
}
