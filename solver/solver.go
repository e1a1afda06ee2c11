// Package solver finds the path between two cells of a maze's passage graph
// with breadth-first or depth-first search, recording the visitation order
// and parent links needed for reconstruction and animation.
//
// Both variants run the same loop and differ only in the frontier:
//
//  1. Push start.
//  2. Pop a cell; skip it if already visited, else mark it and append it to Order.
//  3. Stop when the popped cell is the goal.
//  4. Push every unvisited neighbor, recording Parent[n] only if unset
//     (first writer wins).
//
// With first-writer-wins, BFS parents are shortest-path parents; DFS parents
// fix a different, equally valid, tree path.
package solver

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/adjacency"
	"github.com/katalvlaran/labyrinth/grid"
)

// walker encapsulates mutable search state.
type walker struct {
	graph    *adjacency.Graph
	topo     *grid.Topology
	opts     Options
	frontier frontier
	visited  []bool
	res      *Result
}

// Solve searches g from start to goal using alg.
// Returns ErrGraphNil, ErrUnknownAlgorithm or ErrUnknownCell for invalid input,
// and ErrNoPath if the goal is unreachable.
//
// Complexity: O(V + E) time, O(V) memory.
func Solve(g *adjacency.Graph, alg Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if alg != BFS && alg != DFS {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	topo := g.Topology()
	start, goal := topo.Start(), topo.Goal()
	if o.Start != nil {
		start = *o.Start
	}
	if o.Goal != nil {
		goal = *o.Goal
	}
	for _, c := range []grid.Cell{start, goal} {
		if !topo.Contains(c) {
			return nil, fmt.Errorf("%w: %v", ErrUnknownCell, c)
		}
	}

	n := topo.CellCount()
	w := &walker{
		graph:    g,
		topo:     topo,
		opts:     o,
		frontier: newFrontier(alg, n),
		visited:  make([]bool, n),
		res: &Result{
			Algorithm: alg,
			Start:     start,
			Goal:      goal,
			Order:     make([]grid.Cell, 0, n),
			Parent:    make(map[grid.Cell]grid.Cell, n),
		},
	}
	if err := w.loop(); err != nil {
		return nil, err
	}

	path, err := Reconstruct(w.res.Parent, start, goal)
	if err != nil {
		return nil, err
	}
	w.res.Path = path
	return w.res, nil
}

// loop processes the frontier until the goal is popped or nothing is left.
func (w *walker) loop() error {
	w.frontier.push(w.res.Start)
	for w.frontier.len() > 0 {
		next := w.frontier.pop()
		i := w.topo.Index(next)
		if w.visited[i] {
			continue
		}
		w.visit(next, i)
		if next == w.res.Goal {
			return nil
		}
		w.expand(next)
	}
	return fmt.Errorf("%w: %v → %v after %d cells", ErrNoPath, w.res.Start, w.res.Goal, len(w.res.Order))
}

// visit marks the cell and records it in Order.
func (w *walker) visit(c grid.Cell, i int) {
	w.visited[i] = true
	w.res.Order = append(w.res.Order, c)
	w.opts.OnVisit(c, len(w.res.Order)-1)
}

// expand pushes unvisited neighbors of c and records first-writer parents.
func (w *walker) expand(c grid.Cell) {
	for _, nbr := range w.graph.Neighbors(c) {
		if w.visited[w.topo.Index(nbr)] {
			continue
		}
		w.frontier.push(nbr)
		if _, ok := w.res.Parent[nbr]; !ok {
			w.res.Parent[nbr] = c
		}
	}
}
