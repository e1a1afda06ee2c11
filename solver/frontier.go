package solver

import "github.com/katalvlaran/labyrinth/grid"

// frontier is the pending-cell collection; its discipline is the only
// difference between BFS and DFS.
type frontier interface {
	push(c grid.Cell)
	pop() grid.Cell
	len() int
}

// queue is a FIFO frontier backed by a slice with a moving head.
type queue struct {
	items []grid.Cell
	head  int
}

func (q *queue) push(c grid.Cell) { q.items = append(q.items, c) }

func (q *queue) pop() grid.Cell {
	c := q.items[q.head]
	q.head++
	return c
}

func (q *queue) len() int { return len(q.items) - q.head }

// stack is a LIFO frontier.
type stack struct {
	items []grid.Cell
}

func (s *stack) push(c grid.Cell) { s.items = append(s.items, c) }

func (s *stack) pop() grid.Cell {
	n := len(s.items) - 1
	c := s.items[n]
	s.items = s.items[:n]
	return c
}

func (s *stack) len() int { return len(s.items) }

func newFrontier(a Algorithm, capacity int) frontier {
	if a == DFS {
		return &stack{items: make([]grid.Cell, 0, capacity)}
	}
	return &queue{items: make([]grid.Cell, 0, capacity)}
}
