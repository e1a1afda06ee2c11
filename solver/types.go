// Package solver provides options, results and sentinel errors for the
// maze path solvers.
package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors for solver execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("solver: graph is nil")

	// ErrUnknownCell is returned when the start or goal lies outside the grid.
	ErrUnknownCell = errors.New("solver: cell outside grid")

	// ErrUnknownAlgorithm is returned for an Algorithm other than BFS or DFS.
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")

	// ErrNoPath is returned when the frontier empties before the goal is reached.
	// On a completed maze this cannot happen; seeing it means the passage graph
	// is not a spanning tree.
	ErrNoPath = errors.New("solver: frontier exhausted before reaching goal")

	// ErrBrokenChain is returned by Reconstruct when the parent links do not lead
	// from the goal back to the start.
	ErrBrokenChain = errors.New("solver: parent chain does not reach start")
)

// Algorithm selects the frontier discipline.
type Algorithm int

const (
	// BFS explores first-in-first-out and yields a shortest path.
	BFS Algorithm = iota
	// DFS explores last-in-first-out.
	DFS
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm accepts "bfs" or "dfs", case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Option configures Solve.
type Option func(*Options)

// Options holds endpoints and hooks for a solve.
// Zero-valued Start/Goal pointers mean the maze corners.
type Options struct {
	Start *grid.Cell
	Goal  *grid.Cell

	// OnVisit is called when a cell is first popped, with its visitation index.
	OnVisit func(c grid.Cell, index int)
}

// DefaultOptions returns Options for a corner-to-corner solve with no hooks.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(grid.Cell, int) {},
	}
}

// WithStart overrides the start cell (default (0,0)).
func WithStart(c grid.Cell) Option {
	return func(o *Options) { o.Start = &c }
}

// WithGoal overrides the goal cell (default (cols−1, rows−1)).
func WithGoal(c grid.Cell) Option {
	return func(o *Options) { o.Goal = &c }
}

// WithOnVisit registers a visitation callback.
func WithOnVisit(fn func(c grid.Cell, index int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result is an immutable snapshot of one solve.
//   - Order:  cells in the order they were first popped (visitation order).
//   - Parent: cell → the cell that first pushed it.
//   - Path:   start … goal, inclusive.
type Result struct {
	Algorithm Algorithm
	Start     grid.Cell
	Goal      grid.Cell
	Order     []grid.Cell
	Parent    map[grid.Cell]grid.Cell
	Path      []grid.Cell
}

// VisitIndex returns the 0-based visitation index of c.
func (r *Result) VisitIndex(c grid.Cell) (int, bool) {
	for i, v := range r.Order {
		if v == c {
			return i, true
		}
	}
	return 0, false
}

// Reconstruct walks parent links back from goal to start and returns the path
// in start → goal order, inclusive of both endpoints.
// Returns ErrBrokenChain if a link is missing or the chain loops.
func Reconstruct(parent map[grid.Cell]grid.Cell, start, goal grid.Cell) ([]grid.Cell, error) {
	path := []grid.Cell{goal}
	for cur := goal; cur != start; {
		prev, ok := parent[cur]
		if !ok || len(path) > len(parent)+1 {
			return nil, fmt.Errorf("%w: stuck at %v", ErrBrokenChain, cur)
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
