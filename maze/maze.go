/*
Package maze is the entry point for generating and solving perfect grid mazes.

An Engine owns one maze session: the grid topology, the union-find forest, the
shuffled wall ring and the passage graph. A new maze is a new Engine; engines are
never reset in place.

	e, _ := maze.New(9, 16, maze.WithAutoSolve(false))
	for !e.Step() {
		// draw one frame
	}
	sol, _ := e.Solve(solver.BFS)

Renderers consume NeighborsOf, Walls, Open and the Solution ranks; they own
geometry, colours, key handling and the reveal clock (animation.Reveal).
*/
package maze

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/labyrinth/animation"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/kruskal"
	"github.com/katalvlaran/labyrinth/solver"
)

// ErrNotSolved is returned by LastSolution before any Solve has succeeded.
var ErrNotSolved = errors.New("maze: not solved yet")

// Engine is a single maze session. It is not safe for concurrent use.
type Engine struct {
	id       uuid.UUID
	topo     *grid.Topology
	builder  *kruskal.Builder
	logger   *slog.Logger
	observer Observer
	reported bool
	last     *Solution
}

// Solution is the immutable outcome of one Solve.
type Solution struct {
	Algorithm solver.Algorithm
	Order     []grid.Cell
	Path      []grid.Cell
	Ranks     animation.Ranks
}

// Rank returns the animation rank of c (0 for unknown cells).
func (s *Solution) Rank(c grid.Cell) int { return s.Ranks[c] }

// New creates a rows×cols maze session.
// Returns an error wrapping grid.ErrInvalidSize for non-positive dimensions,
// or a kruskal option error.
func New(rows, cols int, opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	topo, err := grid.NewTopology(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}

	e := &Engine{
		id:       uuid.New(),
		topo:     topo,
		observer: o.observer,
	}
	e.logger = o.logger.With(slog.String("maze", e.id.String()))

	build := append(o.build,
		kruskal.WithOnAccept(func(grid.Edge) { e.observer.StepTaken(true) }),
		kruskal.WithOnReject(func(grid.Edge) { e.observer.StepTaken(false) }),
	)
	e.builder, err = kruskal.New(topo, build...)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	e.logger.Debug("maze created",
		slog.Int("rows", rows), slog.Int("cols", cols), slog.Int("walls", topo.EdgeCount()))

	if o.autoSolve {
		e.RunToCompletion()
	}
	return e, nil
}

// ID identifies the session in logs and metrics.
func (e *Engine) ID() uuid.UUID { return e.id }

// Rows returns the number of rows.
func (e *Engine) Rows() int { return e.topo.Rows() }

// Cols returns the number of columns.
func (e *Engine) Cols() int { return e.topo.Cols() }

// CellCount returns rows×cols.
func (e *Engine) CellCount() int { return e.topo.CellCount() }

// Topology exposes the lattice for renderers.
func (e *Engine) Topology() *grid.Topology { return e.topo }

// Step removes at most one wall. Returns whether the maze is now complete.
func (e *Engine) Step() bool {
	done := e.builder.Step()
	if done {
		e.reportCompleted()
	}
	return done
}

// IsComplete reports whether the spanning tree is finished.
func (e *Engine) IsComplete() bool { return e.builder.IsComplete() }

// RunToCompletion finishes generation synchronously.
func (e *Engine) RunToCompletion() {
	e.builder.RunToCompletion()
	e.reportCompleted()
}

func (e *Engine) reportCompleted() {
	if e.reported || !e.builder.IsComplete() {
		return
	}
	e.reported = true
	e.observer.Completed(e.Rows(), e.Cols(), e.builder.Steps())
	e.logger.Info("maze generated",
		slog.Int("rows", e.Rows()), slog.Int("cols", e.Cols()),
		slog.Int("steps", e.builder.Steps()), slog.Int("passages", e.builder.Accepted()))
}

// Accepted returns the number of walls removed so far.
func (e *Engine) Accepted() int { return e.builder.Accepted() }

// NeighborsOf returns the cells c has a passage to, in acceptance order.
func (e *Engine) NeighborsOf(c grid.Cell) []grid.Cell {
	return e.builder.Graph().Neighbors(c)
}

// Open reports whether a and b are joined by a passage.
func (e *Engine) Open(a, b grid.Cell) bool {
	return e.builder.Graph().Linked(a, b)
}

// Walls returns every interior wall still standing.
func (e *Engine) Walls() []grid.Edge {
	var walls []grid.Edge
	for _, edge := range e.builder.Edges() {
		if !edge.Connected {
			walls = append(walls, edge)
		}
	}
	return walls
}

// Solve finishes generation if needed, then searches (0,0) → (cols−1, rows−1)
// with alg and encodes the animation ranks. An error wrapping solver.ErrNoPath
// means the passage graph is corrupt.
func (e *Engine) Solve(alg solver.Algorithm) (*Solution, error) {
	if !e.IsComplete() {
		e.RunToCompletion()
	}
	res, err := solver.Solve(e.builder.Graph(), alg)
	if err != nil {
		e.logger.Error("solve failed", slog.String("algorithm", alg.String()), slog.Any("error", err))
		return nil, fmt.Errorf("maze: %w", err)
	}
	sol := &Solution{
		Algorithm: alg,
		Order:     res.Order,
		Path:      res.Path,
		Ranks:     animation.Encode(e.topo.Cells(), res.Order, res.Path),
	}
	e.last = sol
	e.observer.Solved(alg, len(res.Order), len(res.Path))
	e.logger.Debug("maze solved",
		slog.String("algorithm", alg.String()),
		slog.Int("visited", len(res.Order)), slog.Int("path", len(res.Path)))
	return sol, nil
}

// LastSolution returns the most recent Solve result or ErrNotSolved.
func (e *Engine) LastSolution() (*Solution, error) {
	if e.last == nil {
		return nil, ErrNotSolved
	}
	return e.last, nil
}
