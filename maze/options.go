package maze

import (
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/labyrinth/kruskal"
	"github.com/katalvlaran/labyrinth/solver"
)

// Default dimensions of a maze when none are configured.
const (
	DefaultRows = 18
	DefaultCols = 32
)

// Observer receives engine events. Implementations must be cheap; they run
// inline with Step and Solve.
type Observer interface {
	// StepTaken is called for every edge the builder considers.
	StepTaken(accepted bool)
	// Completed is called once, when the spanning tree is finished.
	Completed(rows, cols, steps int)
	// Solved is called after every successful solve.
	Solved(alg solver.Algorithm, visited, pathLen int)
}

type nopObserver struct{}

func (nopObserver) StepTaken(bool)                     {}
func (nopObserver) Completed(int, int, int)            {}
func (nopObserver) Solved(solver.Algorithm, int, int) {}

// Option configures an Engine.
type Option func(*options)

type options struct {
	autoSolve bool
	logger    *slog.Logger
	observer  Observer
	build     []kruskal.Option
}

func defaultOptions() options {
	return options{
		autoSolve: true,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer:  nopObserver{},
	}
}

// WithAutoSolve controls whether New runs the builder to completion
// (true, the default) or leaves it for the caller to Step.
func WithAutoSolve(on bool) Option {
	return func(o *options) { o.autoSolve = on }
}

// WithSeed makes the wall order reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.build = append(o.build, kruskal.WithSeed(seed)) }
}

// WithRand shuffles walls with r.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.build = append(o.build, kruskal.WithRand(r)) }
}

// WithPermutation fixes the wall order; see kruskal.WithPermutation.
func WithPermutation(perm []int) Option {
	return func(o *options) { o.build = append(o.build, kruskal.WithPermutation(perm)) }
}

// WithLogger routes engine logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver registers an event observer such as a metrics collector.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}
