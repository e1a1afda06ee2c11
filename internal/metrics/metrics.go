// Package metrics exposes maze generation and solving as Prometheus metrics.
// A Collector implements maze.Observer and owns its own registry.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/solver"
)

const namespace = "mazegen"

// Collector counts engine events.
type Collector struct {
	registry *prometheus.Registry

	steps     *prometheus.CounterVec   // outcome: accepted|rejected
	mazes     prometheus.Counter       // completed spanning trees
	mazeSteps prometheus.Histogram     // edges considered per maze
	lastCells prometheus.Gauge         // cells in the most recent maze
	solves    *prometheus.CounterVec   // algorithm
	pathLen   *prometheus.HistogramVec // algorithm; cells on the path
	visited   *prometheus.HistogramVec // algorithm; cells popped
}

var _ maze.Observer = (*Collector)(nil)

// New builds a Collector on a fresh registry. Go runtime and process
// collectors are registered when runtime is true.
func New(runtime bool) *Collector {
	reg := prometheus.NewRegistry()
	if runtime {
		reg.MustRegister(collectors.NewGoCollector())
		reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	sizeBuckets := prometheus.ExponentialBuckets(4, 2, 12)
	c := &Collector{
		registry: reg,
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Candidate walls considered by the builder.",
		}, []string{"outcome"}),
		mazes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mazes_completed_total",
			Help:      "Spanning trees completed.",
		}),
		mazeSteps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "maze_steps",
			Help:      "Walls considered before a maze completed.",
			Buckets:   sizeBuckets,
		}),
		lastCells: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_maze_cells",
			Help:      "Cell count of the most recently completed maze.",
		}),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Completed solves by algorithm.",
		}, []string{"algorithm"}),
		pathLen: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_cells",
			Help:      "Cells on the start-goal path.",
			Buckets:   sizeBuckets,
		}, []string{"algorithm"}),
		visited: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "visited_cells",
			Help:      "Cells visited before reaching the goal.",
			Buckets:   sizeBuckets,
		}, []string{"algorithm"}),
	}
	reg.MustRegister(c.steps, c.mazes, c.mazeSteps, c.lastCells, c.solves, c.pathLen, c.visited)
	return c
}

// StepTaken implements maze.Observer.
func (c *Collector) StepTaken(accepted bool) {
	if accepted {
		c.steps.WithLabelValues("accepted").Inc()
		return
	}
	c.steps.WithLabelValues("rejected").Inc()
}

// Completed implements maze.Observer.
func (c *Collector) Completed(rows, cols, steps int) {
	c.mazes.Inc()
	c.mazeSteps.Observe(float64(steps))
	c.lastCells.Set(float64(rows * cols))
}

// Solved implements maze.Observer.
func (c *Collector) Solved(alg solver.Algorithm, visited, pathLen int) {
	label := alg.String()
	c.solves.WithLabelValues(label).Inc()
	c.visited.WithLabelValues(label).Observe(float64(visited))
	c.pathLen.WithLabelValues(label).Observe(float64(pathLen))
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr in the background. The returned function
// shuts the server down.
func (c *Collector) Serve(addr string, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", slog.Any("error", err))
		}
	}()
	logger.Info("metrics server listening", slog.String("addr", addr))
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("failed to shutdown metrics server", slog.Any("error", err))
		}
	}
}
