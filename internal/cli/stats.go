package cli

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/internal/metrics"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/solver"
)

func newStatsCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Generate many mazes, solve each with BFS and DFS, and summarize",
		Long: "stats generates --count mazes of the configured size, solves every maze " +
			"with both algorithms and prints averages. With --metrics-addr the " +
			"Prometheus metrics stay served until interrupted.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}
			logger := a.logger(cmd)
			addr := a.cfg.Metrics.Addr
			collector := metrics.New(addr != "")

			seed := a.cfg.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))

			for i := 0; i < count; i++ {
				e, err := maze.New(a.cfg.Rows, a.cfg.Cols,
					maze.WithRand(rng), maze.WithObserver(collector), maze.WithLogger(logger))
				if err != nil {
					return err
				}
				for _, alg := range []solver.Algorithm{solver.BFS, solver.DFS} {
					if _, err := e.Solve(alg); err != nil {
						return err
					}
				}
			}

			summary, err := collector.Summarize()
			if err != nil {
				return err
			}
			writeSummary(cmd, a.cfg.Rows, a.cfg.Cols, seed, summary)

			if addr == "" {
				return nil
			}
			stop := collector.Serve(addr, logger)
			defer stop()
			fmt.Fprintf(cmd.ErrOrStderr(), "serving metrics on %s/metrics, interrupt to stop\n", addr)
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()
			<-ctx.Done()
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 100, "number of mazes to generate")
	cmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	return cmd
}

func writeSummary(cmd *cobra.Command, rows, cols int, seed int64, s metrics.Summary) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "mazes\t%d\n", s.Mazes)
	fmt.Fprintf(w, "size\t%d×%d\n", rows, cols)
	fmt.Fprintf(w, "seed\t%d\n", seed)
	fmt.Fprintf(w, "walls removed\t%d\n", s.Accepted)
	fmt.Fprintf(w, "walls kept\t%d\n", s.Rejected)
	fmt.Fprintf(w, "steps per maze\t%.1f\n", s.MeanSteps)

	names := make([]string, 0, len(s.Algorithms))
	for name := range s.Algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		st := s.Algorithms[name]
		fmt.Fprintf(w, "%s\tsolves %d\tpath %.1f\tvisited %.1f\n", name, st.Solves, st.MeanPath, st.MeanVisited)
	}
	_ = w.Flush()
}
