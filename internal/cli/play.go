package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/internal/config"
	"github.com/katalvlaran/labyrinth/internal/logging"
	"github.com/katalvlaran/labyrinth/internal/metrics"
	"github.com/katalvlaran/labyrinth/internal/tui"
)

func newPlayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Generate and solve mazes interactively",
		Long: "play opens the terminal renderer. Keys: a animate a new maze, n new maze, " +
			"b breadth-first reveal, d depth-first reveal, c clear, q quit. " +
			"Edits to the config file apply live.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, level := logging.ForTUI(a.cfg.Logging())

			opts := []tui.Option{tui.WithLogger(logger)}
			if a.cfg.Metrics.Addr != "" {
				collector := metrics.New(true)
				stop := collector.Serve(a.cfg.Metrics.Addr, logger)
				defer stop()
				opts = append(opts, tui.WithObserver(collector))
			}

			m, err := tui.NewModel(a.cfg, opts...)
			if err != nil {
				return err
			}
			p := tui.NewProgram(m)
			config.Watch(logger, func(cfg config.Config) {
				level.Set(logging.ParseLevel(cfg.Log.Level))
				p.Send(tui.ConfigMsg{Config: cfg})
			})
			return tui.Run(p)
		},
	}
	cmd.Flags().Int("fps", 60, "frames per second")
	cmd.Flags().Bool("animate", true, "animate generation of the first maze")
	cmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address while playing")
	return cmd
}
