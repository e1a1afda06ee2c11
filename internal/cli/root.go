// Package cli wires the mazegen commands: play, print and stats.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/labyrinth/internal/config"
	"github.com/katalvlaran/labyrinth/internal/logging"
	"github.com/katalvlaran/labyrinth/maze"
)

// flagKeys maps viper keys to the flags that may override them. Only flags
// defined on the running command are bound.
var flagKeys = map[string]string{
	"rows":         "rows",
	"cols":         "cols",
	"seed":         "seed",
	"algorithm":    "algorithm",
	"fps":          "fps",
	"animate":      "animate",
	"metrics.addr": "metrics-addr",
}

// app carries state resolved before any subcommand runs.
type app struct {
	cfgFile  string
	envFiles []string
	verbose  bool

	cfg config.Config
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "mazegen",
		Short: "Generate and solve perfect mazes",
		Long: "mazegen carves perfect mazes with randomized Kruskal and reveals " +
			"breadth-first or depth-first solutions, interactively or as text.",
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default .mazegen.yaml)")
	pf.StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files to load (default .env)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	pf.Int("rows", maze.DefaultRows, "maze rows")
	pf.Int("cols", maze.DefaultCols, "maze columns")
	pf.Int64("seed", 0, "random seed (0 picks one from the clock)")
	pf.String("algorithm", "bfs", "search algorithm: bfs or dfs")

	root.AddCommand(newPlayCmd(a), newPrintCmd(a), newStatsCmd(a))
	return root
}

// load resolves configuration from .env, the config file, MAZEGEN_* and flags.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	viper.Reset()
	if err := config.LoadDotEnv(a.envFiles...); err != nil {
		return err
	}
	if err := config.Init(a.cfgFile); err != nil {
		return err
	}
	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	a.cfg = cfg
	return nil
}

// logger writes to the rotated log file when configured, else to the
// command's stderr.
func (a *app) logger(cmd *cobra.Command) *slog.Logger {
	lc := a.cfg.Logging()
	lc.Output = cmd.ErrOrStderr()
	l, _ := logging.New(lc)
	return l
}

// engineOptions applies the configured seed, if any.
func (a *app) engineOptions(logger *slog.Logger) []maze.Option {
	opts := []maze.Option{maze.WithLogger(logger)}
	if a.cfg.Seed != 0 {
		opts = append(opts, maze.WithSeed(a.cfg.Seed))
	}
	return opts
}
