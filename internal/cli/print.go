package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/maze"
)

func newPrintCmd(a *app) *cobra.Command {
	var solve bool
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print one maze as ASCII art",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := a.logger(cmd)
			e, err := maze.New(a.cfg.Rows, a.cfg.Cols, a.engineOptions(logger)...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !solve {
				fmt.Fprint(out, e.String())
				return nil
			}

			alg := a.cfg.SolverAlgorithm()
			sol, err := e.Solve(alg)
			if err != nil {
				return err
			}
			fmt.Fprint(out, e.Render(sol))
			fmt.Fprintf(out, "%s: visited %d of %d cells, path %d cells\n",
				alg, len(sol.Order), e.CellCount(), len(sol.Path))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&solve, "solve", "s", false, "mark the solution path and visited cells")
	return cmd
}
