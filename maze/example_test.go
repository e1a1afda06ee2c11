package maze_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/solver"
)

// ExampleEngine_Solve generates a fixed 2×2 maze and reveals its BFS solution.
func ExampleEngine_Solve() {
	e, _ := maze.New(2, 2, maze.WithPermutation([]int{0, 1, 2, 3}))
	sol, _ := e.Solve(solver.BFS)

	fmt.Println("path:", sol.Path)
	for _, c := range e.Topology().Cells() {
		fmt.Printf("rank%v = %d\n", c, sol.Rank(c))
	}
	fmt.Print(e.Render(sol))
	fmt.Println("start open to", e.NeighborsOf(grid.Cell{}))
	// Output:
	// path: [(0,0) (1,0) (1,1)]
	// rank(0,0) = 4
	// rank(1,0) = 10
	// rank(0,1) = 5
	// rank(1,1) = 11
	// +---+---+
	// | S   * |
	// +   +   +
	// | . | G |
	// +---+---+
	// start open to [(0,1) (1,0)]
}
