package solver_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/kruskal"
	"github.com/katalvlaran/labyrinth/solver"
)

// BenchmarkSolve measures BFS and DFS on a 300×300 maze.
// Complexity: O(V + E)
func BenchmarkSolve(b *testing.B) {
	topo, err := grid.NewTopology(300, 300)
	if err != nil {
		b.Fatalf("setup NewTopology failed: %v", err)
	}
	bld, err := kruskal.New(topo, kruskal.WithSeed(42))
	if err != nil {
		b.Fatalf("setup kruskal.New failed: %v", err)
	}
	bld.RunToCompletion()
	g := bld.Graph()

	for _, alg := range []solver.Algorithm{solver.BFS, solver.DFS} {
		b.Run(alg.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := solver.Solve(g, alg); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
