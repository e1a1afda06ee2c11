package grid_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/grid"
)

// BenchmarkCandidateEdges measures wall enumeration on a 1000×1000 grid.
// Complexity: O(W×H)
func BenchmarkCandidateEdges(b *testing.B) {
	topo, err := grid.NewTopology(1000, 1000)
	if err != nil {
		b.Fatalf("setup NewTopology failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = topo.CandidateEdges()
	}
}
