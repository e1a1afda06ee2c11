package kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/kruskal"
)

// ExampleBuilder_Step drives a 2×2 build one wall at a time, the way an
// animation loop would call it once per frame.
func ExampleBuilder_Step() {
	topo, _ := grid.NewTopology(2, 2)
	b, _ := kruskal.New(topo, kruskal.WithPermutation([]int{2, 3, 0, 1}))

	for frame := 1; ; frame++ {
		done := b.Step()
		fmt.Printf("frame %d: accepted=%d done=%v\n", frame, b.Accepted(), done)
		if done {
			break
		}
	}
	fmt.Println("neighbors of (0,0):", b.Graph().Neighbors(grid.Cell{}))

	// Output:
	// frame 1: accepted=1 done=false
	// frame 2: accepted=2 done=false
	// frame 3: accepted=3 done=true
	// neighbors of (0,0): [(1,0) (0,1)]
}
