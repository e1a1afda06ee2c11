// Package labyrinth generates perfect grid mazes with randomized Kruskal and
// solves them with breadth-first or depth-first search, one frame at a time.
//
// 🚀 What is labyrinth?
//
//	A small, deterministic maze engine split into leaf packages:
//		• grid      – lattice topology, cells, candidate walls
//		• dsu       – arena union-find with iterative path compression
//		• adjacency – passage graph with insertion-ordered neighbors
//		• kruskal   – steppable spanning-tree builder over a shuffled wall ring
//		• solver    – BFS/DFS with parent maps and path reconstruction
//		• animation – rank encoding and the reveal clock
//		• maze      – the Engine facade renderers talk to
//
// ✨ Why a steppable engine?
//
//   - Every wall removal is one Step, so a renderer can animate generation
//   - Seeds and explicit permutations make every maze reproducible
//   - Ranks pack visit order and path membership into one integer per cell
//
// The mazegen binary (cmd/mazegen) wraps the engine in a terminal renderer,
// an ASCII printer and a statistics command.
//
// Quick ASCII example (2×2, BFS solution):
//
//	+---+---+
//	| S   * |
//	+   +   +
//	| . | G |
//	+---+---+
//
//	go install github.com/katalvlaran/labyrinth/cmd/mazegen@latest
package labyrinth
