// Package grid describes the rectangular cell lattice a maze is carved from.
//
// What:
//
//   - Cell is a (column, row) pair; identity is structural equality.
//   - Edge is a wall between a cell and its right (Vertical) or lower (Horizontal) neighbor.
//   - Topology enumerates every cell and every candidate wall of an R×C grid and
//     maps cells to dense row-major indices for arena-backed structures.
//
// Why:
//
//   - The union-find forest, the adjacency graph and the spanning-tree builder all
//     share one Topology, so cell ↔ index conversion lives in a single place.
//
// Complexity:
//
//   - NewTopology: O(1).
//   - Cells:          O(R×C).
//   - CandidateEdges: O(R×C); yields R×(C−1) + C×(R−1) edges.
//   - Index/CellAt/Contains: O(1).
//
// Errors:
//
//   - ErrInvalidSize: rows < 1 or cols < 1.
package grid
