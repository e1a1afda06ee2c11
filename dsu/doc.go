// Package dsu implements the disjoint-set forest (union-find) used by the
// randomized Kruskal builder to decide whether a wall may be removed.
//
// Storage is an arena: one representative slot per cell, addressed by the
// row-major index of a grid.Topology.
//
// Semantics:
//
//   - Initially every cell is its own representative.
//   - Find walks the representative chain to the root and then re-points every
//     visited slot directly at that root (lazy, iterative path compression).
//   - Union(a, b) sets Find(a)'s representative to Find(b). There is no
//     union-by-rank or union-by-size: path compression alone keeps lookups cheap
//     at maze scale, and the unbalanced link direction reproduces the exact tree
//     shapes of the reference layouts for a fixed edge order.
//
// Errors:
//
//   - ErrUnknownCell: the cell is not part of the topology. Find panics with it
//     (programming error); Lookup returns it.
package dsu
