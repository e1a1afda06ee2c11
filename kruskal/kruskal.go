// Package kruskal builds a perfect maze with randomized Kruskal: candidate walls
// are shuffled once, then considered one at a time; a wall is removed when the
// two cells it separates are still in different union-find components.
package kruskal

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/adjacency"
	"github.com/katalvlaran/labyrinth/dsu"
	"github.com/katalvlaran/labyrinth/grid"
)

// Builder is a steppable spanning-tree construction over one topology.
//
// The shuffled edges form a ring: after an edge is considered, accepted or not,
// the cursor advances with wraparound. Accepted edges stay in the ring, marked
// Connected, and are rejected harmlessly if met again. A fresh ring completes
// within one pass.
//
// A Builder is owned by a single session and is not safe for concurrent use.
type Builder struct {
	topo     *grid.Topology
	forest   *dsu.Forest
	graph    *adjacency.Graph
	ring     []grid.Edge
	cursor   int
	accepted int
	steps    int
	opts     Options
}

// New creates the forest, the empty adjacency graph and the shuffled ring.
// Returns ErrOptionViolation or ErrBadPermutation for invalid options.
//
// Complexity: O(V + E) time and memory.
func New(t *grid.Topology, opts ...Option) (*Builder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	candidates := t.CandidateEdges()
	ring := make([]grid.Edge, len(candidates))
	if o.Permutation != nil {
		if err := validatePermutation(o.Permutation, len(candidates)); err != nil {
			return nil, err
		}
		for i, p := range o.Permutation {
			ring[i] = candidates[p]
		}
	} else {
		copy(ring, candidates)
		o.Rand.Shuffle(len(ring), func(i, j int) {
			ring[i], ring[j] = ring[j], ring[i]
		})
	}

	return &Builder{
		topo:   t,
		forest: dsu.New(t),
		graph:  adjacency.New(t),
		ring:   ring,
		opts:   o,
	}, nil
}

// Step considers the edge under the cursor and advances the cursor.
// Once complete, Step is a no-op. Returns IsComplete().
func (b *Builder) Step() bool {
	if b.IsComplete() {
		return true
	}
	e := &b.ring[b.cursor]
	b.cursor = (b.cursor + 1) % len(b.ring)
	b.steps++

	p1, p2 := e.Primary(), e.Other()
	if b.forest.Find(p1) != b.forest.Find(p2) {
		b.forest.Union(p1, p2)
		if err := b.graph.Link(p1, p2); err != nil {
			// Candidate edges always join in-bounds 4-neighbors.
			panic(fmt.Sprintf("kruskal: corrupt candidate edge %v: %v", e, err))
		}
		e.Connect()
		b.accepted++
		b.opts.OnAccept(*e)
	} else {
		b.opts.OnReject(*e)
	}
	return b.IsComplete()
}

// IsComplete reports whether rows×cols−1 edges have been accepted.
func (b *Builder) IsComplete() bool {
	return b.accepted >= b.topo.CellCount()-1
}

// RunToCompletion steps until IsComplete and returns the number of steps taken
// by this call (zero if already complete).
func (b *Builder) RunToCompletion() int {
	n := 0
	for !b.IsComplete() {
		b.Step()
		n++
	}
	return n
}

// Accepted returns the number of edges in the spanning tree so far.
func (b *Builder) Accepted() int { return b.accepted }

// Steps returns the total number of edges considered so far.
func (b *Builder) Steps() int { return b.steps }

// Cursor returns the ring position of the next edge Step will consider.
func (b *Builder) Cursor() int { return b.cursor }

// Edges returns a snapshot of the ring in shuffled order, with Connected flags.
func (b *Builder) Edges() []grid.Edge {
	out := make([]grid.Edge, len(b.ring))
	copy(out, b.ring)
	return out
}

// Graph returns the adjacency graph populated so far.
func (b *Builder) Graph() *adjacency.Graph { return b.graph }

// Forest returns the union-find forest.
func (b *Builder) Forest() *dsu.Forest { return b.forest }

// Topology returns the lattice being carved.
func (b *Builder) Topology() *grid.Topology { return b.topo }
