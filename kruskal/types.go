// Package kruskal defines configuration options and sentinel errors for the
// randomized spanning-tree builder.
package kruskal

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors for builder construction.
var (
	// ErrBadPermutation indicates WithPermutation received something that is not
	// a permutation of the candidate-edge indices.
	ErrBadPermutation = errors.New("kruskal: edge order is not a permutation of the candidate edges")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("kruskal: invalid option supplied")
)

// Option configures a Builder via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the shuffle source and hooks for a Builder.
type Options struct {
	// Rand shuffles the candidate edges once at construction.
	Rand *rand.Rand

	// Permutation, when non-nil, replaces the shuffle: ring[i] = candidates[Permutation[i]].
	Permutation []int

	// OnAccept is called after an edge joins the spanning tree.
	OnAccept func(e grid.Edge)

	// OnReject is called when an edge is skipped because its cells already share a root.
	OnReject func(e grid.Edge)

	err error
}

// DefaultOptions returns Options with a time-seeded source and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		OnAccept: func(grid.Edge) {},
		OnReject: func(grid.Edge) {},
	}
}

// WithRand shuffles with the given source.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil rand source", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithSeed shuffles with a source seeded by seed, making the maze reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithPermutation fixes the edge order explicitly, bypassing the shuffle.
// perm indexes into grid.Topology.CandidateEdges().
func WithPermutation(perm []int) Option {
	return func(o *Options) {
		o.Permutation = append([]int(nil), perm...)
	}
}

// WithOnAccept registers a callback for accepted edges.
func WithOnAccept(fn func(e grid.Edge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAccept = fn
		}
	}
}

// WithOnReject registers a callback for rejected edges.
func WithOnReject(fn func(e grid.Edge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReject = fn
		}
	}
}

// validatePermutation checks that perm is a permutation of [0, n).
func validatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("%w: got %d indices, want %d", ErrBadPermutation, len(perm), n)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return fmt.Errorf("%w: bad or repeated index %d", ErrBadPermutation, p)
		}
		seen[p] = true
	}
	return nil
}
