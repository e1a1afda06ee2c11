package animation

import "github.com/katalvlaran/labyrinth/grid"

// TickNormalizer is the cell count of the 16×9 maze whose reveal advances
// exactly one delay unit per frame.
const TickNormalizer = 144.0

// Reveal is the renderer-owned playback state for one solve. It reads an
// immutable Ranks snapshot and a monotonically increasing tick.
type Reveal struct {
	ranks    Ranks
	numCells int
	tick     float64
	maxDelay int
}

// NewReveal starts a reveal at tick 0.
func NewReveal(ranks Ranks, numCells int) *Reveal {
	r := &Reveal{ranks: ranks, numCells: numCells}
	for _, rank := range ranks {
		if _, d := Decode(rank, numCells); d > r.maxDelay {
			r.maxDelay = d
		}
	}
	return r
}

// Advance moves the clock forward by one frame.
func (r *Reveal) Advance() {
	r.tick += float64(r.numCells) / TickNormalizer
}

// Tick returns the current clock value.
func (r *Reveal) Tick() float64 { return r.tick }

// Visible reports whether c should be painted at the current tick.
func (r *Reveal) Visible(c grid.Cell) bool {
	rank, ok := r.ranks[c]
	if !ok {
		return false
	}
	_, delay := Decode(rank, r.numCells)
	return float64(delay) < r.tick
}

// Tier returns the band of c; cells unknown to the reveal are Unvisited.
func (r *Reveal) Tier(c grid.Cell) Tier {
	t, _ := Decode(r.ranks[c], r.numCells)
	return t
}

// Done reports whether every cell is visible.
func (r *Reveal) Done() bool {
	return float64(r.maxDelay) < r.tick
}
