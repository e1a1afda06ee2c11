package animation

import "github.com/katalvlaran/labyrinth/grid"

// Tier is the band a rank falls into.
type Tier int

const (
	// Unvisited cells were never popped by the search.
	Unvisited Tier = iota
	// Visited cells were popped but are not on the solution path.
	Visited
	// OnPath cells lie on the reconstructed solution.
	OnPath
)

// String implements fmt.Stringer.
func (t Tier) String() string {
	switch t {
	case Visited:
		return "visited"
	case OnPath:
		return "on-path"
	default:
		return "unvisited"
	}
}

// Ranks maps every cell of a maze to its animation rank.
type Ranks map[grid.Cell]int

// Encode builds the rank map for cells from a visitation order and a
// start → goal path. It depends only on order and path.
//
// The start cell (path[0]) is ranked in the Visited tier: renderers paint it
// with a fixed start colour, and its zero delay makes it the first cell shown.
// Every later path cell is ranked OnPath.
func Encode(cells, order, path []grid.Cell) Ranks {
	n := len(cells)
	index := make(map[grid.Cell]int, len(order))
	for i, c := range order {
		if _, dup := index[c]; !dup {
			index[c] = i
		}
	}
	onPath := make(map[grid.Cell]bool, len(path))
	for i, c := range path {
		if i == 0 {
			continue
		}
		onPath[c] = true
	}

	ranks := make(Ranks, n)
	for _, c := range cells {
		i, visited := index[c]
		switch {
		case visited && onPath[c]:
			ranks[c] = 2*n + i
		case visited:
			ranks[c] = n + i
		default:
			ranks[c] = 0
		}
	}
	return ranks
}

// Decode splits rank into its tier and reveal delay for a maze of numCells cells.
func Decode(rank, numCells int) (Tier, int) {
	if numCells <= 0 {
		return Unvisited, 0
	}
	return Tier(rank / numCells), rank % numCells
}
