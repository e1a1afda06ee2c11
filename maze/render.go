package maze

import (
	"strings"

	"github.com/katalvlaran/labyrinth/animation"
	"github.com/katalvlaran/labyrinth/grid"
)

// String renders the walls as ASCII art with the start (S) and goal (G) marked.
func (e *Engine) String() string {
	return e.Render(nil)
}

// Render draws the maze as ASCII art. When sol is non-nil, path cells are
// marked with '*' and cells the search visited off the path with '.'.
//
//	+---+---+
//	| S   * |
//	+   +   +
//	| . | G |
//	+---+---+
func (e *Engine) Render(sol *Solution) string {
	rows, cols := e.Rows(), e.Cols()
	var sb strings.Builder

	sb.WriteString("+" + strings.Repeat("---+", cols) + "\n")
	for r := 0; r < rows; r++ {
		sb.WriteString("|")
		for c := 0; c < cols; c++ {
			cell := grid.Cell{Col: c, Row: r}
			sb.WriteString(" ")
			sb.WriteByte(e.glyph(cell, sol))
			sb.WriteString(" ")
			if c < cols-1 && e.Open(cell, grid.Cell{Col: c + 1, Row: r}) {
				sb.WriteString(" ")
			} else {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n+")
		for c := 0; c < cols; c++ {
			cell := grid.Cell{Col: c, Row: r}
			if r < rows-1 && e.Open(cell, grid.Cell{Col: c, Row: r + 1}) {
				sb.WriteString("   +")
			} else {
				sb.WriteString("---+")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (e *Engine) glyph(c grid.Cell, sol *Solution) byte {
	switch c {
	case e.topo.Start():
		return 'S'
	case e.topo.Goal():
		return 'G'
	}
	if sol == nil {
		return ' '
	}
	switch tier, _ := animation.Decode(sol.Rank(c), e.CellCount()); tier {
	case animation.OnPath:
		return '*'
	case animation.Visited:
		return '.'
	default:
		return ' '
	}
}
