package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/labyrinth/animation"
	"github.com/katalvlaran/labyrinth/grid"
)

// View renders the maze, a status line and the key hints.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.renderMaze())
	sb.WriteString(m.statusLine())
	sb.WriteByte('\n')
	sb.WriteString(m.footer())
	return sb.String()
}

// renderMaze draws a (2·rows+1)×(2·cols+1) block lattice: odd/odd blocks are
// cells, blocks between two cells are walls or passages, the rest are posts.
func (m Model) renderMaze() string {
	rows, cols := m.engine.Rows(), m.engine.Cols()
	wall := m.styles.Wall.Render(block)

	var sb strings.Builder
	for y := 0; y <= 2*rows; y++ {
		for x := 0; x <= 2*cols; x++ {
			switch {
			case x%2 == 1 && y%2 == 1:
				c := grid.Cell{Col: x / 2, Row: y / 2}
				sb.WriteString(m.cellStyle(c).Render(block))
			case x%2 == 0 && y%2 == 1 && x > 0 && x < 2*cols:
				sb.WriteString(m.gap(grid.Cell{Col: x/2 - 1, Row: y / 2}, grid.Cell{Col: x / 2, Row: y / 2}, wall))
			case x%2 == 1 && y%2 == 0 && y > 0 && y < 2*rows:
				sb.WriteString(m.gap(grid.Cell{Col: x / 2, Row: y/2 - 1}, grid.Cell{Col: x / 2, Row: y / 2}, wall))
			default:
				sb.WriteString(wall)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m Model) gap(a, b grid.Cell, wall string) string {
	if !m.engine.Open(a, b) {
		return wall
	}
	return m.passageStyle(a, b).Render(block)
}

func (m Model) cellStyle(c grid.Cell) lipgloss.Style {
	topo := m.engine.Topology()
	switch {
	case c == topo.Start():
		return m.styles.Start
	case c == topo.Goal():
		return m.styles.Goal
	case m.reveal != nil && m.reveal.Visible(c):
		return m.styles.ForTier(m.reveal.Tier(c))
	default:
		return m.styles.Unvisited
	}
}

// passageStyle paints a passage in the lower tier of its two cells once both
// are visible.
func (m Model) passageStyle(a, b grid.Cell) lipgloss.Style {
	if m.reveal == nil || !m.reveal.Visible(a) || !m.reveal.Visible(b) {
		return m.styles.Unvisited
	}
	return m.styles.ForTier(min(m.tierOf(a), m.tierOf(b)))
}

// tierOf treats the start as on the path; its rank sits in the visited band.
func (m Model) tierOf(c grid.Cell) animation.Tier {
	if c == m.engine.Topology().Start() {
		return animation.OnPath
	}
	return m.reveal.Tier(c)
}

func (m Model) statusLine() string {
	if m.err != nil {
		return styleError.Render("error: " + m.err.Error())
	}
	e := m.engine
	size := fmt.Sprintf("%d×%d", e.Rows(), e.Cols())
	switch {
	case m.animating:
		return styleStatus.Render(fmt.Sprintf("%s  generating %d/%d", size, e.Accepted(), e.CellCount()-1))
	case m.solution != nil:
		state := "revealing"
		if m.reveal.Done() {
			state = "solved"
		}
		return styleStatus.Render(fmt.Sprintf("%s  %s %s  visited %d  path %d",
			size, m.solution.Algorithm, state, len(m.solution.Order), len(m.solution.Path)))
	default:
		return styleStatus.Render(size + "  ready")
	}
}

func (m Model) footer() string {
	var parts []string
	for _, b := range m.keys.Bindings() {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, styleFooterKey.Render(h.Key)+styleFooterSep.Render(":")+styleFooterDesc.Render(h.Desc))
	}
	return strings.Join(parts, styleFooterSep.Render("  "))
}
