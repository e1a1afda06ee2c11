package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/animation"
	"github.com/katalvlaran/labyrinth/internal/config"
	"github.com/katalvlaran/labyrinth/solver"
)

func testConfig(animate bool) config.Config {
	return config.Config{
		Rows:      4,
		Cols:      6,
		Seed:      7,
		Algorithm: "bfs",
		FPS:       30,
		Animate:   animate,
		Palette: config.Palette{
			Start: "#00ff00", Goal: "#0000ff", OnPath: "#64ff64",
			Visited: "#6464ff", Unvisited: "#646464", Wall: "#dcdcdc",
		},
	}
}

func press(t *testing.T, m Model, r rune) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func frame(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(tickMsg(time.Now()))
	require.NotNil(t, cmd, "every tick schedules the next")
	return next.(Model)
}

func TestNewModel_Static(t *testing.T) {
	m, err := NewModel(testConfig(false))
	require.NoError(t, err)
	assert.False(t, m.Animating())
	assert.True(t, m.Engine().IsComplete())
	assert.Nil(t, m.Reveal())
	assert.NotNil(t, m.Init())
}

func TestNewModel_InvalidSize(t *testing.T) {
	cfg := testConfig(false)
	cfg.Rows = 0
	_, err := NewModel(cfg)
	assert.Error(t, err)
}

func TestModel_AnimatedGeneration(t *testing.T) {
	m, err := NewModel(testConfig(true))
	require.NoError(t, err)
	require.True(t, m.Animating())
	assert.Zero(t, m.Engine().Accepted())

	for i := 0; i < m.Engine().Topology().EdgeCount() && m.Animating(); i++ {
		m = frame(t, m)
	}
	assert.False(t, m.Animating())
	assert.Equal(t, 23, m.Engine().Accepted())
}

func TestModel_Keys(t *testing.T) {
	m, err := NewModel(testConfig(false))
	require.NoError(t, err)
	first := m.Engine()

	m, _ = press(t, m, 'n')
	assert.NotSame(t, first, m.Engine(), "n starts a fresh session")
	assert.False(t, m.Animating())

	m, _ = press(t, m, 'a')
	assert.True(t, m.Animating())

	// Solving mid-animation finishes generation first.
	m, _ = press(t, m, 'b')
	require.NoError(t, m.Err())
	assert.False(t, m.Animating())
	assert.True(t, m.Engine().IsComplete())
	require.NotNil(t, m.Reveal())
	assert.Zero(t, m.Reveal().Tick())

	m, _ = press(t, m, 'd')
	require.NotNil(t, m.Reveal())
	sol, err := m.Engine().LastSolution()
	require.NoError(t, err)
	assert.Equal(t, solver.DFS, sol.Algorithm)

	m, _ = press(t, m, 'c')
	assert.Nil(t, m.Reveal())

	_, cmd := press(t, m, 'q')
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_RevealPlayback(t *testing.T) {
	m, err := NewModel(testConfig(false))
	require.NoError(t, err)
	m, _ = press(t, m, 'b')
	r := m.Reveal()
	require.NotNil(t, r)

	// 24 cells advance 24/144 per frame; the largest delay is below 3·24.
	for i := 0; i < 3*144 && !r.Done(); i++ {
		m = frame(t, m)
	}
	assert.True(t, r.Done())
	start := m.Engine().Topology().Start()
	assert.True(t, r.Visible(start))
	assert.Equal(t, animation.Visited, r.Tier(start))

	tick := r.Tick()
	m = frame(t, m)
	assert.Equal(t, tick, r.Tick(), "a finished reveal stops advancing")
	assert.Contains(t, m.View(), "solved")
}

func TestModel_ConfigReload(t *testing.T) {
	m, err := NewModel(testConfig(false))
	require.NoError(t, err)

	cfg := testConfig(false)
	cfg.FPS = 5
	cfg.Rows, cfg.Cols = 2, 3
	next, cmd := m.Update(ConfigMsg{Config: cfg})
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, 4, m.Engine().Rows(), "size applies to the next maze")

	m, _ = press(t, m, 'n')
	assert.Equal(t, 2, m.Engine().Rows())
	assert.Equal(t, 3, m.Engine().Cols())
}

func TestModel_View(t *testing.T) {
	m, err := NewModel(testConfig(false))
	require.NoError(t, err)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	out := m.View()
	lines := strings.Split(out, "\n")
	// 2·rows+1 lattice lines, then status and footer.
	require.Len(t, lines, 2*4+1+2)
	assert.Equal(t, 2*6+1, strings.Count(lines[0], block))
	assert.Contains(t, lines[9], "4×6")
	assert.Contains(t, lines[9], "ready")
	for _, hint := range []string{"animate new maze", "new maze", "breadth-first", "depth-first", "clear", "quit"} {
		assert.Contains(t, lines[10], hint)
	}
}

func TestKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()
	var keys []string
	for _, b := range km.Bindings() {
		keys = append(keys, b.Keys()...)
	}
	assert.Equal(t, []string{"a", "n", "b", "d", "c", "q", "ctrl+c"}, keys)
}
