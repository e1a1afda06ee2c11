// Package tui is the interactive terminal renderer for mazegen. It owns the
// frame clock, the key handling and the reveal playback; the maze engine owns
// everything else.
package tui

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/labyrinth/animation"
	"github.com/katalvlaran/labyrinth/internal/config"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/solver"
)

// tickMsg drives one frame.
type tickMsg time.Time

// ConfigMsg carries a reloaded configuration. Palette and fps apply at once;
// size applies to the next maze.
type ConfigMsg struct {
	Config config.Config
}

// Option configures a Model.
type Option func(*Model)

// WithLogger routes model and engine logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithObserver forwards engine events, e.g. to a metrics collector.
func WithObserver(o maze.Observer) Option {
	return func(m *Model) { m.observer = o }
}

// Model is the bubbletea model for the play command.
type Model struct {
	cfg      config.Config
	keys     KeyMap
	styles   Styles
	logger   *slog.Logger
	observer maze.Observer
	rng      *rand.Rand

	engine    *maze.Engine
	animating bool
	solution  *maze.Solution
	reveal    *animation.Reveal

	width, height int
	err           error
}

// NewModel creates the model and its first maze, animated when cfg.Animate.
func NewModel(cfg config.Config, opts ...Option) (Model, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m := Model{
		cfg:    cfg,
		keys:   DefaultKeyMap(),
		styles: NewStyles(cfg.Palette),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		rng:    rand.New(rand.NewSource(seed)),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if err := m.newMaze(cfg.Animate); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles key, tick, resize and reload messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		m.frame()
		return m, m.tick()

	case ConfigMsg:
		m.cfg = msg.Config
		m.styles = NewStyles(msg.Config.Palette)
		m.logger.Info("configuration applied", slog.Int("fps", msg.Config.FPS))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Animate):
		m.err = m.newMaze(true)
	case key.Matches(msg, m.keys.New):
		m.err = m.newMaze(false)
	case key.Matches(msg, m.keys.BFS):
		m.err = m.startReveal(solver.BFS)
	case key.Matches(msg, m.keys.DFS):
		m.err = m.startReveal(solver.DFS)
	case key.Matches(msg, m.keys.Clear):
		m.solution, m.reveal = nil, nil
	}
	return m, nil
}

// frame advances generation by one wall and the reveal by one tick.
func (m *Model) frame() {
	if m.animating {
		if m.engine.Step() {
			m.animating = false
		}
	}
	if m.reveal != nil && !m.reveal.Done() {
		m.reveal.Advance()
	}
}

// newMaze replaces the session. Mazes are never reset in place.
func (m *Model) newMaze(animated bool) error {
	opts := []maze.Option{
		maze.WithAutoSolve(!animated),
		maze.WithRand(m.rng),
		maze.WithLogger(m.logger),
	}
	if m.observer != nil {
		opts = append(opts, maze.WithObserver(m.observer))
	}
	e, err := maze.New(m.cfg.Rows, m.cfg.Cols, opts...)
	if err != nil {
		m.logger.Error("new maze failed", slog.Any("error", err))
		return err
	}
	m.engine = e
	m.animating = animated && !e.IsComplete()
	m.solution, m.reveal = nil, nil
	return nil
}

// startReveal solves the current maze (finishing generation first) and
// restarts the reveal clock.
func (m *Model) startReveal(alg solver.Algorithm) error {
	sol, err := m.engine.Solve(alg)
	if err != nil {
		m.logger.Error("solve failed", slog.String("algorithm", alg.String()), slog.Any("error", err))
		return err
	}
	m.animating = false
	m.solution = sol
	m.reveal = animation.NewReveal(sol.Ranks, m.engine.CellCount())
	return nil
}

// Engine returns the current maze session.
func (m Model) Engine() *maze.Engine { return m.engine }

// Animating reports whether generation is still being stepped per frame.
func (m Model) Animating() bool { return m.animating }

// Reveal returns the active reveal, or nil.
func (m Model) Reveal() *animation.Reveal { return m.reveal }

// Err returns the last error raised by a key action.
func (m Model) Err() error { return m.err }
