package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Animate key.Binding
	New     key.Binding
	BFS     key.Binding
	DFS     key.Binding
	Clear   key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Animate: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "animate new maze"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new maze"),
		),
		BFS: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "breadth-first"),
		),
		DFS: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "depth-first"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Bindings lists the bindings in footer order.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Animate, k.New, k.BFS, k.DFS, k.Clear, k.Quit}
}
