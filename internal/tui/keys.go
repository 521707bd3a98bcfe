package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the grid key bindings. It satisfies help.KeyMap. Rows and
// columns are picked with the mouse; keys act on the last clicked ones.
type KeyMap struct {
	Toggle     key.Binding
	SelectCell key.Binding
	SelectAll  key.Binding
	Clear      key.Binding
	Widen      key.Binding
	Narrow     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle:     key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle row")),
		SelectCell: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select cell")),
		SelectAll:  key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Widen:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "widen column")),
		Narrow:     key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "narrow column")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.SelectAll, k.Clear, k.Widen, k.Narrow, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.SelectCell, k.SelectAll, k.Clear},
		{k.Widen, k.Narrow},
		{k.Help, k.Quit},
	}
}
