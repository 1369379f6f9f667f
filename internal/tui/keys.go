package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the terminal key bindings
type keyMap struct {
	Submit   key.Binding
	Prev     key.Binding
	Next     key.Binding
	Complete key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Prev, k.Next, k.Complete, k.PageUp, k.PageDown, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Complete},
		{k.Prev, k.Next},
		{k.PageUp, k.PageDown, k.Quit},
	}
}

// bootKeyMap is shown while the session is still booting.
type bootKeyMap struct {
	Quit key.Binding
}

func (k bootKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

func (k bootKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit}}
}
