package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the key bindings for normal mode. It implements
// help.KeyMap so the bottom bar can render itself.
type keyMap struct {
	Next      key.Binding
	Previous  key.Binding
	ScrollUp  key.Binding
	ScrollDn  key.Binding
	Goto      key.Binding
	Back      key.Binding
	Bookmark  key.Binding
	Bookmarks key.Binding
	Switch    key.Binding
	Reader    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("←/→, h/l", "previous/next page"),
		),
		Previous: key.NewBinding(
			key.WithKeys("h", "left"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/↓, k/j", "scroll"),
		),
		ScrollDn: key.NewBinding(
			key.WithKeys("j", "down"),
		),
		Goto: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to reference"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "back"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle bookmark"),
		),
		Bookmarks: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "bookmarks"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "bible/topics"),
		),
		Reader: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in pager"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings for the compact help bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Goto, k.Bookmark, k.Switch, k.Help, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.ScrollUp, k.Goto, k.Back},
		{k.Bookmark, k.Bookmarks, k.Switch, k.Reader},
		{k.Help, k.Quit},
	}
}
