package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/mmcdole/squeeze/internal/tui/components"
)

// KeyMap defines the application-level key bindings
type KeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Language key.Binding
	Lock     key.Binding
	Reset    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Language: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "language"),
		),
		Lock: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "lock/unlock"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "restore defaults"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()

// helpKeys feeds bubbles/help with the app and panel bindings
type helpKeys struct{}

// ShortHelp implements help.KeyMap
func (helpKeys) ShortHelp() []key.Binding {
	p := components.SettingsPanelKeys
	return []key.Binding{p.Decrease, p.Increase, p.NextFocus, Keys.Language, Keys.Help, Keys.Quit}
}

// FullHelp implements help.KeyMap
func (helpKeys) FullHelp() [][]key.Binding {
	p := components.SettingsPanelKeys
	return [][]key.Binding{
		{p.Decrease, p.Increase, p.Min, p.Max},
		{p.NextFocus, p.FormatJPEG, p.FormatPNG, p.FormatWEBP},
		{Keys.Language, Keys.Lock, Keys.Reset},
		{Keys.Help, Keys.Quit},
	}
}
