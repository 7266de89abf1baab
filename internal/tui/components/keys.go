package components

import "github.com/charmbracelet/bubbles/key"

// DropdownKeyMap defines key bindings while a dropdown menu is open.
// Letters are left free for type-ahead.
type DropdownKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Dismiss key.Binding
}

// DefaultDropdownKeyMap returns the default dropdown key bindings
func DefaultDropdownKeyMap() DropdownKeyMap {
	return DropdownKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/C-p", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/C-n", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// SettingsPanelKeyMap defines key bindings for the settings panel
type SettingsPanelKeyMap struct {
	Decrease   key.Binding
	Increase   key.Binding
	Min        key.Binding
	Max        key.Binding
	NextFocus  key.Binding
	FormatJPEG key.Binding
	FormatPNG  key.Binding
	FormatWEBP key.Binding
}

// DefaultSettingsPanelKeyMap returns the default settings panel key bindings
func DefaultSettingsPanelKeyMap() SettingsPanelKeyMap {
	return SettingsPanelKeyMap{
		Decrease: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "less"),
		),
		Increase: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "more"),
		),
		Min: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "minimum"),
		),
		Max: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "maximum"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "quality/format"),
		),
		FormatJPEG: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "JPG"),
		),
		FormatPNG: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "PNG"),
		),
		FormatWEBP: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "WebP"),
		),
	}
}

// Package-level key map instances
var (
	DropdownKeys      = DefaultDropdownKeyMap()
	SettingsPanelKeys = DefaultSettingsPanelKeyMap()
)
