package tui

import (
	"github.com/mmcdole/squeeze/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// SettingsChangedMsg signals that the panel produced new settings
type SettingsChangedMsg struct {
	Settings domain.CompressionSettings
}

// saveTickMsg fires when the save debounce window for generation gen ends
type saveTickMsg struct {
	gen int
}

// SettingsSavedMsg signals that settings were persisted
type SettingsSavedMsg struct {
	Settings domain.CompressionSettings
}

// LanguageSavedMsg signals that the display language was persisted
type LanguageSavedMsg struct {
	Language domain.LanguageCode
}

// ClearStatusMsg signals to clear the status message
type ClearStatusMsg struct{}
