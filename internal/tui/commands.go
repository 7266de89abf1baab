package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/squeeze/internal/domain"
	"github.com/mmcdole/squeeze/internal/service"
)

// Command factories for async operations

const persistTimeout = 5 * time.Second

// SettingsChangedCmd reports new settings back into the update loop
func SettingsChangedCmd(s domain.CompressionSettings) tea.Cmd {
	return func() tea.Msg {
		return SettingsChangedMsg{Settings: s}
	}
}

// saveAfterCmd ends the debounce window for gen after delay
func saveAfterCmd(gen int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return saveTickMsg{gen: gen}
	})
}

// SaveSettingsCmd persists the service's current settings
func SaveSettingsCmd(svc *service.SettingsService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if err := svc.Save(ctx); err != nil {
			return ErrMsg{Err: err, Context: "saving settings"}
		}
		return SettingsSavedMsg{Settings: svc.Current()}
	}
}

// PersistLanguageCmd switches and persists the display language
func PersistLanguageCmd(svc *service.SettingsService, code domain.LanguageCode) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if err := svc.SetLanguage(ctx, code); err != nil {
			return ErrMsg{Err: err, Context: "saving language"}
		}
		return LanguageSavedMsg{Language: code}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
