package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/mmcdole/squeeze/internal/domain"
)

// BootstrapOptions carries the startup inputs that compete with saved preferences
type BootstrapOptions struct {
	// Language set explicitly by flag or config; wins over the saved language
	Language domain.LanguageCode
	// Detected from the environment; used when nothing else is known
	Detected domain.LanguageCode
}

// SettingsService owns the current compression settings and persists them
// together with the display language.
type SettingsService struct {
	prefs    domain.PreferenceStore
	locale   domain.LocaleStore
	defaults domain.CompressionSettings
	logger   *slog.Logger

	mu      sync.RWMutex
	current domain.CompressionSettings
}

// NewSettingsService creates a service starting from defaults
func NewSettingsService(
	prefs domain.PreferenceStore,
	locale domain.LocaleStore,
	defaults domain.CompressionSettings,
	logger *slog.Logger,
) *SettingsService {
	if logger == nil {
		logger = slog.Default()
	}
	defaults = defaults.Normalize()
	return &SettingsService{
		prefs:    prefs,
		locale:   locale,
		defaults: defaults,
		logger:   logger,
		current:  defaults,
	}
}

// Bootstrap restores saved preferences and resolves the startup language.
// A missing or unreadable store is not fatal; the defaults are used instead.
func (s *SettingsService) Bootstrap(ctx context.Context, opts BootstrapOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	settings := s.defaults
	language := domain.DefaultLanguage
	if opts.Detected.Valid() {
		language = opts.Detected
	}

	prefs, err := s.prefs.Load()
	switch {
	case err == nil:
		settings = prefs.Settings
		if prefs.Language.Valid() {
			language = prefs.Language
		}
		s.logger.Info("restored preferences", "quality", settings.Quality, "format", settings.Format, "language", language)
	case errors.Is(err, domain.ErrPreferencesNotFound):
		s.logger.Debug("no saved preferences, using defaults")
	default:
		s.logger.Warn("failed to load preferences, using defaults", "error", err)
	}

	if opts.Language.Valid() {
		language = opts.Language
	}

	s.mu.Lock()
	s.current = settings
	s.mu.Unlock()
	s.locale.SetCurrentLanguage(language)
	return nil
}

// Current returns the settings in effect
func (s *SettingsService) Current() domain.CompressionSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Defaults returns the settings restored by Reset
func (s *SettingsService) Defaults() domain.CompressionSettings {
	return s.defaults
}

// Apply replaces the current settings in memory. Returns false when nothing changed.
func (s *SettingsService) Apply(next domain.CompressionSettings) bool {
	next = next.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()
	if next == s.current {
		return false
	}
	s.logger.Debug("settings changed", "quality", next.Quality, "format", next.Format)
	s.current = next
	return true
}

// Save persists the current settings
func (s *SettingsService) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	current := s.Current()
	if err := s.prefs.SaveSettings(current); err != nil {
		s.logger.Error("failed to save settings", "error", err)
		return err
	}
	s.logger.Info("saved settings", "quality", current.Quality, "format", current.Format)
	return nil
}

// SetLanguage switches the display language and persists it
func (s *SettingsService) SetLanguage(ctx context.Context, code domain.LanguageCode) error {
	if !code.Valid() {
		return domain.ErrUnknownLanguage
	}
	s.locale.SetCurrentLanguage(code)

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.prefs.SaveLanguage(code); err != nil {
		s.logger.Error("failed to save language", "error", err, "language", code)
		return err
	}
	return nil
}

// Reset clears saved preferences and returns to the defaults.
// The display language is left unchanged.
func (s *SettingsService) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.prefs.Reset(); err != nil {
		return err
	}
	s.mu.Lock()
	s.current = s.defaults
	s.mu.Unlock()
	s.logger.Info("preferences reset")
	return nil
}
