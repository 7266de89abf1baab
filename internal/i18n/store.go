package i18n

import (
	"fmt"
	"log/slog"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/mmcdole/squeeze/internal/domain"
)

// Store is the process-wide LocaleStore backed by a go-i18n bundle.
type Store struct {
	mu         sync.RWMutex
	current    domain.LanguageCode
	localizers map[domain.LanguageCode]*goi18n.Localizer
	logger     *slog.Logger
}

var _ domain.LocaleStore = (*Store)(nil)

// NewStore creates a store starting in the given language.
// Unsupported codes start in English.
func NewStore(initial domain.LanguageCode, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	bundle, err := newBundle()
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}

	localizers := make(map[domain.LanguageCode]*goi18n.Localizer)
	for _, opt := range domain.Languages() {
		localizers[opt.Code] = goi18n.NewLocalizer(bundle, TagFor(opt.Code).String())
	}

	if !initial.Valid() {
		initial = domain.DefaultLanguage
	}

	return &Store{
		current:    initial,
		localizers: localizers,
		logger:     logger,
	}, nil
}

// CurrentLanguage returns the active language
func (s *Store) CurrentLanguage() domain.LanguageCode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetCurrentLanguage switches the active language. Unknown codes are ignored.
func (s *Store) SetCurrentLanguage(code domain.LanguageCode) {
	if !code.Valid() {
		s.logger.Warn("ignoring unsupported language", "code", code)
		return
	}
	s.mu.Lock()
	s.current = code
	s.mu.Unlock()
}

// Translate resolves key in the active language, then English, then returns the key itself
func (s *Store) Translate(key string) string {
	lang := s.CurrentLanguage()

	if text, ok := s.localize(lang, key); ok {
		return text
	}
	if lang != domain.LanguageEnglish {
		if text, ok := s.localize(domain.LanguageEnglish, key); ok {
			return text
		}
	}

	s.logger.Debug("missing translation", "key", key, "language", lang)
	return key
}

func (s *Store) localize(code domain.LanguageCode, key string) (string, bool) {
	loc, ok := s.localizers[code]
	if !ok {
		return "", false
	}
	text, err := loc.Localize(&goi18n.LocalizeConfig{MessageID: key})
	if err != nil || text == "" {
		return "", false
	}
	return text, true
}
