package domain

// LocaleStore holds the process-wide display language and resolves message keys
type LocaleStore interface {
	CurrentLanguage() LanguageCode
	SetCurrentLanguage(code LanguageCode)
	Translate(key string) string
}

// Preferences is the state persisted between runs
type Preferences struct {
	Settings  CompressionSettings `json:"settings"`
	Language  LanguageCode        `json:"language"`
	UpdatedAt int64               `json:"updated_at"`
}

// PreferenceStore persists Preferences locally
type PreferenceStore interface {
	// Load returns ErrPreferencesNotFound when nothing was saved
	Load() (Preferences, error)
	SaveSettings(s CompressionSettings) error
	SaveLanguage(code LanguageCode) error
	Reset() error
	Close() error
}
