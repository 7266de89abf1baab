package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrUnknownFormat indicates an output format outside the supported set
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrUnknownLanguage indicates a language code outside the supported set
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrPreferencesNotFound indicates nothing has been persisted yet
	ErrPreferencesNotFound = errors.New("preferences not found")
)
