package domain

import (
	"fmt"
	"strings"
)

// LanguageCode identifies a supported display language
type LanguageCode string

const (
	LanguageEnglish              LanguageCode = "en"
	LanguageChineseSimplified    LanguageCode = "zh"
	LanguageChineseTraditionalHK LanguageCode = "zh-hk"
	DefaultLanguage                           = LanguageEnglish
)

// LanguageOption describes a language entry in the picker
type LanguageOption struct {
	Code  LanguageCode
	Label string // native name
	Flag  string
}

// Languages returns the picker entries in display order
func Languages() []LanguageOption {
	return []LanguageOption{
		{Code: LanguageEnglish, Label: "English", Flag: "🇺🇸"},
		{Code: LanguageChineseSimplified, Label: "简体中文", Flag: "🇨🇳"},
		{Code: LanguageChineseTraditionalHK, Label: "繁體中文", Flag: "🇭🇰"},
	}
}

// Valid reports whether c is a supported code
func (c LanguageCode) Valid() bool {
	switch c {
	case LanguageEnglish, LanguageChineseSimplified, LanguageChineseTraditionalHK:
		return true
	}
	return false
}

// Option returns the picker entry for c, falling back to English
func (c LanguageCode) Option() LanguageOption {
	for _, opt := range Languages() {
		if opt.Code == c {
			return opt
		}
	}
	return Languages()[0]
}

// ParseLanguage accepts a supported code, case-insensitively, with '_' or '-'
func ParseLanguage(s string) (LanguageCode, error) {
	code := LanguageCode(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	if !code.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
	return code, nil
}
