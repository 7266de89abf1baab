package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/squeeze/internal/domain"
)

func newTestStore(t *testing.T, code domain.LanguageCode) *Store {
	t.Helper()
	s, err := NewStore(code, nil)
	require.NoError(t, err)
	return s
}

func TestStore_TranslatePerLanguage(t *testing.T) {
	s := newTestStore(t, domain.LanguageEnglish)
	assert.Equal(t, "High", s.Translate(domain.MsgQualityHigh))

	s.SetCurrentLanguage(domain.LanguageChineseSimplified)
	assert.Equal(t, domain.LanguageChineseSimplified, s.CurrentLanguage())
	assert.Equal(t, "压缩设置", s.Translate(domain.MsgSettingsTitle))

	s.SetCurrentLanguage(domain.LanguageChineseTraditionalHK)
	assert.Equal(t, "壓縮設定", s.Translate(domain.MsgSettingsTitle))
}

func TestStore_UnknownKeyFallsBackToKey(t *testing.T) {
	s := newTestStore(t, domain.LanguageChineseSimplified)
	assert.Equal(t, "noSuchKey", s.Translate("noSuchKey"))
}

func TestStore_IgnoresUnsupportedLanguage(t *testing.T) {
	s := newTestStore(t, domain.LanguageChineseSimplified)
	s.SetCurrentLanguage("fr")
	assert.Equal(t, domain.LanguageChineseSimplified, s.CurrentLanguage())
}

func TestNewStore_InvalidInitialStartsInEnglish(t *testing.T) {
	s := newTestStore(t, "klingon")
	assert.Equal(t, domain.LanguageEnglish, s.CurrentLanguage())
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	en := catalog[domain.LanguageEnglish]
	for code, table := range catalog {
		assert.Len(t, table, len(en), "catalog %s", code)
		for key := range en {
			assert.Contains(t, table, key, "catalog %s", code)
		}
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want domain.LanguageCode
	}{
		{"empty", map[string]string{}, domain.LanguageEnglish},
		{"posix", map[string]string{"LANG": "C"}, domain.LanguageEnglish},
		{"english", map[string]string{"LANG": "en_US.UTF-8"}, domain.LanguageEnglish},
		{"simplified", map[string]string{"LANG": "zh_CN.UTF-8"}, domain.LanguageChineseSimplified},
		{"hong kong", map[string]string{"LANG": "zh_HK.UTF-8"}, domain.LanguageChineseTraditionalHK},
		{"lc_all wins", map[string]string{"LC_ALL": "zh_CN", "LANG": "en_US"}, domain.LanguageChineseSimplified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectLanguage(func(k string) string { return tt.env[k] })
			assert.Equal(t, tt.want, got)
		})
	}
}
