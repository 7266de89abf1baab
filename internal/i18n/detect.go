package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/mmcdole/squeeze/internal/domain"
)

// localeEnvVars are consulted in POSIX precedence order
var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

var matcher = language.NewMatcher([]language.Tag{tagEnglish, tagSimplified, tagTraditional})

var matchedCodes = []domain.LanguageCode{
	domain.LanguageEnglish,
	domain.LanguageChineseSimplified,
	domain.LanguageChineseTraditionalHK,
}

// DetectLanguage picks the supported language closest to the user's locale
// environment. getenv is usually os.Getenv.
func DetectLanguage(getenv func(string) string) domain.LanguageCode {
	for _, name := range localeEnvVars {
		tag, ok := parseLocale(getenv(name))
		if !ok {
			continue
		}
		_, idx, conf := matcher.Match(tag)
		if conf == language.No {
			return domain.DefaultLanguage
		}
		return matchedCodes[idx]
	}
	return domain.DefaultLanguage
}

// parseLocale converts a POSIX locale such as "zh_HK.UTF-8@euro" into a tag
func parseLocale(value string) (language.Tag, bool) {
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
