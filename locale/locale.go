// Package locale defines translation locale codes and display metadata.
//
// A locale code is either a bare two-letter language code ("en") or a
// five-character language-region code ("en_US"). Region separators in
// input may be "-" or "_"; codes are stored with "_". Anything else is
// rejected at parse time.
package locale

import (
	"fmt"
	"strings"
)

// Code is a validated locale code ("en", "en_US").
type Code string

// Parse validates and normalizes a locale code.
func Parse(s string) (Code, error) {
	norm := strings.ReplaceAll(s, "-", "_")
	switch len(norm) {
	case 2:
		if !isAlpha(norm) {
			return "", fmt.Errorf("invalid locale code %q: language part must be two letters", s)
		}
		return Code(strings.ToLower(norm)), nil
	case 5:
		if norm[2] != '_' || !isAlpha(norm[:2]) || !isAlpha(norm[3:]) {
			return "", fmt.Errorf("invalid locale code %q: expected language_REGION form like en_US", s)
		}
		return Code(strings.ToLower(norm[:2]) + "_" + strings.ToUpper(norm[3:])), nil
	default:
		return "", fmt.Errorf("invalid locale code %q: must be 2 characters (en) or 5 characters (en_US)", s)
	}
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

func (c Code) String() string { return string(c) }

// Language returns the bare language part ("en" for "en_US").
func (c Code) Language() string {
	if len(c) < 2 {
		return string(c)
	}
	return string(c[:2])
}

// Name returns the native language name for display, falling back to
// the code itself for languages missing from the registry.
func (c Code) Name() string {
	if m, ok := registry[string(c)]; ok {
		return m
	}
	if m, ok := registry[c.Language()]; ok {
		return m
	}
	return string(c)
}

// registry contains native names for common languages. Region variants
// fall back to the base language in Name().
var registry = map[string]string{
	"ar":    "العربية",
	"cs":    "Čeština",
	"da":    "Dansk",
	"de":    "Deutsch",
	"el":    "Ελληνικά",
	"en":    "English",
	"en_GB": "English (UK)",
	"en_US": "English (US)",
	"es":    "Español",
	"fi":    "Suomi",
	"fr":    "Français",
	"he":    "עברית",
	"hi":    "हिन्दी",
	"hu":    "Magyar",
	"id":    "Bahasa Indonesia",
	"it":    "Italiano",
	"ja":    "日本語",
	"ko":    "한국어",
	"nl":    "Nederlands",
	"pl":    "Polski",
	"pt":    "Português",
	"pt_BR": "Português (Brasil)",
	"ro":    "Română",
	"ru":    "Русский",
	"sv":    "Svenska",
	"th":    "ไทย",
	"tr":    "Türkçe",
	"uk":    "Українська",
	"vi":    "Tiếng Việt",
	"zh":    "中文",
	"zh_CN": "简体中文",
	"zh_TW": "繁體中文",
}
