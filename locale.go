package smartchat

import "strings"

// Locale selects the language of generated text.
type Locale string

const (
	LocaleDE Locale = "de"
	LocaleEN Locale = "en"
)

// ParseLocale maps s to a Locale. Anything other than "de" is English.
func ParseLocale(s string) Locale {
	if strings.EqualFold(strings.TrimSpace(s), "de") {
		return LocaleDE
	}
	return LocaleEN
}
