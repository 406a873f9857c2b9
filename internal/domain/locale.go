package domain

import "strings"

// Locale selects which language column a query reads.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleFR Locale = "fr"
)

// ParseLocale maps anything that is not French to English.
func ParseLocale(s string) Locale {
	if strings.EqualFold(strings.TrimSpace(s), string(LocaleFR)) {
		return LocaleFR
	}
	return LocaleEN
}

// Column returns the localized column for base, e.g. "title" -> "title_fr".
// The suffix only ever comes from the two known locales.
func (l Locale) Column(base string) string {
	if l == LocaleFR {
		return base + "_fr"
	}
	return base + "_en"
}
