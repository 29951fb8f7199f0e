// Package i18n holds the translated message tables for the bot surfaces.
//
// Unlike a UI-wide locale switch, every lookup carries its own language
// code: the active language travels with each chat request, so two dialogs
// can run in different languages at the same time.
package i18n

import "strings"

// Supported languages.
const (
	LangEN = "en"
	LangML = "ml"
)

// messages stores all translations, keyed by language then message key.
var messages = map[string]map[string]string{
	LangEN: englishMessages,
	LangML: malayalamMessages,
}

// Normalize maps common language code variations to a supported language.
// Unknown codes fall back to English.
func Normalize(lang string) string {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "ml", "ml-in", "malayalam":
		return LangML
	default:
		return LangEN
	}
}

// T returns the translated message for the given key in the given language.
// Falls back to English if the translation is missing, and to the key
// itself if no English message exists either.
func T(lang, key string) string {
	if msg, ok := messages[Normalize(lang)][key]; ok {
		return msg
	}
	if msg, ok := messages[LangEN][key]; ok {
		return msg
	}
	return key
}

// Supported returns the supported language codes.
func Supported() []string {
	return []string{LangEN, LangML}
}

// IsSupported checks if a language code is supported.
func IsSupported(lang string) bool {
	_, ok := messages[strings.ToLower(strings.TrimSpace(lang))]
	return ok
}
