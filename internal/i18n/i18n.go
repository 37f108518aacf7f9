// Package i18n translates user-facing messages. Translation is a pure
// function of the locale passed in; there is no process-wide language.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys are the English format strings.
const (
	FolderStructure      = "Folder structure for: %s"
	ProcessingStatus     = "Processing: %d/%d entries (%d%%)"
	ContentCopied        = "Content copied to clipboard!"
	NoContentToCopy      = "No content to copy!"
	FileSaved            = "File saved successfully!"
	SaveFileError        = "Failed to save file: %v"
	ProcessDirectoryErr  = "Failed to process directory: %v"
	GenerationStopped    = "Generation stopped. No output was produced."
	SelectDirectoryFirst = "Please select a directory first!"
	NoRecentDirectories  = "No recent directories."
	RecentCleared        = "Recent directories cleared."
	LanguageSet          = "Language set to %s"
	CurrentLanguage      = "Current language: %s"
)

// DefaultLanguage is used for unknown or empty locales.
const DefaultLanguage = "en"

// Language is a supported display language.
type Language struct {
	Code string
	Name string
}

var supported = []Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Español"},
	{Code: "zh", Name: "中文"},
}

var (
	tags    = []language.Tag{language.English, language.Spanish, language.Chinese}
	matcher = language.NewMatcher(tags)
	cat     = newCatalog()
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, text := range spanish {
		_ = b.SetString(language.Spanish, key, text)
	}
	for key, text := range chinese {
		_ = b.SetString(language.Chinese, key, text)
	}
	return b
}

// Languages lists the supported languages, English first.
func Languages() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// Normalize maps a locale such as "es-MX" to a supported language code.
// Unsupported locales map to DefaultLanguage.
func Normalize(locale string) string {
	return supported[matchIndex(locale)].Code
}

// IsSupported reports whether locale matches one of the supported languages.
func IsSupported(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	_, _, confidence := matcher.Match(tag)
	return confidence != language.No
}

func matchIndex(locale string) int {
	tag, err := language.Parse(locale)
	if err != nil {
		return 0
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return 0
	}
	return index
}

// Translate formats key in the given locale. Keys without a translation are
// formatted as English.
func Translate(locale, key string, args ...interface{}) string {
	printer := message.NewPrinter(tags[matchIndex(locale)], message.Catalog(cat))
	return printer.Sprintf(key, args...)
}
