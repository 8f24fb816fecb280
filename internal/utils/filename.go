package utils

import (
	"strings"
	"time"
	"unicode"
)

const (
	// MaxFileNameRunes bounds names derived from note titles.
	MaxFileNameRunes = 50

	// FallbackExportName is used when a title sanitizes to nothing.
	FallbackExportName = "notes"
)

// forbiddenFileNameRunes cannot appear in a file name on common file
// systems.
const forbiddenFileNameRunes = `<>:"/\|?*`

// SanitizeFileName strips characters that are not allowed in file names,
// trims the result and cuts it to MaxFileNameRunes runes. An empty result
// becomes FallbackExportName.
func SanitizeFileName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || strings.ContainsRune(forbiddenFileNameRunes, r) {
			return -1
		}
		return r
	}, name)
	cleaned = strings.TrimSpace(cleaned)

	if runes := []rune(cleaned); len(runes) > MaxFileNameRunes {
		cleaned = strings.TrimSpace(string(runes[:MaxFileNameRunes]))
	}
	if cleaned == "" {
		return FallbackExportName
	}

	return cleaned
}

// StampedName returns prefix followed by t formatted with layout, e.g.
// StampedName("notes_", "2006-01-02T15-04-05", t).
func StampedName(prefix, layout string, t time.Time) string {
	return prefix + t.Format(layout)
}

// WithExtension joins name and ext, adding the dot.
func WithExtension(name, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return name
	}
	return name + "." + ext
}
