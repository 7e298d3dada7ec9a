package domain

import (
	"path/filepath"
	"strings"
)

const unknownDescription = "Unknown"

// Language identifies a separator preset for a structured text format.
// The set of recognised languages is a closed enumeration.
type Language string

// Recognised languages.
const (
	// LanguageMarkdown splits along Markdown headings and horizontal rules.
	LanguageMarkdown Language = "markdown"

	// LanguageLaTeX splits along LaTeX sectioning commands and environments.
	LanguageLaTeX Language = "latex"

	// LanguageHTML splits along HTML block-level tag boundaries.
	LanguageHTML Language = "html"
)

// IsValid returns true if the language is recognised.
func (l Language) IsValid() bool {
	switch l {
	case LanguageMarkdown, LanguageLaTeX, LanguageHTML:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l Language) String() string {
	return string(l)
}

// Description returns a human-readable description of the language preset.
func (l Language) Description() string {
	switch l {
	case LanguageMarkdown:
		return "Markdown (headings, rules, paragraphs)"
	case LanguageLaTeX:
		return "LaTeX (sections, environments, math)"
	case LanguageHTML:
		return "HTML (block-level tag boundaries)"
	default:
		return unknownDescription
	}
}

// Languages returns all recognised language presets in a stable order.
func Languages() []Language {
	return []Language{LanguageMarkdown, LanguageLaTeX, LanguageHTML}
}

// LanguageForPath guesses a language preset from a file extension.
// The second return value is false when no preset applies and the
// caller should fall back to plain-text separators.
func LanguageForPath(path string) (Language, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return LanguageMarkdown, true
	case ".tex", ".latex":
		return LanguageLaTeX, true
	case ".html", ".htm", ".xhtml":
		return LanguageHTML, true
	default:
		return "", false
	}
}
