package splitters

import (
	"fmt"

	"github.com/fracto-labs/fracto-cli/internal/core/domain"
	"github.com/fracto-labs/fracto-cli/internal/splitters/recursive"
)

// SeparatorsForLanguage returns the fixed ordered separator cascade for a
// recognised language preset. The lists are a closed data table; unknown
// languages fail with domain.ErrUnsupportedLanguage.
// A fresh slice is returned on every call so callers may modify it.
func SeparatorsForLanguage(language domain.Language) ([]string, error) {
	switch language {
	case domain.LanguageMarkdown:
		return []string{
			// First, try to split along Markdown headings (starting with level 2)
			"\n## ",
			"\n### ",
			"\n#### ",
			"\n##### ",
			"\n###### ",
			// End of code block
			"```\n\n",
			// Horizontal rules
			"\n\n***\n\n",
			"\n\n---\n\n",
			"\n\n___\n\n",
			"\n\n",
			"",
		}, nil
	case domain.LanguageLaTeX:
		return []string{
			// Sectioning commands
			"\n\\chapter{",
			"\n\\section{",
			"\n\\subsection{",
			"\n\\subsubsection{",
			// Environments
			"\n\\begin{enumerate}",
			"\n\\begin{itemize}",
			"\n\\begin{description}",
			"\n\\begin{list}",
			"\n\\begin{quote}",
			"\n\\begin{quotation}",
			"\n\\begin{verse}",
			"\n\\begin{verbatim}",
			// Math environments
			"\n\\begin{align}",
			"$$",
			"$",
			" ",
			"",
		}, nil
	case domain.LanguageHTML:
		return []string{
			// Block-level tags first
			"<body>",
			"<div>",
			"<p>",
			"<br>",
			"<li>",
			"<h1>",
			"<h2>",
			"<h3>",
			"<h4>",
			"<h5>",
			"<h6>",
			"<span>",
			"<table>",
			"<tr>",
			"<td>",
			"<th>",
			"<ul>",
			"<ol>",
			"<header>",
			"<footer>",
			"<nav>",
			// Head elements
			"<head>",
			"<style>",
			"<script>",
			"<meta>",
			"<title>",
			"",
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, language)
	}
}

// NewForLanguage creates a recursive splitter preconfigured with the
// separator cascade for the given language. Additional options are
// applied on top of the preset.
func NewForLanguage(language domain.Language, opts ...recursive.Option) (*recursive.Splitter, error) {
	separators, err := SeparatorsForLanguage(language)
	if err != nil {
		return nil, err
	}
	merged := append([]recursive.Option{recursive.WithSeparators(separators)}, opts...)
	return recursive.New(merged...)
}

// NewMarkdown creates a recursive splitter preconfigured for Markdown.
func NewMarkdown(opts ...recursive.Option) (*recursive.Splitter, error) {
	return NewForLanguage(domain.LanguageMarkdown, opts...)
}
