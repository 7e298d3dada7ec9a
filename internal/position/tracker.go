// Package position reconstructs line-number ranges for chunks relative
// to the text they were split from.
package position

import (
	"strings"

	"github.com/fracto-labs/fracto-cli/internal/core/domain"
)

// Tracker walks chunks in emission order and assigns each a 1-based,
// inclusive line range within the original text.
//
// Chunks are located by first-occurrence substring search: the current
// chunk is looked up at or after the end of the previous chunk's first
// occurrence, and the newlines between the two occurrences advance the
// line counter. Content that repeats earlier in the source can therefore
// be assigned an inaccurate range. The result is positioning metadata,
// not an exact mapping.
type Tracker struct {
	text     string
	line     int
	prev     string
	prevSeen bool
}

// NewTracker creates a tracker for the original text.
func NewTracker(text string) *Tracker {
	return &Tracker{text: text, line: 1}
}

// Next records the next chunk in emission order and returns its line range.
func (t *Tracker) Next(chunk string) domain.LineRange {
	if t.prevSeen {
		t.line += t.intermediateNewlines(chunk)
	}

	newlines := strings.Count(chunk, "\n")
	lines := domain.LineRange{From: t.line, To: t.line + newlines}

	t.line += newlines
	t.prev = chunk
	t.prevSeen = true

	return lines
}

// intermediateNewlines counts the newlines removed by splitting between
// the previous chunk and the current one.
func (t *Tracker) intermediateNewlines(chunk string) int {
	prevStart := strings.Index(t.text, t.prev)
	if prevStart < 0 {
		return 0
	}
	prevEnd := prevStart + len(t.prev)

	offset := strings.Index(t.text[prevEnd:], chunk)
	if offset < 0 {
		return 0
	}

	return strings.Count(t.text[prevEnd:prevEnd+offset], "\n")
}

// Locate returns the line range of every chunk in order.
// It is a convenience wrapper over a fresh Tracker.
func Locate(text string, chunks []string) []domain.LineRange {
	tracker := NewTracker(text)
	ranges := make([]domain.LineRange, len(chunks))
	for i, chunk := range chunks {
		ranges[i] = tracker.Next(chunk)
	}
	return ranges
}
