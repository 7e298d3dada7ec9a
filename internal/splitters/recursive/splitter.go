// Package recursive implements separator-cascading recursive text splitting.
//
// The splitter walks an ordered list of candidate separators, splits on the
// first one present in the text, then re-splits any fragment still larger
// than the chunk size using the remaining, finer separators. Fragments that
// fit are merged back into chunks with a sliding overlap window.
package recursive

import (
	"fmt"
	"strings"

	"github.com/fracto-labs/fracto-cli/internal/core/domain"
	"github.com/fracto-labs/fracto-cli/internal/core/ports/driven"
)

// Ensure Splitter implements the interface.
var _ driven.TextSplitter = (*Splitter)(nil)

// DefaultSeparators is the separator cascade used when none is configured.
// Earlier entries are preferred. The empty string is a sentinel that always
// matches and splits into individual characters, so the cascade terminates.
var DefaultSeparators = []string{"\n\n", "\n", " ", ""}

// Splitter splits text recursively over a cascade of separators.
type Splitter struct {
	chunkSize    int
	chunkOverlap int
	separators   []string
	observer     Observer
}

// Option configures the splitter.
type Option func(*Splitter)

// WithChunkSize sets the target chunk size in characters.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithChunkOverlap sets the overlap between chunks in characters.
func WithChunkOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.chunkOverlap = overlap
		}
	}
}

// WithSeparators sets the ordered separator cascade.
func WithSeparators(separators []string) Option {
	return func(s *Splitter) {
		if len(separators) > 0 {
			s.separators = separators
		}
	}
}

// WithObserver sets the observer notified of oversized chunks.
func WithObserver(observer Observer) Option {
	return func(s *Splitter) {
		if observer != nil {
			s.observer = observer
		}
	}
}

// New creates a new recursive splitter with the given options.
// It returns domain.ErrInvalidChunkConfig when the configured overlap is
// not strictly smaller than the chunk size.
func New(opts ...Option) (*Splitter, error) {
	s := &Splitter{
		chunkSize:    domain.DefaultChunkSize,
		chunkOverlap: domain.DefaultChunkOverlap,
		separators:   DefaultSeparators,
		observer:     loggerObserver{},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.chunkOverlap >= s.chunkSize {
		return nil, fmt.Errorf("%w: chunk overlap %d must be smaller than chunk size %d",
			domain.ErrInvalidChunkConfig, s.chunkOverlap, s.chunkSize)
	}

	return s, nil
}

// ChunkSize returns the configured target chunk size.
func (s *Splitter) ChunkSize() int {
	return s.chunkSize
}

// ChunkOverlap returns the configured overlap.
func (s *Splitter) ChunkOverlap() int {
	return s.chunkOverlap
}

// SplitText splits the text into an ordered sequence of chunks.
// Empty input yields zero chunks. The chunk size is a soft bound: a chunk
// can exceed it when no finer separator applies, or because the merge
// window tracks fragment lengths without counting joining separators.
func (s *Splitter) SplitText(text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	return s.split(text, s.separators), nil
}

// split performs one cascade step over the given separator list.
func (s *Splitter) split(text string, separators []string) []string {
	if len(separators) == 0 {
		// Nothing finer to split on; emit the text as-is.
		return []string{text}
	}

	// Select the first separator present in the text. The empty string
	// sentinel always matches; otherwise fall back to the last entry.
	separator := separators[len(separators)-1]
	remaining := separators[len(separators):]
	for i, sep := range separators {
		if sep == "" || strings.Contains(text, sep) {
			separator = sep
			remaining = separators[i+1:]
			break
		}
	}

	// Splitting on the sentinel yields individual characters.
	fragments := strings.Split(text, separator)

	var chunks []string
	var buffered []string
	for _, fragment := range fragments {
		if len(fragment) < s.chunkSize {
			buffered = append(buffered, fragment)
			continue
		}

		// Oversized fragment: flush the buffered run first, then re-split
		// the fragment with the remaining separators. The recursion output
		// is appended directly, bypassing the merge window.
		if len(buffered) > 0 {
			chunks = append(chunks, s.merge(buffered, separator)...)
			buffered = nil
		}
		chunks = append(chunks, s.split(fragment, remaining)...)
	}

	if len(buffered) > 0 {
		chunks = append(chunks, s.merge(buffered, separator)...)
	}

	return chunks
}
