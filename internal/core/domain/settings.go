package domain

// Default splitting parameters, used when nothing else is configured.
const (
	// DefaultChunkSize is the default target number of characters per chunk.
	DefaultChunkSize = 1000

	// DefaultChunkOverlap is the default number of characters carried over
	// between consecutive chunks.
	DefaultChunkOverlap = 200
)

// SplitterSettings holds the configured default splitting parameters.
type SplitterSettings struct {
	// ChunkSize is the target chunk size in characters.
	ChunkSize int

	// ChunkOverlap is the overlap between consecutive chunks in characters.
	ChunkOverlap int

	// Language selects a separator preset. Empty means plain text.
	Language Language
}

// DefaultSplitterSettings returns the built-in defaults.
func DefaultSplitterSettings() SplitterSettings {
	return SplitterSettings{
		ChunkSize:    DefaultChunkSize,
		ChunkOverlap: DefaultChunkOverlap,
	}
}

// Validate checks the settings for internal consistency.
func (s SplitterSettings) Validate() error {
	if s.ChunkSize <= 0 {
		return ErrInvalidChunkConfig
	}
	if s.ChunkOverlap < 0 || s.ChunkOverlap >= s.ChunkSize {
		return ErrInvalidChunkConfig
	}
	if s.Language != "" && !s.Language.IsValid() {
		return ErrUnsupportedLanguage
	}
	return nil
}
