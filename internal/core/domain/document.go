package domain

// MetadataKeyLoc is the metadata key under which position information
// is stored on split documents.
const MetadataKeyLoc = "loc"

// MetadataKeyLines is the key within the loc map holding the LineRange.
const MetadataKeyLines = "lines"

// Document represents one bounded-size unit of text produced by splitting.
// It is the canonical output record handed to downstream consumers
// (embedding, indexing).
type Document struct {
	// Content is the chunk text.
	Content string

	// Metadata contains arbitrary key-value pairs. Splitting always adds
	// a nested "loc" map whose "lines" entry is a LineRange; any caller
	// supplied keys are preserved alongside it.
	Metadata map[string]any
}

// Lines returns the line range recorded in the document metadata.
// The second return value is false when no position information is present.
func (d Document) Lines() (LineRange, bool) {
	loc, ok := d.Metadata[MetadataKeyLoc].(map[string]any)
	if !ok {
		return LineRange{}, false
	}
	lines, ok := loc[MetadataKeyLines].(LineRange)
	if !ok {
		return LineRange{}, false
	}
	return lines, true
}

// Chunk is a chunk record with identity, used by the CLI and MCP
// surfaces when emitting split results.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string `json:"id"`

	// Content is the text content of this chunk.
	Content string `json:"content"`

	// Position is the ordinal position within the source text.
	Position int `json:"position"`

	// Lines is the 1-based source line span covered by the chunk.
	Lines LineRange `json:"lines"`

	// Metadata contains chunk-specific key-value pairs.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// LineRange records the 1-based inclusive span of source lines covered
// by a chunk. Line numbers are an approximation reconstructed by text
// search, not an exact mapping.
type LineRange struct {
	// From is the first line, 1-based.
	From int `json:"from"`

	// To is the last line, inclusive.
	To int `json:"to"`
}

// CloneMetadata returns a shallow copy of a metadata map.
// A nil input yields a fresh empty map so callers can always write to it.
func CloneMetadata(metadata map[string]any) map[string]any {
	cloned := make(map[string]any, len(metadata))
	for k, v := range metadata {
		cloned[k] = v
	}
	return cloned
}
