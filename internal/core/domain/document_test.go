package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDocument_Lines tests extraction of the line range from metadata
func TestDocument_Lines(t *testing.T) {
	doc := Document{
		Content: "hello\nworld",
		Metadata: map[string]any{
			"source": "x",
			MetadataKeyLoc: map[string]any{
				MetadataKeyLines: LineRange{From: 1, To: 2},
			},
		},
	}

	lines, ok := doc.Lines()
	require.True(t, ok)
	assert.Equal(t, 1, lines.From)
	assert.Equal(t, 2, lines.To)
}

// TestDocument_Lines_MissingLoc tests documents without position metadata
func TestDocument_Lines_MissingLoc(t *testing.T) {
	doc := Document{
		Content:  "hello",
		Metadata: map[string]any{"source": "x"},
	}

	_, ok := doc.Lines()
	assert.False(t, ok)
}

// TestDocument_Lines_WrongShape tests a loc entry that is not a map
func TestDocument_Lines_WrongShape(t *testing.T) {
	doc := Document{
		Content:  "hello",
		Metadata: map[string]any{MetadataKeyLoc: "not a map"},
	}

	_, ok := doc.Lines()
	assert.False(t, ok)
}

// TestCloneMetadata tests shallow copying of metadata maps
func TestCloneMetadata(t *testing.T) {
	original := map[string]any{"author": "Jane Doe", "pages": 42}

	cloned := CloneMetadata(original)

	require.Equal(t, original, cloned)

	// Mutating the clone must not affect the original.
	cloned["pages"] = 7
	assert.Equal(t, 42, original["pages"])
}

// TestCloneMetadata_Nil tests that nil input yields a writable map
func TestCloneMetadata_Nil(t *testing.T) {
	cloned := CloneMetadata(nil)

	require.NotNil(t, cloned)
	cloned["k"] = "v"
	assert.Equal(t, "v", cloned["k"])
}
