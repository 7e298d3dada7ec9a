package splitters

import (
	"errors"
	"testing"

	"github.com/fracto-labs/fracto-cli/internal/core/domain"
	"github.com/fracto-labs/fracto-cli/internal/splitters/recursive"
)

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	expected := []string{"recursive", "markdown", "latex", "html"}
	for _, name := range expected {
		if !r.Has(name) {
			t.Errorf("expected %q to be registered", name)
		}
	}
}

func TestBuildRecursive_DefaultConfig(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	splitter, err := r.Build("recursive", nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	rec, ok := splitter.(*recursive.Splitter)
	if !ok {
		t.Fatalf("expected *recursive.Splitter, got %T", splitter)
	}
	if rec.ChunkSize() != domain.DefaultChunkSize {
		t.Errorf("expected default chunk size, got %d", rec.ChunkSize())
	}
	if rec.ChunkOverlap() != domain.DefaultChunkOverlap {
		t.Errorf("expected default chunk overlap, got %d", rec.ChunkOverlap())
	}
}

func TestBuildRecursive_CustomConfig(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	splitter, err := r.Build("recursive", map[string]any{
		"chunk_size":    int64(256), // TOML integers arrive as int64
		"chunk_overlap": int64(0),
		"separators":    []any{"|", ""},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	rec := splitter.(*recursive.Splitter)
	if rec.ChunkSize() != 256 {
		t.Errorf("expected chunk size 256, got %d", rec.ChunkSize())
	}
	if rec.ChunkOverlap() != 0 {
		t.Errorf("expected chunk overlap 0, got %d", rec.ChunkOverlap())
	}

	chunks, err := rec.SplitText("a|b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 || chunks[0] != "a|b" {
		t.Errorf("expected custom separator to apply, got %q", chunks)
	}
}

func TestBuildRecursive_InvalidConfig(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	_, err := r.Build("recursive", map[string]any{
		"chunk_size":    10,
		"chunk_overlap": 10,
	})
	if !errors.Is(err, domain.ErrInvalidChunkConfig) {
		t.Errorf("expected ErrInvalidChunkConfig, got %v", err)
	}
}

func TestBuildRecursive_LanguagePreset(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	splitter, err := r.Build("markdown", map[string]any{"chunk_size": 20, "chunk_overlap": 0})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	chunks, err := splitter.SplitText("# Title\n\nintro text\n## Section\nbody text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 2 {
		t.Errorf("expected the markdown preset to split on the heading, got %q", chunks)
	}
}
