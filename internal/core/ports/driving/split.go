package driving

import (
	"context"

	"github.com/fracto-labs/fracto-cli/internal/core/domain"
)

// SplitService turns input texts into chunked documents with position
// metadata. Inputs are processed independently; output order always
// follows input order, then chunk order within each input.
type SplitService interface {
	// SplitText splits a single text into chunk strings.
	SplitText(ctx context.Context, text string) ([]string, error)

	// CreateDocuments splits each text and wraps every chunk into a
	// Document whose metadata merges the corresponding caller metadata
	// with the computed loc.lines range. Missing metadata entries default
	// to a fresh empty map per text.
	CreateDocuments(ctx context.Context, texts []string, metadatas []map[string]any) ([]domain.Document, error)

	// SplitDocuments re-splits pre-built documents, deriving chunks from
	// their content. Documents with empty content are skipped.
	SplitDocuments(ctx context.Context, docs []domain.Document) ([]domain.Document, error)
}
