package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fracto-labs/fracto-cli/internal/core/domain"
	"github.com/fracto-labs/fracto-cli/internal/core/ports/driven"
	"github.com/fracto-labs/fracto-cli/internal/core/ports/driving"
	"github.com/fracto-labs/fracto-cli/internal/logger"
	"github.com/fracto-labs/fracto-cli/internal/position"
)

// Ensure SplitService implements the interface.
var _ driving.SplitService = (*SplitService)(nil)

// ErrSplitterNotConfigured is returned when no splitter was injected.
var ErrSplitterNotConfigured = errors.New("splitter not configured")

// SplitService turns input texts into chunked documents with line
// position metadata.
type SplitService struct {
	splitter driven.TextSplitter
}

// NewSplitService creates a new split service.
func NewSplitService(splitter driven.TextSplitter) *SplitService {
	return &SplitService{splitter: splitter}
}

// SplitText splits a single text into chunk strings.
func (s *SplitService) SplitText(_ context.Context, text string) ([]string, error) {
	if s.splitter == nil {
		return nil, ErrSplitterNotConfigured
	}
	return s.splitter.SplitText(text)
}

// CreateDocuments splits each text and wraps every chunk into a Document.
// Each text is an independent computation, so texts are processed in
// parallel; results are indexed back to input position, keeping output
// in input order regardless of completion order.
func (s *SplitService) CreateDocuments(_ context.Context, texts []string, metadatas []map[string]any) ([]domain.Document, error) {
	if s.splitter == nil {
		return nil, ErrSplitterNotConfigured
	}

	perText := make([][]domain.Document, len(texts))
	errs := make([]error, len(texts))

	var wg sync.WaitGroup
	for i := range texts {
		var metadata map[string]any
		if i < len(metadatas) {
			metadata = metadatas[i]
		}

		wg.Add(1)
		go func(i int, text string, metadata map[string]any) {
			defer wg.Done()
			perText[i], errs[i] = s.buildDocuments(text, metadata)
		}(i, texts[i], metadata)
	}
	wg.Wait()

	var docs []domain.Document
	for i := range perText {
		if errs[i] != nil {
			return nil, fmt.Errorf("splitting text %d: %w", i, errs[i])
		}
		docs = append(docs, perText[i]...)
	}

	logger.Debug("Created %d documents from %d texts", len(docs), len(texts))
	return docs, nil
}

// SplitDocuments re-splits pre-built documents, deriving chunks from their
// content. Documents with empty content are filtered out beforehand.
func (s *SplitService) SplitDocuments(ctx context.Context, docs []domain.Document) ([]domain.Document, error) {
	texts := make([]string, 0, len(docs))
	metadatas := make([]map[string]any, 0, len(docs))

	for _, doc := range docs {
		if doc.Content == "" {
			continue
		}
		texts = append(texts, doc.Content)
		metadatas = append(metadatas, doc.Metadata)
	}

	return s.CreateDocuments(ctx, texts, metadatas)
}

// buildDocuments splits one text and attaches a line range to each chunk.
// Caller metadata is shallow-merged with the computed loc.lines entry; a
// pre-existing loc map is preserved aside from its lines key.
func (s *SplitService) buildDocuments(text string, metadata map[string]any) ([]domain.Document, error) {
	chunks, err := s.splitter.SplitText(text)
	if err != nil {
		return nil, err
	}

	tracker := position.NewTracker(text)
	docs := make([]domain.Document, 0, len(chunks))

	for _, chunk := range chunks {
		lines := tracker.Next(chunk)

		merged := domain.CloneMetadata(metadata)
		loc := make(map[string]any)
		if existing, ok := merged[domain.MetadataKeyLoc].(map[string]any); ok {
			loc = domain.CloneMetadata(existing)
		}
		loc[domain.MetadataKeyLines] = lines
		merged[domain.MetadataKeyLoc] = loc

		docs = append(docs, domain.Document{Content: chunk, Metadata: merged})
	}

	return docs, nil
}
