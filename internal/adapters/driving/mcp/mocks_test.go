package mcp

import (
	"context"

	"github.com/fracto-labs/fracto-cli/internal/core/domain"
	"github.com/fracto-labs/fracto-cli/internal/core/ports/driving"
)

// mockSplitService is a mock implementation of driving.SplitService.
type mockSplitService struct {
	docs []domain.Document
	err  error
}

func (m *mockSplitService) SplitText(_ context.Context, _ string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	chunks := make([]string, len(m.docs))
	for i := range m.docs {
		chunks[i] = m.docs[i].Content
	}
	return chunks, nil
}

func (m *mockSplitService) CreateDocuments(_ context.Context, _ []string, _ []map[string]any) ([]domain.Document, error) {
	return m.docs, m.err
}

func (m *mockSplitService) SplitDocuments(_ context.Context, _ []domain.Document) ([]domain.Document, error) {
	return m.docs, m.err
}

// mockSplitBuilder records the settings it was called with and returns a
// fixed service.
type mockSplitBuilder struct {
	settings domain.SplitterSettings
	service  driving.SplitService
	err      error
}

func (m *mockSplitBuilder) build(settings domain.SplitterSettings) (driving.SplitService, error) {
	m.settings = settings
	return m.service, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.SplitterSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.SplitterSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.SplitterSettings) error {
	return m.err
}

func (m *mockSettingsService) GetDefaults() domain.SplitterSettings {
	return domain.DefaultSplitterSettings()
}
