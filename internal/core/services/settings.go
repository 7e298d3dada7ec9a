package services

import (
	"fmt"

	"github.com/fracto-labs/fracto-cli/internal/core/domain"
	"github.com/fracto-labs/fracto-cli/internal/core/ports/driven"
	"github.com/fracto-labs/fracto-cli/internal/core/ports/driving"
	"github.com/fracto-labs/fracto-cli/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyChunkSize    = "splitter.chunk_size"
	keyChunkOverlap = "splitter.chunk_overlap"
	keyLanguage     = "splitter.language"
)

// SettingsService manages persisted splitter defaults.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing keys fall back to the built-in
// defaults; an inconsistent stored combination falls back entirely rather
// than failing.
func (s *SettingsService) Get() (*domain.SplitterSettings, error) {
	defaults := domain.DefaultSplitterSettings()

	settings := domain.SplitterSettings{
		ChunkSize:    defaults.ChunkSize,
		ChunkOverlap: defaults.ChunkOverlap,
	}

	if size, ok := s.getInt(keyChunkSize); ok {
		settings.ChunkSize = size
	}
	if overlap, ok := s.getInt(keyChunkOverlap); ok {
		settings.ChunkOverlap = overlap
	}
	if language := s.configStore.GetString(keyLanguage); language != "" {
		settings.Language = domain.Language(language)
	}

	if err := settings.Validate(); err != nil {
		logger.Warn("Stored splitter settings are invalid (%v), using defaults", err)
		return &defaults, nil
	}

	return &settings, nil
}

// Save validates and persists settings.
func (s *SettingsService) Save(settings *domain.SplitterSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyChunkSize, settings.ChunkSize); err != nil {
		return fmt.Errorf("saving chunk size: %w", err)
	}
	if err := s.configStore.Set(keyChunkOverlap, settings.ChunkOverlap); err != nil {
		return fmt.Errorf("saving chunk overlap: %w", err)
	}
	if err := s.configStore.Set(keyLanguage, settings.Language.String()); err != nil {
		return fmt.Errorf("saving language: %w", err)
	}

	return nil
}

// GetDefaults returns the built-in default settings.
func (s *SettingsService) GetDefaults() domain.SplitterSettings {
	return domain.DefaultSplitterSettings()
}

// getInt reads an integer key, reporting whether it was present.
// TOML integers are parsed as int64.
func (s *SettingsService) getInt(key string) (int, bool) {
	val, ok := s.configStore.Get(key)
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
