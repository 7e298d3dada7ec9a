package driving

import "github.com/fracto-labs/fracto-cli/internal/core/domain"

// SettingsService manages persisted splitter defaults.
type SettingsService interface {
	// Get retrieves current settings, falling back to defaults for
	// missing or invalid stored values.
	Get() (*domain.SplitterSettings, error)

	// Save validates and persists settings.
	Save(settings *domain.SplitterSettings) error

	// GetDefaults returns the built-in default settings.
	GetDefaults() domain.SplitterSettings
}
