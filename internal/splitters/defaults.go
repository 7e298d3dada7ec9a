package splitters

import (
	"github.com/fracto-labs/fracto-cli/internal/core/domain"
	"github.com/fracto-labs/fracto-cli/internal/core/ports/driven"
	"github.com/fracto-labs/fracto-cli/internal/splitters/recursive"
)

// RegisterDefaults registers all built-in splitters with the registry.
// Call this during application initialisation to enable standard splitters.
func RegisterDefaults(r *Registry) {
	r.Register("recursive", buildRecursive(""))
	for _, language := range domain.Languages() {
		r.Register(language.String(), buildRecursive(language))
	}
}

// buildRecursive returns a builder for a recursive splitter, optionally
// preconfigured with a language separator preset.
// Supported config keys:
//   - chunk_size (int): Characters per chunk (default: 1000)
//   - chunk_overlap (int): Overlapping characters between chunks (default: 200)
//   - separators ([]string): Custom separator cascade (plain splitter only)
func buildRecursive(language domain.Language) BuilderFunc {
	return func(cfg map[string]any) (driven.TextSplitter, error) {
		var opts []recursive.Option

		if cfg != nil {
			if size := getIntFromConfig(cfg, "chunk_size"); size > 0 {
				opts = append(opts, recursive.WithChunkSize(size))
			}
			if overlap := getIntFromConfig(cfg, "chunk_overlap"); overlap >= 0 {
				opts = append(opts, recursive.WithChunkOverlap(overlap))
			}
			if separators := getStringSliceFromConfig(cfg, "separators"); len(separators) > 0 {
				opts = append(opts, recursive.WithSeparators(separators))
			}
		}

		if language == "" {
			return recursive.New(opts...)
		}
		return NewForLanguage(language, opts...)
	}
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	val, ok := cfg[key]
	if !ok {
		return -1
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return -1
	}
}

// getStringSliceFromConfig safely extracts a string slice from generic
// config. TOML arrays arrive as []any; JSON as []any of strings.
func getStringSliceFromConfig(cfg map[string]any, key string) []string {
	val, ok := cfg[key]
	if !ok {
		return nil
	}

	switch v := val.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil
			}
			out = append(out, s)
		}
		return out
	default:
		return nil
	}
}
