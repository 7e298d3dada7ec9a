package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fracto-labs/fracto-cli/internal/core/domain"
	"github.com/fracto-labs/fracto-cli/internal/core/ports/driving"
	"github.com/fracto-labs/fracto-cli/internal/core/services"
	"github.com/fracto-labs/fracto-cli/internal/logger"
)

var (
	splitChunkSize    int
	splitChunkOverlap int
	splitLanguage     string
	splitJSON         bool
	splitWatch        bool
)

var splitCmd = &cobra.Command{
	Use:   "split [file...]",
	Short: "Split files into chunks",
	Long: `Splits one or more text files into bounded-size, overlapping chunks.

Reads from stdin when no files are given or when the file is "-".
A language preset is selected from the file extension unless --language
is set (markdown, latex, html). Use --watch to re-split files whenever
they change on disk.`,
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().IntVar(&splitChunkSize, "chunk-size", 0, "target chunk size in characters (0 = configured default)")
	splitCmd.Flags().IntVar(&splitChunkOverlap, "chunk-overlap", -1, "overlap between chunks in characters (-1 = configured default)")
	splitCmd.Flags().StringVarP(&splitLanguage, "language", "l", "", "separator preset: markdown, latex or html")
	splitCmd.Flags().BoolVar(&splitJSON, "json", false, "output chunks as JSON")
	splitCmd.Flags().BoolVarP(&splitWatch, "watch", "w", false, "re-split files whenever they change")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	settings, err := effectiveSettings()
	if err != nil {
		return err
	}

	fromStdin := len(args) == 0 || (len(args) == 1 && args[0] == "-")
	if fromStdin {
		if splitWatch {
			return errors.New("--watch requires file arguments")
		}

		text, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}

		service, err := splitterForFile("", settings)
		if err != nil {
			return err
		}
		return splitAndPrint(cmd, "stdin", string(text), service)
	}

	if splitWatch {
		return watchAndSplit(cmd, args, settings)
	}

	for _, path := range args {
		if err := splitFile(cmd, path, settings); err != nil {
			return err
		}
	}
	return nil
}

// effectiveSettings merges persisted defaults with command-line overrides.
func effectiveSettings() (*domain.SplitterSettings, error) {
	if settingsService == nil {
		return nil, errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	if splitChunkSize > 0 {
		settings.ChunkSize = splitChunkSize
	}
	if splitChunkOverlap >= 0 {
		settings.ChunkOverlap = splitChunkOverlap
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// splitFile reads and splits a single file.
func splitFile(cmd *cobra.Command, path string, settings *domain.SplitterSettings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	service, err := splitterForFile(path, settings)
	if err != nil {
		return err
	}
	return splitAndPrint(cmd, path, string(data), service)
}

// splitterForFile builds a split service for one input. The language
// preset comes from the --language flag, then the persisted setting,
// then the file extension; otherwise plain-text separators are used.
func splitterForFile(path string, settings *domain.SplitterSettings) (driving.SplitService, error) {
	language := domain.Language(splitLanguage)
	if language == "" {
		language = settings.Language
	}
	if language == "" && path != "" {
		if detected, ok := domain.LanguageForPath(path); ok {
			logger.Debug("Detected language %q for %s", detected, path)
			language = detected
		}
	}

	name := "recursive"
	if language != "" {
		if !language.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, language)
		}
		name = language.String()
	}

	splitter, err := splitterRegistry.Build(name, map[string]any{
		"chunk_size":    settings.ChunkSize,
		"chunk_overlap": settings.ChunkOverlap,
	})
	if err != nil {
		return nil, fmt.Errorf("building %s splitter: %w", name, err)
	}

	return services.NewSplitService(splitter), nil
}

// splitAndPrint splits one text and writes the chunk records.
func splitAndPrint(cmd *cobra.Command, source, text string, service driving.SplitService) error {
	logger.Section("Splitting " + source)

	docs, err := service.CreateDocuments(cmd.Context(), []string{text}, []map[string]any{{"source": source}})
	if err != nil {
		return fmt.Errorf("splitting %s: %w", source, err)
	}

	records := chunkRecords(docs)

	if splitJSON {
		return outputChunksJSON(cmd, records)
	}
	return outputChunksText(cmd, source, records)
}

// chunkRecords converts documents into identified chunk records.
func chunkRecords(docs []domain.Document) []domain.Chunk {
	records := make([]domain.Chunk, len(docs))
	for i := range docs {
		lines, _ := docs[i].Lines()
		records[i] = domain.Chunk{
			ID:       uuid.New().String(),
			Content:  docs[i].Content,
			Position: i,
			Lines:    lines,
			Metadata: docs[i].Metadata,
		}
	}
	return records
}

func outputChunksJSON(cmd *cobra.Command, records []domain.Chunk) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal chunks: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputChunksText(cmd *cobra.Command, source string, records []domain.Chunk) error {
	if len(records) == 0 {
		cmd.Printf("%s: no chunks (empty input)\n", source)
		return nil
	}

	cmd.Printf("%s: %d chunks\n", source, len(records))
	for i := range records {
		cmd.Println()
		cmd.Printf("--- chunk %d (lines %d-%d, %d chars) ---\n",
			records[i].Position+1, records[i].Lines.From, records[i].Lines.To, len(records[i].Content))
		cmd.Println(records[i].Content)
	}
	return nil
}
