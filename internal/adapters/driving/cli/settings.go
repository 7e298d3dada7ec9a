package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/fracto-labs/fracto-cli/internal/core/domain"
)

var (
	settingsChunkSize    int
	settingsChunkOverlap int
	settingsLanguage     string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage splitter defaults",
	Long:  `View or change the persisted default chunk size, chunk overlap and language preset.`,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show current splitter defaults",
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change splitter defaults",
	RunE:  runSettingsSet,
}

func init() {
	settingsSetCmd.Flags().IntVar(&settingsChunkSize, "chunk-size", 0, "target chunk size in characters")
	settingsSetCmd.Flags().IntVar(&settingsChunkOverlap, "chunk-overlap", -1, "overlap between chunks in characters")
	settingsSetCmd.Flags().StringVar(&settingsLanguage, "language", "", "separator preset: markdown, latex, html or none")

	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsGet(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	cmd.Println("Splitter defaults:")
	cmd.Printf("  Chunk size:    %d\n", settings.ChunkSize)
	cmd.Printf("  Chunk overlap: %d\n", settings.ChunkOverlap)
	if settings.Language != "" {
		cmd.Printf("  Language:      %s\n", settings.Language)
	} else {
		cmd.Printf("  Language:      (plain text)\n")
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	changed := false
	if cmd.Flags().Changed("chunk-size") {
		settings.ChunkSize = settingsChunkSize
		changed = true
	}
	if cmd.Flags().Changed("chunk-overlap") {
		settings.ChunkOverlap = settingsChunkOverlap
		changed = true
	}
	if cmd.Flags().Changed("language") {
		if settingsLanguage == "none" {
			settings.Language = ""
		} else {
			settings.Language = domain.Language(settingsLanguage)
		}
		changed = true
	}

	if !changed {
		return errors.New("nothing to change: pass --chunk-size, --chunk-overlap or --language")
	}

	if err := settingsService.Save(settings); err != nil {
		return err
	}

	cmd.Println("Settings saved.")
	return runSettingsGet(cmd, nil)
}
