package cli

import (
	"github.com/spf13/cobra"

	"github.com/fracto-labs/fracto-cli/internal/core/domain"
	"github.com/fracto-labs/fracto-cli/internal/splitters"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List language presets",
	Long:  `Lists the language presets available for the --language flag and their separator cascades.`,
	RunE:  runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages(cmd *cobra.Command, _ []string) error {
	cmd.Println("Available language presets:")
	cmd.Println()

	for _, language := range domain.Languages() {
		separators, err := splitters.SeparatorsForLanguage(language)
		if err != nil {
			return err
		}
		cmd.Printf("  %-10s %s (%d separators)\n", language, language.Description(), len(separators))
	}

	return nil
}
