// Package cli implements the cobra command-line interface for Fracto.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fracto-labs/fracto-cli/internal/adapters/driven/config/file"
	"github.com/fracto-labs/fracto-cli/internal/core/ports/driving"
	"github.com/fracto-labs/fracto-cli/internal/core/services"
	"github.com/fracto-labs/fracto-cli/internal/logger"
	"github.com/fracto-labs/fracto-cli/internal/splitters"
)

// version is set at build time via -ldflags.
var version = "0.1.0"

// Services used by the commands. Wired in initServices, replaced by
// test doubles in tests.
var (
	settingsService  driving.SettingsService
	splitterRegistry *splitters.Registry
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "fracto",
	Short: "Split documents into bounded-size chunks",
	Long: `Fracto splits text documents into bounded-size, overlapping chunks
with approximate line position metadata, ready for embedding and
indexing pipelines.

Splitting is recursive: a cascade of separators is tried in order and
oversized pieces are re-split with progressively finer separators.
Language presets tune the cascade for markdown, latex and html.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")

	splitterRegistry = splitters.NewRegistry()
	splitters.RegisterDefaults(splitterRegistry)
}

// Execute wires the default services and runs the root command.
func Execute(ctx context.Context) error {
	if err := initServices(""); err != nil {
		return err
	}
	return rootCmd.ExecuteContext(ctx)
}

// initServices wires the production services. configDir overrides the
// default ~/.fracto location; empty means default.
func initServices(configDir string) error {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	settingsService = services.NewSettingsService(store)
	return nil
}
