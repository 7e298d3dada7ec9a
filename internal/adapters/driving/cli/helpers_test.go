package cli

import (
	"bytes"
	"context"

	"github.com/fracto-labs/fracto-cli/internal/adapters/driven/storage/memory"
	"github.com/fracto-labs/fracto-cli/internal/core/services"
)

// setupTestServices swaps the package services for memory-backed test
// doubles and resets command flags. The returned cleanup restores the
// previous services.
func setupTestServices() func() {
	prevSettings := settingsService
	settingsService = services.NewSettingsService(memory.NewConfigStore())

	resetSplitFlags()
	resetSettingsFlags()

	return func() {
		settingsService = prevSettings
		resetSplitFlags()
		resetSettingsFlags()
	}
}

func resetSplitFlags() {
	splitChunkSize = 0
	splitChunkOverlap = -1
	splitLanguage = ""
	splitJSON = false
	splitWatch = false

	for _, name := range []string{"chunk-size", "chunk-overlap", "language", "json", "watch"} {
		if flag := splitCmd.Flags().Lookup(name); flag != nil {
			flag.Changed = false
		}
	}
}

func resetSettingsFlags() {
	settingsChunkSize = 0
	settingsChunkOverlap = -1
	settingsLanguage = ""

	for _, name := range []string{"chunk-size", "chunk-overlap", "language"} {
		if flag := settingsSetCmd.Flags().Lookup(name); flag != nil {
			flag.Changed = false
		}
	}
}

// executeCommand runs the root command with the given args, capturing
// combined output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(bytes.NewReader(nil))
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}
