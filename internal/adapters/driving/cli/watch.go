package cli

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/fracto-labs/fracto-cli/internal/core/domain"
	"github.com/fracto-labs/fracto-cli/internal/logger"
)

// watchAndSplit splits every file once, then re-splits on write events
// until the command context is cancelled.
func watchAndSplit(cmd *cobra.Command, paths []string, settings *domain.SplitterSettings) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := splitFile(cmd, path, settings); err != nil {
			return err
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}

	cmd.Println()
	cmd.Println("Watching for changes. Press Ctrl+C to stop.")

	for {
		select {
		case <-cmd.Context().Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("Change detected: %s", event.Name)
			if err := splitFile(cmd, event.Name, settings); err != nil {
				// Keep watching; a transient editor rename can race the read.
				logger.Warn("Re-split of %s failed: %v", event.Name, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}
