package recursive

import "github.com/fracto-labs/fracto-cli/internal/logger"

// Observer receives notifications about observable splitting events.
// It is informational only and never alters chunk boundaries.
type Observer interface {
	// ChunkOversized is called when a merged chunk exceeds the configured
	// chunk size. The chunk is still emitted.
	ChunkOversized(size, limit int)
}

// loggerObserver is the default Observer, reporting through the package
// logger so warnings surface on stderr.
type loggerObserver struct{}

func (loggerObserver) ChunkOversized(size, limit int) {
	logger.Warn("created a chunk of size %d, which is longer than the specified %d", size, limit)
}
