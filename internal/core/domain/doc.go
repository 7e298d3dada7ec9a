// Package domain defines the core business entities for Fracto.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A chunk of text with position metadata, ready for indexing
//   - Chunk: A chunk record with identity and ordinal position
//   - LineRange: The 1-based source line span covered by a chunk
//   - Language: A recognised separator preset for structured formats
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
