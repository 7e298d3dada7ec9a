package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidChunkConfig indicates an invalid splitter configuration,
	// e.g. a chunk overlap equal to or larger than the chunk size.
	// It is raised at construction time and is fatal to that instance.
	ErrInvalidChunkConfig = errors.New("invalid chunk configuration")

	// ErrUnsupportedLanguage indicates an unknown language tag was passed
	// to the separator preset lookup.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown splitter strategy name.
	ErrUnsupportedType = errors.New("unsupported type")
)
