// Package splitters provides text splitter implementations and the
// registry used to construct them from configuration.
//
// The concrete strategies live in subpackages (currently only the
// recursive separator-cascading splitter). This package holds the
// language separator presets and the name-to-builder registry consumed
// by the CLI and MCP adapters.
package splitters
