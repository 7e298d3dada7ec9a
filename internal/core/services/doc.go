// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (splitters, config stores).
//
// Services are pure Go with no blocking I/O of their own.
package services
