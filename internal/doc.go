// Package internal contains the implementation packages behind the
// sailfish CLI.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - cli: cobra commands (render, escape, bench, version)
//   - config: configuration management with validation
//   - demo: a profile-page template in the shape the compiler emits
//   - logging: slog-backed structured logging
//   - version: build metadata
//
// The rendering core itself is public API and lives in the render and
// templrender packages at the module root; internal packages only drive
// it.
package internal
