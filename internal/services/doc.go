// Package services defines shared utilities consumed by the subtitle
// analysis operations and external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp request identifiers, platform names, and
//     operation labels for logging and tracing.
//   - Structured error markers plus the Wrap helper that keep failure
//     classification consistent across the CLI and the source boundary.
//
// Use these helpers when wiring new operations so operational behaviour
// (error handling, observability) stays uniform across the toolkit.
package services
