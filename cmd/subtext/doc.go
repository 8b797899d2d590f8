// Package main hosts the subtext CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into subtitle
// parsing, keyword search, segment and chapter analysis, library
// management, and configuration scaffolding. It centralizes configuration
// resolution, source construction, and structured logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags
// here.
package main
