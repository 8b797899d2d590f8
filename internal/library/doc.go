// Package library persists analyzed transcripts in a local SQLite
// database so previous parse and fetch results can be listed, fetched
// and searched without touching the source again.
//
// The store keeps one row per saved transcript, keyed by a UUID. Free
// text search ranks rows with the TF-IDF weighted fingerprints from
// internal/textutil; plain substring search runs as a SQL LIKE query.
package library
