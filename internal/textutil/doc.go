// Package textutil provides text helpers shared across the subtitle pipeline:
// term fingerprints for transcript relevance ranking, rune-safe truncation,
// and filename sanitization for titles coming from video metadata.
//
// Tokenization lowercases text, keeps alphanumeric words of three characters
// or more, and emits overlapping two-rune terms for Han and kana runs so
// similarity ranking works for Chinese and Japanese transcripts without a
// word segmenter.
package textutil
