// Package subtitle parses SRT and WEBVTT caption text into a canonical entry
// sequence and renders entries back out as SRT or plain prose.
//
// Parsing is deliberately lenient: caption files in the wild are noisy, so
// malformed blocks and empty cues are dropped silently and callers see a
// partial or empty sequence instead of an error. Timecodes are normalized to
// period decimal separators regardless of the source format.
package subtitle
