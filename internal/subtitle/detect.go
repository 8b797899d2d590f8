package subtitle

import "strings"

// Format identifies a caption text format.
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// DetectFormat classifies raw caption text. Content whose trimmed form starts
// with the WEBVTT magic is VTT; everything else is handed to the SRT parser,
// whose leniency absorbs unrecognized input as an empty result.
func DetectFormat(content string) Format {
	if strings.HasPrefix(strings.TrimSpace(content), "WEBVTT") {
		return FormatVTT
	}
	return FormatSRT
}

// Parse detects the caption format and dispatches to the matching parser.
func Parse(content string) []Entry {
	if DetectFormat(content) == FormatVTT {
		return ParseVTT(content)
	}
	return ParseSRT(content)
}
