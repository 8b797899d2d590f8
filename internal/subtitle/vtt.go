package subtitle

import (
	"regexp"
	"strings"
)

var (
	vttTimingPrefix = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{3}\s*-->`)
	vttTimingLine   = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2}\.\d{3})\s*-->\s*(\d{2}:\d{2}:\d{2}\.\d{3})`)
)

// ParseVTT parses WEBVTT caption text into entries. The header and any
// metadata before the first cue timing line are skipped. Cue settings after
// the timecodes are ignored, and cues that are empty after tag stripping are
// dropped. Indexes are assigned 1-based in emission order.
func ParseVTT(content string) []Entry {
	var entries []Entry
	lines := strings.Split(content, "\n")

	i := 0
	for i < len(lines) && !vttTimingPrefix.MatchString(lines[i]) {
		i++
	}

	index := 1
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		m := vttTimingLine.FindStringSubmatch(line)
		if m == nil {
			i++
			continue
		}

		// Cue text runs until a blank line or the next timing line, which
		// stays unconsumed for the outer loop.
		i++
		var textLines []string
		for i < len(lines) {
			textLine := strings.TrimSpace(lines[i])
			if textLine == "" || vttTimingPrefix.MatchString(textLine) {
				break
			}
			if clean := tagPattern.ReplaceAllString(textLine, ""); clean != "" {
				textLines = append(textLines, clean)
			}
			i++
		}

		if len(textLines) > 0 {
			entries = append(entries, Entry{
				Index:        index,
				StartTime:    m[1],
				EndTime:      m[2],
				Text:         strings.Join(textLines, " "),
				StartSeconds: TimeToSeconds(m[1]),
			})
			index++
		}
	}

	return entries
}
