package subtitle

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	blockSplitPattern = regexp.MustCompile(`\n\s*\n`)
	srtTimingPattern  = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2}[,.]\d{3})\s*-->\s*(\d{2}:\d{2}:\d{2}[,.]\d{3})`)
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
)

// ParseSRT parses SRT caption text into entries. Blocks that are too short,
// carry no parseable timecode line, or are empty after tag stripping are
// dropped without error.
func ParseSRT(content string) []Entry {
	var entries []Entry

	for _, block := range blockSplitPattern.Split(strings.TrimSpace(content), -1) {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 {
			continue
		}

		// A leading cue number is optional. Without one, line 0 is the
		// timecode line and the index continues from the accepted count.
		timingIdx := 0
		index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err == nil {
			timingIdx = 1
		} else {
			index = len(entries) + 1
		}

		m := srtTimingPattern.FindStringSubmatch(lines[timingIdx])
		if m == nil {
			continue
		}
		start := strings.ReplaceAll(m[1], ",", ".")
		end := strings.ReplaceAll(m[2], ",", ".")

		text := tagPattern.ReplaceAllString(strings.Join(lines[timingIdx+1:], " "), "")
		if strings.TrimSpace(text) == "" {
			continue
		}

		entries = append(entries, Entry{
			Index:        index,
			StartTime:    start,
			EndTime:      end,
			Text:         text,
			StartSeconds: TimeToSeconds(start),
		})
	}

	return entries
}
