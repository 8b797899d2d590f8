package subtitle

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	bareNumberLine = regexp.MustCompile(`^\d+$`)
	clockPrefix    = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}`)
)

// WriteSRT renders entries as standard SRT text with comma decimal
// separators. Parsing the result yields the same indexes, timecodes, and
// texts back.
func WriteSRT(entries []Entry) string {
	lines := make([]string, 0, len(entries)*4)
	for _, entry := range entries {
		lines = append(lines,
			strconv.Itoa(entry.Index),
			srtClock(entry.StartTime)+" --> "+srtClock(entry.EndTime),
			entry.Text,
			"",
		)
	}
	return strings.Join(lines, "\n")
}

func srtClock(timecode string) string {
	return strings.Replace(timecode, ".", ",", 1)
}

// PlainText renders raw SRT or VTT content as prose. Cue numbers, timing
// lines, and header metadata are dropped, tags are stripped, and each
// surviving cue line becomes one output line.
func PlainText(content string) string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || bareNumberLine.MatchString(line) {
			continue
		}
		if clockPrefix.MatchString(line) {
			continue
		}
		if strings.HasPrefix(line, "WEBVTT") || strings.HasPrefix(line, "Kind:") || strings.HasPrefix(line, "Language:") {
			continue
		}
		if clean := tagPattern.ReplaceAllString(line, ""); clean != "" {
			lines = append(lines, clean)
		}
	}
	return strings.Join(lines, "\n")
}

// TranscriptCue is one cue from a transcript dump: a start offset in seconds,
// a duration, and the spoken text.
type TranscriptCue struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// TranscriptSRT renders transcript cues as SRT. Cue numbers are assigned
// 1-based and each end time is the cue's start plus its duration.
func TranscriptSRT(cues []TranscriptCue) string {
	lines := make([]string, 0, len(cues)*4)
	for i, cue := range cues {
		start := srtClock(SecondsToTime(cue.Start))
		end := srtClock(SecondsToTime(cue.Start + cue.Duration))
		lines = append(lines,
			strconv.Itoa(i+1),
			start+" --> "+end,
			cue.Text,
			"",
		)
	}
	return strings.Join(lines, "\n")
}
