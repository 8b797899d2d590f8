package analysis

import (
	"fmt"
	"strings"

	"subtext/internal/services"
	"subtext/internal/subtitle"
)

// Segment is a fixed-duration window of concatenated subtitle text. Interior
// segments end on their bucket boundary; the final segment ends at the last
// entry's true end time.
type Segment struct {
	StartTime    string `json:"start_time"`
	StartSeconds int    `json:"start_seconds"`
	Text         string `json:"text"`
	EndTime      string `json:"end_time"`
}

// SummarySegments parses content and buckets entries into windows of
// segmentDuration seconds aligned to multiples of the duration. Empty or
// unparseable content yields no segments.
func SummarySegments(content string, segmentDuration int) ([]Segment, error) {
	if segmentDuration <= 0 {
		return nil, services.Wrap(services.ErrValidation, "analysis", "segments",
			fmt.Sprintf("segment duration must be greater than zero, got %d", segmentDuration), nil)
	}

	entries := subtitle.Parse(content)
	if len(entries) == 0 {
		return nil, nil
	}

	var segments []Segment
	currentStart := entries[0].StartTime
	currentSeconds := 0
	var texts []string

	for _, entry := range entries {
		bucket := (int(entry.StartSeconds) / segmentDuration) * segmentDuration
		if bucket != currentSeconds {
			if len(texts) > 0 {
				segments = append(segments, Segment{
					StartTime:    currentStart,
					StartSeconds: currentSeconds,
					Text:         strings.Join(texts, " "),
					EndTime:      subtitle.SecondsToTime(float64(currentSeconds + segmentDuration)),
				})
			}
			currentStart = subtitle.SecondsToTime(float64(bucket))
			currentSeconds = bucket
			texts = nil
		}
		texts = append(texts, entry.Text)
	}

	if len(texts) > 0 {
		segments = append(segments, Segment{
			StartTime:    currentStart,
			StartSeconds: currentSeconds,
			Text:         strings.Join(texts, " "),
			EndTime:      entries[len(entries)-1].EndTime,
		})
	}

	return segments, nil
}
