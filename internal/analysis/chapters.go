package analysis

import (
	"fmt"

	"subtext/internal/services"
	"subtext/internal/subtitle"
	"subtext/internal/textutil"
)

// chapterFirstLineRunes caps the opening line recorded for each chapter.
const chapterFirstLineRunes = 100

// Chapter is a run of entries bounded by silence gaps longer than the
// threshold.
type Chapter struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	FirstLine string `json:"first_line"`
}

// ExtractChapters parses content and splits it into chapters wherever the
// silence between consecutive entries exceeds gapThreshold seconds. Fewer
// than two entries yields no chapters; gap-free input yields exactly one.
func ExtractChapters(content string, gapThreshold float64) ([]Chapter, error) {
	if gapThreshold < 0 {
		return nil, services.Wrap(services.ErrValidation, "analysis", "chapters",
			fmt.Sprintf("gap threshold must be zero or greater, got %g", gapThreshold), nil)
	}

	entries := subtitle.Parse(content)
	if len(entries) < 2 {
		return nil, nil
	}

	var chapters []Chapter
	chapterStart := entries[0]

	for i := 1; i < len(entries); i++ {
		prevEnd := subtitle.TimeToSeconds(entries[i-1].EndTime)
		gap := entries[i].StartSeconds - prevEnd

		if gap > gapThreshold {
			chapters = append(chapters, Chapter{
				StartTime: chapterStart.StartTime,
				EndTime:   entries[i-1].EndTime,
				FirstLine: textutil.TruncateRunes(chapterStart.Text, chapterFirstLineRunes),
			})
			chapterStart = entries[i]
		}
	}

	chapters = append(chapters, Chapter{
		StartTime: chapterStart.StartTime,
		EndTime:   entries[len(entries)-1].EndTime,
		FirstLine: textutil.TruncateRunes(chapterStart.Text, chapterFirstLineRunes),
	})

	return chapters, nil
}
