package analysis

import (
	"fmt"
	"strings"

	"subtext/internal/services"
	"subtext/internal/subtitle"
	"subtext/internal/textutil"
)

// UnparseableNotice is the report returned when the input text yields no
// entries.
const UnparseableNotice = "无法解析字幕内容"

// Match is a single keyword hit with its rendered context block.
type Match struct {
	Timestamp string  `json:"timestamp"`
	Seconds   float64 `json:"seconds"`
	Text      string  `json:"text"`
	Context   string  `json:"context"`
}

// KeywordResult aggregates the hits for one keyword.
type KeywordResult struct {
	Keyword string  `json:"keyword"`
	Matches []Match `json:"matches"`
	Count   int     `json:"count"`
}

// Search parses content and returns structured per-keyword results. Matching
// is a case-insensitive literal substring test; keywords keep their given
// order and hits follow entry order.
func Search(content string, keywords []string, contextLines int) ([]KeywordResult, error) {
	if err := validateContextLines(contextLines); err != nil {
		return nil, err
	}
	return searchEntries(subtitle.Parse(content), keywords, contextLines), nil
}

// SearchReport runs a search and renders the formatted text report. Content
// that parses to zero entries produces UnparseableNotice rather than an
// error.
func SearchReport(content string, keywords []string, contextLines int) (string, error) {
	if err := validateContextLines(contextLines); err != nil {
		return "", err
	}
	entries := subtitle.Parse(content)
	if len(entries) == 0 {
		return UnparseableNotice, nil
	}
	return renderSearchReport(searchEntries(entries, keywords, contextLines)), nil
}

func validateContextLines(contextLines int) error {
	if contextLines < 0 {
		return services.Wrap(services.ErrValidation, "analysis", "search",
			fmt.Sprintf("context lines must be zero or greater, got %d", contextLines), nil)
	}
	return nil
}

func searchEntries(entries []subtitle.Entry, keywords []string, contextLines int) []KeywordResult {
	results := make([]KeywordResult, 0, len(keywords))

	for _, keyword := range keywords {
		needle := strings.ToLower(keyword)
		var matches []Match

		for i, entry := range entries {
			if !strings.Contains(strings.ToLower(entry.Text), needle) {
				continue
			}

			start := max(0, i-contextLines)
			end := min(len(entries), i+contextLines+1)
			context := make([]string, 0, end-start)
			for j := start; j < end; j++ {
				marker := textutil.Ternary(j == i, ">>>", "   ")
				context = append(context, fmt.Sprintf("%s [%s] %s", marker, entries[j].StartTime, entries[j].Text))
			}

			matches = append(matches, Match{
				Timestamp: entry.StartTime,
				Seconds:   entry.StartSeconds,
				Text:      entry.Text,
				Context:   strings.Join(context, "\n"),
			})
		}

		results = append(results, KeywordResult{
			Keyword: keyword,
			Matches: matches,
			Count:   len(matches),
		})
	}

	return results
}
