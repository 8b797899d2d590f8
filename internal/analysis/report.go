package analysis

import (
	"fmt"
	"strings"
)

var (
	reportBanner  = strings.Repeat("=", 60)
	reportDivider = strings.Repeat("-", 40)
)

// renderSearchReport produces the user-facing search report: a banner, one
// section per keyword with its hits and context blocks, and a footer with
// overall totals.
func renderSearchReport(results []KeywordResult) string {
	out := make([]string, 0, 8+len(results)*4)
	out = append(out, reportBanner, "🔍 字幕关键词搜索结果", reportBanner)

	total := 0
	for _, result := range results {
		total += result.Count
		out = append(out,
			fmt.Sprintf("\n📌 关键词: \"%s\" (找到 %d 处)", result.Keyword, result.Count),
			reportDivider,
		)

		if result.Count == 0 {
			out = append(out, "   未找到匹配内容")
			continue
		}

		for i, match := range result.Matches {
			out = append(out,
				fmt.Sprintf("\n  [%d] 时间戳: %s (%.1f秒)", i+1, match.Timestamp, match.Seconds),
				fmt.Sprintf("      匹配文本: %s", match.Text),
				"\n      上下文:",
			)
			for _, line := range strings.Split(match.Context, "\n") {
				out = append(out, "      "+line)
			}
		}
	}

	out = append(out,
		"\n"+reportBanner,
		fmt.Sprintf("总计: 搜索 %d 个关键词，找到 %d 处匹配", len(results), total),
		reportBanner,
	)

	return strings.Join(out, "\n")
}
