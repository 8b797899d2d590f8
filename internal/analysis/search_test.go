package analysis

import (
	"errors"
	"strings"
	"testing"

	"subtext/internal/services"
)

const searchFixture = `1
00:00:01,000 --> 00:00:02,000
the first entry

2
00:00:04,500 --> 00:00:06,000
the second entry

3
00:00:08,000 --> 00:00:09,000
third with Hello World

4
00:00:11,000 --> 00:00:12,000
fourth entry text

5
00:00:14,000 --> 00:00:15,000
the last entry`

func TestSearchReportUnparseableSentinel(t *testing.T) {
	for _, content := range []string{"", "not a subtitle file at all"} {
		got, err := SearchReport(content, []string{"anything"}, 2)
		if err != nil {
			t.Fatalf("SearchReport: %v", err)
		}
		if got != UnparseableNotice {
			t.Errorf("SearchReport(%q) = %q, want sentinel", content, got)
		}
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	results, err := Search(searchFixture, []string{"hello world"}, 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 keyword result, got %d", len(results))
	}
	result := results[0]
	if result.Count != 1 {
		t.Fatalf("Count = %d, want 1", result.Count)
	}
	match := result.Matches[0]
	if match.Text != "third with Hello World" {
		t.Errorf("Text = %q", match.Text)
	}
	if match.Timestamp != "00:00:08.000" {
		t.Errorf("Timestamp = %q", match.Timestamp)
	}
	if match.Seconds != 8.0 {
		t.Errorf("Seconds = %v", match.Seconds)
	}
}

func TestSearchContextWindowBounds(t *testing.T) {
	t.Run("match at start", func(t *testing.T) {
		results, err := Search(searchFixture, []string{"first"}, 2)
		if err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(results[0].Matches[0].Context, "\n")
		if len(lines) != 3 {
			t.Fatalf("context lines = %d, want 3 (window clipped at start)", len(lines))
		}
		if !strings.HasPrefix(lines[0], ">>>") {
			t.Errorf("matched line not marked: %q", lines[0])
		}
	})

	t.Run("match at end", func(t *testing.T) {
		results, err := Search(searchFixture, []string{"last"}, 2)
		if err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(results[0].Matches[0].Context, "\n")
		if len(lines) != 3 {
			t.Fatalf("context lines = %d, want 3 (window clipped at end)", len(lines))
		}
		if !strings.HasPrefix(lines[2], ">>>") {
			t.Errorf("matched line not marked: %q", lines[2])
		}
	})

	t.Run("zero context is only the match", func(t *testing.T) {
		results, err := Search(searchFixture, []string{"second"}, 0)
		if err != nil {
			t.Fatal(err)
		}
		got := results[0].Matches[0].Context
		want := ">>> [00:00:04.500] the second entry"
		if got != want {
			t.Errorf("Context = %q, want %q", got, want)
		}
	})
}

func TestSearchKeywordIsLiteralNotPattern(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:02,000\nversion 1.5 released\n\n2\n00:00:03,000 --> 00:00:04,000\nversion 1x5 internal"
	results, err := Search(content, []string{"1.5"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Count != 1 {
		t.Errorf("Count = %d, want 1 (dot must not match as a pattern)", results[0].Count)
	}
	if results[0].Matches[0].Text != "version 1.5 released" {
		t.Errorf("matched %q", results[0].Matches[0].Text)
	}
}

func TestSearchKeywordOrderPreserved(t *testing.T) {
	results, err := Search(searchFixture, []string{"entry", "不存在的词"}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 keyword results, got %d", len(results))
	}
	if results[0].Keyword != "entry" || results[1].Keyword != "不存在的词" {
		t.Errorf("keyword order = %q, %q", results[0].Keyword, results[1].Keyword)
	}
	if results[1].Count != 0 {
		t.Errorf("missing keyword Count = %d, want 0", results[1].Count)
	}
}

func TestSearchRejectsNegativeContextLines(t *testing.T) {
	_, err := Search(searchFixture, []string{"entry"}, -1)
	if !errors.Is(err, services.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
	_, err = SearchReport(searchFixture, []string{"entry"}, -1)
	if !errors.Is(err, services.ErrValidation) {
		t.Errorf("expected validation error from report path, got %v", err)
	}
}

func TestSearchReportLayout(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:02,000
the first entry

2
00:00:04,500 --> 00:00:06,000
the second entry

3
00:00:08,000 --> 00:00:09,000
the third entry`

	got, err := SearchReport(content, []string{"second"}, 1)
	if err != nil {
		t.Fatalf("SearchReport: %v", err)
	}

	banner := strings.Repeat("=", 60)
	divider := strings.Repeat("-", 40)
	want := strings.Join([]string{
		banner,
		"🔍 字幕关键词搜索结果",
		banner,
		"",
		"📌 关键词: \"second\" (找到 1 处)",
		divider,
		"",
		"  [1] 时间戳: 00:00:04.500 (4.5秒)",
		"      匹配文本: the second entry",
		"",
		"      上下文:",
		"          [00:00:01.000] the first entry",
		"      >>> [00:00:04.500] the second entry",
		"          [00:00:08.000] the third entry",
		"",
		banner,
		"总计: 搜索 1 个关键词，找到 1 处匹配",
		banner,
	}, "\n")

	if got != want {
		t.Errorf("report mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestSearchReportNoMatchesNotice(t *testing.T) {
	got, err := SearchReport(searchFixture, []string{"没有这个词"}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "   未找到匹配内容") {
		t.Errorf("report missing no-match notice:\n%s", got)
	}
	if !strings.Contains(got, "总计: 搜索 1 个关键词，找到 0 处匹配") {
		t.Errorf("report missing zero total:\n%s", got)
	}
}
