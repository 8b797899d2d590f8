package subtitle

import (
	"math"
	"strings"
	"testing"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:04,000
大家好，欢迎收看本期节目

2
00:00:04,500 --> 00:00:08,000
今天我们聊聊字幕解析

3
00:00:09,000 --> 00:00:12,000
Let's get started`

func TestParseSRTBasic(t *testing.T) {
	entries := ParseSRT(sampleSRT)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Index != 1 {
		t.Errorf("Index = %d, want 1", first.Index)
	}
	if first.StartTime != "00:00:01.000" {
		t.Errorf("StartTime = %q, want comma normalized to period", first.StartTime)
	}
	if first.EndTime != "00:00:04.000" {
		t.Errorf("EndTime = %q, want 00:00:04.000", first.EndTime)
	}
	if first.Text != "大家好，欢迎收看本期节目" {
		t.Errorf("Text = %q", first.Text)
	}
	if first.StartSeconds != 1.0 {
		t.Errorf("StartSeconds = %v, want 1.0", first.StartSeconds)
	}

	if entries[2].Text != "Let's get started" {
		t.Errorf("third entry text = %q", entries[2].Text)
	}
}

func TestParseSRTStartSecondsMatchesStartTime(t *testing.T) {
	for _, entry := range ParseSRT(sampleSRT) {
		want := TimeToSeconds(entry.StartTime)
		if math.Abs(entry.StartSeconds-want) > 1e-9 {
			t.Errorf("entry %d: StartSeconds = %v, conversion of %q = %v",
				entry.Index, entry.StartSeconds, entry.StartTime, want)
		}
	}
}

func TestParseSRTMultilineTextJoined(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:04,000\nfirst line\nsecond line"
	entries := ParseSRT(content)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Text != "first line second line" {
		t.Errorf("Text = %q, want lines joined with a space", entries[0].Text)
	}
}

func TestParseSRTWithoutCueNumbers(t *testing.T) {
	content := "00:00:01,000 --> 00:00:02,000\nfirst\n\n00:00:03,000 --> 00:00:04,000\nsecond"
	entries := ParseSRT(content)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Index != 1 || entries[1].Index != 2 {
		t.Errorf("indexes = %d, %d, want running counter 1, 2", entries[0].Index, entries[1].Index)
	}
}

func TestParseSRTSkipsMalformedBlocks(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"bad timecode line", "1\nbad-timecode\nHello\n", 0},
		{"single line block", "just one line", 0},
		{"empty input", "", 0},
		{"whitespace only", "  \n \n  ", 0},
		{"tag-only text dropped", "1\n00:00:01,000 --> 00:00:02,000\n<i></i>", 0},
		{
			"malformed between good blocks",
			"1\n00:00:01,000 --> 00:00:02,000\ngood one\n\n2\nnot a timecode\noops\n\n3\n00:00:05,000 --> 00:00:06,000\ngood two",
			2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(ParseSRT(tt.content)); got != tt.want {
				t.Errorf("entry count = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseSRTFallbackIndexCountsAcceptedEntries(t *testing.T) {
	// The first block fails, so the unnumbered second block gets index 1.
	content := "1\nbroken\nskipped\n\n00:00:01,000 --> 00:00:02,000\nkept"
	entries := ParseSRT(content)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Index != 1 {
		t.Errorf("Index = %d, want 1", entries[0].Index)
	}
}

func TestParseSRTStripsMarkup(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:02,000\n<i>Hello</i> <b>world</b>"
	entries := ParseSRT(content)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Text != "Hello world" {
		t.Errorf("Text = %q, want markup stripped", entries[0].Text)
	}
}

func TestParseSRTPeriodSeparatorsAccepted(t *testing.T) {
	content := "1\n00:00:01.500 --> 00:00:02.500\nalready canonical"
	entries := ParseSRT(content)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].StartTime != "00:00:01.500" {
		t.Errorf("StartTime = %q", entries[0].StartTime)
	}
	if entries[0].StartSeconds != 1.5 {
		t.Errorf("StartSeconds = %v, want 1.5", entries[0].StartSeconds)
	}
}

func TestParseSRTBlankLineRunsSeparateBlocks(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:02,000\nfirst\n\n\n\n2\n00:00:03,000 --> 00:00:04,000\nsecond"
	entries := ParseSRT(content)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if !strings.Contains(entries[1].Text, "second") {
		t.Errorf("second entry text = %q", entries[1].Text)
	}
}

func TestParseSRTKeepsExplicitCueNumbers(t *testing.T) {
	content := "7\n00:00:01,000 --> 00:00:02,000\nlate start"
	entries := ParseSRT(content)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Index != 7 {
		t.Errorf("Index = %d, want explicit 7", entries[0].Index)
	}
}
