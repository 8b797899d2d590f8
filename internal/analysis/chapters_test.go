package analysis

import (
	"errors"
	"strings"
	"testing"

	"subtext/internal/services"
)

func TestExtractChaptersSplitsOnGap(t *testing.T) {
	// 45s of silence between the second and third entries.
	content := "1\n00:00:00,000 --> 00:00:02,000\n节目开场白\n\n" +
		"2\n00:00:03,000 --> 00:00:05,000\n第一部分内容\n\n" +
		"3\n00:00:50,000 --> 00:00:52,000\n第二部分开始\n\n" +
		"4\n00:00:53,000 --> 00:00:55,000\n第二部分继续"

	chapters, err := ExtractChapters(content, 30.0)
	if err != nil {
		t.Fatalf("ExtractChapters: %v", err)
	}
	if len(chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(chapters))
	}

	first := chapters[0]
	if first.StartTime != "00:00:00.000" || first.EndTime != "00:00:05.000" {
		t.Errorf("first chapter spans %q - %q", first.StartTime, first.EndTime)
	}
	if first.FirstLine != "节目开场白" {
		t.Errorf("first chapter FirstLine = %q", first.FirstLine)
	}

	second := chapters[1]
	if second.StartTime != "00:00:50.000" || second.EndTime != "00:00:55.000" {
		t.Errorf("second chapter spans %q - %q", second.StartTime, second.EndTime)
	}
	if second.FirstLine != "第二部分开始" {
		t.Errorf("second chapter FirstLine = %q", second.FirstLine)
	}
}

func TestExtractChaptersGapFreeInputIsOneChapter(t *testing.T) {
	content := "1\n00:00:00,000 --> 00:00:02,000\nstart\n\n2\n00:00:03,000 --> 00:00:05,000\nend"
	chapters, err := ExtractChapters(content, 30.0)
	if err != nil {
		t.Fatal(err)
	}
	if len(chapters) != 1 {
		t.Fatalf("expected 1 chapter, got %d", len(chapters))
	}
	if chapters[0].StartTime != "00:00:00.000" || chapters[0].EndTime != "00:00:05.000" {
		t.Errorf("chapter spans %q - %q", chapters[0].StartTime, chapters[0].EndTime)
	}
}

func TestExtractChaptersGapAtThresholdDoesNotSplit(t *testing.T) {
	// The gap is exactly the threshold; only a strictly larger gap splits.
	content := "1\n00:00:00,000 --> 00:00:02,000\nfirst\n\n2\n00:00:32,000 --> 00:00:34,000\nsecond"
	chapters, err := ExtractChapters(content, 30.0)
	if err != nil {
		t.Fatal(err)
	}
	if len(chapters) != 1 {
		t.Errorf("expected 1 chapter for boundary gap, got %d", len(chapters))
	}
}

func TestExtractChaptersNeedsTwoEntries(t *testing.T) {
	for _, content := range []string{
		"",
		"1\n00:00:00,000 --> 00:00:02,000\nalone",
	} {
		chapters, err := ExtractChapters(content, 30.0)
		if err != nil {
			t.Fatal(err)
		}
		if len(chapters) != 0 {
			t.Errorf("content %q: expected no chapters, got %d", content, len(chapters))
		}
	}
}

func TestExtractChaptersFirstLineTruncatedTo100Runes(t *testing.T) {
	longLine := strings.Repeat("长", 120)
	content := "1\n00:00:00,000 --> 00:00:02,000\n" + longLine + "\n\n2\n00:00:03,000 --> 00:00:05,000\nshort"

	chapters, err := ExtractChapters(content, 30.0)
	if err != nil {
		t.Fatal(err)
	}
	if len(chapters) != 1 {
		t.Fatalf("expected 1 chapter, got %d", len(chapters))
	}
	want := strings.Repeat("长", 100)
	if chapters[0].FirstLine != want {
		t.Errorf("FirstLine has %d runes, want 100", len([]rune(chapters[0].FirstLine)))
	}
}

func TestExtractChaptersRejectsNegativeThreshold(t *testing.T) {
	_, err := ExtractChapters("irrelevant", -1)
	if !errors.Is(err, services.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
