package subtitle

import "testing"

const sampleVTT = `WEBVTT
Kind: captions
Language: zh-Hans

00:00:01.000 --> 00:00:04.000 align:start position:0%
大家好
欢迎收看

00:00:04.500 --> 00:00:08.000
<c>今天聊聊</c>字幕解析

00:00:09.000 --> 00:00:12.000
bye for now`

func TestParseVTTBasic(t *testing.T) {
	entries := ParseVTT(sampleVTT)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Index != 1 {
		t.Errorf("Index = %d, want 1", first.Index)
	}
	if first.StartTime != "00:00:01.000" || first.EndTime != "00:00:04.000" {
		t.Errorf("timecodes = %q --> %q", first.StartTime, first.EndTime)
	}
	if first.Text != "大家好 欢迎收看" {
		t.Errorf("Text = %q, want cue lines joined with a space", first.Text)
	}
	if first.StartSeconds != 1.0 {
		t.Errorf("StartSeconds = %v, want 1.0", first.StartSeconds)
	}

	if entries[1].Text != "今天聊聊字幕解析" {
		t.Errorf("second entry text = %q, want tags stripped", entries[1].Text)
	}
}

func TestParseVTTStripsMarkup(t *testing.T) {
	content := "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\n<b>Hi</b> there\n"
	entries := ParseVTT(content)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Text != "Hi there" {
		t.Errorf("Text = %q, want \"Hi there\"", entries[0].Text)
	}
}

func TestParseVTTSkipsEmptyCuesAndRenumbers(t *testing.T) {
	content := `WEBVTT

00:00:01.000 --> 00:00:02.000
<c></c>

00:00:03.000 --> 00:00:04.000
kept`
	entries := ParseVTT(content)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Index != 1 {
		t.Errorf("Index = %d, want 1 since the empty cue emits nothing", entries[0].Index)
	}
	if entries[0].Text != "kept" {
		t.Errorf("Text = %q", entries[0].Text)
	}
}

func TestParseVTTConsecutiveTimingLines(t *testing.T) {
	// No blank line between cues: the second timing line ends the first cue
	// and starts the next one.
	content := "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nfirst\n00:00:03.000 --> 00:00:04.000\nsecond\n"
	entries := ParseVTT(content)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Text != "first" || entries[1].Text != "second" {
		t.Errorf("texts = %q, %q", entries[0].Text, entries[1].Text)
	}
	if entries[1].StartTime != "00:00:03.000" {
		t.Errorf("second StartTime = %q", entries[1].StartTime)
	}
}

func TestParseVTTHeaderOnly(t *testing.T) {
	if entries := ParseVTT("WEBVTT\nKind: captions\n"); len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestParseVTTRequiresFullClockTimestamps(t *testing.T) {
	// Shortened MM:SS.mmm cue timings are not recognized.
	content := "WEBVTT\n\n00:01.000 --> 00:02.000\nshort clock\n"
	if entries := ParseVTT(content); len(entries) != 0 {
		t.Errorf("expected no entries for MM:SS timings, got %d", len(entries))
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Format
	}{
		{"webvtt header", "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nhi", FormatVTT},
		{"webvtt with leading whitespace", "\n  WEBVTT\n", FormatVTT},
		{"srt numbered block", "1\n00:00:01,000 --> 00:00:02,000\nhi", FormatSRT},
		{"unrecognized defaults to srt", "random text", FormatSRT},
		{"empty", "", FormatSRT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(tt.content); got != tt.want {
				t.Errorf("DetectFormat = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDispatchesOnFormat(t *testing.T) {
	vtt := "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nvtt text\n"
	srt := "1\n00:00:01,000 --> 00:00:02,000\nsrt text\n"

	vttEntries := Parse(vtt)
	if len(vttEntries) != 1 || vttEntries[0].Text != "vtt text" {
		t.Errorf("vtt parse = %+v", vttEntries)
	}

	srtEntries := Parse(srt)
	if len(srtEntries) != 1 || srtEntries[0].Text != "srt text" {
		t.Errorf("srt parse = %+v", srtEntries)
	}
	if srtEntries[0].StartTime != "00:00:01.000" {
		t.Errorf("srt StartTime = %q, want normalized separator", srtEntries[0].StartTime)
	}
}
