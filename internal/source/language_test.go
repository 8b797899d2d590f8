package source

import (
	"slices"
	"strings"
	"testing"
)

func TestPreferenceList(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want []string
	}{
		{"chinese umbrella", "zh", []string{"zh-Hans", "zh-CN", "zh-TW", "zh-Hant", "zh"}},
		{"simplified chinese", "zh-Hans", []string{"zh-Hans", "zh-CN", "zh"}},
		{"traditional chinese", "zh-Hant", []string{"zh-Hant", "zh-TW"}},
		{"english", "en", []string{"en", "en-US", "en-GB"}},
		{"japanese", "ja", []string{"ja"}},
		{"unknown code falls back to itself", "ko", []string{"ko"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PreferenceList(tc.lang)
			if !slices.Equal(got, tc.want) {
				t.Fatalf("PreferenceList(%q) = %v, want %v", tc.lang, got, tc.want)
			}
		})
	}
}

func TestPreferenceListReturnsCopy(t *testing.T) {
	first := PreferenceList("zh")
	first[0] = "mutated"
	second := PreferenceList("zh")
	if second[0] != "zh-Hans" {
		t.Fatalf("preference table leaked a mutation: %v", second)
	}
}

func TestMatchTrack(t *testing.T) {
	t.Run("manual pool wins over better automatic candidate", func(t *testing.T) {
		tracks := &TrackList{
			Manual:    []CaptionTrack{{Code: "en"}, {Code: "zh-TW"}},
			Automatic: []CaptionTrack{{Code: "zh-Hans"}},
		}
		// zh-Hans ranks first among the zh candidates, but the manual
		// zh-TW track still wins because the manual pool is exhausted
		// before the automatic pool is consulted.
		match, ok := MatchTrack(tracks, "zh")
		if !ok {
			t.Fatal("MatchTrack found no track")
		}
		if match.Code != "zh-TW" || match.Automatic {
			t.Fatalf("MatchTrack = %+v, want manual zh-TW", match)
		}
	})

	t.Run("automatic pool used when manual has no candidate", func(t *testing.T) {
		tracks := &TrackList{
			Manual:    []CaptionTrack{{Code: "en"}},
			Automatic: []CaptionTrack{{Code: "zh-CN"}},
		}
		match, ok := MatchTrack(tracks, "zh")
		if !ok {
			t.Fatal("MatchTrack found no track")
		}
		if match.Code != "zh-CN" || !match.Automatic {
			t.Fatalf("MatchTrack = %+v, want automatic zh-CN", match)
		}
	})

	t.Run("comparison is case-insensitive and keeps the published code", func(t *testing.T) {
		tracks := &TrackList{Manual: []CaptionTrack{{Code: "ZH-HANS"}}}
		match, ok := MatchTrack(tracks, "zh")
		if !ok {
			t.Fatal("MatchTrack found no track")
		}
		if match.Code != "ZH-HANS" {
			t.Fatalf("MatchTrack code = %q, want published ZH-HANS", match.Code)
		}
	})

	t.Run("candidate priority within a pool", func(t *testing.T) {
		tracks := &TrackList{
			Manual: []CaptionTrack{{Code: "zh"}, {Code: "zh-CN"}, {Code: "zh-Hans"}},
		}
		match, ok := MatchTrack(tracks, "zh")
		if !ok {
			t.Fatal("MatchTrack found no track")
		}
		if match.Code != "zh-Hans" {
			t.Fatalf("MatchTrack code = %q, want zh-Hans (highest ranked candidate)", match.Code)
		}
	})

	t.Run("no candidate present", func(t *testing.T) {
		tracks := &TrackList{Manual: []CaptionTrack{{Code: "fr"}}}
		if _, ok := MatchTrack(tracks, "ja"); ok {
			t.Fatal("MatchTrack matched a track that should not exist")
		}
	})

	t.Run("nil track list", func(t *testing.T) {
		if _, ok := MatchTrack(nil, "en"); ok {
			t.Fatal("MatchTrack matched against nil tracks")
		}
	})
}

func TestCanonicalLanguage(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"lowercase script", "zh-hans", "zh-Hans"},
		{"mixed case region", "EN-us", "en-US"},
		{"already canonical", "ja", "ja"},
		{"region kept", "zh-CN", "zh-CN"},
		{"unparseable keeps literal", "!!", "!!"},
		{"empty keeps literal", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanonicalLanguage(tc.code); got != tc.want {
				t.Fatalf("CanonicalLanguage(%q) = %q, want %q", tc.code, got, tc.want)
			}
		})
	}
}

func TestLanguageInfo(t *testing.T) {
	if got := LanguageInfo("en"); got != "English (en)" {
		t.Fatalf("LanguageInfo(en) = %q, want %q", got, "English (en)")
	}
	if got := LanguageInfo("ja"); got != "Japanese (ja)" {
		t.Fatalf("LanguageInfo(ja) = %q, want %q", got, "Japanese (ja)")
	}
	if got := LanguageInfo("zh-Hans"); !strings.HasSuffix(got, "(zh-Hans)") || got == "zh-Hans" {
		t.Fatalf("LanguageInfo(zh-Hans) = %q, want a display name with the code suffixed", got)
	}
	if got := LanguageInfo("!!"); got != "!!" {
		t.Fatalf("LanguageInfo(!!) = %q, want literal fallback", got)
	}
}

func TestDetectTextLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"chinese",
			"今天我们来聊一聊机器学习的基础概念，包括监督学习、无监督学习以及强化学习的主要区别和应用场景。",
			"zh",
		},
		{
			"english",
			"This tutorial covers the basics of machine learning and explains how the training process works, with plenty of everyday examples that should make the core ideas easy to follow for anyone new to the field.",
			"en",
		},
		{
			"japanese",
			"今日は機械学習の基礎についてお話しします。ひらがなとカタカナを含む自然な日本語の文章で、データとモデルの関係を説明していきます。",
			"ja",
		},
		{
			"unsupported language maps to empty",
			"안녕하세요 오늘은 기계 학습의 기초에 대해 자세히 이야기하겠습니다 감사합니다",
			"",
		},
		{"empty text", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectTextLanguage(tc.text); got != tc.want {
				t.Fatalf("DetectTextLanguage = %q, want %q", got, tc.want)
			}
		})
	}
}
