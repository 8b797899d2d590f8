package source

import (
	"fmt"
	"strings"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// preferenceTable expands a requested language code into the candidate
// codes platforms actually publish tracks under, best first.
var preferenceTable = map[string][]string{
	"zh":      {"zh-Hans", "zh-CN", "zh-TW", "zh-Hant", "zh"},
	"zh-Hans": {"zh-Hans", "zh-CN", "zh"},
	"zh-Hant": {"zh-Hant", "zh-TW"},
	"en":      {"en", "en-US", "en-GB"},
	"ja":      {"ja"},
}

// PreferenceList returns the ordered candidate codes for a requested
// language. Unknown codes resolve to themselves.
func PreferenceList(lang string) []string {
	if candidates, ok := preferenceTable[lang]; ok {
		return append([]string(nil), candidates...)
	}
	return []string{lang}
}

// CanonicalLanguage normalizes a language code to its BCP 47 form.
// Strings the parser rejects keep their literal form.
func CanonicalLanguage(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	return tag.String()
}

// LanguageInfo renders the display label for a caption track code, e.g.
// "English (en)". Codes without a display name come back unchanged.
func LanguageInfo(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	name := display.English.Tags().Name(tag)
	if name == "" {
		return code
	}
	return fmt.Sprintf("%s (%s)", name, code)
}

// TrackMatch identifies the caption track chosen for a language request.
type TrackMatch struct {
	Code      string
	Automatic bool
}

// MatchTrack picks the track satisfying a language request: every
// preference-list candidate is tried against the manual pool before any
// is tried against the automatic pool. Comparison is case-insensitive
// and the matched track keeps its published code.
func MatchTrack(tracks *TrackList, lang string) (TrackMatch, bool) {
	if tracks == nil {
		return TrackMatch{}, false
	}
	pools := []struct {
		tracks    []CaptionTrack
		automatic bool
	}{
		{tracks.Manual, false},
		{tracks.Automatic, true},
	}
	candidates := PreferenceList(lang)
	for _, pool := range pools {
		for _, candidate := range candidates {
			for _, track := range pool.tracks {
				if strings.EqualFold(track.Code, candidate) {
					return TrackMatch{Code: track.Code, Automatic: pool.automatic}, true
				}
			}
		}
	}
	return TrackMatch{}, false
}

// DetectTextLanguage guesses the dominant language of transcript text
// and reports it as a preference-table key. The empty string means the
// detection was unreliable or outside the supported set.
func DetectTextLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	switch info.Lang {
	case whatlanggo.Cmn:
		return "zh"
	case whatlanggo.Eng:
		return "en"
	case whatlanggo.Jpn:
		return "ja"
	default:
		return ""
	}
}
