package source

import (
	"fmt"
	"regexp"

	"subtext/internal/services"
)

// Platform identifies a supported video site.
type Platform string

const (
	PlatformYouTube  Platform = "youtube"
	PlatformBilibili Platform = "bilibili"
)

// platformPatterns anchor at the start of the URL and tolerate a missing
// scheme or www prefix. Each pattern captures the platform-native video
// id.
var platformPatterns = []struct {
	platform Platform
	re       *regexp.Regexp
}{
	{PlatformYouTube, regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?youtube\.com/watch\?v=([\w-]+)`)},
	{PlatformYouTube, regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?youtu\.be/([\w-]+)`)},
	{PlatformYouTube, regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?youtube\.com/shorts/([\w-]+)`)},
	{PlatformBilibili, regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?bilibili\.com/video/(av\d+|BV\w+)`)},
	{PlatformBilibili, regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?b23\.tv/(\w+)`)},
}

// DetectPlatform reports which platform serves the URL.
func DetectPlatform(url string) (Platform, error) {
	for _, pattern := range platformPatterns {
		if pattern.re.MatchString(url) {
			return pattern.platform, nil
		}
	}
	return "", services.Wrap(services.ErrUnsupportedPlatform, "source", "detect platform", fmt.Sprintf("no pattern matches %q", url), nil)
}

// ExtractVideoID resolves a URL to its platform and native video id
// (watch?v= value, BV/av code, short-link slug).
func ExtractVideoID(url string) (Platform, string, error) {
	for _, pattern := range platformPatterns {
		if match := pattern.re.FindStringSubmatch(url); match != nil {
			return pattern.platform, match[1], nil
		}
	}
	return "", "", services.Wrap(services.ErrUnsupportedPlatform, "source", "extract video id", fmt.Sprintf("no pattern matches %q", url), nil)
}
