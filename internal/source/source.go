package source

import (
	"context"

	"subtext/internal/subtitle"
)

// FetchOptions carries per-call overrides for a Source.
type FetchOptions struct {
	// CookiesPath points at a Netscape cookies file for videos that
	// require authentication. Sources that never need it ignore it.
	CookiesPath string
}

// SubtitleText is a raw caption payload plus the track that satisfied
// the request.
type SubtitleText struct {
	Text      string
	Format    subtitle.Format
	Language  string
	Automatic bool
}

// CaptionTrack describes one available caption track.
type CaptionTrack struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// TrackList partitions the available tracks into manually authored and
// automatically generated pools.
type TrackList struct {
	Manual    []CaptionTrack `json:"manual"`
	Automatic []CaptionTrack `json:"automatic"`
}

// VideoMetadata mirrors the fields a downloader records about a video.
// Absent fields carry the documented placeholder values rather than
// empty strings.
type VideoMetadata struct {
	Title           string   `json:"title"`
	DurationSeconds float64  `json:"duration"`
	DurationString  string   `json:"duration_string"`
	Uploader        string   `json:"uploader"`
	UploadDate      string   `json:"upload_date"`
	ViewCount       int64    `json:"view_count"`
	Description     string   `json:"description"`
	Platform        Platform `json:"platform"`
	WebpageURL      string   `json:"webpage_url"`
}

// Source produces captions, track lists, and metadata for supported
// video URLs.
type Source interface {
	// FetchSubtitleText returns the caption payload best matching lang.
	// When no track matches the preference list the first available
	// track is served instead, manual before automatic.
	FetchSubtitleText(ctx context.Context, url, lang string, opts FetchOptions) (*SubtitleText, error)

	// FetchVideoMetadata returns the recorded metadata for the video.
	FetchVideoMetadata(ctx context.Context, url string, opts FetchOptions) (*VideoMetadata, error)

	// ListCaptionTracks reports which caption tracks exist for the video.
	ListCaptionTracks(ctx context.Context, url string, opts FetchOptions) (*TrackList, error)
}
