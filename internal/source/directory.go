package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/asticode/go-astisub"

	"subtext/internal/charset"
	"subtext/internal/logging"
	"subtext/internal/services"
	"subtext/internal/subtitle"
	"subtext/internal/textutil"
)

const (
	metadataUnknown      = "未知"
	metadataZeroDuration = "00:00"
	descriptionRuneLimit = 500

	infoSidecarSuffix  = ".info.json"
	cookieMarkerSuffix = ".cookies-required"
)

// captionExtensions maps recognized caption file extensions to the
// format the payload has after reading. SubStation files and JSON
// transcript dumps convert to SRT.
var captionExtensions = map[string]subtitle.Format{
	".srt":  subtitle.FormatSRT,
	".vtt":  subtitle.FormatVTT,
	".ass":  subtitle.FormatSRT,
	".ssa":  subtitle.FormatSRT,
	".json": subtitle.FormatSRT,
}

// Directory serves captions and metadata from a local download
// directory. Files follow the layout a yt-dlp style fetcher writes:
//
//	<id>.<lang>.<ext>       caption track (srt, vtt, ass, ssa, or a
//	                        json transcript dump)
//	<id>.auto.<lang>.<ext>  automatically generated track
//	<id>.info.json          metadata sidecar
//	<id>.cookies-required   marker: captions need authentication
//	<id>.*.zip              caption bundle, searched with the same
//	                        naming, the <id>. prefix optional inside
type Directory struct {
	root   string
	logger *slog.Logger
}

var _ Source = (*Directory)(nil)

// NewDirectory builds a Directory source rooted at dir. A nil logger
// disables logging.
func NewDirectory(dir string, logger *slog.Logger) *Directory {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Directory{root: dir, logger: logger}
}

func (d *Directory) FetchSubtitleText(ctx context.Context, url, lang string, opts FetchOptions) (*SubtitleText, error) {
	_, id, err := ExtractVideoID(url)
	if err != nil {
		return nil, err
	}
	files, err := d.scan(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := d.checkCookieMarker(id, opts); err != nil {
		return nil, err
	}
	track, ok := pickTrack(files, lang)
	if !ok {
		return nil, services.Wrap(services.ErrNoCaptions, "source", "fetch subtitle", fmt.Sprintf("video id %s has no caption tracks", id), nil)
	}
	text, format, err := d.readTrack(ctx, track)
	if err != nil {
		return nil, err
	}
	d.logger.Debug("caption track selected",
		logging.String("video_id", id),
		logging.String("language", track.lang),
		logging.Bool("automatic", track.automatic))
	return &SubtitleText{Text: text, Format: format, Language: track.lang, Automatic: track.automatic}, nil
}

func (d *Directory) FetchVideoMetadata(ctx context.Context, url string, opts FetchOptions) (*VideoMetadata, error) {
	platform, id, err := ExtractVideoID(url)
	if err != nil {
		return nil, err
	}
	sidecar := filepath.Join(d.root, id+infoSidecarSuffix)
	data, err := os.ReadFile(sidecar)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrSourceUnavailable, "source", "fetch metadata", fmt.Sprintf("video id %s has no metadata sidecar", id), nil)
		}
		return nil, services.Wrap(services.ErrSourceUnavailable, "source", "fetch metadata", sidecar, err)
	}
	var sc infoSidecar
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, services.Wrap(services.ErrSourceUnavailable, "source", "fetch metadata", fmt.Sprintf("decode %s", sidecar), err)
	}
	return &VideoMetadata{
		Title:           fallbackValue(sc.Title, metadataUnknown),
		DurationSeconds: sc.Duration,
		DurationString:  fallbackValue(sc.DurationString, metadataZeroDuration),
		Uploader:        fallbackValue(sc.Uploader, metadataUnknown),
		UploadDate:      fallbackValue(sc.UploadDate, metadataUnknown),
		ViewCount:       sc.ViewCount,
		Description:     textutil.TruncateRunes(sc.Description, descriptionRuneLimit),
		Platform:        platform,
		WebpageURL:      fallbackValue(sc.WebpageURL, url),
	}, nil
}

func (d *Directory) ListCaptionTracks(ctx context.Context, url string, opts FetchOptions) (*TrackList, error) {
	_, id, err := ExtractVideoID(url)
	if err != nil {
		return nil, err
	}
	files, err := d.scan(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := d.checkCookieMarker(id, opts); err != nil {
		return nil, err
	}
	return trackListFromFiles(files), nil
}

// infoSidecar matches the yt-dlp info.json field names.
type infoSidecar struct {
	Title          string  `json:"title"`
	Duration       float64 `json:"duration"`
	DurationString string  `json:"duration_string"`
	Uploader       string  `json:"uploader"`
	UploadDate     string  `json:"upload_date"`
	ViewCount      int64   `json:"view_count"`
	Description    string  `json:"description"`
	WebpageURL     string  `json:"webpage_url"`
}

// trackFile is one caption file discovered for a video id. entry is set
// when the file lives inside a bundle.
type trackFile struct {
	lang      string
	ext       string
	automatic bool
	path      string
	entry     string
}

// scan collects every caption file recorded for the id, including those
// inside zip bundles. An id with no files at all is unavailable.
func (d *Directory) scan(ctx context.Context, id string) ([]trackFile, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrSourceUnavailable, "source", "scan captions", fmt.Sprintf("captions directory %s does not exist", d.root), nil)
		}
		return nil, services.Wrap(services.ErrSourceUnavailable, "source", "scan captions", "read captions directory", err)
	}

	var files []trackFile
	seen := false
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, id+".") {
			continue
		}
		seen = true
		full := filepath.Join(d.root, name)
		if strings.EqualFold(filepath.Ext(name), ".zip") {
			bundled, err := d.scanBundle(ctx, id, full)
			if err != nil {
				return nil, err
			}
			files = append(files, bundled...)
			continue
		}
		track, ok := parseTrackName(strings.TrimPrefix(name, id+"."))
		if !ok {
			continue
		}
		track.path = full
		files = append(files, track)
	}
	if !seen {
		return nil, services.Wrap(services.ErrSourceUnavailable, "source", "scan captions", fmt.Sprintf("video id %s has no recorded files", id), nil)
	}
	return files, nil
}

// scanBundle lists the caption files inside a zip bundle.
func (d *Directory) scanBundle(ctx context.Context, id, bundle string) ([]trackFile, error) {
	var files []trackFile
	err := walkArchive(ctx, bundle, func(name string, _ func() (io.ReadCloser, error)) error {
		track, ok := parseTrackName(strings.TrimPrefix(name, id+"."))
		if !ok {
			return nil
		}
		track.path = bundle
		track.entry = name
		files = append(files, track)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// parseTrackName decodes "<lang>.<ext>" and "auto.<lang>.<ext>" caption
// file names. The metadata sidecar never counts as a track.
func parseTrackName(name string) (trackFile, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := captionExtensions[ext]; !ok {
		return trackFile{}, false
	}
	base := strings.TrimSuffix(name, filepath.Ext(name))
	track := trackFile{ext: ext}
	if rest, ok := strings.CutPrefix(base, "auto."); ok {
		track.automatic = true
		base = rest
	}
	if base == "" || strings.Contains(base, ".") {
		return trackFile{}, false
	}
	if ext == ".json" && base == "info" {
		return trackFile{}, false
	}
	track.lang = base
	return track, true
}

// pickTrack chooses the caption file for a language request: preference
// candidates against manual tracks, then automatic ones, then the first
// available track of any language.
func pickTrack(files []trackFile, lang string) (trackFile, bool) {
	if match, ok := MatchTrack(trackListFromFiles(files), lang); ok {
		for _, file := range files {
			if file.automatic == match.Automatic && strings.EqualFold(file.lang, match.Code) {
				return file, true
			}
		}
	}
	for _, file := range files {
		if !file.automatic {
			return file, true
		}
	}
	if len(files) > 0 {
		return files[0], true
	}
	return trackFile{}, false
}

// trackListFromFiles folds discovered files into the track list shape,
// deduplicating language codes within each pool.
func trackListFromFiles(files []trackFile) *TrackList {
	tracks := &TrackList{Manual: []CaptionTrack{}, Automatic: []CaptionTrack{}}
	seen := make(map[string]struct{}, len(files))
	for _, file := range files {
		key := fmt.Sprintf("%s|%t", strings.ToLower(file.lang), file.automatic)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		entry := CaptionTrack{Code: file.lang, Info: LanguageInfo(file.lang)}
		if file.automatic {
			tracks.Automatic = append(tracks.Automatic, entry)
		} else {
			tracks.Manual = append(tracks.Manual, entry)
		}
	}
	return tracks
}

// checkCookieMarker honors <id>.cookies-required markers: the caller
// must supply an existing cookies file before captions are served.
func (d *Directory) checkCookieMarker(id string, opts FetchOptions) error {
	marker := filepath.Join(d.root, id+cookieMarkerSuffix)
	if _, err := os.Stat(marker); err != nil {
		return nil
	}
	if opts.CookiesPath != "" {
		if _, err := os.Stat(opts.CookiesPath); err == nil {
			return nil
		}
	}
	return services.Wrap(services.ErrAuthRequired, "source", "check auth", fmt.Sprintf("video id %s requires cookies", id), nil)
}

// readTrack loads a caption file, decodes it to UTF-8, and converts
// SubStation and transcript dump payloads to SRT so callers only ever
// see SRT or VTT.
func (d *Directory) readTrack(ctx context.Context, track trackFile) (string, subtitle.Format, error) {
	var raw []byte
	if track.entry == "" {
		data, err := os.ReadFile(track.path)
		if err != nil {
			return "", "", services.Wrap(services.ErrSourceUnavailable, "source", "read caption", track.path, err)
		}
		raw = data
	} else {
		data, err := readArchiveEntry(ctx, track.path, track.entry)
		if err != nil {
			return "", "", err
		}
		raw = data
	}

	decoded, err := charset.DecodeUTF8(raw)
	if err != nil {
		d.logger.Warn("caption charset detection failed, keeping raw bytes",
			logging.String("path", track.path),
			logging.Error(err))
		decoded = raw
	}

	switch track.ext {
	case ".ass", ".ssa":
		converted, err := subStationToSRT(decoded)
		if err != nil {
			return "", "", services.Wrap(services.ErrSourceUnavailable, "source", "convert caption", fmt.Sprintf("decode %s as substation", track.path), err)
		}
		return converted, subtitle.FormatSRT, nil
	case ".json":
		converted, err := transcriptDumpToSRT(decoded)
		if err != nil {
			return "", "", services.Wrap(services.ErrSourceUnavailable, "source", "convert caption", fmt.Sprintf("decode %s as transcript dump", track.path), err)
		}
		return converted, subtitle.FormatSRT, nil
	}
	return string(decoded), captionExtensions[track.ext], nil
}

// subStationToSRT converts SubStation Alpha captions to SRT text.
func subStationToSRT(data []byte) (string, error) {
	subs, err := astisub.ReadFromSSA(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := subs.WriteToSRT(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// transcriptDumpToSRT converts a transcript dump, a JSON array of cues
// with start, duration, and text fields, to SRT text.
func transcriptDumpToSRT(data []byte) (string, error) {
	var cues []subtitle.TranscriptCue
	if err := json.Unmarshal(data, &cues); err != nil {
		return "", err
	}
	if len(cues) == 0 {
		return "", errors.New("transcript dump holds no cues")
	}
	return subtitle.TranscriptSRT(cues), nil
}

func fallbackValue(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}
