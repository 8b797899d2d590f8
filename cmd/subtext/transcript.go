package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"subtext/internal/charset"
	"subtext/internal/services"
	"subtext/internal/source"
	"subtext/internal/subtitle"
)

// transcriptInput is a caption payload resolved from either a local file
// or a configured source URL.
type transcriptInput struct {
	Content   string
	Format    subtitle.Format
	Language  string
	Automatic bool
	URL       string
	Platform  string
	FromFile  bool
	Path      string
}

// resolveTranscript loads the caption payload named by target. A path to
// an existing file wins over URL interpretation; anything else goes
// through the configured source with lang (or the configured default)
// as the preferred caption language.
func (c *commandContext) resolveTranscript(cmd *cobra.Command, target, lang string) (*transcriptInput, error) {
	trimmed := strings.TrimSpace(target)
	if trimmed == "" {
		return nil, services.Wrap(services.ErrValidation, "cli", "resolve transcript", "file or URL argument is empty", nil)
	}

	if info, err := os.Stat(trimmed); err == nil && !info.IsDir() {
		return readTranscriptFile(trimmed)
	}

	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(lang) == "" {
		lang = cfg.Source.DefaultLanguage
	}
	src, err := c.newSource()
	if err != nil {
		return nil, err
	}
	payload, err := src.FetchSubtitleText(cmd.Context(), trimmed, lang, c.fetchOptions())
	if err != nil {
		return nil, err
	}

	input := &transcriptInput{
		Content:   payload.Text,
		Format:    payload.Format,
		Language:  payload.Language,
		Automatic: payload.Automatic,
		URL:       trimmed,
	}
	if platform, err := source.DetectPlatform(trimmed); err == nil {
		input.Platform = string(platform)
	}
	return input, nil
}

func readTranscriptFile(path string) (*transcriptInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read subtitle file: %w", err)
	}
	decoded, err := charset.DecodeUTF8(raw)
	if err != nil {
		return nil, fmt.Errorf("decode subtitle file %s: %w", path, err)
	}
	content := string(decoded)
	return &transcriptInput{
		Content:  content,
		Format:   subtitle.DetectFormat(content),
		FromFile: true,
		Path:     path,
	}, nil
}

// fetchMetadataQuiet returns sidecar metadata for url. Lookup failures
// degrade to nil so metadata stays optional.
func (c *commandContext) fetchMetadataQuiet(cmd *cobra.Command, url string) *source.VideoMetadata {
	src, err := c.newSource()
	if err != nil {
		return nil
	}
	meta, err := src.FetchVideoMetadata(cmd.Context(), url, c.fetchOptions())
	if err != nil {
		return nil
	}
	return meta
}

// displayTitle derives a human title for the input: the recorded
// metadata title for URLs, the file name without extension for local
// files.
func (c *commandContext) displayTitle(cmd *cobra.Command, input *transcriptInput) string {
	if !input.FromFile {
		if meta := c.fetchMetadataQuiet(cmd, input.URL); meta != nil {
			return meta.Title
		}
	}
	return fallbackTitle(input)
}

// fallbackTitle names an input without consulting metadata: the file
// name without extension, or the video id for URLs.
func fallbackTitle(input *transcriptInput) string {
	if input.FromFile {
		base := filepath.Base(input.Path)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	if _, id, err := source.ExtractVideoID(input.URL); err == nil {
		return id
	}
	return input.URL
}
