// Package testsupport centralizes helpers shared by package tests:
// temp-dir backed configs, library stores, and caption fixtures.
package testsupport

import (
	"path/filepath"
	"testing"

	"subtext/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Source.CaptionsDir = filepath.Join(base, "captions")
	cfgVal.Library.DatabaseDir = filepath.Join(base, "library")
	cfgVal.Logging.Dir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithDefaultLanguage sets the preferred caption language on the test config.
func WithDefaultLanguage(lang string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Source.DefaultLanguage = lang
	}
}

// WithCookiesPath points the source cookies file at the given path.
func WithCookiesPath(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Source.CookiesPath = path
	}
}

// WithLLM enables the summarizer backend against the given base URL.
func WithLLM(baseURL, model string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.LLM.Enabled = true
		b.cfg.LLM.APIKey = "test"
		b.cfg.LLM.BaseURL = baseURL
		b.cfg.LLM.Model = model
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Library.DatabaseDir)
}
