package config

import (
	"errors"
	"fmt"

	"subtext/internal/services"
)

// Validate checks that configuration values are present and within range.
// Failures carry services.ErrConfiguration so callers can classify them.
func (c *Config) Validate() error {
	for _, check := range []func() error{
		c.validateAnalysis,
		c.validatePaths,
		c.validateLogging,
		c.validateLLM,
	} {
		if err := check(); err != nil {
			return services.Wrap(services.ErrConfiguration, "config", "validate", "", err)
		}
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.ContextLines < 0 {
		return fmt.Errorf("analysis.context_lines: must be zero or greater, got %d", c.Analysis.ContextLines)
	}
	if c.Analysis.SegmentDurationSeconds <= 0 {
		return fmt.Errorf("analysis.segment_duration_seconds: must be greater than zero, got %d", c.Analysis.SegmentDurationSeconds)
	}
	if c.Analysis.ChapterGapSeconds < 0 {
		return fmt.Errorf("analysis.chapter_gap_seconds: must be zero or greater, got %g", c.Analysis.ChapterGapSeconds)
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Library.DatabaseDir == "" {
		return errors.New("library.database_dir: cannot be empty")
	}
	if c.Logging.Dir == "" {
		return errors.New("logging.dir: cannot be empty")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateLLM() error {
	if !c.LLM.Enabled {
		return nil
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key: required when llm.enabled is true (or set %s)", llmAPIKeyEnvVar)
	}
	if c.LLM.BaseURL == "" {
		return errors.New("llm.base_url: cannot be empty when llm.enabled is true")
	}
	if c.LLM.Model == "" {
		return errors.New("llm.model: cannot be empty when llm.enabled is true")
	}
	if c.LLM.TimeoutSeconds <= 0 {
		return fmt.Errorf("llm.timeout_seconds: must be greater than zero, got %d", c.LLM.TimeoutSeconds)
	}
	return nil
}
