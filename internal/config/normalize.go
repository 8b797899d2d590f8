package config

import (
	"os"
	"strings"
)

// normalize trims user-supplied values, resolves home-relative paths, and
// applies environment fallbacks so validation and downstream code see
// canonical values.
func (c *Config) normalize() error {
	c.Source.DefaultLanguage = strings.TrimSpace(c.Source.DefaultLanguage)
	c.LLM.BaseURL = strings.TrimSpace(c.LLM.BaseURL)
	c.LLM.Model = strings.TrimSpace(c.LLM.Model)
	c.LLM.APIKey = strings.TrimSpace(c.LLM.APIKey)
	if c.LLM.APIKey == "" {
		if key := strings.TrimSpace(os.Getenv(llmAPIKeyEnvVar)); key != "" {
			c.LLM.APIKey = key
		} else if key := strings.TrimSpace(os.Getenv(llmAPIKeyFallbackEnv)); key != "" {
			c.LLM.APIKey = key
		}
	}

	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	for _, target := range []*string{
		&c.Source.CaptionsDir,
		&c.Source.CookiesPath,
		&c.Library.DatabaseDir,
		&c.Logging.Dir,
	} {
		trimmed := strings.TrimSpace(*target)
		if trimmed == "" {
			*target = ""
			continue
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return err
		}
		*target = expanded
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}
