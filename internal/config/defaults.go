package config

// Default values applied before a config file is decoded.
const (
	DefaultContextLines           = 2
	DefaultSegmentDurationSeconds = 300
	DefaultChapterGapSeconds      = 30.0

	DefaultCaptionsDir = "~/.local/share/subtext/captions"
	DefaultLanguage    = "zh"
	DefaultDatabaseDir = "~/.local/share/subtext"

	DefaultLogDir    = "~/.local/share/subtext/logs"
	DefaultLogFormat = "console"
	DefaultLogLevel  = "info"

	DefaultLLMBaseURL     = "https://api.openai.com/v1"
	DefaultLLMModel       = "gpt-4o-mini"
	DefaultLLMTimeoutSecs = 60

	llmAPIKeyEnvVar      = "SUBTEXT_LLM_API_KEY"
	llmAPIKeyFallbackEnv = "OPENAI_API_KEY"
)

// Default returns the built-in configuration used before a config file is
// applied on top.
func Default() Config {
	return Config{
		Analysis: Analysis{
			ContextLines:           DefaultContextLines,
			SegmentDurationSeconds: DefaultSegmentDurationSeconds,
			ChapterGapSeconds:      DefaultChapterGapSeconds,
		},
		Source: Source{
			CaptionsDir:     DefaultCaptionsDir,
			DefaultLanguage: DefaultLanguage,
		},
		Library: Library{
			DatabaseDir: DefaultDatabaseDir,
		},
		LLM: LLM{
			Enabled:        false,
			BaseURL:        DefaultLLMBaseURL,
			Model:          DefaultLLMModel,
			TimeoutSeconds: DefaultLLMTimeoutSecs,
		},
		Logging: Logging{
			Format: DefaultLogFormat,
			Level:  DefaultLogLevel,
			Dir:    DefaultLogDir,
		},
	}
}
