package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"subtext/internal/analysis"
	"subtext/internal/logging"
	"subtext/internal/services"
	"subtext/internal/textutil"
)

const (
	defaultTimeout     = 60 * time.Second
	summaryTemperature = 0.2

	// maxSegmentPromptRunes bounds each segment block so very long
	// transcripts stay within the model context window.
	maxSegmentPromptRunes = 4000
)

// Config captures the runtime settings required to reach the summary backend.
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	TimeoutSeconds int
}

// Summary is the model-produced digest of one transcript.
type Summary struct {
	Text        string `json:"text"`
	Model       string `json:"model"`
	TotalTokens int    `json:"total_tokens"`
}

// Summarizer produces transcript summaries through chat completions.
type Summarizer struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewSummarizer constructs a summarizer from resolved settings. The API
// key and model are required; an empty base URL keeps the upstream
// default endpoint.
func NewSummarizer(cfg Config, logger *slog.Logger) (*Summarizer, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	model := strings.TrimSpace(cfg.Model)
	if apiKey == "" {
		return nil, services.Wrap(services.ErrConfiguration, "llm", "new summarizer", "api key required", nil)
	}
	if model == "" {
		return nil, services.Wrap(services.ErrConfiguration, "llm", "new summarizer", "model required", nil)
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	clientCfg := openai.DefaultConfig(apiKey)
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		clientCfg.BaseURL = baseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: timeout}

	return &Summarizer{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
		logger: logging.NewComponentLogger(logger, "llm"),
	}, nil
}

// Summarize requests a digest of the given segments. The title may be
// empty; segments must not be.
func (s *Summarizer) Summarize(ctx context.Context, title string, segments []analysis.Segment) (*Summary, error) {
	if len(segments) == 0 {
		return nil, services.Wrap(services.ErrValidation, "llm", "summarize", "no segments to summarize", nil)
	}

	userPrompt := buildUserPrompt(title, segments)
	s.logger.Debug("requesting summary",
		logging.String("model", s.model),
		logging.Int("segments", len(segments)),
		logging.Int("prompt_bytes", len(userPrompt)),
	)

	started := time.Now()
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summarySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: summaryTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("summary request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("summary request: empty choices")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return nil, fmt.Errorf("summary request: empty content")
	}

	s.logger.Info("summary generated",
		logging.Duration("duration", time.Since(started)),
		logging.Int("total_tokens", resp.Usage.TotalTokens),
	)
	return &Summary{
		Text:        text,
		Model:       s.model,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}

func buildUserPrompt(title string, segments []analysis.Segment) string {
	var b strings.Builder
	if trimmed := strings.TrimSpace(title); trimmed != "" {
		b.WriteString("标题：")
		b.WriteString(trimmed)
		b.WriteString("\n\n")
	}
	for i, segment := range segments {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "【%s - %s】\n", segment.StartTime, segment.EndTime)
		b.WriteString(textutil.TruncateRunes(segment.Text, maxSegmentPromptRunes))
	}
	return b.String()
}
