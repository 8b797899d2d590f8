package main

import (
	"github.com/spf13/cobra"

	"subtext/internal/analysis"
	"subtext/internal/config"
	"subtext/internal/llm"
	"subtext/internal/services"
)

func newSummarizeCommand(ctx *commandContext) *cobra.Command {
	var lang string
	var output string
	var duration int

	cmd := &cobra.Command{
		Use:   "summarize <file-or-url>",
		Short: "Summarize subtitles with the configured language model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			llmCfg := cfg.GetLLM()
			if !llmCfg.Enabled {
				return services.Wrap(services.ErrConfiguration, "cli", "summarize",
					"llm summarizer is disabled (set enabled = true and an api key under [llm])", nil)
			}
			if !cmd.Flags().Changed("duration") {
				duration = cfg.Analysis.SegmentDurationSeconds
			}

			input, err := ctx.resolveTranscript(cmd, args[0], lang)
			if err != nil {
				return err
			}
			segments, err := analysis.SummarySegments(input.Content, duration)
			if err != nil {
				return err
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			summarizer, err := llm.NewSummarizer(llm.Config{
				APIKey:         llmCfg.APIKey,
				BaseURL:        llmCfg.BaseURL,
				Model:          llmCfg.Model,
				TimeoutSeconds: llmCfg.TimeoutSeconds,
			}, logger)
			if err != nil {
				return err
			}

			summary, err := summarizer.Summarize(cmd.Context(), ctx.displayTitle(cmd, input), segments)
			if err != nil {
				return err
			}
			return renderOutput(cmd, output, summary, func() string {
				return summary.Text
			})
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Preferred caption language (defaults to the configured language)")
	cmd.Flags().IntVar(&duration, "duration", config.DefaultSegmentDurationSeconds, "Segment window in seconds fed to the model")
	addOutputFlag(cmd, &output)
	return cmd
}
