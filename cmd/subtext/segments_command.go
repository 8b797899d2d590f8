package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"subtext/internal/analysis"
	"subtext/internal/config"
)

func newSegmentsCommand(ctx *commandContext) *cobra.Command {
	var lang string
	var output string
	var duration int

	cmd := &cobra.Command{
		Use:   "segments <file-or-url>",
		Short: "Bucket subtitles into fixed-duration summary segments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
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
			if segments == nil {
				segments = []analysis.Segment{}
			}
			return renderOutput(cmd, output, segments, func() string {
				if len(segments) == 0 {
					return "No segments produced"
				}
				return renderSegmentTable(segments)
			})
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Preferred caption language (defaults to the configured language)")
	cmd.Flags().IntVar(&duration, "duration", config.DefaultSegmentDurationSeconds, "Segment window in seconds")
	addOutputFlag(cmd, &output)
	return cmd
}

func renderSegmentTable(segments []analysis.Segment) string {
	rows := make([][]string, 0, len(segments))
	for i, segment := range segments {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			segment.StartTime,
			segment.EndTime,
			truncateCell(segment.Text),
		})
	}
	return renderTable([]string{"#", "Start", "End", "Text"}, rows, alignRight)
}
