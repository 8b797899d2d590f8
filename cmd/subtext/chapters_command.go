package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"subtext/internal/analysis"
	"subtext/internal/config"
)

func newChaptersCommand(ctx *commandContext) *cobra.Command {
	var lang string
	var output string
	var gap float64

	cmd := &cobra.Command{
		Use:   "chapters <file-or-url>",
		Short: "Split subtitles into chapters at silence gaps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("gap") {
				gap = cfg.Analysis.ChapterGapSeconds
			}

			input, err := ctx.resolveTranscript(cmd, args[0], lang)
			if err != nil {
				return err
			}
			chapters, err := analysis.ExtractChapters(input.Content, gap)
			if err != nil {
				return err
			}
			if chapters == nil {
				chapters = []analysis.Chapter{}
			}
			return renderOutput(cmd, output, chapters, func() string {
				if len(chapters) == 0 {
					return "No chapters detected"
				}
				return renderChapterTable(chapters)
			})
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Preferred caption language (defaults to the configured language)")
	cmd.Flags().Float64Var(&gap, "gap", config.DefaultChapterGapSeconds, "Silence gap in seconds that starts a new chapter")
	addOutputFlag(cmd, &output)
	return cmd
}

func renderChapterTable(chapters []analysis.Chapter) string {
	rows := make([][]string, 0, len(chapters))
	for i, chapter := range chapters {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			chapter.StartTime,
			chapter.EndTime,
			truncateCell(chapter.FirstLine),
		})
	}
	return renderTable([]string{"#", "Start", "End", "First line"}, rows, alignRight)
}
