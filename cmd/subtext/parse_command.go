package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"subtext/internal/subtitle"
)

func newParseCommand(ctx *commandContext) *cobra.Command {
	var lang string
	var output string

	cmd := &cobra.Command{
		Use:   "parse <file-or-url>",
		Short: "Parse subtitles into timestamped entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := ctx.resolveTranscript(cmd, args[0], lang)
			if err != nil {
				return err
			}
			entries := subtitle.Parse(input.Content)
			if entries == nil {
				entries = []subtitle.Entry{}
			}
			return renderOutput(cmd, output, entries, func() string {
				if len(entries) == 0 {
					return "No entries parsed"
				}
				return renderEntryTable(entries)
			})
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Preferred caption language (defaults to the configured language)")
	addOutputFlag(cmd, &output)
	return cmd
}

func renderEntryTable(entries []subtitle.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			strconv.Itoa(entry.Index),
			entry.StartTime,
			entry.EndTime,
			truncateCell(entry.Text),
		})
	}
	return renderTable([]string{"#", "Start", "End", "Text"}, rows, alignRight)
}
