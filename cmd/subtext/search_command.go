package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"subtext/internal/analysis"
	"subtext/internal/config"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var lang string
	var keywords []string
	var contextLines int
	var copyReport bool

	cmd := &cobra.Command{
		Use:   "search <file-or-url>",
		Short: "Search subtitles for keywords with surrounding context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("context") {
				contextLines = cfg.Analysis.ContextLines
			}

			input, err := ctx.resolveTranscript(cmd, args[0], lang)
			if err != nil {
				return err
			}
			report, err := analysis.SearchReport(input.Content, keywords, contextLines)
			if err != nil {
				return err
			}

			if copyReport {
				if err := clipboard.WriteAll(report); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "copy to clipboard failed: %v\n", err)
				}
			}

			out := cmd.OutOrStdout()
			if shouldColorize(out) {
				report = highlightMatches(report, keywords)
			}
			fmt.Fprintln(out, report)
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Preferred caption language (defaults to the configured language)")
	cmd.Flags().StringArrayVarP(&keywords, "keyword", "k", nil, "Keyword to search for (repeatable)")
	cmd.Flags().IntVar(&contextLines, "context", config.DefaultContextLines, "Lines of context around each match")
	cmd.Flags().BoolVar(&copyReport, "copy", false, "Copy the report to the system clipboard")
	_ = cmd.MarkFlagRequired("keyword")
	return cmd
}

// highlightMatches paints keyword occurrences in the report for terminal
// display. Matching mirrors the search itself: case-insensitive literal
// substrings.
func highlightMatches(report string, keywords []string) string {
	for _, keyword := range keywords {
		report = paintOccurrences(report, keyword)
	}
	return report
}

func paintOccurrences(s, needle string) string {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return s
	}
	lower := strings.ToLower(s)
	needleLower := strings.ToLower(needle)
	// Lowercasing reshapes some scripts; skip highlighting rather than
	// mis-slice the original bytes.
	if len(lower) != len(s) || len(needleLower) != len(needle) {
		return s
	}

	var b strings.Builder
	for {
		idx := strings.Index(lower, needleLower)
		if idx < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:idx])
		b.WriteString(ansiYellow)
		b.WriteString(s[idx : idx+len(needle)])
		b.WriteString(ansiReset)
		s = s[idx+len(needle):]
		lower = lower[idx+len(needle):]
	}
}
