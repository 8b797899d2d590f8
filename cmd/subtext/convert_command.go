package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"subtext/internal/services"
	"subtext/internal/subtitle"
	"subtext/internal/textutil"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var lang string
	var to string
	var outPath string

	cmd := &cobra.Command{
		Use:   "convert <file-or-url>",
		Short: "Convert subtitles to SRT or plain text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := ctx.resolveTranscript(cmd, args[0], lang)
			if err != nil {
				return err
			}
			entries := subtitle.Parse(input.Content)
			if len(entries) == 0 {
				return services.Wrap(services.ErrValidation, "cli", "convert", "no entries parsed from input", nil)
			}

			var rendered string
			var ext string
			switch strings.ToLower(strings.TrimSpace(to)) {
			case "srt":
				rendered = subtitle.WriteSRT(entries)
				ext = ".srt"
			case "text":
				rendered = subtitle.PlainText(input.Content)
				ext = ".txt"
			default:
				return fmt.Errorf("unsupported conversion target %q (expected srt or text)", to)
			}

			target := strings.TrimSpace(outPath)
			if target == "" {
				name := textutil.SanitizeFileName(ctx.displayTitle(cmd, input))
				if name == "" {
					name = "subtitle"
				}
				target = name + ext
			}
			if err := os.WriteFile(target, []byte(rendered), 0o644); err != nil {
				return fmt.Errorf("write converted subtitle: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Preferred caption language (defaults to the configured language)")
	cmd.Flags().StringVar(&to, "to", "", "Conversion target: srt or text")
	cmd.Flags().StringVar(&outPath, "out", "", "Destination path (defaults to a name derived from the title)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
