package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"subtext/internal/source"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "info <url>",
		Short: "Show recorded metadata for a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := ctx.newSource()
			if err != nil {
				return err
			}
			meta, err := src.FetchVideoMetadata(cmd.Context(), args[0], ctx.fetchOptions())
			if err != nil {
				return err
			}
			return renderOutput(cmd, output, meta, func() string {
				return renderMetadataTable(meta)
			})
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

func renderMetadataTable(meta *source.VideoMetadata) string {
	rows := [][]string{
		{"Title", meta.Title},
		{"Platform", string(meta.Platform)},
		{"Duration", meta.DurationString},
		{"Uploader", meta.Uploader},
		{"Upload date", meta.UploadDate},
		{"Views", strconv.FormatInt(meta.ViewCount, 10)},
		{"URL", meta.WebpageURL},
		{"Description", meta.Description},
	}
	return renderTable([]string{"Field", "Value"}, rows)
}
