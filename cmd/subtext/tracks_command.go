package main

import (
	"github.com/spf13/cobra"

	"subtext/internal/source"
)

func newTracksCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tracks <url>",
		Short: "List the caption tracks recorded for a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := ctx.newSource()
			if err != nil {
				return err
			}
			tracks, err := src.ListCaptionTracks(cmd.Context(), args[0], ctx.fetchOptions())
			if err != nil {
				return err
			}
			return renderOutput(cmd, output, tracks, func() string {
				if len(tracks.Manual) == 0 && len(tracks.Automatic) == 0 {
					return "No caption tracks available"
				}
				return renderTrackTable(tracks)
			})
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

func renderTrackTable(tracks *source.TrackList) string {
	rows := make([][]string, 0, len(tracks.Manual)+len(tracks.Automatic))
	for _, track := range tracks.Manual {
		rows = append(rows, []string{"manual", track.Code, track.Info})
	}
	for _, track := range tracks.Automatic {
		rows = append(rows, []string{"auto", track.Code, track.Info})
	}
	return renderTable([]string{"Kind", "Code", "Info"}, rows)
}
