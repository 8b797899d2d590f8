package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"subtext/internal/library"
	"subtext/internal/services"
	"subtext/internal/source"
	"subtext/internal/subtitle"
	"subtext/internal/textutil"
)

// titleCellRunes caps the title column in library tables.
const titleCellRunes = 40

func newLibraryCommand(ctx *commandContext) *cobra.Command {
	libraryCmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the saved transcript library",
	}

	libraryCmd.AddCommand(newLibraryAddCommand(ctx))
	libraryCmd.AddCommand(newLibraryListCommand(ctx))
	libraryCmd.AddCommand(newLibraryShowCommand(ctx))
	libraryCmd.AddCommand(newLibraryRemoveCommand(ctx))
	libraryCmd.AddCommand(newLibrarySearchCommand(ctx))

	return libraryCmd
}

func newLibraryAddCommand(ctx *commandContext) *cobra.Command {
	var lang string
	var title string

	cmd := &cobra.Command{
		Use:   "add <file-or-url>",
		Short: "Save a transcript into the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := ctx.resolveTranscript(cmd, args[0], lang)
			if err != nil {
				return err
			}
			entries := subtitle.Parse(input.Content)
			if len(entries) == 0 {
				return services.Wrap(services.ErrValidation, "library", "add", "no entries parsed from input", nil)
			}
			transcript := subtitle.PlainText(input.Content)

			item := &library.Item{
				Title:           strings.TrimSpace(title),
				Language:        input.Language,
				Format:          string(input.Format),
				EntryCount:      len(entries),
				DurationSeconds: subtitle.TimeToSeconds(entries[len(entries)-1].EndTime),
				Transcript:      transcript,
			}
			if !input.FromFile {
				item.URL = input.URL
				item.Platform = input.Platform
				if meta := ctx.fetchMetadataQuiet(cmd, input.URL); meta != nil {
					if item.Title == "" {
						item.Title = meta.Title
					}
					if meta.DurationSeconds > 0 {
						item.DurationSeconds = meta.DurationSeconds
					}
				}
			}
			if item.Title == "" {
				item.Title = fallbackTitle(input)
			}
			if item.Language == "" {
				item.Language = source.DetectTextLanguage(transcript)
			}

			return ctx.withLibrary(func(store *library.Store) error {
				saved, err := store.Save(cmd.Context(), item)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", saved.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Preferred caption language (defaults to the configured language)")
	cmd.Flags().StringVar(&title, "title", "", "Title recorded for the transcript (defaults to metadata or file name)")
	return cmd
}

func newLibraryListCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved transcripts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(func(store *library.Store) error {
				items, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if items == nil {
					items = []*library.Item{}
				}
				return renderOutput(cmd, output, items, func() string {
					if len(items) == 0 {
						return "Library is empty"
					}
					return renderItemTable(items)
				})
			})
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

func newLibraryShowCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one saved transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(func(store *library.Store) error {
				item, err := store.Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if item == nil {
					return services.Wrap(services.ErrNotFound, "library", "show",
						fmt.Sprintf("no transcript matches %q", args[0]), nil)
				}
				return renderOutput(cmd, output, item, func() string {
					return renderItemDetail(item)
				})
			})
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

func newLibraryRemoveCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a saved transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(func(store *library.Store) error {
				item, err := store.Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if item == nil {
					return services.Wrap(services.ErrNotFound, "library", "remove",
						fmt.Sprintf("no transcript matches %q", args[0]), nil)
				}
				removed, err := store.Remove(cmd.Context(), item.ID)
				if err != nil {
					return err
				}
				if !removed {
					return services.Wrap(services.ErrNotFound, "library", "remove",
						fmt.Sprintf("transcript %s disappeared before removal", item.ID), nil)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", item.ID)
				return nil
			})
		},
	}

	return cmd
}

func newLibrarySearchCommand(ctx *commandContext) *cobra.Command {
	var output string
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Rank saved transcripts against a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(func(store *library.Store) error {
				hits, err := store.Search(cmd.Context(), args[0], limit)
				if err != nil {
					return err
				}
				if hits == nil {
					hits = []library.SearchHit{}
				}
				return renderOutput(cmd, output, hits, func() string {
					if len(hits) == 0 {
						return "No matches"
					}
					return renderHitTable(hits)
				})
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of results (0 for all)")
	addOutputFlag(cmd, &output)
	return cmd
}

func renderItemTable(items []*library.Item) string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			shortID(item.ID),
			textutil.TruncateRunes(item.Title, titleCellRunes),
			item.Language,
			strconv.Itoa(item.EntryCount),
			formatClock(item.DurationSeconds),
			item.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	headers := []string{"ID", "Title", "Lang", "Entries", "Duration", "Added"}
	return renderTable(headers, rows, alignLeft, alignLeft, alignLeft, alignRight, alignRight)
}

func renderItemDetail(item *library.Item) string {
	rows := [][]string{
		{"ID", item.ID},
		{"Title", item.Title},
		{"URL", item.URL},
		{"Platform", item.Platform},
		{"Language", item.Language},
		{"Format", item.Format},
		{"Entries", strconv.Itoa(item.EntryCount)},
		{"Duration", formatClock(item.DurationSeconds)},
		{"Added", item.CreatedAt.Local().Format("2006-01-02 15:04")},
	}
	return renderTable([]string{"Field", "Value"}, rows) + "\n\n" + item.Transcript
}

func renderHitTable(hits []library.SearchHit) string {
	rows := make([][]string, 0, len(hits))
	for _, hit := range hits {
		rows = append(rows, []string{
			fmt.Sprintf("%.3f", hit.Score),
			shortID(hit.Item.ID),
			textutil.TruncateRunes(hit.Item.Title, titleCellRunes),
		})
	}
	return renderTable([]string{"Score", "ID", "Title"}, rows, alignRight)
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func formatClock(seconds float64) string {
	total := int(seconds + 0.5)
	hours := total / 3600
	minutes := total % 3600 / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
