package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "inspect <cache-file>",
		Short: "Decode a song cache and print its entries without touching the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			result, err := decodeCacheFile(args[0], cfg, nil)
			if err != nil {
				return err
			}
			if result.Rejected {
				fmt.Fprintf(cmd.OutOrStdout(),
					"Cache rejected: header does not match version %d / full paths %s\n",
					cfg.Scan.CacheVersion, yesNo(cfg.Scan.FullDirectoryPaths))
				return nil
			}

			entries := result.Entries
			if limitFlag > 0 && limitFlag < len(entries) {
				entries = entries[:limitFlag]
			}

			if jsonFlag {
				views := make([]entryView, 0, len(entries))
				for i, entry := range entries {
					views = append(views, newEntryView(i, entry))
				}
				return writeJSON(cmd, map[string]any{
					"total":   result.Count(),
					"kinds":   kindCounts(result.Entries),
					"entries": views,
				})
			}

			rows := make([][]string, 0, len(entries))
			for i, entry := range entries {
				song := entry.Song()
				rows = append(rows, []string{
					fmt.Sprintf("%d", i),
					entry.Kind().String(),
					song.Title,
					song.Artist,
					formatSongLength(song.SongLength),
					fmt.Sprintf("%d", song.Parts.ActiveCount()),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out,
				[]string{"#", "KIND", "TITLE", "ARTIST", "LENGTH", "PARTS"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
			))
			if len(entries) < result.Count() {
				fmt.Fprintf(out, "Showing %d of %d entries\n", len(entries), result.Count())
			}
			counts := kindCounts(result.Entries)
			for _, kind := range []string{"chart", "packed_con", "extracted_con", "stub"} {
				if n := counts[kind]; n > 0 {
					fmt.Fprintf(out, "%s: %d\n", kind, n)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit entries as JSON")
	cmd.Flags().IntVar(&limitFlag, "limit", 0, "Maximum number of entries to print (0 = all)")
	return cmd
}
