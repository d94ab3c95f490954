package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"setlist/internal/catalog"
)

func newSongsCommand(ctx *commandContext) *cobra.Command {
	var deviceFlag string
	var artistFlag string
	var searchFlag string
	var limitFlag int
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "songs",
		Short: "List catalog songs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := catalog.Filter{
				Device: deviceFlag,
				Artist: artistFlag,
				Search: searchFlag,
				Limit:  limitFlag,
			}

			var songs []catalog.Song
			err := ctx.withStore(func(store *catalog.Store) error {
				var err error
				songs, err = store.Songs(context.Background(), filter)
				return err
			})
			if err != nil {
				return err
			}

			if jsonFlag {
				return writeJSON(cmd, songs)
			}

			if len(songs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No songs match")
				return nil
			}

			rows := make([][]string, 0, len(songs))
			for _, song := range songs {
				rows = append(rows, []string{
					song.Title,
					song.Artist,
					song.Album,
					song.Charter,
					song.Kind,
					formatSongLength(song.LengthMS),
					fmt.Sprintf("%d", song.PartCount),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out,
				[]string{"TITLE", "ARTIST", "ALBUM", "CHARTER", "KIND", "LENGTH", "PARTS"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&deviceFlag, "device", "d", "", "Only songs from this device label")
	cmd.Flags().StringVar(&artistFlag, "artist", "", "Only songs by this exact artist")
	cmd.Flags().StringVarP(&searchFlag, "search", "s", "", "Substring match over title, artist, and album")
	cmd.Flags().IntVar(&limitFlag, "limit", 0, "Maximum number of rows (0 = all)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit songs as JSON")
	return cmd
}
