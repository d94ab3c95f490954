package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"setlist/internal/catalog"
)

func newDevicesCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List known devices and their song counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var devices []catalog.Device
			err := ctx.withStore(func(store *catalog.Store) error {
				var err error
				devices, err = store.Devices(context.Background())
				return err
			})
			if err != nil {
				return err
			}

			if jsonFlag {
				return writeJSON(cmd, devices)
			}

			if len(devices) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No devices scanned yet")
				return nil
			}

			rows := make([][]string, 0, len(devices))
			for _, dev := range devices {
				scanned := "never"
				if !dev.ScannedAt.IsZero() {
					scanned = dev.ScannedAt.UTC().Format(time.RFC3339)
				}
				rows = append(rows, []string{
					dev.Label,
					fmt.Sprintf("%d", dev.SongCount),
					scanned,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out,
				[]string{"DEVICE", "SONGS", "LAST SCAN"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit devices as JSON")
	return cmd
}
