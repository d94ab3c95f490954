package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"setlist/internal/catalog"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var deviceFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "scan <cache-file>",
		Short: "Decode a song cache and ingest it into the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			label, err := deviceLabel(deviceFlag, cfg)
			if err != nil {
				return err
			}

			result, err := decodeCacheFile(args[0], cfg, logger)
			if err != nil {
				return err
			}
			if result.Rejected {
				// Not an error: the game will rewrite the cache on its
				// next scan, and there is nothing to ingest yet.
				logger.Warn("cache rejected",
					"component", "scan",
					"expected_version", cfg.Scan.CacheVersion,
					"full_directory_paths", cfg.Scan.FullDirectoryPaths,
				)
				if jsonFlag {
					return writeJSON(cmd, map[string]any{"rejected": true})
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Cache rejected: written by an incompatible game version or path mode; rescan in game and retry")
				return nil
			}

			lock := flock.New(filepath.Join(cfg.Paths.CatalogDir, "catalog.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire catalog lock: %w", err)
			}
			if !locked {
				return errors.New("another setlist scan is already running against this catalog")
			}
			defer func() { _ = lock.Unlock() }()

			var dev *catalog.Device
			var stored int
			err = ctx.withStore(func(store *catalog.Store) error {
				dev, err = store.EnsureDevice(context.Background(), label)
				if err != nil {
					return err
				}
				stored, err = store.ReplaceSongs(context.Background(), dev.ID, result.Entries)
				return err
			})
			if err != nil {
				return err
			}

			logger.Info("scan complete",
				"component", "scan",
				"device", dev.Label,
				"entries", stored,
			)

			if jsonFlag {
				return writeJSON(cmd, map[string]any{
					"device":  dev.Label,
					"entries": stored,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ingested %d songs for device %q\n", stored, dev.Label)
			return nil
		},
	}

	cmd.Flags().StringVarP(&deviceFlag, "device", "d", "", "Device label to file the songs under")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the summary as JSON")
	return cmd
}
