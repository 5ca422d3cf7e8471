package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"thorkg/internal/store"
)

func queryStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show counts for the last stored run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, dataset string, db store.Store) error {
				stats, err := db.Stats(ctx, dataset)
				if err != nil {
					return err
				}
				if stats == nil {
					return fmt.Errorf("no stored run for dataset %q", dataset)
				}
				return writeJSON(cmd.OutOrStdout(), stats)
			})
		},
	}
}
