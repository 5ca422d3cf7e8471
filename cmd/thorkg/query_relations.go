package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"thorkg/internal/store"
)

func queryRelationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relations",
		Short: "List stored relations with their triple counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, dataset string, db store.Store) error {
				relations, err := db.ListRelations(ctx, dataset)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(relations) == 0 {
					fmt.Fprintln(out, "No relations found.")
					return nil
				}
				for _, r := range relations {
					fmt.Fprintf(out, "%-20s %d\n", r.Name, r.Triples)
				}
				return nil
			})
		},
	}
}
