package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"thorkg/internal/kb"
	"thorkg/internal/store"
)

func queryEntitiesCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "entities",
		Short: "List stored entities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, dataset string, db store.Store) error {
				entities, err := db.ListEntities(ctx, dataset, kb.Kind(kind))
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(entities) == 0 {
					fmt.Fprintln(out, "No entities found.")
					return nil
				}
				for _, e := range entities {
					fmt.Fprintf(out, "%s (%s)\n", e.Name, e.Kind)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Entity kind: object, location, material or concept")
	return cmd
}
