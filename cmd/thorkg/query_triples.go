package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"thorkg/internal/store"
)

func queryTriplesCmd() *cobra.Command {
	var filter store.TripleFilter
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "triples",
		Short: "Find unique triples by subject, relation and object",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, dataset string, db store.Store) error {
				if filter.Dataset == "" {
					filter.Dataset = dataset
				}
				triples, err := db.FindTriples(ctx, filter)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if asJSON {
					return writeJSON(out, triples)
				}
				if len(triples) == 0 {
					fmt.Fprintln(out, "No triples found.")
					return nil
				}
				for _, t := range triples {
					fmt.Fprintf(out, "%s x%d\n", t.Triple, t.Occurrences)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&filter.Dataset, "dataset", "", "Dataset name (default from config)")
	cmd.Flags().StringVar(&filter.Subject, "subject", "", "Subject entity, e.g. mug.o")
	cmd.Flags().StringVar(&filter.Relation, "relation", "", "Relation, e.g. hasMat")
	cmd.Flags().StringVar(&filter.Object, "object", "", "Object entity, e.g. ceramic.m")
	cmd.Flags().IntVar(&filter.Limit, "limit", 0, "Maximum number of triples (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}
