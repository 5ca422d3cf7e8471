package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"thorkg/internal/graph"
)

func queryCypherCmd() *cobra.Command {
	var paramPairs []string
	cmd := &cobra.Command{
		Use:   "cypher <query>",
		Short: "Execute a read-only Cypher query against Neo4j",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			params, err := parseParams(paramPairs)
			if err != nil {
				return err
			}

			ctx := context.Background()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client, err := graph.Open(ctx, cfg.Neo4j)
			if err != nil {
				return err
			}
			defer client.Close(ctx)

			rows, err := client.RunCypher(ctx, query, params)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().StringArrayVar(&paramPairs, "param", nil, "Query parameter as key=value (repeatable)")
	return cmd
}
