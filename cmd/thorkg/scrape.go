package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"thorkg/internal/config"
	"thorkg/internal/graph"
	"thorkg/internal/kb"
	"thorkg/internal/persist"
	"thorkg/internal/rules"
	"thorkg/internal/store"
	"thorkg/internal/thor"
)

type scrapeOptions struct {
	csv   bool
	store bool
	graph bool
}

func scrapeCmd() *cobra.Command {
	var opts scrapeOptions
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape every configured room and build the knowledge base",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScrape(cmd, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.csv, "csv", false, "Also write per-room triple CSV files")
	cmd.Flags().BoolVar(&opts.store, "store", false, "Load the dataset into the configured database")
	cmd.Flags().BoolVar(&opts.graph, "graph", false, "Sync the dataset into the configured Neo4j database")
	return cmd
}

func runScrape(cmd *cobra.Command, opts scrapeOptions) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	table, err := rules.Load(cfg.Rules)
	if err != nil {
		return err
	}

	session, err := thor.Open(ctx, cfg.Simulator)
	if err != nil {
		log.Fatal("opening simulator session", "url", cfg.Simulator.URL, "error", err)
	}
	defer session.Close(ctx)

	ds := kb.NewDataset(cfg)
	env := kb.Env{
		Session:  session,
		Rules:    table,
		GridSize: cfg.Simulator.GridSize,
		Log:      log,
	}
	if err := ds.Scrape(ctx, env); err != nil {
		return err
	}
	log.Success("scraped dataset", "dataset", ds.Name, "rooms", len(ds.Rooms()))

	layout := persist.Layout{Root: cfg.Output.Dir, Name: cfg.Name}
	if err := persist.Save(layout, ds); err != nil {
		return err
	}
	log.Info("saved dataset", "path", layout.DatasetPath())

	if opts.csv || cfg.Output.WriteCSV {
		if err := persist.WriteCSV(layout, ds); err != nil {
			return err
		}
		log.Info("wrote triple csv files", "dir", layout.RoomsDir())
	}

	if opts.store {
		if err := loadStore(ctx, cfg, ds, cmd.OutOrStdout()); err != nil {
			return err
		}
	}

	if opts.graph {
		client, err := graph.Open(ctx, cfg.Neo4j)
		if err != nil {
			return err
		}
		defer client.Close(ctx)

		if err := client.EnsureIndexes(ctx); err != nil {
			return err
		}
		result, err := client.Sync(ctx, cfg.Name, ds)
		if err != nil {
			return err
		}
		log.Success("synced graph", "removed", result.Removed, "entities", result.Entities, "relationships", result.Relationships)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Scrape complete.")
	fmt.Fprintf(out, "  Unique triples: %d\n", len(ds.UniqueTriples()))
	fmt.Fprintf(out, "  Triples:        %d\n", len(ds.Triples()))
	fmt.Fprintf(out, "  Entities:       %d\n", len(ds.Entities()))
	fmt.Fprintf(out, "  Relations:      %d\n", len(ds.Relations()))
	return nil
}

func loadStore(ctx context.Context, cfg *config.ProjectConfig, ds *kb.Dataset, out io.Writer) error {
	db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}
	run := store.NewRun(cfg.Name, ds)
	if err := db.SaveRun(ctx, run); err != nil {
		return err
	}
	fmt.Fprintf(out, "Stored run %s.\n", run.ID)
	return nil
}
