package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"thorkg/internal/export"
	"thorkg/internal/persist"
)

type exportOptions struct {
	format    string
	out       string
	input     string
	namespace string
}

func exportCmd() *cobra.Command {
	var opts exportOptions
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the unique triples of a saved dataset as RDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.format, "format", string(export.FormatTurtle), "Output format: ntriples or turtle")
	cmd.Flags().StringVar(&opts.out, "out", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&opts.input, "dataset", "", "Saved dataset JSON (default from config)")
	cmd.Flags().StringVar(&opts.namespace, "namespace", export.DefaultNamespace, "Base IRI for entities and relations")
	return cmd
}

func runExport(cmd *cobra.Command, opts exportOptions) error {
	format := export.Format(opts.format)
	if _, ok := export.GetFormatInfo(format); !ok {
		return fmt.Errorf("unsupported format %q", opts.format)
	}

	path, err := datasetPath(opts.input)
	if err != nil {
		return err
	}
	doc, err := persist.LoadDataset(path)
	if err != nil {
		return err
	}

	exporter := export.NewExporter(opts.namespace)
	if opts.out == "" {
		return exporter.Export(cmd.OutOrStdout(), format, doc.UniqueTriples())
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", opts.out, err)
	}
	if err := exporter.Export(f, format, doc.UniqueTriples()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", opts.out, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d triples to %s.\n", len(doc.UniqueTriples()), opts.out)
	return nil
}

// datasetPath returns explicit when set, otherwise the dataset file the config
// would have scraped into.
func datasetPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return persist.Layout{Root: cfg.Output.Dir, Name: cfg.Name}.DatasetPath(), nil
}
