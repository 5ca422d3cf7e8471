package main

import (
	"os"

	"github.com/spf13/cobra"

	"thorkg/internal/config"
	"thorkg/internal/logging"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "thorkg",
		Short:        "Household knowledge triples scraped from AI2-THOR scenes",
		SilenceUsage: true,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", "thorkg.yaml", "Path to the project config")
	root.AddCommand(scrapeCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(queryCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(initCmd())
	root.AddCommand(versionCmd())
	return root
}

func loadConfig() (*config.ProjectConfig, error) {
	return config.LoadProjectConfig(configPath)
}

func newLogger(cfg *config.ProjectConfig) (*logging.Logger, error) {
	return logging.New(cfg.Log.Mode, cfg.Log.Level)
}
