package main

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
)

//go:embed templates/thorkg.yaml.tmpl templates/rules.yaml
var templates embed.FS

func initCmd() *cobra.Command {
	var projectName string
	var dir string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new thorkg project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(projectName) == "" {
				return fmt.Errorf("--name is required")
			}
			if err := runInit(dir, projectName); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created thorkg.yaml and rules.yaml in %s.\n", dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&projectName, "name", "", "Dataset name")
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to create the project in")
	return cmd
}

func runInit(dir, projectName string) error {
	configPath := filepath.Join(dir, "thorkg.yaml")
	rulesPath := filepath.Join(dir, "rules.yaml")
	for _, path := range []string{configPath, rulesPath} {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}

	tmpl, err := template.ParseFS(templates, "templates/thorkg.yaml.tmpl")
	if err != nil {
		return fmt.Errorf("parsing config template: %w", err)
	}
	var configContents bytes.Buffer
	if err := tmpl.Execute(&configContents, struct{ Name string }{Name: projectName}); err != nil {
		return fmt.Errorf("rendering config template: %w", err)
	}

	rulesContents, err := templates.ReadFile("templates/rules.yaml")
	if err != nil {
		return fmt.Errorf("reading rules template: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := os.WriteFile(configPath, configContents.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}
	if err := os.WriteFile(rulesPath, rulesContents, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", rulesPath, err)
	}

	return nil
}
