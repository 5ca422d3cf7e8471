package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGridSize   = 0.25
	DefaultStartScene = "FloorPlan30"
	DefaultTimeout    = 60 * time.Second
)

type ProjectConfig struct {
	Name      string          `yaml:"name"`
	Version   int             `yaml:"version"`
	RoomTypes RoomTypes       `yaml:"room_types"`
	RoomSeeds []int           `yaml:"room_seeds"`
	Rules     string          `yaml:"rules"`
	Simulator SimulatorConfig `yaml:"simulator"`
	Output    OutputConfig    `yaml:"output"`
	Database  DatabaseConfig  `yaml:"database"`
	Neo4j     Neo4jConfig     `yaml:"neo4j"`
	Log       LogConfig       `yaml:"log"`
}

type SimulatorConfig struct {
	URL        string        `yaml:"url"`
	StartScene string        `yaml:"start_scene"`
	GridSize   float64       `yaml:"grid_size"`
	Timeout    time.Duration `yaml:"timeout"`
	ReplayDir  string        `yaml:"replay_dir"`
}

type OutputConfig struct {
	Dir      string `yaml:"dir"`
	WriteCSV bool   `yaml:"write_csv"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type Neo4jConfig struct {
	URI      string `yaml:"uri"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type LogConfig struct {
	Mode  string `yaml:"mode"`
	Level string `yaml:"level"`
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	cfg.applyDefaults(filepath.Dir(path))
	return &cfg, nil
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("dataset name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	if len(cfg.RoomTypes) == 0 {
		return fmt.Errorf("at least one room type is required")
	}
	if len(cfg.RoomSeeds) == 0 {
		return fmt.Errorf("at least one room seed is required")
	}
	if strings.TrimSpace(cfg.Rules) == "" {
		return fmt.Errorf("rules path is required")
	}
	if cfg.Simulator.ReplayDir == "" && strings.TrimSpace(cfg.Simulator.URL) == "" {
		return fmt.Errorf("simulator url or replay_dir is required")
	}
	if cfg.Simulator.GridSize < 0 {
		return fmt.Errorf("grid size must not be negative")
	}

	seen := make(map[string]struct{})
	for i, rt := range cfg.RoomTypes {
		if strings.TrimSpace(rt.Name) == "" {
			return fmt.Errorf("room type %d name is required", i)
		}
		if len(rt.IDs) == 0 {
			return fmt.Errorf("room type %s has no room ids", rt.Name)
		}
		key := strings.ToLower(rt.Name)
		if _, exists := seen[key]; exists {
			return fmt.Errorf("duplicate room type: %s", rt.Name)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// applyDefaults fills optional settings and resolves relative paths against the
// directory holding the config file.
func (cfg *ProjectConfig) applyDefaults(base string) {
	if cfg.Simulator.GridSize == 0 {
		cfg.Simulator.GridSize = DefaultGridSize
	}
	if cfg.Simulator.StartScene == "" {
		cfg.Simulator.StartScene = DefaultStartScene
	}
	if cfg.Simulator.Timeout == 0 {
		cfg.Simulator.Timeout = DefaultTimeout
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}
	cfg.Rules = resolve(base, cfg.Rules)
	cfg.Output.Dir = resolve(base, cfg.Output.Dir)
	if cfg.Simulator.ReplayDir != "" {
		cfg.Simulator.ReplayDir = resolve(base, cfg.Simulator.ReplayDir)
	}
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
