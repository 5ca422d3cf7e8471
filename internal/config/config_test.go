package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

const minimalConfig = "name: test\nversion: 1\nroom_types:\n  kitchen: [1]\nroom_seeds: [0]\nrules: rules.yaml\nsimulator:\n  url: http://localhost:8200\n"

func TestLoadProjectConfig(t *testing.T) {
	t.Run("valid config loads", func(t *testing.T) {
		cfg, err := LoadProjectConfig(filepath.Join("testdata", "valid_config.yaml"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Name != "thor" {
			t.Fatalf("expected dataset name, got %q", cfg.Name)
		}
		if cfg.Simulator.Timeout != 30*time.Second {
			t.Fatalf("expected 30s timeout, got %v", cfg.Simulator.Timeout)
		}
		if !cfg.Output.WriteCSV {
			t.Fatalf("expected write_csv")
		}
		if cfg.Rules != filepath.Join("testdata", "rules.yaml") {
			t.Fatalf("expected rules resolved next to config, got %q", cfg.Rules)
		}
	})

	t.Run("room types keep file order", func(t *testing.T) {
		cfg, err := LoadProjectConfig(filepath.Join("testdata", "valid_config.yaml"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := []string{"kitchen", "living_room", "bedroom"}
		if len(cfg.RoomTypes) != len(want) {
			t.Fatalf("expected %d room types, got %d", len(want), len(cfg.RoomTypes))
		}
		for i, name := range want {
			if cfg.RoomTypes[i].Name != name {
				t.Fatalf("room type %d: expected %q, got %q", i, name, cfg.RoomTypes[i].Name)
			}
		}
		if got := cfg.RoomTypes[2].IDs; len(got) != 2 || got[0] != 301 || got[1] != 302 {
			t.Fatalf("unexpected bedroom ids: %v", got)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		cfg, err := LoadProjectConfig(writeTempConfig(t, minimalConfig))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Simulator.GridSize != DefaultGridSize {
			t.Fatalf("expected default grid size, got %v", cfg.Simulator.GridSize)
		}
		if cfg.Simulator.StartScene != DefaultStartScene {
			t.Fatalf("expected default start scene, got %q", cfg.Simulator.StartScene)
		}
		if cfg.Simulator.Timeout != DefaultTimeout {
			t.Fatalf("expected default timeout, got %v", cfg.Simulator.Timeout)
		}
	})

	t.Run("replay dir replaces url", func(t *testing.T) {
		path := writeTempConfig(t, "name: test\nversion: 1\nroom_types:\n  kitchen: [1]\nroom_seeds: [0]\nrules: rules.yaml\nsimulator:\n  replay_dir: recordings\n")
		cfg, err := LoadProjectConfig(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Simulator.ReplayDir != filepath.Join(filepath.Dir(path), "recordings") {
			t.Fatalf("expected resolved replay dir, got %q", cfg.Simulator.ReplayDir)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\nroom_types:\n  kitchen: [1]\nroom_seeds: [0]\nrules: rules.yaml\nsimulator:\n  url: http://x\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := writeTempConfig(t, "name: test\nversion: 2\nroom_types:\n  kitchen: [1]\nroom_seeds: [0]\nrules: rules.yaml\nsimulator:\n  url: http://x\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("no room types", func(t *testing.T) {
		path := writeTempConfig(t, "name: test\nversion: 1\nroom_seeds: [0]\nrules: rules.yaml\nsimulator:\n  url: http://x\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("room type without ids", func(t *testing.T) {
		path := writeTempConfig(t, "name: test\nversion: 1\nroom_types:\n  kitchen: []\nroom_seeds: [0]\nrules: rules.yaml\nsimulator:\n  url: http://x\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("duplicate room types", func(t *testing.T) {
		path := writeTempConfig(t, "name: test\nversion: 1\nroom_types:\n  kitchen: [1]\n  Kitchen: [2]\nroom_seeds: [0]\nrules: rules.yaml\nsimulator:\n  url: http://x\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("room types must be a mapping", func(t *testing.T) {
		path := writeTempConfig(t, "name: test\nversion: 1\nroom_types: [kitchen]\nroom_seeds: [0]\nrules: rules.yaml\nsimulator:\n  url: http://x\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("no seeds", func(t *testing.T) {
		path := writeTempConfig(t, "name: test\nversion: 1\nroom_types:\n  kitchen: [1]\nrules: rules.yaml\nsimulator:\n  url: http://x\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("no simulator", func(t *testing.T) {
		path := writeTempConfig(t, "name: test\nversion: 1\nroom_types:\n  kitchen: [1]\nroom_seeds: [0]\nrules: rules.yaml\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("file not found", func(t *testing.T) {
		if _, err := LoadProjectConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeTempConfig(t, "name: [\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestRoomTypesMarshalKeepsOrder(t *testing.T) {
	in := RoomTypes{{Name: "kitchen", IDs: []int{1, 2}}, {Name: "bathroom", IDs: []int{401}}}
	data, err := yaml.Marshal(struct {
		RoomTypes RoomTypes `yaml:"room_types"`
	}{in})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out struct {
		RoomTypes RoomTypes `yaml:"room_types"`
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out.RoomTypes) != 2 || out.RoomTypes[0].Name != "kitchen" || out.RoomTypes[1].Name != "bathroom" {
		t.Fatalf("unexpected room types: %+v", out.RoomTypes)
	}
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}
