package thor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var _ Session = (*ReplaySession)(nil)

// ReplaySession serves layouts recorded earlier as <dir>/<scene>_<seed>.json,
// each file holding one simulator event.
type ReplaySession struct {
	dir string

	mu     sync.Mutex
	scene  string
	closed bool
}

func OpenReplay(dir string) (*ReplaySession, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening replay directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening replay directory: %s is not a directory", dir)
	}
	return &ReplaySession{dir: dir}, nil
}

func (s *ReplaySession) Reset(ctx context.Context, scene string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	matches, err := filepath.Glob(filepath.Join(s.dir, scene+"_*.json"))
	if err != nil {
		return fmt.Errorf("listing recordings for %s: %w", scene, err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("%s: %w", scene, ErrSceneNotFound)
	}
	s.scene = scene
	return nil
}

func (s *ReplaySession) Initialize(ctx context.Context, gridSize float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	return nil
}

func (s *ReplaySession) RandomSpawn(ctx context.Context, seed int) (*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrSessionClosed
	}
	if s.scene == "" {
		return nil, fmt.Errorf("random spawn before reset")
	}

	path := filepath.Join(s.dir, fmt.Sprintf("%s_%d.json", s.scene, seed))
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s seed %d: %w", s.scene, seed, ErrSceneNotFound)
		}
		return nil, fmt.Errorf("reading recording: %w", err)
	}

	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("decoding recording %s: %w", path, err)
	}
	return &event, nil
}

func (s *ReplaySession) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
