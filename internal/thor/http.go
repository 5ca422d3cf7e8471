package thor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

var _ Session = (*HTTPSession)(nil)

// HTTPSession drives a simulator controller exposed over a small JSON bridge:
// POST /reset {"scene"}, POST /step {"action", ...}, POST /stop.
type HTTPSession struct {
	baseURL string
	client  *http.Client

	mu     sync.Mutex
	closed bool
}

// Dial starts a session and resets it to startScene. Any error here means the
// simulator is unusable for the run.
func Dial(ctx context.Context, baseURL, startScene string, timeout time.Duration) (*HTTPSession, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("simulator url is required")
	}
	s := &HTTPSession{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
	if err := s.Reset(ctx, startScene); err != nil {
		return nil, fmt.Errorf("starting simulator: %w", err)
	}
	return s, nil
}

func (s *HTTPSession) Reset(ctx context.Context, scene string) error {
	_, err := s.post(ctx, "/reset", map[string]any{"scene": scene})
	return err
}

func (s *HTTPSession) Initialize(ctx context.Context, gridSize float64) error {
	_, err := s.post(ctx, "/step", map[string]any{"action": "Initialize", "gridSize": gridSize})
	return err
}

func (s *HTTPSession) RandomSpawn(ctx context.Context, seed int) (*Event, error) {
	return s.post(ctx, "/step", map[string]any{"action": "InitialRandomSpawn", "randomSeed": seed})
}

func (s *HTTPSession) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	_, err := s.do(ctx, "/stop", map[string]any{})
	return err
}

func (s *HTTPSession) post(ctx context.Context, path string, body map[string]any) (*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrSessionClosed
	}
	return s.do(ctx, path, body)
}

func (s *HTTPSession) do(ctx context.Context, path string, body map[string]any) (*Event, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling simulator %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading simulator %s response: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("simulator %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(data)))
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return &Event{}, nil
	}

	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("decoding simulator %s response: %w", path, err)
	}
	if !event.Metadata.LastActionSuccess && event.Metadata.ErrorMessage != "" {
		return nil, fmt.Errorf("simulator %s: %s", path, event.Metadata.ErrorMessage)
	}
	return &event, nil
}
