package thor

import (
	"context"

	"thorkg/internal/config"
)

// Open picks a replay session when a recording directory is configured and a live
// HTTP session otherwise.
func Open(ctx context.Context, cfg config.SimulatorConfig) (Session, error) {
	if cfg.ReplayDir != "" {
		replay, err := OpenReplay(cfg.ReplayDir)
		if err != nil {
			return nil, err
		}
		return replay, nil
	}
	live, err := Dial(ctx, cfg.URL, cfg.StartScene, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return live, nil
}
