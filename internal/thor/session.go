// Package thor talks to the household simulator. The simulator itself is a black
// box: a session is reset to a floor plan, initialised, and asked for a randomised
// object layout whose metadata lists every object in the room.
package thor

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrSessionClosed = errors.New("simulator session closed")
	ErrSceneNotFound = errors.New("scene not found")
)

// ObjectRecord is the part of the simulator's per-object metadata the extractor reads.
type ObjectRecord struct {
	ObjectID            string   `json:"objectId"`
	ObjectType          string   `json:"objectType"`
	SalientMaterials    []string `json:"salientMaterials"`
	Receptacle          bool     `json:"receptacle"`
	ReceptacleObjectIDs []string `json:"receptacleObjectIds"`
}

type Metadata struct {
	SceneName         string         `json:"sceneName"`
	LastActionSuccess bool           `json:"lastActionSuccess"`
	ErrorMessage      string         `json:"errorMessage"`
	Objects           []ObjectRecord `json:"objects"`
}

type Event struct {
	Metadata Metadata `json:"metadata"`
}

// Session is a single simulator instance. Its state is global to the instance,
// so callers must not drive one session from two goroutines for different rooms.
type Session interface {
	Reset(ctx context.Context, scene string) error
	Initialize(ctx context.Context, gridSize float64) error
	RandomSpawn(ctx context.Context, seed int) (*Event, error)
	Close(ctx context.Context) error
}

func SceneName(roomID int) string {
	return fmt.Sprintf("FloorPlan%d", roomID)
}
