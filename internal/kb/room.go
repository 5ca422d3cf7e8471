package kb

import (
	"context"
	"fmt"

	"thorkg/internal/logging"
	"thorkg/internal/thor"
)

// Env is what a scrape needs from the outside world. Session is shared by every
// room, so rooms must be scraped one at a time.
type Env struct {
	Session  thor.Session
	Rules    Rules
	GridSize float64
	Log      *logging.Logger
}

func (e Env) logger() *logging.Logger {
	if e.Log == nil {
		return logging.Nop()
	}
	return e.Log
}

// Room is one simulated layout: a room type, a floor plan id and a spawn seed.
type Room struct {
	Type string
	ID   int
	Seed int

	entities  OrderedSet[string]
	relations OrderedSet[string]
	triples   []Triple
	unique    []Triple
}

var _ Collection = (*Room)(nil)

func NewRoom(roomType string, id, seed int) *Room {
	return &Room{Type: roomType, ID: id, Seed: seed}
}

// Key is the file stem used for this room: "<id>_<seed>".
func (r *Room) Key() string {
	return fmt.Sprintf("%d_%d", r.ID, r.Seed)
}

// Scrape resets the simulator to this room's floor plan, spawns objects with the
// room's seed and extracts triples for every object.
func (r *Room) Scrape(ctx context.Context, env Env) error {
	scene := thor.SceneName(r.ID)
	if err := env.Session.Reset(ctx, scene); err != nil {
		return fmt.Errorf("resetting %s: %w", scene, err)
	}
	if err := env.Session.Initialize(ctx, env.GridSize); err != nil {
		return fmt.Errorf("initializing %s: %w", scene, err)
	}
	event, err := env.Session.RandomSpawn(ctx, r.Seed)
	if err != nil {
		return fmt.Errorf("spawning %s seed %d: %w", scene, r.Seed, err)
	}

	r.Load(event.Metadata.Objects, env.Rules)
	env.logger().Debug("room scraped",
		"room_type", r.Type,
		"scene", scene,
		"seed", r.Seed,
		"objects", len(event.Metadata.Objects),
		"triples", len(r.triples),
		"unique_triples", len(r.unique),
	)
	return nil
}

// Load runs extraction over an already captured object list, replacing whatever
// the room held before.
func (r *Room) Load(objects []thor.ObjectRecord, rules Rules) {
	r.entities = OrderedSet[string]{}
	r.relations = OrderedSet[string]{}
	r.triples = nil
	r.entities.Add(BareEntity(r.Type))
	for _, obj := range objects {
		ex := Extract(obj, r.Type, rules)
		r.entities.AddAll(ex.Entities...)
		r.relations.AddAll(ex.Relations...)
		r.triples = append(r.triples, ex.Triples...)
	}
	r.unique = Unique(r.triples)
}

func (r *Room) Entities() []string {
	return sortedCopy(r.entities.Items())
}

func (r *Room) Relations() []string {
	return sortedCopy(r.relations.Items())
}

func (r *Room) Triples() []Triple {
	return r.triples
}

func (r *Room) UniqueTriples() []Triple {
	return r.unique
}
