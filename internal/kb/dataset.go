package kb

import (
	"context"

	"thorkg/internal/config"
)

// Dataset is the root of the aggregation tree.
type Dataset struct {
	Name      string
	RoomTypes []*RoomType

	Aggregate
}

var _ Collection = (*Dataset)(nil)

// NewDataset lays out empty rooms for every configured room type, id and seed.
// Room types keep the order they have in the configuration.
func NewDataset(cfg *config.ProjectConfig) *Dataset {
	ds := &Dataset{Name: cfg.Name}
	for _, rt := range cfg.RoomTypes {
		ds.RoomTypes = append(ds.RoomTypes, NewRoomType(rt.Name, rt.IDs, cfg.RoomSeeds))
	}
	return ds
}

func (ds *Dataset) Scrape(ctx context.Context, env Env) error {
	log := env.logger()
	for _, rt := range ds.RoomTypes {
		log.Debug("scraping room type", "room_type", rt.Name, "rooms", len(rt.Rooms))
		if err := rt.Scrape(ctx, env); err != nil {
			return err
		}
	}
	ds.Aggregate = Fold(ds.RoomTypes...)
	return nil
}

// Rooms lists every room in scrape order.
func (ds *Dataset) Rooms() []*Room {
	var rooms []*Room
	for _, rt := range ds.RoomTypes {
		rooms = append(rooms, rt.Rooms...)
	}
	return rooms
}
