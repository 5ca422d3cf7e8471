package kb

import (
	"context"
	"fmt"
)

// RoomType groups every room instance of one semantic type across ids and seeds.
type RoomType struct {
	Name  string
	IDs   []int
	Rooms []*Room

	Aggregate
}

var _ Collection = (*RoomType)(nil)

// NewRoomType builds one empty room per (id, seed), ids outermost.
func NewRoomType(name string, ids, seeds []int) *RoomType {
	rt := &RoomType{Name: name, IDs: append([]int(nil), ids...)}
	for _, id := range ids {
		for _, seed := range seeds {
			rt.Rooms = append(rt.Rooms, NewRoom(name, id, seed))
		}
	}
	return rt
}

func (rt *RoomType) Scrape(ctx context.Context, env Env) error {
	for _, room := range rt.Rooms {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := room.Scrape(ctx, env); err != nil {
			return fmt.Errorf("scraping %s room %s: %w", rt.Name, room.Key(), err)
		}
	}
	rt.Aggregate = Fold(rt.Rooms...)
	return nil
}
