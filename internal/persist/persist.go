// Package persist writes a scraped dataset to disk and reads it back.
//
// Layout under the output directory:
//
//	<name>/rooms/<name>.json                  whole dataset
//	<name>/rooms/entities.txt                 count line, then "name\tindex"
//	<name>/rooms/relations.txt                same format
//	<name>/rooms/<roomType>/<id>_<seed>.json  one room
//	<name>/rooms/<roomType>/<id>_<seed>.csv   head,relation,tail (optional)
package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"thorkg/internal/kb"
)

const (
	EntitiesFile  = "entities.txt"
	RelationsFile = "relations.txt"
)

type Layout struct {
	Root string
	Name string
}

func (l Layout) RoomsDir() string {
	return filepath.Join(l.Root, l.Name, "rooms")
}

func (l Layout) DatasetPath() string {
	return filepath.Join(l.RoomsDir(), l.Name+".json")
}

func (l Layout) RoomTypeDir(roomType string) string {
	return filepath.Join(l.RoomsDir(), roomType)
}

type RoomDocument struct {
	Type string `json:"type"`
	ID   int    `json:"id"`
	Seed int    `json:"seed"`
	kb.Aggregate
}

type RoomTypeDocument struct {
	Name  string         `json:"name"`
	IDs   []int          `json:"ids"`
	Rooms []RoomDocument `json:"rooms"`
	kb.Aggregate
}

// DatasetDocument is the serialized dataset. It satisfies kb.Collection so it can
// be exported or validated without re-scraping.
type DatasetDocument struct {
	Name      string             `json:"name"`
	RoomTypes []RoomTypeDocument `json:"room_types"`
	kb.Aggregate
}

func roomDocument(room *kb.Room) RoomDocument {
	return RoomDocument{Type: room.Type, ID: room.ID, Seed: room.Seed, Aggregate: kb.Snapshot(room)}
}

func NewDatasetDocument(ds *kb.Dataset) DatasetDocument {
	doc := DatasetDocument{Name: ds.Name, Aggregate: kb.Snapshot(ds)}
	for _, rt := range ds.RoomTypes {
		rtDoc := RoomTypeDocument{Name: rt.Name, IDs: rt.IDs, Aggregate: kb.Snapshot(rt)}
		for _, room := range rt.Rooms {
			rtDoc.Rooms = append(rtDoc.Rooms, roomDocument(room))
		}
		doc.RoomTypes = append(doc.RoomTypes, rtDoc)
	}
	return doc
}

// Save writes the dataset document, the entity and relation indexes, and one
// document per room.
func Save(layout Layout, ds *kb.Dataset) error {
	if err := os.MkdirAll(layout.RoomsDir(), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := writeJSON(layout.DatasetPath(), NewDatasetDocument(ds)); err != nil {
		return fmt.Errorf("saving dataset: %w", err)
	}

	for _, rt := range ds.RoomTypes {
		dir := layout.RoomTypeDir(rt.Name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating room type directory: %w", err)
		}
		for _, room := range rt.Rooms {
			path := filepath.Join(dir, room.Key()+".json")
			if err := writeJSON(path, roomDocument(room)); err != nil {
				return fmt.Errorf("saving room %s/%s: %w", rt.Name, room.Key(), err)
			}
		}
	}

	return SaveIndexes(layout.RoomsDir(), ds)
}

// SaveIndexes writes entities.txt and relations.txt into dir.
func SaveIndexes(dir string, c kb.Collection) error {
	if err := WriteIndex(filepath.Join(dir, RelationsFile), c.Relations()); err != nil {
		return fmt.Errorf("saving relations: %w", err)
	}
	if err := WriteIndex(filepath.Join(dir, EntitiesFile), c.Entities()); err != nil {
		return fmt.Errorf("saving entities: %w", err)
	}
	return nil
}

func LoadDataset(path string) (*DatasetDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	var doc DatasetDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	return &doc, nil
}

func writeJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
