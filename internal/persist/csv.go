package persist

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"thorkg/internal/kb"
)

// WriteCSV writes every room's triples, in extraction order, as head,relation,tail rows.
func WriteCSV(layout Layout, ds *kb.Dataset) error {
	for _, rt := range ds.RoomTypes {
		dir := layout.RoomTypeDir(rt.Name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating room type directory: %w", err)
		}
		for _, room := range rt.Rooms {
			path := filepath.Join(dir, room.Key()+".csv")
			if err := writeTriplesCSV(path, room.Triples()); err != nil {
				return fmt.Errorf("writing room %s/%s: %w", rt.Name, room.Key(), err)
			}
		}
	}
	return SaveIndexes(layout.RoomsDir(), ds)
}

func writeTriplesCSV(path string, triples []kb.Triple) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	for _, t := range triples {
		if err := w.Write([]string{t.Subject, t.Relation, t.Object}); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadCSV loads a room file written by WriteCSV.
func ReadCSV(path string) ([]kb.Triple, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	triples := make([]kb.Triple, 0, len(records))
	for _, rec := range records {
		triples = append(triples, kb.Triple{Subject: rec[0], Relation: rec[1], Object: rec[2]})
	}
	return triples, nil
}
