package store

import (
	"time"

	"github.com/google/uuid"

	"thorkg/internal/kb"
)

// Run is one scraped dataset as it is written to a store. Saving a run
// replaces whatever the store held for the same dataset name.
type Run struct {
	ID        string
	Dataset   string
	CreatedAt time.Time
	Entities  []string
	Relations []string
	Triples   []kb.Triple
	Unique    []kb.Triple
}

func NewRun(dataset string, c kb.Collection) Run {
	return Run{
		ID:        uuid.NewString(),
		Dataset:   dataset,
		CreatedAt: time.Now().UTC(),
		Entities:  c.Entities(),
		Relations: c.Relations(),
		Triples:   c.Triples(),
		Unique:    c.UniqueTriples(),
	}
}

// Occurrences pairs every unique triple with the number of times it appears
// in the full triple list. Order follows Unique.
func (r Run) Occurrences() []StoredTriple {
	counts := make(map[kb.Triple]int, len(r.Unique))
	for _, t := range r.Triples {
		counts[t]++
	}
	out := make([]StoredTriple, 0, len(r.Unique))
	for _, t := range r.Unique {
		n := counts[t]
		if n == 0 {
			n = 1
		}
		out = append(out, StoredTriple{Triple: t, Occurrences: n})
	}
	return out
}

type Entity struct {
	Name string  `json:"name"`
	Kind kb.Kind `json:"kind"`
}

type Relation struct {
	Name    string `json:"name"`
	Triples int    `json:"triples"`
}

type StoredTriple struct {
	kb.Triple
	Occurrences int `json:"occurrences"`
}

type TripleFilter struct {
	Dataset  string
	Subject  string
	Relation string
	Object   string
	Limit    int
}

type Stats struct {
	Dataset       string    `json:"dataset"`
	RunID         string    `json:"run_id"`
	CreatedAt     time.Time `json:"created_at"`
	Entities      int       `json:"entities"`
	Relations     int       `json:"relations"`
	Triples       int       `json:"triples"`
	UniqueTriples int       `json:"unique_triples"`
}
