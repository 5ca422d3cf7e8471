package kb

import "sort"

// Collection is anything that holds a slice of the knowledge base: a room,
// a room type, a whole dataset, or a document loaded back from disk.
type Collection interface {
	Entities() []string
	Relations() []string
	Triples() []Triple
	UniqueTriples() []Triple
}

// Aggregate is the materialised content of a Collection.
type Aggregate struct {
	EntityNames   []string `json:"entities"`
	RelationNames []string `json:"relations"`
	TripleList    []Triple `json:"triples"`
	UniqueList    []Triple `json:"unique_triples"`
}

var _ Collection = Aggregate{}

// Fold merges children the same way at every scope: entities and relations are
// unioned, triples concatenated in child order, and the unique triples are the
// dedup of that concatenation.
func Fold[C Collection](children ...C) Aggregate {
	entities := NewOrderedSet[string]()
	relations := NewOrderedSet[string]()
	var triples []Triple
	for _, child := range children {
		entities.AddAll(child.Entities()...)
		relations.AddAll(child.Relations()...)
		triples = append(triples, child.Triples()...)
	}
	return Aggregate{
		EntityNames:   entities.Items(),
		RelationNames: relations.Items(),
		TripleList:    triples,
		UniqueList:    Unique(triples),
	}
}

func (a Aggregate) Entities() []string {
	return sortedCopy(a.EntityNames)
}

func (a Aggregate) Relations() []string {
	return sortedCopy(a.RelationNames)
}

func (a Aggregate) Triples() []Triple {
	return a.TripleList
}

func (a Aggregate) UniqueTriples() []Triple {
	return a.UniqueList
}

// Snapshot copies any Collection into an Aggregate.
func Snapshot(c Collection) Aggregate {
	return Aggregate{
		EntityNames:   c.Entities(),
		RelationNames: c.Relations(),
		TripleList:    c.Triples(),
		UniqueList:    c.UniqueTriples(),
	}
}

func sortedCopy(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	sort.Strings(out)
	return out
}
