package store

import (
	"context"

	"thorkg/internal/kb"
)

type Store interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	SaveRun(ctx context.Context, run Run) error

	ListEntities(ctx context.Context, dataset string, kind kb.Kind) ([]Entity, error)
	ListRelations(ctx context.Context, dataset string) ([]Relation, error)
	FindTriples(ctx context.Context, filter TripleFilter) ([]StoredTriple, error)
	Stats(ctx context.Context, dataset string) (*Stats, error)

	RunSQL(ctx context.Context, query string, params map[string]any) ([]map[string]any, error)
}
