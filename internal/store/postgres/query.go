package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"thorkg/internal/kb"
	"thorkg/internal/store"
)

func (c *Client) ListEntities(ctx context.Context, dataset string, kind kb.Kind) ([]store.Entity, error) {
	query := `
SELECT DISTINCT name, kind
FROM entities
WHERE ($1 = '' OR dataset = $1)
  AND ($2 = '' OR kind = $2)
ORDER BY name COLLATE "C" ASC
`

	rows, err := c.pool.Query(ctx, query, dataset, string(kind))
	if err != nil {
		return nil, fmt.Errorf("listing entities: %w", err)
	}
	defer rows.Close()

	var results []store.Entity
	for rows.Next() {
		var e store.Entity
		var k string
		if err := rows.Scan(&e.Name, &k); err != nil {
			return nil, fmt.Errorf("scanning entity: %w", err)
		}
		e.Kind = kb.Kind(k)
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entities: %w", err)
	}
	return results, nil
}

func (c *Client) ListRelations(ctx context.Context, dataset string) ([]store.Relation, error) {
	query := `
SELECT r.name, COUNT(t.id)
FROM relations r
LEFT JOIN triples t ON t.dataset = r.dataset AND t.relation = r.name
WHERE ($1 = '' OR r.dataset = $1)
GROUP BY r.name
ORDER BY r.name COLLATE "C" ASC
`

	rows, err := c.pool.Query(ctx, query, dataset)
	if err != nil {
		return nil, fmt.Errorf("listing relations: %w", err)
	}
	defer rows.Close()

	var results []store.Relation
	for rows.Next() {
		var r store.Relation
		var n int64
		if err := rows.Scan(&r.Name, &n); err != nil {
			return nil, fmt.Errorf("scanning relation: %w", err)
		}
		r.Triples = int(n)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating relations: %w", err)
	}
	return results, nil
}

func (c *Client) FindTriples(ctx context.Context, f store.TripleFilter) ([]store.StoredTriple, error) {
	var limit any
	if f.Limit > 0 {
		limit = f.Limit
	}

	query := `
SELECT subject, relation, object, occurrences
FROM triples
WHERE ($1 = '' OR dataset = $1)
  AND ($2 = '' OR subject = $2)
  AND ($3 = '' OR relation = $3)
  AND ($4 = '' OR object = $4)
ORDER BY subject COLLATE "C", relation COLLATE "C", object COLLATE "C"
LIMIT $5
`

	rows, err := c.pool.Query(ctx, query, f.Dataset, f.Subject, f.Relation, f.Object, limit)
	if err != nil {
		return nil, fmt.Errorf("finding triples: %w", err)
	}
	defer rows.Close()

	var results []store.StoredTriple
	for rows.Next() {
		var t store.StoredTriple
		if err := rows.Scan(&t.Subject, &t.Relation, &t.Object, &t.Occurrences); err != nil {
			return nil, fmt.Errorf("scanning triple: %w", err)
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating triples: %w", err)
	}
	return results, nil
}

// Stats returns nil when nothing has been saved under dataset.
func (c *Client) Stats(ctx context.Context, dataset string) (*store.Stats, error) {
	if dataset == "" {
		return nil, fmt.Errorf("dataset name is required")
	}

	query := `
SELECT id::text, dataset, created_at, entity_count, relation_count, triple_count, unique_count
FROM runs
WHERE dataset = $1
`

	var s store.Stats
	err := c.pool.QueryRow(ctx, query, dataset).Scan(
		&s.RunID, &s.Dataset, &s.CreatedAt,
		&s.Entities, &s.Relations, &s.Triples, &s.UniqueTriples,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading stats for %s: %w", dataset, err)
	}
	return &s, nil
}
