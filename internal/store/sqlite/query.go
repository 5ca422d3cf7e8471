package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"thorkg/internal/kb"
	"thorkg/internal/store"
)

func (c *Client) ListEntities(ctx context.Context, dataset string, kind kb.Kind) ([]store.Entity, error) {
	query := `
	SELECT DISTINCT name, kind
	FROM entities
	WHERE (? = '' OR dataset = ?)
	  AND (? = '' OR kind = ?)
	ORDER BY name ASC
	`

	rows, err := c.db.QueryContext(ctx, query, dataset, dataset, string(kind), string(kind))
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
	WHERE (? = '' OR r.dataset = ?)
	GROUP BY r.name
	ORDER BY r.name ASC
	`

	rows, err := c.db.QueryContext(ctx, query, dataset, dataset)
	if err != nil {
		return nil, fmt.Errorf("listing relations: %w", err)
	}
	defer rows.Close()

	var results []store.Relation
	for rows.Next() {
		var r store.Relation
		if err := rows.Scan(&r.Name, &r.Triples); err != nil {
			return nil, fmt.Errorf("scanning relation: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating relations: %w", err)
	}
	return results, nil
}

func (c *Client) FindTriples(ctx context.Context, f store.TripleFilter) ([]store.StoredTriple, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = -1
	}

	query := `
	SELECT subject, relation, object, occurrences
	FROM triples
	WHERE (? = '' OR dataset = ?)
	  AND (? = '' OR subject = ?)
	  AND (? = '' OR relation = ?)
	  AND (? = '' OR object = ?)
	ORDER BY subject ASC, relation ASC, object ASC
	LIMIT ?
	`

	rows, err := c.db.QueryContext(ctx, query,
		f.Dataset, f.Dataset,
		f.Subject, f.Subject,
		f.Relation, f.Relation,
		f.Object, f.Object,
		limit,
	)
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
	SELECT id, dataset, created_at, entity_count, relation_count, triple_count, unique_count
	FROM runs
	WHERE dataset = ?
	`

	var s store.Stats
	var createdAt string
	err := c.db.QueryRowContext(ctx, query, dataset).Scan(
		&s.RunID, &s.Dataset, &createdAt,
		&s.Entities, &s.Relations, &s.Triples, &s.UniqueTriples,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading stats for %s: %w", dataset, err)
	}

	s.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing run time %q: %w", createdAt, err)
	}
	return &s, nil
}
