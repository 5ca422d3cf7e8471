package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"thorkg/internal/kb"
	"thorkg/internal/store"
)

// SaveRun replaces everything stored under run.Dataset with the contents of run.
// Deleting the run row cascades to its entities, relations and triples.
func (c *Client) SaveRun(ctx context.Context, run store.Run) error {
	if run.Dataset == "" {
		return fmt.Errorf("run has no dataset name")
	}

	id, err := uuid.Parse(run.ID)
	if err != nil {
		return fmt.Errorf("parsing run id %q: %w", run.ID, err)
	}
	runID := [16]byte(id)

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM runs WHERE dataset = $1`, run.Dataset); err != nil {
		return fmt.Errorf("clearing dataset %s: %w", run.Dataset, err)
	}

	_, err = tx.Exec(ctx, `
INSERT INTO runs (id, dataset, created_at, entity_count, relation_count, triple_count, unique_count)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, runID, run.Dataset, run.CreatedAt,
		len(run.Entities), len(run.Relations), len(run.Triples), len(run.Unique))
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	batch := &pgx.Batch{}
	for _, name := range run.Entities {
		batch.Queue(`
INSERT INTO entities (run_id, dataset, name, kind) VALUES ($1, $2, $3, $4)
ON CONFLICT (dataset, name) DO NOTHING
`, runID, run.Dataset, name, string(kb.KindOf(name)))
	}
	for _, name := range run.Relations {
		batch.Queue(`
INSERT INTO relations (run_id, dataset, name) VALUES ($1, $2, $3)
ON CONFLICT (dataset, name) DO NOTHING
`, runID, run.Dataset, name)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("inserting entities and relations: %w", err)
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{"triples"}, tripleColumns, pgx.CopyFromRows(tripleRows(runID, run)))
	if err != nil {
		return fmt.Errorf("copying triples: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	return nil
}

var tripleColumns = []string{"run_id", "dataset", "subject", "relation", "object", "occurrences"}

// tripleRows lays out run's unique triples in tripleColumns order for COPY.
func tripleRows(runID [16]byte, run store.Run) [][]any {
	occurrences := run.Occurrences()
	rows := make([][]any, 0, len(occurrences))
	for _, t := range occurrences {
		rows = append(rows, []any{runID, run.Dataset, t.Subject, t.Relation, t.Object, t.Occurrences})
	}
	return rows
}
