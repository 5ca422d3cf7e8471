package sqlite

import (
	"context"
	"fmt"
	"time"

	"thorkg/internal/kb"
	"thorkg/internal/store"
)

// SaveRun replaces everything stored under run.Dataset with the contents of run.
func (c *Client) SaveRun(ctx context.Context, run store.Run) error {
	if run.Dataset == "" {
		return fmt.Errorf("run has no dataset name")
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"triples", "relations", "entities", "runs"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE dataset = ?", run.Dataset); err != nil {
			return fmt.Errorf("clearing %s for %s: %w", table, run.Dataset, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
	INSERT INTO runs (id, dataset, created_at, entity_count, relation_count, triple_count, unique_count)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Dataset, run.CreatedAt.UTC().Format(time.RFC3339Nano),
		len(run.Entities), len(run.Relations), len(run.Triples), len(run.Unique))
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	entityStmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO entities (run_id, dataset, name, kind) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing entity insert: %w", err)
	}
	defer entityStmt.Close()
	for _, name := range run.Entities {
		if _, err := entityStmt.ExecContext(ctx, run.ID, run.Dataset, name, string(kb.KindOf(name))); err != nil {
			return fmt.Errorf("inserting entity %q: %w", name, err)
		}
	}

	relationStmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO relations (run_id, dataset, name) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing relation insert: %w", err)
	}
	defer relationStmt.Close()
	for _, name := range run.Relations {
		if _, err := relationStmt.ExecContext(ctx, run.ID, run.Dataset, name); err != nil {
			return fmt.Errorf("inserting relation %q: %w", name, err)
		}
	}

	tripleStmt, err := tx.PrepareContext(ctx, `
	INSERT OR IGNORE INTO triples (run_id, dataset, subject, relation, object, occurrences)
	VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing triple insert: %w", err)
	}
	defer tripleStmt.Close()
	for _, t := range run.Occurrences() {
		if _, err := tripleStmt.ExecContext(ctx, run.ID, run.Dataset, t.Subject, t.Relation, t.Object, t.Occurrences); err != nil {
			return fmt.Errorf("inserting triple %s: %w", t.Triple, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	return nil
}
