package sqlite

import (
	"context"
	"fmt"
	"strings"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS runs (
		id          TEXT PRIMARY KEY,
		dataset     TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		entity_count   INTEGER NOT NULL DEFAULT 0,
		relation_count INTEGER NOT NULL DEFAULT 0,
		triple_count   INTEGER NOT NULL DEFAULT 0,
		unique_count   INTEGER NOT NULL DEFAULT 0,
		CONSTRAINT uq_run_dataset UNIQUE (dataset)
	);

	CREATE TABLE IF NOT EXISTS entities (
		id      INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id  TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		dataset TEXT NOT NULL,
		name    TEXT NOT NULL,
		kind    TEXT NOT NULL,
		CONSTRAINT uq_entity UNIQUE (dataset, name)
	);

	CREATE TABLE IF NOT EXISTS relations (
		id      INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id  TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		dataset TEXT NOT NULL,
		name    TEXT NOT NULL,
		CONSTRAINT uq_relation UNIQUE (dataset, name)
	);

	CREATE TABLE IF NOT EXISTS triples (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id      TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		dataset     TEXT NOT NULL,
		subject     TEXT NOT NULL,
		relation    TEXT NOT NULL,
		object      TEXT NOT NULL,
		occurrences INTEGER NOT NULL DEFAULT 1,
		CONSTRAINT uq_triple UNIQUE (dataset, subject, relation, object)
	);

	CREATE INDEX IF NOT EXISTS idx_entities_kind ON entities (dataset, kind);
	CREATE INDEX IF NOT EXISTS idx_triples_subject ON triples (dataset, subject);
	CREATE INDEX IF NOT EXISTS idx_triples_relation ON triples (dataset, relation);
	CREATE INDEX IF NOT EXISTS idx_triples_object ON triples (dataset, object);
	`

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range splitStatements(ddl) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing DDL: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema transaction: %w", err)
	}

	return nil
}

func splitStatements(ddl string) []string {
	var statements []string
	var current strings.Builder

	for _, line := range strings.Split(ddl, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasSuffix(stripped, ";") {
			statements = append(statements, current.String())
			current.Reset()
		}
	}

	if current.Len() > 0 {
		statements = append(statements, current.String())
	}

	return statements
}
