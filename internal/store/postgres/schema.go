package postgres

import (
	"context"
	"fmt"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
CREATE TABLE IF NOT EXISTS runs (
    id             UUID PRIMARY KEY,
    dataset        TEXT NOT NULL,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    entity_count   INTEGER NOT NULL DEFAULT 0,
    relation_count INTEGER NOT NULL DEFAULT 0,
    triple_count   INTEGER NOT NULL DEFAULT 0,
    unique_count   INTEGER NOT NULL DEFAULT 0,
    CONSTRAINT uq_run_dataset UNIQUE (dataset)
);

CREATE TABLE IF NOT EXISTS entities (
    id      BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    run_id  UUID NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    dataset TEXT NOT NULL,
    name    TEXT NOT NULL,
    kind    TEXT NOT NULL,
    CONSTRAINT uq_entity UNIQUE (dataset, name)
);

CREATE TABLE IF NOT EXISTS relations (
    id      BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    run_id  UUID NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    dataset TEXT NOT NULL,
    name    TEXT NOT NULL,
    CONSTRAINT uq_relation UNIQUE (dataset, name)
);

CREATE TABLE IF NOT EXISTS triples (
    id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    run_id      UUID NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
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

	if _, err := c.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("executing DDL: %w", err)
	}
	return nil
}
