package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"thorkg/internal/kb"
)

// UpsertTriple merges the relationship for t. Endpoints that are not yet in the
// graph are created as bare entities of their tagged kind.
func (c *Client) UpsertTriple(ctx context.Context, dataset string, t kb.Triple) error {
	relType, err := RelationshipType(t.Relation)
	if err != nil {
		return err
	}

	session := c.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: c.database})
	defer session.Close(ctx)

	query := fmt.Sprintf(`
MERGE (a:Entity {dataset: $dataset, name: $subject})
ON CREATE SET a.kind = $subject_kind
MERGE (b:Entity {dataset: $dataset, name: $object})
ON CREATE SET b.kind = $object_kind
MERGE (a)-[r:%s]->(b)
SET r.relation = $relation
`, relType)

	params := map[string]any{
		"dataset":      dataset,
		"subject":      t.Subject,
		"subject_kind": string(kb.KindOf(t.Subject)),
		"object":       t.Object,
		"object_kind":  string(kb.KindOf(t.Object)),
		"relation":     t.Relation,
	}

	if _, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx, query, params)
		return nil, err
	}); err != nil {
		return fmt.Errorf("upserting triple %s: %w", t, err)
	}

	return nil
}
