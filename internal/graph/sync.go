package graph

import (
	"context"
	"fmt"
	"sort"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"thorkg/internal/kb"
)

type SyncResult struct {
	Removed       int64
	Entities      int
	Relationships int
}

// Sync replaces the graph for dataset with the entities and unique triples of coll.
// Writes are grouped per label and per relationship type so each group is one
// UNWIND statement.
func (c *Client) Sync(ctx context.Context, dataset string, coll kb.Collection) (*SyncResult, error) {
	removed, err := c.RemoveDataset(ctx, dataset)
	if err != nil {
		return nil, err
	}

	byLabel := make(map[string][]map[string]any)
	entities := coll.Entities()
	for _, name := range entities {
		kind := kb.KindOf(name)
		label := Label(kind)
		byLabel[label] = append(byLabel[label], map[string]any{"name": name, "kind": string(kind)})
	}

	byType := make(map[string][]map[string]any)
	triples := coll.UniqueTriples()
	for _, t := range triples {
		relType, err := RelationshipType(t.Relation)
		if err != nil {
			return nil, err
		}
		byType[relType] = append(byType[relType], map[string]any{
			"subject":      t.Subject,
			"subject_kind": string(kb.KindOf(t.Subject)),
			"object":       t.Object,
			"object_kind":  string(kb.KindOf(t.Object)),
			"relation":     t.Relation,
		})
	}

	session := c.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: c.database})
	defer session.Close(ctx)

	_, err = session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, label := range sortedKeys(byLabel) {
			query := fmt.Sprintf(`
UNWIND $rows AS row
MERGE (n:Entity {dataset: $dataset, name: row.name})
SET n.kind = row.kind,
    n.last_synced = datetime(),
    n:%s
`, label)
			if _, err := tx.Run(ctx, query, map[string]any{"dataset": dataset, "rows": byLabel[label]}); err != nil {
				return nil, err
			}
		}
		for _, relType := range sortedKeys(byType) {
			query := fmt.Sprintf(`
UNWIND $rows AS row
MERGE (a:Entity {dataset: $dataset, name: row.subject})
ON CREATE SET a.kind = row.subject_kind
MERGE (b:Entity {dataset: $dataset, name: row.object})
ON CREATE SET b.kind = row.object_kind
MERGE (a)-[r:%s]->(b)
SET r.relation = row.relation
`, relType)
			if _, err := tx.Run(ctx, query, map[string]any{"dataset": dataset, "rows": byType[relType]}); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return nil, fmt.Errorf("syncing dataset %s: %w", dataset, err)
	}

	return &SyncResult{Removed: removed, Entities: len(entities), Relationships: len(triples)}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
