package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"thorkg/internal/kb"
)

// UpsertEntity merges one entity node of dataset, labelled by its kind.
func (c *Client) UpsertEntity(ctx context.Context, dataset, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("entity name must not be empty")
	}
	kind := kb.KindOf(name)
	label := Label(kind)
	if !labelPattern.MatchString(label) {
		return fmt.Errorf("invalid label: %s", label)
	}

	session := c.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: c.database})
	defer session.Close(ctx)

	query := fmt.Sprintf(`
MERGE (n:Entity {dataset: $dataset, name: $name})
SET n.kind = $kind,
    n.last_synced = datetime(),
    n:%s
`, label)

	params := map[string]any{
		"dataset": dataset,
		"name":    name,
		"kind":    string(kind),
	}

	if _, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx, query, params)
		return nil, err
	}); err != nil {
		return fmt.Errorf("upserting entity %s: %w", name, err)
	}

	return nil
}
