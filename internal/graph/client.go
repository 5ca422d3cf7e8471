package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"thorkg/internal/config"
)

type Client struct {
	driver   neo4j.DriverWithContext
	database string
}

func NewClient(ctx context.Context, uri, username, password, database string) (*Client, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("creating neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("verifying neo4j connectivity: %w", err)
	}

	return &Client{driver: driver, database: database}, nil
}

// Open connects using the neo4j section of a project config.
func Open(ctx context.Context, cfg config.Neo4jConfig) (*Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("neo4j uri is not configured")
	}
	return NewClient(ctx, cfg.URI, cfg.Username, cfg.Password, cfg.Database)
}

func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.driver == nil {
		return nil
	}
	return c.driver.Close(ctx)
}

func (c *Client) EnsureIndexes(ctx context.Context) error {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: c.database})
	defer session.Close(ctx)

	statements := []string{
		`CREATE CONSTRAINT entity_unique_dataset_name IF NOT EXISTS
FOR (e:Entity) REQUIRE (e.dataset, e.name) IS UNIQUE`,
		`CREATE INDEX entity_dataset IF NOT EXISTS FOR (e:Entity) ON (e.dataset)`,
		`CREATE INDEX entity_kind IF NOT EXISTS FOR (e:Entity) ON (e.kind)`,
	}

	for _, stmt := range statements {
		if _, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
			_, err := tx.Run(ctx, stmt, nil)
			return nil, err
		}); err != nil {
			return fmt.Errorf("ensuring indexes: %w", err)
		}
	}

	return nil
}
