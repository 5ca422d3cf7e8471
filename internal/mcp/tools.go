package mcp

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"thorkg/internal/kb"
	"thorkg/internal/store"
)

const (
	defaultTripleLimit = 100
	maxTripleLimit     = 1000
)

type FindTriplesInput struct {
	Dataset  string `json:"dataset,omitempty" jsonschema:"dataset name, defaults to the served dataset"`
	Subject  string `json:"subject,omitempty" jsonschema:"exact subject entity, e.g. mug.o"`
	Relation string `json:"relation,omitempty" jsonschema:"exact relation, e.g. hasMat"`
	Object   string `json:"object,omitempty" jsonschema:"exact object entity, e.g. ceramic.m"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of triples, default 100"`
}

type ListEntitiesInput struct {
	Dataset string `json:"dataset,omitempty" jsonschema:"dataset name, defaults to the served dataset"`
	Kind    string `json:"kind,omitempty" jsonschema:"object, location, material or concept"`
}

type ListRelationsInput struct {
	Dataset string `json:"dataset,omitempty" jsonschema:"dataset name, defaults to the served dataset"`
}

type GetStatsInput struct {
	Dataset string `json:"dataset,omitempty" jsonschema:"dataset name, defaults to the served dataset"`
}

type TripleOutput struct {
	Subject     string `json:"subject"`
	Relation    string `json:"relation"`
	Object      string `json:"object"`
	Occurrences int    `json:"occurrences"`
}

type FindTriplesOutput struct {
	Triples []TripleOutput `json:"triples"`
}

type EntityOutput struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type ListEntitiesOutput struct {
	Entities []EntityOutput `json:"entities"`
}

type RelationOutput struct {
	Name    string `json:"name"`
	Triples int    `json:"triples"`
}

type ListRelationsOutput struct {
	Relations []RelationOutput `json:"relations"`
}

type StatsOutput struct {
	Dataset       string `json:"dataset"`
	RunID         string `json:"run_id"`
	CreatedAt     string `json:"created_at"`
	Entities      int    `json:"entities"`
	Relations     int    `json:"relations"`
	Triples       int    `json:"triples"`
	UniqueTriples int    `json:"unique_triples"`
}

var validKinds = map[kb.Kind]bool{
	kb.KindObject:   true,
	kb.KindLocation: true,
	kb.KindMaterial: true,
	kb.KindConcept:  true,
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "find_triples",
		Description: "Find knowledge triples by exact subject, relation and/or object",
	}, s.handleFindTriples)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_entities",
		Description: "List entities, optionally restricted to one kind",
	}, s.handleListEntities)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_relations",
		Description: "List relations with the number of unique triples using each",
	}, s.handleListRelations)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_stats",
		Description: "Return counts for the last scrape of a dataset",
	}, s.handleGetStats)
}

func (s *Server) datasetOr(name string) string {
	if name != "" {
		return name
	}
	return s.dataset
}

func (s *Server) handleFindTriples(ctx context.Context, req *sdk.CallToolRequest, input FindTriplesInput) (*sdk.CallToolResult, FindTriplesOutput, error) {
	limit := input.Limit
	switch {
	case limit < 0:
		return nil, FindTriplesOutput{}, fmt.Errorf("limit must not be negative")
	case limit == 0:
		limit = defaultTripleLimit
	case limit > maxTripleLimit:
		limit = maxTripleLimit
	}

	triples, err := s.db.FindTriples(ctx, store.TripleFilter{
		Dataset:  s.datasetOr(input.Dataset),
		Subject:  input.Subject,
		Relation: input.Relation,
		Object:   input.Object,
		Limit:    limit,
	})
	if err != nil {
		return nil, FindTriplesOutput{}, err
	}

	output := make([]TripleOutput, 0, len(triples))
	for _, t := range triples {
		output = append(output, TripleOutput{
			Subject:     t.Subject,
			Relation:    t.Relation,
			Object:      t.Object,
			Occurrences: t.Occurrences,
		})
	}
	return nil, FindTriplesOutput{Triples: output}, nil
}

func (s *Server) handleListEntities(ctx context.Context, req *sdk.CallToolRequest, input ListEntitiesInput) (*sdk.CallToolResult, ListEntitiesOutput, error) {
	kind := kb.Kind(input.Kind)
	if kind != "" && !validKinds[kind] {
		return nil, ListEntitiesOutput{}, fmt.Errorf("unknown kind %q", input.Kind)
	}

	items, err := s.db.ListEntities(ctx, s.datasetOr(input.Dataset), kind)
	if err != nil {
		return nil, ListEntitiesOutput{}, err
	}

	output := make([]EntityOutput, 0, len(items))
	for _, item := range items {
		output = append(output, EntityOutput{Name: item.Name, Kind: string(item.Kind)})
	}
	return nil, ListEntitiesOutput{Entities: output}, nil
}

func (s *Server) handleListRelations(ctx context.Context, req *sdk.CallToolRequest, input ListRelationsInput) (*sdk.CallToolResult, ListRelationsOutput, error) {
	items, err := s.db.ListRelations(ctx, s.datasetOr(input.Dataset))
	if err != nil {
		return nil, ListRelationsOutput{}, err
	}

	output := make([]RelationOutput, 0, len(items))
	for _, item := range items {
		output = append(output, RelationOutput{Name: item.Name, Triples: item.Triples})
	}
	return nil, ListRelationsOutput{Relations: output}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *sdk.CallToolRequest, input GetStatsInput) (*sdk.CallToolResult, StatsOutput, error) {
	dataset := s.datasetOr(input.Dataset)
	if dataset == "" {
		return nil, StatsOutput{}, fmt.Errorf("dataset is required")
	}

	stats, err := s.db.Stats(ctx, dataset)
	if err != nil {
		return nil, StatsOutput{}, err
	}
	if stats == nil {
		return nil, StatsOutput{}, fmt.Errorf("dataset %q not found", dataset)
	}

	return nil, StatsOutput{
		Dataset:       stats.Dataset,
		RunID:         stats.RunID,
		CreatedAt:     stats.CreatedAt.UTC().Format(time.RFC3339),
		Entities:      stats.Entities,
		Relations:     stats.Relations,
		Triples:       stats.Triples,
		UniqueTriples: stats.UniqueTriples,
	}, nil
}
