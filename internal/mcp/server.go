package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"thorkg/internal/kb"
	"thorkg/internal/store"
)

// Querier is the read side of a store.Store.
type Querier interface {
	ListEntities(ctx context.Context, dataset string, kind kb.Kind) ([]store.Entity, error)
	ListRelations(ctx context.Context, dataset string) ([]store.Relation, error)
	FindTriples(ctx context.Context, filter store.TripleFilter) ([]store.StoredTriple, error)
	Stats(ctx context.Context, dataset string) (*store.Stats, error)
}

type Server struct {
	dataset string
	db      Querier
	mcp     *sdk.Server
}

// NewServer answers queries against dataset unless a tool call names another one.
func NewServer(dataset string, db Querier, version string) *Server {
	s := &Server{
		dataset: dataset,
		db:      db,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "thorkg",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
