package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thorkg/internal/kb"
	"thorkg/internal/store"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()
	c, err := New(ctx, "sqlite://:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { c.Close(ctx) })
	require.NoError(t, c.EnsureSchema(ctx))
	return c
}

func kitchenRun() store.Run {
	mug := []kb.Triple{
		{Subject: "mug.o", Relation: kb.RelHasMat, Object: "ceramic.m"},
		{Subject: "mug.l", Relation: kb.RelLocInRoom, Object: "kitchen"},
		{Subject: "mug.o", Relation: "ObjCanBe", Object: "fill"},
	}
	second := []kb.Triple{
		{Subject: "mug.o", Relation: kb.RelHasMat, Object: "ceramic.m"},
		{Subject: "knife.o", Relation: "ObjUsedTo", Object: "slice"},
	}
	agg := kb.Fold(
		kb.Aggregate{
			EntityNames:   []string{"kitchen", "mug.o", "mug.l", "ceramic.m", "fill"},
			RelationNames: []string{kb.RelHasMat, kb.RelLocInRoom, "ObjCanBe"},
			TripleList:    mug,
			UniqueList:    kb.Unique(mug),
		},
		kb.Aggregate{
			EntityNames:   []string{"kitchen", "mug.o", "ceramic.m", "knife.o", "slice"},
			RelationNames: []string{kb.RelHasMat, "ObjUsedTo"},
			TripleList:    second,
			UniqueList:    kb.Unique(second),
		},
	)
	return store.NewRun("thor", agg)
}

func TestSaveRun_Stats(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	run := kitchenRun()

	require.NoError(t, c.SaveRun(ctx, run))

	stats, err := c.Stats(ctx, "thor")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, run.ID, stats.RunID)
	assert.Equal(t, 7, stats.Entities)
	assert.Equal(t, 4, stats.Relations)
	assert.Equal(t, 5, stats.Triples)
	assert.Equal(t, 4, stats.UniqueTriples)
	assert.True(t, run.CreatedAt.Equal(stats.CreatedAt))
}

func TestStats_Missing(t *testing.T) {
	c := newTestClient(t)

	stats, err := c.Stats(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, stats)

	_, err = c.Stats(context.Background(), "")
	assert.Error(t, err)
}

func TestSaveRun_ReplacesDataset(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	require.NoError(t, c.SaveRun(ctx, kitchenRun()))

	only := []kb.Triple{{Subject: "bowl.o", Relation: kb.RelHasMat, Object: "glass.m"}}
	next := store.NewRun("thor", kb.Aggregate{
		EntityNames:   []string{"bowl.o", "glass.m"},
		RelationNames: []string{kb.RelHasMat},
		TripleList:    only,
		UniqueList:    only,
	})
	require.NoError(t, c.SaveRun(ctx, next))

	triples, err := c.FindTriples(ctx, store.TripleFilter{Dataset: "thor"})
	require.NoError(t, err)
	require.Len(t, triples, 1)
	assert.Equal(t, only[0], triples[0].Triple)

	stats, err := c.Stats(ctx, "thor")
	require.NoError(t, err)
	assert.Equal(t, next.ID, stats.RunID)
}

func TestSaveRun_RequiresDataset(t *testing.T) {
	c := newTestClient(t)
	err := c.SaveRun(context.Background(), store.Run{ID: "x"})
	assert.Error(t, err)
}

func TestFindTriples(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	require.NoError(t, c.SaveRun(ctx, kitchenRun()))

	t.Run("by subject", func(t *testing.T) {
		got, err := c.FindTriples(ctx, store.TripleFilter{Subject: "mug.o"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "ObjCanBe", got[0].Relation)
		assert.Equal(t, kb.RelHasMat, got[1].Relation)
	})

	t.Run("occurrences counted across rooms", func(t *testing.T) {
		got, err := c.FindTriples(ctx, store.TripleFilter{Relation: kb.RelHasMat})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].Occurrences)
	})

	t.Run("by object", func(t *testing.T) {
		got, err := c.FindTriples(ctx, store.TripleFilter{Object: "kitchen"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "mug.l", got[0].Subject)
	})

	t.Run("limit", func(t *testing.T) {
		got, err := c.FindTriples(ctx, store.TripleFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("other dataset", func(t *testing.T) {
		got, err := c.FindTriples(ctx, store.TripleFilter{Dataset: "other"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestListEntities(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	require.NoError(t, c.SaveRun(ctx, kitchenRun()))

	objects, err := c.ListEntities(ctx, "thor", kb.KindObject)
	require.NoError(t, err)
	assert.Equal(t, []store.Entity{
		{Name: "knife.o", Kind: kb.KindObject},
		{Name: "mug.o", Kind: kb.KindObject},
	}, objects)

	all, err := c.ListEntities(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

func TestListRelations(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	require.NoError(t, c.SaveRun(ctx, kitchenRun()))

	got, err := c.ListRelations(ctx, "thor")
	require.NoError(t, err)
	assert.Equal(t, []store.Relation{
		{Name: kb.RelLocInRoom, Triples: 1},
		{Name: "ObjCanBe", Triples: 1},
		{Name: "ObjUsedTo", Triples: 1},
		{Name: kb.RelHasMat, Triples: 1},
	}, got)
}

func TestRunSQL(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	require.NoError(t, c.SaveRun(ctx, kitchenRun()))

	rows, err := c.RunSQL(ctx, "SELECT subject FROM triples WHERE relation = ? ORDER BY subject", map[string]any{"1": "ObjUsedTo"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "knife.o", rows[0]["subject"])

	_, err = c.RunSQL(ctx, "SELECT 1", map[string]any{"2": "x"})
	assert.Error(t, err)

	_, err = c.RunSQL(ctx, "  ", nil)
	assert.Error(t, err)
}
