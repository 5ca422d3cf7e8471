package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thorkg/internal/kb"
	"thorkg/internal/store"
)

func TestTripleRows(t *testing.T) {
	mug := kb.Triple{Subject: "mug.o", Relation: kb.RelHasMat, Object: "ceramic.m"}
	knife := kb.Triple{Subject: "knife.o", Relation: "ObjUsedTo", Object: "slice"}
	run := store.Run{
		ID:      uuid.NewString(),
		Dataset: "thor",
		Triples: []kb.Triple{mug, knife, mug},
		Unique:  []kb.Triple{mug, knife},
	}
	id := [16]byte(uuid.MustParse(run.ID))

	rows := tripleRows(id, run)

	require.Len(t, rows, 2)
	assert.Equal(t, []any{id, "thor", "mug.o", kb.RelHasMat, "ceramic.m", 2}, rows[0])
	assert.Equal(t, []any{id, "thor", "knife.o", "ObjUsedTo", "slice", 1}, rows[1])
	for _, row := range rows {
		assert.Len(t, row, len(tripleColumns))
	}
}

func TestSaveRun_RejectsBadRun(t *testing.T) {
	ctx := context.Background()
	c := &Client{}

	err := c.SaveRun(ctx, store.Run{ID: uuid.NewString()})
	assert.ErrorContains(t, err, "no dataset")

	err = c.SaveRun(ctx, store.Run{ID: "run-1", Dataset: "thor"})
	assert.ErrorContains(t, err, "parsing run id")
}

func TestRunSQL_RejectsBadInput(t *testing.T) {
	ctx := context.Background()
	c := &Client{}

	_, err := c.RunSQL(ctx, "  ", nil)
	assert.Error(t, err)

	_, err = c.RunSQL(ctx, "SELECT $1, $2", map[string]any{"1": "mug.o", "3": "x"})
	assert.ErrorContains(t, err, "missing param 2")

	_, err = c.Stats(ctx, "")
	assert.Error(t, err)
}
