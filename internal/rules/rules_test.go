package rules

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "rules.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"pickup", "fill", "break"}, table.CanBe("mug.o"))
	assert.Equal(t, []string{"drink"}, table.UsedTo("mug.o"))
	assert.Equal(t, []string{"empty"}, table.HasState("mug.o"))
	assert.Equal(t, []string{"bread.o", "apple.o"}, table.OperatesOn("knife.o"))
	assert.Equal(t, []string{"close"}, table.InverseActionOf("open"))
	assert.Equal(t, []string{"filled"}, table.HasEffect("fill"))
	assert.Equal(t, []string{"closed"}, table.InverseStateOf("opened"))
	assert.Equal(t, "In", table.ReceptacleRelation("mug.l"))
	assert.Equal(t, "On", table.ReceptacleRelation("countertop.l"))
}

func TestMissingKeysAreEmpty(t *testing.T) {
	table, err := New(Definition{})
	require.NoError(t, err)

	assert.Empty(t, table.CanBe("ghost.o"))
	assert.Empty(t, table.UsedTo("ghost.o"))
	assert.Empty(t, table.HasState("ghost.o"))
	assert.Empty(t, table.OperatesOn("ghost.o"))
	assert.Empty(t, table.InverseActionOf("levitate"))
	assert.Empty(t, table.HasEffect("levitate"))
	assert.Empty(t, table.InverseStateOf("floating"))
	assert.Equal(t, "", table.ReceptacleRelation("ghost.l"))

}

func TestNilTableIsEmpty(t *testing.T) {
	var table *Table
	assert.Empty(t, table.CanBe("mug.o"))
	assert.Empty(t, table.UsedTo("mug.o"))
	assert.Empty(t, table.HasState("mug.o"))
	assert.Empty(t, table.OperatesOn("knife.o"))
	assert.Empty(t, table.InverseActionOf("open"))
	assert.Empty(t, table.HasEffect("fill"))
	assert.Empty(t, table.InverseStateOf("filled"))
	assert.Equal(t, "", table.ReceptacleRelation("mug.l"))
}

func TestKeysAreCaseInsensitiveForEntities(t *testing.T) {
	table, err := New(Definition{
		CanBe:          map[string][]string{"Mug.o": {"pickup"}},
		ReceptacleInOn: map[string]string{"Mug.L": "In"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"pickup"}, table.CanBe("mug.o"))
	assert.Equal(t, "In", table.ReceptacleRelation("mug.l"))
}

func TestLookupReturnsCopy(t *testing.T) {
	table, err := New(Definition{CanBe: map[string][]string{"mug.o": {"pickup"}}})
	require.NoError(t, err)

	got := table.CanBe("mug.o")
	got[0] = "mutated"
	assert.Equal(t, []string{"pickup"}, table.CanBe("mug.o"))
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "empty receptacle relation", yaml: "receptacle_InOn:\n  mug.l: \"\"\n"},
		{name: "empty action", yaml: "obj_canBe:\n  mug.o: [\"\"]\n"},
		{name: "invalid yaml", yaml: "obj_canBe: [\n"},
		{name: "wrong shape", yaml: "obj_canBe: [pickup]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
