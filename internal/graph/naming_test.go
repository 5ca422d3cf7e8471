package graph

import (
	"testing"

	"thorkg/internal/kb"
)

func TestRelationshipType(t *testing.T) {
	tests := []struct {
		relation string
		want     string
	}{
		{relation: kb.RelHasMat, want: "HAS_MAT"},
		{relation: kb.RelObjInRoom, want: "OBJ_IN_ROOM"},
		{relation: kb.RelLocInRoom, want: "LOC_IN_ROOM"},
		{relation: kb.RelOperatesOn, want: "OPERATES_ON"},
		{relation: kb.RelInverseActionOf, want: "INVERSE_ACTION_OF"},
		{relation: kb.RelHasEffect, want: "HAS_EFFECT"},
		{relation: kb.RelInverseStateOf, want: "INVERSE_STATE_OF"},
		{relation: "ObjCanBe", want: "OBJ_CAN_BE"},
		{relation: "MathasState", want: "MATHAS_STATE"},
		{relation: "In", want: "IN"},
		{relation: "on top of", want: "ON_TOP_OF"},
		{relation: "TVStand", want: "TV_STAND"},
		{relation: "Stove2Burner", want: "STOVE2_BURNER"},
	}

	for _, tt := range tests {
		t.Run(tt.relation, func(t *testing.T) {
			got, err := RelationshipType(tt.relation)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RelationshipType(%q) = %q, want %q", tt.relation, got, tt.want)
			}
		})
	}
}

func TestRelationshipType_Invalid(t *testing.T) {
	for _, relation := range []string{"", "   ", "--", "2fast"} {
		if _, err := RelationshipType(relation); err == nil {
			t.Errorf("expected error for %q", relation)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := map[kb.Kind]string{
		kb.KindObject:   "Object",
		kb.KindLocation: "Location",
		kb.KindMaterial: "Material",
		kb.KindConcept:  "Concept",
		kb.Kind("odd"):  "Concept",
	}
	for kind, want := range tests {
		if got := Label(kind); got != want {
			t.Errorf("Label(%q) = %q, want %q", kind, got, want)
		}
		if !labelPattern.MatchString(Label(kind)) {
			t.Errorf("label %q does not match pattern", Label(kind))
		}
	}
}
