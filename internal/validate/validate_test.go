package validate

import (
	"testing"

	"thorkg/internal/kb"
)

func tr(s, r, o string) kb.Triple {
	return kb.Triple{Subject: s, Relation: r, Object: o}
}

func cleanAggregate() kb.Aggregate {
	triples := []kb.Triple{
		tr("mug.o", "hasMat", "ceramic.m"),
		tr("coffee.o", "In", "mug.l"),
		tr("mug.l", "LocInRoom", "kitchen"),
		tr("mug.o", "ObjCanBe", "fill"),
		tr("fill", "hasEffect", "filled"),
		tr("mug.o", "hasMat", "ceramic.m"),
	}
	return kb.Aggregate{
		EntityNames:   []string{"mug.o", "ceramic.m", "coffee.o", "mug.l", "kitchen", "fill", "filled"},
		RelationNames: []string{"hasMat", "In", "LocInRoom", "ObjCanBe", "hasEffect"},
		TripleList:    triples,
		UniqueList:    kb.Unique(triples),
	}
}

func TestRun_Clean(t *testing.T) {
	report, err := Run(cleanAggregate())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(report.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", report.Issues)
	}
	if report.HasErrors() {
		t.Fatalf("expected no errors")
	}
}

func TestRun_NilCollection(t *testing.T) {
	if _, err := Run(nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRun_Issues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *kb.Aggregate)
		code   string
	}{
		{
			name: "material tagged as object",
			mutate: func(a *kb.Aggregate) {
				a.TripleList = append(a.TripleList, tr("mug.o", "hasMat", "glass.o"))
				a.EntityNames = append(a.EntityNames, "glass.o")
				a.UniqueList = kb.Unique(a.TripleList)
			},
			code: codeBadEntityTag,
		},
		{
			name: "receptacle subject not an object",
			mutate: func(a *kb.Aggregate) {
				a.TripleList = append(a.TripleList, tr("mug.l", "On", "countertop.l"))
				a.EntityNames = append(a.EntityNames, "countertop.l")
				a.RelationNames = append(a.RelationNames, "On")
				a.UniqueList = kb.Unique(a.TripleList)
			},
			code: codeBadEntityTag,
		},
		{
			name: "endpoint not registered",
			mutate: func(a *kb.Aggregate) {
				a.TripleList = append(a.TripleList, tr("bread.o", "ObjInRoom", "kitchen"))
				a.RelationNames = append(a.RelationNames, "ObjInRoom")
				a.UniqueList = kb.Unique(a.TripleList)
			},
			code: codeUnregisteredEndpoint,
		},
		{
			name: "relation not registered",
			mutate: func(a *kb.Aggregate) {
				a.RelationNames = a.RelationNames[1:]
			},
			code: codeUnregisteredRelation,
		},
		{
			name: "duplicate unique triple",
			mutate: func(a *kb.Aggregate) {
				a.UniqueList = append(a.UniqueList, a.UniqueList[0])
			},
			code: codeDuplicateUnique,
		},
		{
			name: "fabricated unique triple",
			mutate: func(a *kb.Aggregate) {
				a.UniqueList = append(a.UniqueList, tr("ghost.o", "ObjInRoom", "kitchen"))
			},
			code: codeUnknownUnique,
		},
		{
			name: "unique triples incomplete",
			mutate: func(a *kb.Aggregate) {
				a.UniqueList = a.UniqueList[1:]
			},
			code: codeMissingUnique,
		},
		{
			name: "relation never used",
			mutate: func(a *kb.Aggregate) {
				a.RelationNames = append(a.RelationNames, "OperatesOn")
			},
			code: codeUnusedRelation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := cleanAggregate()
			tt.mutate(&agg)
			report, err := Run(agg)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if !hasCode(report, tt.code) {
				t.Fatalf("expected %s, got %+v", tt.code, report.Issues)
			}
		})
	}
}

func hasCode(report *Report, code string) bool {
	for _, issue := range report.Issues {
		if issue.Code == code {
			return true
		}
	}
	return false
}
