package validate

import (
	"fmt"

	"thorkg/internal/kb"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeBadEntityTag         = "bad_entity_tag"
	codeUnregisteredEndpoint = "unregistered_endpoint"
	codeUnregisteredRelation = "unregistered_relation"
	codeDuplicateUnique      = "duplicate_unique_triple"
	codeUnknownUnique        = "unknown_unique_triple"
	codeMissingUnique        = "missing_unique_triple"
	codeUnusedRelation       = "unused_relation"
)

type Issue struct {
	Severity Severity
	Code     string
	Message  string
	Triple   *kb.Triple
	Entity   string
}

type Report struct {
	Issues []Issue
}

func (r *Report) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// positional tag expectations for the fixed relations; zero Kind means "any".
var tagRules = map[string][2]kb.Kind{
	kb.RelHasMat:          {kb.KindObject, kb.KindMaterial},
	kb.RelObjInRoom:       {kb.KindObject, kb.KindConcept},
	kb.RelLocInRoom:       {kb.KindLocation, kb.KindConcept},
	kb.RelOperatesOn:      {kb.KindObject, ""},
	kb.RelInverseActionOf: {kb.KindConcept, kb.KindConcept},
	kb.RelHasEffect:       {kb.KindConcept, kb.KindConcept},
	kb.RelInverseStateOf:  {kb.KindConcept, kb.KindConcept},
	"ObjCanBe":            {kb.KindObject, kb.KindConcept},
	"ObjUsedTo":           {kb.KindObject, kb.KindConcept},
	"ObjhasState":         {kb.KindObject, kb.KindConcept},
	"MatCanBe":            {kb.KindMaterial, kb.KindConcept},
	"MatUsedTo":           {kb.KindMaterial, kb.KindConcept},
	"MathasState":         {kb.KindMaterial, kb.KindConcept},
}

// Run checks a collection against the knowledge-base invariants: tags agree
// with the relation they appear in, every endpoint and relation is registered,
// and the unique triples are exactly the distinct members of the triple list.
func Run(c kb.Collection) (*Report, error) {
	if c == nil {
		return nil, fmt.Errorf("collection is required")
	}

	issues := make([]Issue, 0)

	entities := kb.NewOrderedSet(c.Entities()...)
	relations := kb.NewOrderedSet(c.Relations()...)
	all := kb.NewOrderedSet(c.Triples()...)
	used := kb.NewOrderedSet[string]()

	for _, triple := range all.Items() {
		triple := triple
		used.Add(triple.Relation)
		issues = append(issues, checkTags(triple)...)
		for _, endpoint := range []string{triple.Subject, triple.Object} {
			if !entities.Contains(endpoint) {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Code:     codeUnregisteredEndpoint,
					Message:  fmt.Sprintf("%s is not a registered entity", endpoint),
					Triple:   &triple,
					Entity:   endpoint,
				})
			}
		}
		if !relations.Contains(triple.Relation) {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Code:     codeUnregisteredRelation,
				Message:  fmt.Sprintf("%s is not a registered relation", triple.Relation),
				Triple:   &triple,
			})
		}
	}

	for _, rel := range relations.Items() {
		if !used.Contains(rel) {
			issues = append(issues, Issue{
				Severity: SeverityWarn,
				Code:     codeUnusedRelation,
				Message:  fmt.Sprintf("relation %s has no triples", rel),
			})
		}
	}

	unique := kb.NewOrderedSet[kb.Triple]()
	for _, triple := range c.UniqueTriples() {
		triple := triple
		if !unique.Add(triple) {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Code:     codeDuplicateUnique,
				Message:  "unique triple listed twice",
				Triple:   &triple,
			})
		}
		if !all.Contains(triple) {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Code:     codeUnknownUnique,
				Message:  "unique triple does not occur in the triple list",
				Triple:   &triple,
			})
		}
	}
	for _, triple := range all.Items() {
		triple := triple
		if !unique.Contains(triple) {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Code:     codeMissingUnique,
				Message:  "triple missing from unique triples",
				Triple:   &triple,
			})
		}
	}

	return &Report{Issues: issues}, nil
}

func checkTags(triple kb.Triple) []Issue {
	want, ok := tagRules[triple.Relation]
	if !ok {
		// receptacle relations ("In", "On", ...) place an object in a location
		want = [2]kb.Kind{kb.KindObject, kb.KindLocation}
	}
	var issues []Issue
	for i, entity := range []string{triple.Subject, triple.Object} {
		if want[i] == "" {
			continue
		}
		if got := kb.KindOf(entity); got != want[i] {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Code:     codeBadEntityTag,
				Message:  fmt.Sprintf("%s is a %s, %s expects a %s", entity, got, triple.Relation, want[i]),
				Triple:   &triple,
				Entity:   entity,
			})
		}
	}
	return issues
}
