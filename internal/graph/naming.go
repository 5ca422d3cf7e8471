package graph

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"thorkg/internal/kb"
)

var (
	labelPattern   = regexp.MustCompile(`^[A-Z][A-Za-z]*$`)
	relTypePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
)

var kindLabels = map[kb.Kind]string{
	kb.KindObject:   "Object",
	kb.KindLocation: "Location",
	kb.KindMaterial: "Material",
	kb.KindConcept:  "Concept",
}

// Label is the node label carried next to :Entity for an entity of the given kind.
func Label(kind kb.Kind) string {
	if label, ok := kindLabels[kind]; ok {
		return label
	}
	return "Concept"
}

// RelationshipType converts a relation name to a Cypher relationship type:
// "hasMat" -> "HAS_MAT", "inverseActionOf" -> "INVERSE_ACTION_OF", "In" -> "IN".
func RelationshipType(relation string) (string, error) {
	runes := []rune(strings.TrimSpace(relation))
	var b strings.Builder
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "_") {
				b.WriteByte('_')
			}
			continue
		}
		if unicode.IsUpper(r) && i > 0 && b.Len() > 0 && !strings.HasSuffix(b.String(), "_") {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}

	out := strings.TrimRight(b.String(), "_")
	if !relTypePattern.MatchString(out) {
		return "", fmt.Errorf("invalid relationship type for relation %q", relation)
	}
	return out, nil
}
