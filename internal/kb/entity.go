package kb

import "strings"

type Kind string

const (
	KindObject   Kind = "object"
	KindLocation Kind = "location"
	KindMaterial Kind = "material"
	KindConcept  Kind = "concept"
)

const (
	objectSuffix   = ".o"
	locationSuffix = ".l"
	materialSuffix = ".m"
)

// ObjectEntity names a simulator object type, e.g. "Mug" -> "mug.o".
func ObjectEntity(name string) string {
	return strings.ToLower(name) + objectSuffix
}

// LocationEntity names a receptacle acting as a location, e.g. "Mug" -> "mug.l".
func LocationEntity(name string) string {
	return strings.ToLower(name) + locationSuffix
}

func MaterialEntity(name string) string {
	return strings.ToLower(name) + materialSuffix
}

// BareEntity names actions, states and room types. They carry no suffix.
func BareEntity(name string) string {
	return strings.ToLower(name)
}

// BaseType strips the instance part of a simulator object id ("Coffee|+01.2|..." -> "Coffee").
func BaseType(objectID string) string {
	base, _, _ := strings.Cut(objectID, "|")
	return base
}

func KindOf(entity string) Kind {
	switch {
	case strings.HasSuffix(entity, objectSuffix):
		return KindObject
	case strings.HasSuffix(entity, locationSuffix):
		return KindLocation
	case strings.HasSuffix(entity, materialSuffix):
		return KindMaterial
	default:
		return KindConcept
	}
}
