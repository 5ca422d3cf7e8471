package kb

import "thorkg/internal/thor"

// Rules is the read-only lookup the extractor consults. Every method is total:
// an unknown key yields an empty result.
type Rules interface {
	CanBe(entity string) []string
	UsedTo(entity string) []string
	HasState(entity string) []string
	OperatesOn(entity string) []string
	InverseActionOf(action string) []string
	HasEffect(action string) []string
	InverseStateOf(state string) []string
	ReceptacleRelation(container string) string
}

// Extraction is everything one object record contributes to its room.
// Triples may repeat; Entities and Relations are in first-seen order.
type Extraction struct {
	Triples   []Triple
	Entities  []string
	Relations []string
}

type extractor struct {
	rules     Rules
	triples   []Triple
	entities  *OrderedSet[string]
	relations *OrderedSet[string]
}

// Extract derives the triples for a single simulator object in a room of the given type.
func Extract(obj thor.ObjectRecord, roomType string, rules Rules) Extraction {
	x := &extractor{
		rules:     rules,
		entities:  NewOrderedSet[string](),
		relations: NewOrderedSet[string](),
	}
	room := BareEntity(roomType)

	objectType := ObjectEntity(obj.ObjectType)
	x.entities.Add(objectType)

	x.stateActions(objectType, objectType, prefixObject, true)

	for _, mat := range obj.SalientMaterials {
		material := MaterialEntity(mat)
		x.entities.Add(material)
		x.emit(objectType, RelHasMat, material)
		// A material takes on the rules of the object it belongs to. The
		// object pass already expanded them.
		x.stateActions(objectType, material, prefixMaterial, false)
	}

	if obj.Receptacle {
		container := LocationEntity(obj.ObjectType)
		x.entities.Add(container)
		for _, id := range obj.ReceptacleObjectIDs {
			contained := ObjectEntity(BaseType(id))
			x.entities.Add(contained)
			rel := rules.ReceptacleRelation(container)
			if rel == "" {
				continue
			}
			x.emit(contained, rel, container)
		}
		x.emit(container, RelLocInRoom, room)
	} else {
		x.emit(objectType, RelObjInRoom, room)
	}

	for _, target := range rules.OperatesOn(objectType) {
		x.entities.Add(target)
		x.emit(objectType, RelOperatesOn, target)
	}

	return Extraction{
		Triples:   x.triples,
		Entities:  x.entities.Items(),
		Relations: x.relations.Items(),
	}
}

func (x *extractor) emit(subject, relation, object string) {
	x.relations.Add(relation)
	x.triples = append(x.triples, Triple{Subject: subject, Relation: relation, Object: object})
}

// stateActions emits the CanBe/UsedTo/hasState rules found under key as triples
// about subject. With expand set it also follows inverse actions, action effects
// and inverse states. Repeats inside one call collapse; the room dedups across calls.
func (x *extractor) stateActions(key, subject, prefix string, expand bool) {
	local := NewOrderedSet[Triple]()
	add := func(subject, relation, object string) {
		local.Add(Triple{Subject: subject, Relation: relation, Object: object})
	}

	actions := NewOrderedSet[string]()
	states := NewOrderedSet[string]()
	discovered := NewOrderedSet[string]()

	for _, action := range x.rules.CanBe(key) {
		actions.Add(action)
		add(subject, prefix+suffixCanBe, action)
	}
	for _, action := range x.rules.UsedTo(key) {
		actions.Add(action)
		add(subject, prefix+suffixUsedTo, action)
	}

	if expand {
		for _, action := range actions.Items() {
			for _, inverse := range x.rules.InverseActionOf(action) {
				discovered.Add(inverse)
				add(action, RelInverseActionOf, inverse)
			}
		}
		for _, action := range actions.Items() {
			for _, state := range x.rules.HasEffect(action) {
				states.Add(state)
				add(action, RelHasEffect, state)
			}
		}
	}

	for _, state := range x.rules.HasState(key) {
		states.Add(state)
		add(subject, prefix+suffixHasState, state)
	}

	if expand {
		for _, state := range states.Items() {
			for _, inverse := range x.rules.InverseStateOf(state) {
				discovered.Add(inverse)
				add(state, RelInverseStateOf, inverse)
			}
		}
	}

	for _, t := range local.Items() {
		x.emit(t.Subject, t.Relation, t.Object)
	}
	x.entities.AddAll(actions.Items()...)
	x.entities.AddAll(states.Items()...)
	x.entities.AddAll(discovered.Items()...)
}
