package kb

import "fmt"

const (
	RelHasMat          = "hasMat"
	RelObjInRoom       = "ObjInRoom"
	RelLocInRoom       = "LocInRoom"
	RelOperatesOn      = "OperatesOn"
	RelInverseActionOf = "inverseActionOf"
	RelHasEffect       = "hasEffect"
	RelInverseStateOf  = "inverseStateOf"
)

const (
	prefixObject   = "Obj"
	prefixMaterial = "Mat"

	suffixCanBe    = "CanBe"
	suffixUsedTo   = "UsedTo"
	suffixHasState = "hasState"
)

type Triple struct {
	Subject  string `json:"subject"`
	Relation string `json:"relation"`
	Object   string `json:"object"`
}

func (t Triple) String() string {
	return fmt.Sprintf("(%s, %s, %s)", t.Subject, t.Relation, t.Object)
}

// Unique drops repeated triples, keeping each at its first position.
func Unique(triples []Triple) []Triple {
	set := NewOrderedSet[Triple]()
	set.AddAll(triples...)
	return set.Items()
}
