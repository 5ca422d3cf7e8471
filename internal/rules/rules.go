// Package rules holds the static rule table that maps objects, materials,
// actions and states to the facts the extractor emits about them.
package rules

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is the on-disk form of the rule table. Object keys are tagged entity
// names ("mug.o") and also supply the rules of that object's materials; receptacle
// keys are location names ("mug.l"); action and state keys are bare names.
type Definition struct {
	CanBe           map[string][]string `yaml:"obj_canBe"`
	UsedTo          map[string][]string `yaml:"obj_usedTo"`
	HasState        map[string][]string `yaml:"obj_hasState"`
	OperatesOn      map[string][]string `yaml:"obj_OperatesOn"`
	InverseActionOf map[string][]string `yaml:"action_inverseActionOf"`
	HasEffect       map[string][]string `yaml:"action_hasEffect"`
	InverseStateOf  map[string][]string `yaml:"state_inverseStateOf"`
	ReceptacleInOn  map[string]string   `yaml:"receptacle_InOn"`
}

// Table answers rule lookups. A missing key is never an error; it just means
// the rule contributes nothing.
type Table struct {
	def Definition
}

func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}
	table, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}
	return table, nil
}

func Parse(data []byte) (*Table, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	return New(def)
}

func New(def Definition) (*Table, error) {
	if err := validateDefinition(def); err != nil {
		return nil, err
	}
	return &Table{def: Definition{
		CanBe:           lowerKeys(def.CanBe),
		UsedTo:          lowerKeys(def.UsedTo),
		HasState:        lowerKeys(def.HasState),
		OperatesOn:      lowerKeys(def.OperatesOn),
		InverseActionOf: def.InverseActionOf,
		HasEffect:       def.HasEffect,
		InverseStateOf:  def.InverseStateOf,
		ReceptacleInOn:  lowerKeys(def.ReceptacleInOn),
	}}, nil
}

func validateDefinition(def Definition) error {
	lists := map[string]map[string][]string{
		"obj_canBe":              def.CanBe,
		"obj_usedTo":             def.UsedTo,
		"obj_hasState":           def.HasState,
		"obj_OperatesOn":         def.OperatesOn,
		"action_inverseActionOf": def.InverseActionOf,
		"action_hasEffect":       def.HasEffect,
		"state_inverseStateOf":   def.InverseStateOf,
	}
	for section, values := range lists {
		for key, items := range values {
			if strings.TrimSpace(key) == "" {
				return fmt.Errorf("%s has an empty key", section)
			}
			for _, item := range items {
				if strings.TrimSpace(item) == "" {
					return fmt.Errorf("%s[%s] has an empty value", section, key)
				}
			}
		}
	}
	for key, rel := range def.ReceptacleInOn {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("receptacle_InOn has an empty key")
		}
		if strings.TrimSpace(rel) == "" {
			return fmt.Errorf("receptacle_InOn[%s] has an empty relation", key)
		}
	}
	return nil
}

func (t *Table) CanBe(entity string) []string {
	return t.lookup(func(d Definition) map[string][]string { return d.CanBe }, entity)
}

func (t *Table) UsedTo(entity string) []string {
	return t.lookup(func(d Definition) map[string][]string { return d.UsedTo }, entity)
}

func (t *Table) HasState(entity string) []string {
	return t.lookup(func(d Definition) map[string][]string { return d.HasState }, entity)
}

func (t *Table) OperatesOn(entity string) []string {
	return t.lookup(func(d Definition) map[string][]string { return d.OperatesOn }, entity)
}

func (t *Table) InverseActionOf(action string) []string {
	return t.lookup(func(d Definition) map[string][]string { return d.InverseActionOf }, action)
}

func (t *Table) HasEffect(action string) []string {
	return t.lookup(func(d Definition) map[string][]string { return d.HasEffect }, action)
}

func (t *Table) InverseStateOf(state string) []string {
	return t.lookup(func(d Definition) map[string][]string { return d.InverseStateOf }, state)
}

// ReceptacleRelation returns the predicate placing an object in or on container,
// or "" when no rule exists.
func (t *Table) ReceptacleRelation(container string) string {
	if t == nil {
		return ""
	}
	return t.def.ReceptacleInOn[strings.ToLower(container)]
}

func (t *Table) lookup(section func(Definition) map[string][]string, key string) []string {
	if t == nil {
		return nil
	}
	m := section(t.def)
	values, ok := m[key]
	if !ok {
		values, ok = m[strings.ToLower(key)]
	}
	if !ok || len(values) == 0 {
		return nil
	}
	return append([]string(nil), values...)
}

func lowerKeys[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for key, value := range m {
		out[strings.ToLower(key)] = value
	}
	return out
}
