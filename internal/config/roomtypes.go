package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type RoomTypeIDs struct {
	Name string
	IDs  []int
}

// RoomTypes is written as a YAML mapping from room type to floor plan ids. The
// order of the mapping is kept because it is the scrape order.
type RoomTypes []RoomTypeIDs

func (r *RoomTypes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: room_types must be a mapping", node.Line)
	}
	out := make(RoomTypes, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		var ids []int
		if err := value.Decode(&ids); err != nil {
			return fmt.Errorf("room type %s: %w", key.Value, err)
		}
		out = append(out, RoomTypeIDs{Name: key.Value, IDs: ids})
	}
	*r = out
	return nil
}

func (r RoomTypes) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, rt := range r {
		value := &yaml.Node{}
		if err := value.Encode(rt.IDs); err != nil {
			return nil, err
		}
		value.Style = yaml.FlowStyle
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: rt.Name}, value)
	}
	return node, nil
}
