package drawing

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"basket-reconciler/internal/spatial"
)

// Coord is a spatial.Point as written in snapshots: either a sequence
// [x, y] / [x, y, z] or a mapping {x, y, z}.
type Coord spatial.Point

type coordMap struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

func (c *Coord) fromSlice(v []float64) error {
	switch len(v) {
	case 2:
		*c = Coord{X: v[0], Y: v[1]}
	case 3:
		*c = Coord{X: v[0], Y: v[1], Z: v[2]}
	default:
		return fmt.Errorf("expected 2 or 3 coordinates, got %d", len(v))
	}

	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for Coord.
func (c *Coord) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var v []float64

		err := node.Decode(&v)
		if err != nil {
			return err
		}

		return c.fromSlice(v)

	case yaml.MappingNode:
		var m coordMap

		err := node.Decode(&m)
		if err != nil {
			return err
		}

		*c = Coord(m)

		return nil

	default:
		return fmt.Errorf("expected coordinate list or map, got %v", node.Kind)
	}
}

// MarshalYAML writes a flow sequence [x, y, z].
func (c Coord) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}

	for _, v := range []float64{c.X, c.Y, c.Z} {
		var n yaml.Node

		err := n.Encode(v)
		if err != nil {
			return nil, err
		}

		node.Content = append(node.Content, &n)
	}

	return node, nil
}

// UnmarshalJSON accepts the same two forms as UnmarshalYAML.
func (c *Coord) UnmarshalJSON(data []byte) error {
	var v []float64
	if err := json.Unmarshal(data, &v); err == nil {
		return c.fromSlice(v)
	}

	var m coordMap
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("expected coordinate list or map: %w", err)
	}

	*c = Coord(m)

	return nil
}

// MarshalJSON writes [x, y, z].
func (c Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{c.X, c.Y, c.Z})
}
