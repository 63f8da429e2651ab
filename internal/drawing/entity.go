package drawing

import (
	"math"
	"strings"

	"basket-reconciler/internal/spatial"
)

// Kind is the drawing entity type.
type Kind string

const (
	KindText   Kind = "text"
	KindMText  Kind = "mtext"
	KindCircle Kind = "circle"
)

// Entity colors, drawing color indexes.
const (
	ColorByLayer = 256
	ColorRed     = 1
	ColorGreen   = 3
	ColorMagenta = 6
)

// Entity is one drawing object of a snapshot.
type Entity struct {
	Kind     Kind    `yaml:"kind" json:"kind"`
	Layer    string  `yaml:"layer" json:"layer"`
	Content  string  `yaml:"text,omitempty" json:"text,omitempty"`
	Location Coord   `yaml:"position" json:"position"`
	Box      *Box    `yaml:"bounds,omitempty" json:"bounds,omitempty"`
	Rotation float64 `yaml:"rotation,omitempty" json:"rotation,omitempty"`
	Height   float64 `yaml:"height,omitempty" json:"height,omitempty"`
	Radius   float64 `yaml:"radius,omitempty" json:"radius,omitempty"`
	Color    int     `yaml:"color,omitempty" json:"color,omitempty"`

	// Index is the position in the source snapshot.
	Index int `yaml:"-" json:"-"`
}

// Box is an axis-aligned extent in snapshot form.
type Box struct {
	Min Coord `yaml:"min" json:"min"`
	Max Coord `yaml:"max" json:"max"`
}

// Position implements spatial.Label.
func (e Entity) Position() spatial.Point {
	return spatial.Point(e.Location)
}

// Text implements spatial.Label.
func (e Entity) Text() string {
	return e.Content
}

// Extents implements spatial.Bounded. Entities without bounds are treated
// as a point at their position.
func (e Entity) Extents() spatial.Bounds {
	if e.Box == nil {
		return spatial.PointBounds(e.Position())
	}

	return spatial.Bounds{Min: spatial.Point(e.Box.Min), Max: spatial.Point(e.Box.Max)}
}

func (e Entity) isLabel() bool {
	return e.Kind == KindText || e.Kind == KindMText
}

// NewText builds a single-line text at p. Height and rotation are copied
// from ref; flip turns the text by half a turn.
func NewText(layer, content string, p spatial.Point, ref Entity, flip bool) Entity {
	rot := ref.Rotation
	if flip {
		rot += math.Pi
	}

	return Entity{
		Kind:     KindText,
		Layer:    layer,
		Content:  content,
		Location: Coord(p),
		Rotation: rot,
		Height:   ref.Height,
		Color:    ColorGreen,
	}
}

// NewCircle builds a circle; visible circles are red, others follow the layer.
func NewCircle(layer string, center spatial.Point, radius float64, visible bool) Entity {
	color := ColorByLayer
	if visible {
		color = ColorRed
	}

	return Entity{
		Kind:     KindCircle,
		Layer:    layer,
		Location: Coord(center),
		Radius:   radius,
		Color:    color,
	}
}

// UniqueByText keeps the first entity of each distinct text.
func UniqueByText(entities []Entity) []Entity {
	seen := make(map[string]struct{}, len(entities))
	out := make([]Entity, 0, len(entities))

	for _, e := range entities {
		if _, ok := seen[e.Content]; ok {
			continue
		}

		seen[e.Content] = struct{}{}
		out = append(out, e)
	}

	return out
}

func trimmed(e Entity) (Entity, bool) {
	e.Content = strings.TrimSpace(e.Content)
	return e, e.Content != ""
}
