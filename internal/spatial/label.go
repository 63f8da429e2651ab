package spatial

// Label is anything placed in a drawing that carries a text.
type Label interface {
	Position() Point
	Text() string
}

// Bounded is a Label that also knows its geometric extents.
type Bounded interface {
	Label
	Extents() Bounds
}
