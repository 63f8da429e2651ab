package spatial

import (
	"math"
	"sort"
)

// NearestOf returns the candidate closest to ref in the XY plane.
// On equal distances the candidate listed first wins.
// Returns false when there are no candidates.
func NearestOf[L Label](ref Label, candidates []L) (L, bool) {
	nb, i := NewIndex(candidates).Nearest(ref.Position())

	return nb.Item, i >= 0
}

// Group is one anchor together with the satellites assigned to it.
type Group[A, S Label] struct {
	Anchor      A
	AnchorIndex int
	Satellites  []S
	// Distances[i] is the planar distance from Anchor to Satellites[i].
	Distances []float64
}

// Assignment maps anchors to the satellites closest to them.
// Groups appear in the order their first satellite was discovered;
// anchors that attracted no satellite are absent.
type Assignment[A, S Label] struct {
	Groups     []Group[A, S]
	Unassigned []S
}

// Assign attaches every satellite to its nearest anchor.
// Satellites are reported in Unassigned when there is no anchor at all.
func Assign[A, S Label](anchors []A, satellites []S) Assignment[A, S] {
	var res Assignment[A, S]

	index := NewIndex(anchors)
	groupOf := make(map[int]int, len(anchors))

	for _, sat := range satellites {
		nb, idx := index.Nearest(sat.Position())
		if idx < 0 {
			res.Unassigned = append(res.Unassigned, sat)
			continue
		}

		g, ok := groupOf[idx]
		if !ok {
			g = len(res.Groups)
			groupOf[idx] = g
			res.Groups = append(res.Groups, Group[A, S]{Anchor: anchors[idx], AnchorIndex: idx})
		}

		res.Groups[g].Satellites = append(res.Groups[g].Satellites, sat)
		res.Groups[g].Distances = append(res.Groups[g].Distances, nb.Distance)
	}

	return res
}

// Neighbor is a label found by a radius query.
type Neighbor[L Label] struct {
	Item     L
	Distance float64
}

// Index is a flat, read-only collection of labels.
type Index[L Label] struct {
	items []L
}

// NewIndex wraps items. The slice is not copied and must not be mutated.
func NewIndex[L Label](items []L) *Index[L] {
	return &Index[L]{items: items}
}

// Nearest returns the indexed label closest to p in the XY plane and its
// position in the index, or -1 when the index is empty. On equal distances
// the label indexed first wins.
func (x *Index[L]) Nearest(p Point) (Neighbor[L], int) {
	best := -1
	nb := Neighbor[L]{Distance: math.Inf(1)}

	for i, it := range x.items {
		d := p.PlanarDistance(it.Position())
		if d < nb.Distance {
			best = i
			nb = Neighbor[L]{Item: it, Distance: d}
		}
	}

	return nb, best
}

// Within returns every label whose planar distance to center is at most
// radius, closest first. Equal distances keep index order.
func (x *Index[L]) Within(center Point, radius float64) []Neighbor[L] {
	var out []Neighbor[L]

	for _, it := range x.items {
		d := center.PlanarDistance(it.Position())
		if d <= radius {
			out = append(out, Neighbor[L]{Item: it, Distance: d})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})

	return out
}
