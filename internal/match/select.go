package match

import (
	"math"

	"basket-reconciler/internal/spatial"
)

// Choose picks between the candidate sets produced by two normalizations of
// the same section name.
//
// Each set is scored by the mean planar distance from anchor to the assigned
// satellites named in that set's baskets; a set naming none of them scores
// +Inf. The lower score wins and ties go to match1. An empty set never wins
// over a non-empty one.
func Choose[S spatial.Label](match1, match2 CandidateList, anchor spatial.Label, satellites []S) CandidateList {
	switch {
	case len(match1) == 0 && len(match2) == 0:
		return nil
	case len(match2) == 0:
		return match1
	case len(match1) == 0:
		return match2
	}

	d1 := MeanDistance(anchor, satellites, match1.BasketUnion())
	d2 := MeanDistance(anchor, satellites, match2.BasketUnion())

	if d1 <= d2 {
		return match1
	}

	return match2
}

// MeanDistance averages the planar distance from anchor to every satellite
// whose folded text is in names. Returns +Inf when no satellite qualifies.
func MeanDistance[S spatial.Label](anchor spatial.Label, satellites []S, names map[string]struct{}) float64 {
	from := anchor.Position()

	var (
		sum float64
		n   int
	)

	for _, s := range satellites {
		if _, ok := names[FoldName(s.Text())]; !ok {
			continue
		}

		sum += from.PlanarDistance(s.Position())
		n++
	}

	if n == 0 {
		return math.Inf(1)
	}

	return sum / float64(n)
}
