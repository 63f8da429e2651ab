package result

import (
	"strings"

	"basket-reconciler/internal/match"
)

// Aggregate sums the coefficients of candidates and lists their baskets.
//
// Rows with the same Identity count once. Baskets are reported in first-seen
// order, compared folded, capped at match.MaxBaskets. No candidates gives an
// empty text and no baskets.
func Aggregate(candidates match.CandidateList) (string, []string) {
	if len(candidates) == 0 {
		return "", nil
	}

	value, baskets := sum(candidates)

	return FormatCoefficient(value), baskets
}

// AggregateRecord is Aggregate packed into a Record for section.
func AggregateRecord(section string, candidates match.CandidateList) Record {
	rec := Record{Section: section, Phase: candidates.Phase()}
	if len(candidates) == 0 {
		return rec
	}

	rec.Value, rec.Baskets = sum(candidates)
	rec.Coefficient = FormatCoefficient(rec.Value)

	return rec
}

func sum(candidates match.CandidateList) (float64, []string) {
	var (
		total   float64
		baskets []string
	)

	seenRows := make(map[string]struct{}, len(candidates))
	seenBaskets := make(map[string]struct{}, match.MaxBaskets)

	for _, c := range candidates {
		id := c.Identity()
		if _, ok := seenRows[id]; ok {
			continue
		}

		seenRows[id] = struct{}{}
		total += c.Coefficient

		for _, b := range c.Baskets {
			folded := match.FoldName(b)
			if folded == "" || len(baskets) >= match.MaxBaskets {
				continue
			}

			if _, ok := seenBaskets[folded]; ok {
				continue
			}

			seenBaskets[folded] = struct{}{}
			baskets = append(baskets, strings.TrimSpace(b))
		}
	}

	return total, baskets
}
