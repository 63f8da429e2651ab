package match

import (
	"sort"
	"strings"
)

// MaxBaskets is the number of basket columns a dataset row can carry.
const MaxBaskets = 4

// Row is one record of the coefficient dataset.
type Row struct {
	Section     string
	Baskets     []string // at most MaxBaskets, no blanks, column order
	Coefficient float64
	// Line is the 1-based source line or row number, for diagnostics.
	Line int
}

// Identity is the deduplication key of a row: its section followed by the
// sorted folded basket names. Two rows with the same identity contribute
// their coefficient once.
func (r Row) Identity() string {
	folded := make([]string, 0, len(r.Baskets))
	for _, b := range r.Baskets {
		folded = append(folded, FoldName(b))
	}

	sort.Strings(folded)

	return r.Section + "|" + strings.Join(folded, ",")
}

func (r Row) has(folded string) bool {
	for _, b := range r.Baskets {
		if FoldName(b) == folded {
			return true
		}
	}

	return false
}

// hasAny reports whether any basket of r is in names (folded).
func (r Row) hasAny(names map[string]struct{}) bool {
	for _, b := range r.Baskets {
		if _, ok := names[FoldName(b)]; ok {
			return true
		}
	}

	return false
}

// Candidate is a dataset row that satisfied a lookup.
type Candidate struct {
	Row

	Phase Phase
	// Distance from the section to the basket that led to this row.
	// Only set by MatchNearby.
	Distance float64
}

// CandidateList is an ordered set of candidates.
type CandidateList []Candidate

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by basket distance ascending, then by dataset line for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Distance != c[j].Distance {
		return c[i].Distance < c[j].Distance
	}

	return c[i].Line < c[j].Line
}

// BasketUnion returns the folded names of every basket of every candidate.
func (c CandidateList) BasketUnion() map[string]struct{} {
	out := make(map[string]struct{})

	for _, cand := range c {
		for _, b := range cand.Baskets {
			out[FoldName(b)] = struct{}{}
		}
	}

	return out
}

// Phase returns the phase shared by the candidates, PhaseNone when empty.
func (c CandidateList) Phase() Phase {
	if len(c) == 0 {
		return PhaseNone
	}

	return c[0].Phase
}

func foldSet(names []string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))

	for _, n := range names {
		f := FoldName(n)
		if f == "" {
			continue
		}

		out[f] = struct{}{}
	}

	return out
}
