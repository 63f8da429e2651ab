package result

import (
	"strconv"

	"basket-reconciler/internal/match"
)

// Record is one line of a result table.
type Record struct {
	// Section is the display text of the section.
	Section string
	// Baskets holds at most match.MaxBaskets names, first-seen order.
	Baskets []string
	// Coefficient is the formatted value, empty when nothing matched.
	Coefficient string
	Value       float64
	// ContainerIDs are sorted and distinct. Only set by Group.
	ContainerIDs []string
	Phase        match.Phase
}

// Matched reports whether a coefficient was found.
func (r Record) Matched() bool {
	return r.Coefficient != ""
}

// FormatCoefficient renders v with two decimals and a dot separator.
func FormatCoefficient(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
