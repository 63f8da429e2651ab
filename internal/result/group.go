package result

import (
	"sort"
	"strconv"

	"basket-reconciler/internal/common"
	"basket-reconciler/internal/match"
)

// Hit links a container (wall) to the dataset row found for one of the
// labels intersecting it.
type Hit struct {
	ContainerID string
	// Section is the full section string of the dataset row.
	Section     string
	Coefficient float64
	Baskets     []string
}

// Group merges hits sharing the exact section string and the exact
// coefficient into one record.
//
// The record shows the section text before the first '|' and the baskets of
// the first hit of its group. Container IDs are distinct and sorted.
// Records are ordered by ascending coefficient; equal coefficients keep the
// order in which their groups first appeared.
func Group(hits []Hit) []Record {
	type group struct {
		rec Record
		ids map[string]struct{}
	}

	var (
		order  []*group
		groups = make(map[string]*group)
	)

	for _, h := range hits {
		key := h.Section + "\x00" + strconv.FormatFloat(h.Coefficient, 'g', -1, 64)

		g, ok := groups[key]
		if !ok {
			g = &group{
				rec: Record{
					Section:     common.BeforePipe(h.Section),
					Baskets:     capBaskets(h.Baskets),
					Coefficient: FormatCoefficient(h.Coefficient),
					Value:       h.Coefficient,
					Phase:       match.PhaseBasketOnly,
				},
				ids: make(map[string]struct{}),
			}
			groups[key] = g
			order = append(order, g)
		}

		if h.ContainerID != "" {
			g.ids[h.ContainerID] = struct{}{}
		}
	}

	out := make([]Record, 0, len(order))

	for _, g := range order {
		ids := make([]string, 0, len(g.ids))
		for id := range g.ids {
			ids = append(ids, id)
		}

		sort.Strings(ids)

		g.rec.ContainerIDs = ids
		out = append(out, g.rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value < out[j].Value
	})

	return out
}

func capBaskets(baskets []string) []string {
	if len(baskets) > match.MaxBaskets {
		baskets = baskets[:match.MaxBaskets]
	}

	return append([]string(nil), baskets...)
}
