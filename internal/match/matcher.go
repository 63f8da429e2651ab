package match

import (
	"sort"

	"basket-reconciler/internal/spatial"
)

// Match looks up dataset rows for a section.
//
// PhasePrimary and PhaseSecondary share one predicate: the row's NormalizeKey
// equals key and at least one of its baskets is in basketNames. The caller
// picks which normalization of the section name to pass as key.
// PhaseBasketOnly ignores key and keeps every row sharing a basket.
//
// Basket names compare trimmed and case-insensitively. Rows keep dataset
// order.
func Match(key string, basketNames []string, rows []Row, phase Phase) CandidateList {
	names := foldSet(basketNames)
	if len(names) == 0 {
		return nil
	}

	var out CandidateList

	for i := range rows {
		row := rows[i]

		if !row.hasAny(names) {
			continue
		}

		if phase != PhaseBasketOnly && NormalizeKey(row.Section) != key {
			continue
		}

		out = append(out, Candidate{Row: row, Phase: phase})
	}

	return out
}

// MatchNearby is the proximity-gated lookup used by per-chapter exports.
//
// Baskets within radius of the section are visited closest first. For each,
// rows that contain the basket and share the section's KeyEnding are taken in
// dataset order. A row whose Identity was already taken is skipped, so a
// basket listed in several rows of one section is not counted twice.
// Accumulation stops once MaxBaskets distinct basket names were collected.
func MatchNearby[B spatial.Label](section spatial.Label, baskets []B, rows []Row, radius float64) CandidateList {
	ending := KeyEnding(section.Text())
	nearby := spatial.NewIndex(baskets).Within(section.Position(), radius)

	var out CandidateList

	used := make(map[string]struct{})
	names := make(map[string]struct{}, MaxBaskets)

	for _, nb := range nearby {
		name := FoldName(nb.Item.Text())
		if name == "" {
			continue
		}

		for i := range rows {
			row := rows[i]

			if !row.has(name) || KeyEnding(row.Section) != ending {
				continue
			}

			id := row.Identity()
			if _, ok := used[id]; ok {
				continue
			}

			used[id] = struct{}{}

			for _, b := range row.Baskets {
				if len(names) < MaxBaskets {
					names[FoldName(b)] = struct{}{}
				}
			}

			out = append(out, Candidate{Row: row, Phase: PhaseNearby, Distance: nb.Distance})

			if len(names) >= MaxBaskets {
				return out
			}
		}
	}

	return out
}

// Suggest returns up to n distinct dataset section names closest to the raw
// section label, most similar first. Similarity is measured on normalized
// keys; names with no similarity at all are left out.
func Suggest(section string, rows []Row, n int) []string {
	type scored struct {
		name  string
		score float64
	}

	if n <= 0 {
		return nil
	}

	seen := make(map[string]struct{})

	var all []scored

	for _, r := range rows {
		if _, ok := seen[r.Section]; ok {
			continue
		}

		seen[r.Section] = struct{}{}

		if s := SectionSimilarity(section, r.Section); s > 0 {
			all = append(all, scored{name: r.Section, score: s})
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].score > all[j].score
	})

	out := make([]string, 0, min(n, len(all)))
	for i := 0; i < len(all) && i < n; i++ {
		out = append(out, all[i].name)
	}

	return out
}
