package pipeline

import (
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"basket-reconciler/internal/dataset"
	"basket-reconciler/internal/diagnostic"
	"basket-reconciler/internal/drawing"
	"basket-reconciler/internal/match"
	"basket-reconciler/internal/result"
	"basket-reconciler/internal/spatial"
)

// Coefficients assigns every basket to its nearest section and resolves each
// section against the dataset.
//
// Both normalizations of the section name are tried and the better fitting
// candidate set is kept. When neither finds anything, rows sharing any of
// the section's baskets are used and the section is reported as a basket-only
// match. Sections with no match at all get a record with an empty
// coefficient. Matched sections receive a coefficient label.
func Coefficients(snap *drawing.Snapshot, table *dataset.Table, opts Options) (*Outcome, error) {
	if err := checkInputs(snap, table); err != nil {
		return nil, err
	}

	cfg := opts.config()
	log := opts.logger().With(zap.String("variant", string(VariantCoefficients)))
	rep := newReport(VariantCoefficients)
	rep.readTable(table)

	sections := snap.Labels(cfg.Layers.Sections)
	baskets := snap.Labels(cfg.Layers.Baskets)

	assignment := spatial.Assign(sections, baskets)
	rep.Inputs = len(assignment.Groups)

	for _, b := range assignment.Unassigned {
		rep.Diagnostics.AddInfo(diagnostic.CodeNoAnchor, "basket has no section", b.Text(), b.Position().String())
	}

	if ce := log.Check(zap.DebugLevel, "basket assignment"); ce != nil {
		ce.Write(zap.String("groups", spew.Sdump(groupTexts(assignment))))
	}

	out := &Outcome{Report: rep}

	for _, g := range assignment.Groups {
		section := g.Anchor

		names := make([]string, 0, len(g.Satellites))
		for _, s := range g.Satellites {
			names = append(names, s.Text())
		}

		chosen := resolveSection(section, g.Satellites, names, table.Rows)

		switch {
		case chosen.Phase().LowConfidence():
			rep.Diagnostics.AddWarning(diagnostic.CodeBasketOnlyMatch, "matched by basket names only",
				section.Text(), section.Position().String())
			log.Warn("basket-only match", zap.String("section", section.Text()), zap.Strings("baskets", names))
		case len(chosen) == 0:
			rep.Diagnostics.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticWarning,
				Code:        diagnostic.CodeNoMatch,
				Message:     "no dataset row for section",
				Subject:     section.Text(),
				Location:    section.Position().String(),
				Suggestions: match.Suggest(section.Text(), table.Rows, maxSuggestions),
			})
		}

		rec := result.AggregateRecord(section.Text(), chosen)
		out.Records = append(out.Records, rec)
		rep.count(rec)

		if rec.Matched() {
			out.Annotations = append(out.Annotations, coefficientLabel(section, rec.Coefficient, cfg.Layers.Coefficients, cfg.Text.Height))
		}

		log.Debug("section resolved",
			zap.String("section", section.Text()),
			zap.Stringer("phase", chosen.Phase()),
			zap.String("coefficient", rec.Coefficient),
		)
	}

	out.Sheet = dataset.SectionSheet(out.Records)
	rep.Annotations = len(out.Annotations)
	rep.log(log)

	return out, nil
}

// resolveSection runs the primary and secondary lookups, picks between them
// and falls back to the basket-only lookup.
func resolveSection(section drawing.Entity, baskets []drawing.Entity, names []string, rows []match.Row) match.CandidateList {
	m1 := match.Match(match.NormalizeStage1(section.Text()), names, rows, match.PhasePrimary)
	m2 := match.Match(match.NormalizeKey(section.Text()), names, rows, match.PhaseSecondary)

	if chosen := match.Choose(m1, m2, section, baskets); len(chosen) > 0 {
		return chosen
	}

	return match.Match("", names, rows, match.PhaseBasketOnly)
}

func coefficientLabel(section drawing.Entity, text, layer string, defaultHeight float64) drawing.Entity {
	ref := drawing.Entity{Height: section.Height}
	if ref.Height <= 0 {
		ref.Height = defaultHeight
	}

	label := drawing.NewText(layer, text, section.Position(), ref, false)
	label.Color = drawing.ColorMagenta

	return label
}

func groupTexts(a spatial.Assignment[drawing.Entity, drawing.Entity]) map[string][]string {
	out := make(map[string][]string, len(a.Groups))

	for _, g := range a.Groups {
		for _, s := range g.Satellites {
			out[g.Anchor.Text()] = append(out[g.Anchor.Text()], s.Text())
		}
	}

	return out
}
