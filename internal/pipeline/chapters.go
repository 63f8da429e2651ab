package pipeline

import (
	"go.uber.org/zap"

	"basket-reconciler/internal/dataset"
	"basket-reconciler/internal/diagnostic"
	"basket-reconciler/internal/drawing"
	"basket-reconciler/internal/match"
	"basket-reconciler/internal/result"
)

// Chapters resolves every section from the baskets within the chapter
// radius, restricted to dataset rows of the same chapter. The result table
// lists every section; unmatched ones are flagged.
func Chapters(snap *drawing.Snapshot, table *dataset.Table, opts Options) (*Outcome, error) {
	if err := checkInputs(snap, table); err != nil {
		return nil, err
	}

	cfg := opts.config()
	log := opts.logger().With(zap.String("variant", string(VariantChapters)))
	rep := newReport(VariantChapters)
	rep.readTable(table)

	sections := snap.Labels(cfg.Layers.Sections)
	baskets := snap.Labels(cfg.Layers.Baskets)
	rep.Inputs = len(sections)

	out := &Outcome{Report: rep}

	for _, section := range sections {
		cands := match.MatchNearby(section, baskets, table.Rows, cfg.Search.ChapterRadius)

		rec := result.AggregateRecord(section.Text(), cands)
		out.Records = append(out.Records, rec)
		rep.count(rec)

		if !rec.Matched() {
			rep.Diagnostics.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticWarning,
				Code:        diagnostic.CodeNoMatch,
				Message:     "no dataset row near section",
				Subject:     section.Text(),
				Location:    section.Position().String(),
				Suggestions: match.Suggest(section.Text(), table.Rows, maxSuggestions),
			})
		}

		log.Debug("chapter resolved",
			zap.String("section", section.Text()),
			zap.Int("rows", len(cands)),
			zap.String("coefficient", rec.Coefficient),
		)
	}

	out.Sheet = dataset.SectionSheet(out.Records)
	rep.log(log)

	return out, nil
}
