package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"basket-reconciler/internal/common"
	"basket-reconciler/internal/dataset"
	"basket-reconciler/internal/diagnostic"
	"basket-reconciler/internal/drawing"
	"basket-reconciler/internal/match"
	"basket-reconciler/internal/result"
	"basket-reconciler/internal/spatial"
)

// Walls finds the basket texts around each distinct wall label, traces each
// text to the first dataset row listing it and groups the walls by the
// (section, coefficient) they resolve to. Texts listed in several rows are
// reported as ambiguous.
//
// A circle covering the texts found is emitted for every wall with hits.
func Walls(snap *drawing.Snapshot, table *dataset.Table, opts Options) (*Outcome, error) {
	if err := checkInputs(snap, table); err != nil {
		return nil, err
	}

	cfg := opts.config()
	log := opts.logger().With(zap.String("variant", string(VariantWalls)))
	rep := newReport(VariantWalls)
	rep.readTable(table)

	walls := drawing.UniqueByText(snap.Labels(cfg.Layers.Walls, drawing.KindMText))
	texts := snap.Labels(cfg.Layers.Baskets, drawing.KindText)
	rep.Inputs = len(walls)

	out := &Outcome{Report: rep}

	var hits []result.Hit

	for _, wall := range walls {
		found := spatial.FindIntersecting(wall, texts, cfg.Search.Options())
		if !found.Found() {
			rep.Diagnostics.AddInfo(diagnostic.CodeNoIntersectingText, "no text around wall",
				wall.Text(), wall.Position().String())

			continue
		}

		for _, label := range found.Labels {
			rows := match.Match("", []string{label.Text()}, table.Rows, match.PhaseBasketOnly)

			row, ok := common.First(rows)
			if !ok {
				rep.Diagnostics.AddWarning(diagnostic.CodeNoSectionInfo, "text not listed in dataset",
					label.Text(), "wall "+wall.Text())

				continue
			}

			if common.IsMultiple(rows) {
				rep.Diagnostics.AddInfo(diagnostic.CodeAmbiguousText,
					fmt.Sprintf("text listed in %d dataset rows, line %d used", len(rows), row.Line),
					label.Text(), "wall "+wall.Text())
			}

			if common.BeforePipe(row.Section) == "" {
				rep.Diagnostics.AddWarning(diagnostic.CodeEmptySectionText, "section text is empty before '|'",
					row.Section, "wall "+wall.Text())

				continue
			}

			hits = append(hits, result.Hit{
				ContainerID: wall.Text(),
				Section:     row.Section,
				Coefficient: row.Coefficient,
				Baskets:     row.Baskets,
			})
		}

		out.Annotations = append(out.Annotations,
			drawing.NewCircle(cfg.Layers.Areas, wall.Extents().Center(), found.Reach, cfg.Walls.VisibleAreas))

		log.Debug("wall searched",
			zap.String("wall", wall.Text()),
			zap.Int("texts", len(found.Labels)),
			zap.Float64("radius", found.Radius),
		)
	}

	out.Records = result.Group(hits)
	for _, rec := range out.Records {
		rep.count(rec)
	}

	out.Sheet = dataset.WallSheet(out.Records)
	rep.Annotations = len(out.Annotations)
	rep.log(log)

	return out, nil
}
