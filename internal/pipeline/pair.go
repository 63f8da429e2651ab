package pipeline

import (
	"strings"

	"go.uber.org/zap"

	"basket-reconciler/internal/common"
	"basket-reconciler/internal/diagnostic"
	"basket-reconciler/internal/drawing"
	"basket-reconciler/internal/spatial"
)

// cage is a cage label reduced to its leading letters.
type cage struct {
	drawing.Entity

	letters string
}

// Pair labels every basket number with the letters of its nearest cage
// label, "A" + "12" -> "A12". Labels go on the baskets layer at the number's
// position.
func Pair(snap *drawing.Snapshot, opts Options) (*Outcome, error) {
	if snap == nil {
		return nil, errNoSnapshot
	}

	cfg := opts.config()
	log := opts.logger().With(zap.String("variant", string(VariantPair)))
	rep := newReport(VariantPair)

	var cages []cage

	for _, e := range snap.Labels(cfg.Layers.CageLabels) {
		if isDigits(e.Text()) {
			continue
		}

		if letters := leadingLetters(e.Text()); letters != "" {
			cages = append(cages, cage{Entity: e, letters: letters})
		}
	}

	numbers := snap.Labels(cfg.Layers.BasketNumbers)
	rep.Inputs = len(numbers)

	if common.IsEmpty(cages) {
		log.Warn("no cage labels", zap.String("layer", cfg.Layers.CageLabels))
	}

	out := &Outcome{Report: rep}

	for _, num := range numbers {
		near, ok := spatial.NearestOf(num, cages)
		if !ok {
			rep.Unmatched++
			rep.Diagnostics.AddWarning(diagnostic.CodeNoCageLabel, "no cage label to pair with",
				num.Text(), num.Position().String())

			continue
		}

		text := near.letters + num.Text()
		out.Annotations = append(out.Annotations,
			drawing.NewText(cfg.Layers.Baskets, text, num.Position(), num, cfg.Pairing.Flip))
		rep.Matched++

		log.Debug("paired", zap.String("number", num.Text()), zap.String("cage", near.Text()), zap.String("label", text))
	}

	rep.Annotations = len(out.Annotations)
	rep.log(log)

	return out, nil
}

func isDigits(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}

// leadingLetters returns the ASCII letters s starts with.
func leadingLetters(s string) string {
	i := 0
	for i < len(s) && (s[i] >= 'a' && s[i] <= 'z' || s[i] >= 'A' && s[i] <= 'Z') {
		i++
	}

	return s[:i]
}
